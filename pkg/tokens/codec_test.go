package tokens_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoplens/pkg/tokens"
)

func newTestCodec(t *testing.T) *tokens.Codec {
	t.Helper()
	c, err := tokens.NewCodec([]byte("test-signing-secret"), "shoplens-test", 15*time.Minute, time.Hour)
	require.NoError(t, err)
	return c
}

func TestNewCodecRejectsEmptySecret(t *testing.T) {
	_, err := tokens.NewCodec(nil, "iss", time.Minute, time.Hour)
	assert.Error(t, err)
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	c := newTestCodec(t)

	raw, err := c.Issue("tenant-123", tokens.KindAccess)
	require.NoError(t, err)
	assert.NotEmpty(t, raw)

	claims, err := c.Verify(raw, tokens.KindAccess)
	require.NoError(t, err)
	assert.Equal(t, "tenant-123", claims.TenantID)
	assert.NotEmpty(t, claims.JTI)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt, time.Minute)
}

func TestVerifyRejectsKindMismatch(t *testing.T) {
	c := newTestCodec(t)

	access, err := c.Issue("tenant-123", tokens.KindAccess)
	require.NoError(t, err)
	refresh, err := c.Issue("tenant-123", tokens.KindRefresh)
	require.NoError(t, err)

	_, err = c.Verify(access, tokens.KindRefresh)
	assert.ErrorIs(t, err, tokens.ErrInvalidToken)

	_, err = c.Verify(refresh, tokens.KindAccess)
	assert.ErrorIs(t, err, tokens.ErrInvalidToken)
}

func TestVerifyRejectsExpired(t *testing.T) {
	c, err := tokens.NewCodec([]byte("test-signing-secret"), "shoplens-test", -time.Minute, -time.Minute)
	require.NoError(t, err)

	raw, err := c.Issue("tenant-123", tokens.KindAccess)
	require.NoError(t, err)

	_, err = c.Verify(raw, tokens.KindAccess)
	assert.ErrorIs(t, err, tokens.ErrInvalidToken)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	c := newTestCodec(t)

	raw, err := c.Issue("tenant-123", tokens.KindAccess)
	require.NoError(t, err)

	tampered := raw[:len(raw)-2] + "xx"
	_, err = c.Verify(tampered, tokens.KindAccess)
	assert.ErrorIs(t, err, tokens.ErrInvalidToken)
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	c := newTestCodec(t)
	other, err := tokens.NewCodec([]byte("a-different-secret"), "shoplens-test", 15*time.Minute, time.Hour)
	require.NoError(t, err)

	raw, err := other.Issue("tenant-123", tokens.KindAccess)
	require.NoError(t, err)

	_, err = c.Verify(raw, tokens.KindAccess)
	assert.ErrorIs(t, err, tokens.ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	c := newTestCodec(t)
	_, err := c.Verify("not-a-token", tokens.KindAccess)
	assert.ErrorIs(t, err, tokens.ErrInvalidToken)
}
