package stubapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestVerifyTokenRoundTrip(t *testing.T) {
	s, err := New([]byte("test-signing-key"))
	require.NoError(t, err)

	token, err := s.mintToken("admin", "user-1")
	require.NoError(t, err)

	subject, err := s.verifyToken(token, "admin")
	require.NoError(t, err)
	require.Equal(t, "user-1", subject)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	s, err := New([]byte("test-signing-key"))
	require.NoError(t, err)

	NowTimeFunc = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	defer func() { NowTimeFunc = time.Now }()

	token, err := s.mintToken("admin", "user-1")
	require.NoError(t, err)

	_, err = s.verifyToken(token, "admin")
	require.Error(t, err)
}

func TestVerifyTokenRejectsOtherSigningKey(t *testing.T) {
	minter, err := New([]byte("key-one"))
	require.NoError(t, err)
	verifier, err := New([]byte("key-two"))
	require.NoError(t, err)

	token, err := minter.mintToken("shop", "user-1")
	require.NoError(t, err)

	_, err = verifier.verifyToken(token, "shop")
	require.Error(t, err)
}
