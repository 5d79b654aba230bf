package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifyRoundTrip(t *testing.T) {
	v := NewVerifier("secret", "studycircle-test", 1)

	token, err := v.Issue("uid-1")
	require.NoError(t, err)

	claims, err := v.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "uid-1", claims.UID)
	require.Equal(t, "studycircle-test", claims.Issuer)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewVerifier("secret-a", "studycircle-test", 1)
	verifier := NewVerifier("secret-b", "studycircle-test", 1)

	token, err := issuer.Issue("uid-1")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	v := NewVerifier("secret", "studycircle-test", 1)

	_, err := v.Verify("not.a.token")
	require.Error(t, err)
}

func TestVerifyRejectsMissingUID(t *testing.T) {
	v := NewVerifier("secret", "studycircle-test", 1)

	token, err := v.Issue("")
	require.NoError(t, err)

	_, err = v.Verify(token)
	require.Error(t, err)
}
