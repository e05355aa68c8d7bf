package cryptox

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateSigningKey(t *testing.T) {
	tests := []struct {
		alg  Algorithm
		bits int
		want any
	}{
		{EdDSA, 0, ed25519.PrivateKey{}},
		{ES256, 0, &ecdsa.PrivateKey{}},
		{RS256, 2048, &rsa.PrivateKey{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.alg), func(t *testing.T) {
			pemData, err := GenerateSigningKey(tt.alg, tt.bits)
			require.NoError(t, err)
			require.Contains(t, string(pemData), "BEGIN PRIVATE KEY")

			key, err := ParseSigningKey(pemData)
			require.NoError(t, err)
			require.IsType(t, tt.want, key)

			alg, err := AlgorithmFor(key)
			require.NoError(t, err)
			require.Equal(t, tt.alg, alg)
		})
	}
}

func TestGenerateSigningKeyRejects(t *testing.T) {
	_, err := GenerateSigningKey("HS256", 0)
	require.ErrorIs(t, err, ErrUnsupportedAlgorithm)

	_, err = GenerateSigningKey(RS256, 1024)
	require.Error(t, err)
}

func TestParseSigningKeyInvalid(t *testing.T) {
	_, err := ParseSigningKey([]byte("not pem"))
	require.ErrorIs(t, err, ErrNotPrivateKey)

	_, err = ParseSigningKey([]byte("-----BEGIN PUBLIC KEY-----\nAAAA\n-----END PUBLIC KEY-----\n"))
	require.ErrorIs(t, err, ErrNotPrivateKey)
}

func TestSealAndOpenSigningKey(t *testing.T) {
	pemData, err := GenerateSigningKey(EdDSA, 0)
	require.NoError(t, err)

	sealed, err := SealSigningKey(pemData, []byte("correct horse"))
	require.NoError(t, err)
	require.Contains(t, string(sealed), "BEGIN SEALED PRIVATE KEY")

	_, err = ParseSigningKey(sealed)
	require.ErrorIs(t, err, ErrSealedKey)

	opened, err := OpenSigningKey(sealed, []byte("correct horse"))
	require.NoError(t, err)
	require.Equal(t, pemData, opened)

	_, err = OpenSigningKey(sealed, []byte("wrong"))
	require.Error(t, err)

	_, err = SealSigningKey(pemData, nil)
	require.Error(t, err)
}

func TestOpenSigningKeyPassesThroughPlainKeys(t *testing.T) {
	pemData, err := GenerateSigningKey(ES256, 0)
	require.NoError(t, err)

	out, err := OpenSigningKey(pemData, nil)
	require.NoError(t, err)
	require.Equal(t, pemData, out)
}

func TestRandomString(t *testing.T) {
	a, err := RandomString(16)
	require.NoError(t, err)
	b, err := RandomString(16)
	require.NoError(t, err)

	require.Len(t, a, 22)
	require.NotEqual(t, a, b)

	_, err = RandomString(0)
	require.Error(t, err)
}
