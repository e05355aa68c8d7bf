package cryptox

import (
	"crypto"
	"crypto/aes"
	"crypto/cipher"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// Algorithm names a JWS signing algorithm.
type Algorithm string

const (
	EdDSA Algorithm = "EdDSA"
	ES256 Algorithm = "ES256"
	RS256 Algorithm = "RS256"
)

const (
	pemPrivateKey = "PRIVATE KEY"
	pemSealedKey  = "SEALED PRIVATE KEY"
	sealSaltSize  = 16
)

var (
	ErrUnsupportedAlgorithm = errors.New("cryptox: unsupported algorithm")
	ErrNotPrivateKey        = errors.New("cryptox: no private key in PEM data")
	ErrSealedKey            = errors.New("cryptox: key is sealed, a passphrase is required")
)

// GenerateSigningKey creates a private key for alg and returns it PEM
// encoded as PKCS8. rsaBits is only used for RS256 and must be at least
// 2048.
func GenerateSigningKey(alg Algorithm, rsaBits int) ([]byte, error) {
	var (
		key any
		err error
	)
	switch alg {
	case EdDSA:
		_, key, err = ed25519.GenerateKey(rand.Reader)
	case ES256:
		key, err = ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	case RS256:
		if rsaBits < 2048 {
			return nil, fmt.Errorf("cryptox: RSA key size must be at least 2048 bits")
		}
		key, err = rsa.GenerateKey(rand.Reader, rsaBits)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}
	if err != nil {
		return nil, fmt.Errorf("cryptox: failed to generate %s key: %w", alg, err)
	}

	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("cryptox: failed to marshal PKCS8 key: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: pemPrivateKey, Bytes: der}), nil
}

// ParseSigningKey decodes a PEM private key written by GenerateSigningKey.
func ParseSigningKey(pemData []byte) (crypto.Signer, error) {
	block, _ := pem.Decode(pemData)
	switch {
	case block == nil:
		return nil, ErrNotPrivateKey
	case block.Type == pemSealedKey:
		return nil, ErrSealedKey
	case block.Type != pemPrivateKey:
		return nil, fmt.Errorf("%w: found %q", ErrNotPrivateKey, block.Type)
	}

	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("cryptox: parse PKCS8 key: %w", err)
	}
	signer, ok := key.(crypto.Signer)
	if !ok {
		return nil, ErrNotPrivateKey
	}
	return signer, nil
}

// AlgorithmFor reports the signing algorithm matching key.
func AlgorithmFor(key crypto.Signer) (Algorithm, error) {
	switch k := key.(type) {
	case ed25519.PrivateKey:
		return EdDSA, nil
	case *ecdsa.PrivateKey:
		if k.Curve == elliptic.P256() {
			return ES256, nil
		}
	case *rsa.PrivateKey:
		return RS256, nil
	}
	return "", ErrUnsupportedAlgorithm
}

// SealSigningKey encrypts a PEM private key with AES-256-GCM under a key
// derived from passphrase with argon2id. The result is PEM again, with the
// salt and nonce prepended to the ciphertext.
func SealSigningKey(pemData, passphrase []byte) ([]byte, error) {
	salt := make([]byte, sealSaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("cryptox: generate salt: %w", err)
	}

	gcm, err := sealCipher(passphrase, salt)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("cryptox: generate nonce: %w", err)
	}

	out := append(salt, nonce...)
	out = gcm.Seal(out, nonce, pemData, nil)
	return pem.EncodeToMemory(&pem.Block{Type: pemSealedKey, Bytes: out}), nil
}

// OpenSigningKey reverses SealSigningKey. Unsealed input is returned as is.
func OpenSigningKey(data, passphrase []byte) ([]byte, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrNotPrivateKey
	}
	if block.Type != pemSealedKey {
		return data, nil
	}

	raw := block.Bytes
	if len(raw) < sealSaltSize {
		return nil, fmt.Errorf("cryptox: sealed key too short")
	}
	salt, rest := raw[:sealSaltSize], raw[sealSaltSize:]

	gcm, err := sealCipher(passphrase, salt)
	if err != nil {
		return nil, err
	}
	if len(rest) < gcm.NonceSize() {
		return nil, fmt.Errorf("cryptox: sealed key too short")
	}
	nonce, ciphertext := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]

	plain, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("cryptox: open sealed key: %w", err)
	}
	return plain, nil
}

func sealCipher(passphrase, salt []byte) (cipher.AEAD, error) {
	if len(passphrase) == 0 {
		return nil, errors.New("cryptox: empty passphrase")
	}
	key := argon2.IDKey(passphrase, salt, iterations, memory, parallelism, keyLength)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("cryptox: create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("cryptox: create GCM: %w", err)
	}
	return gcm, nil
}

// RandomString returns size random bytes encoded as unpadded base64url.
func RandomString(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("cryptox: size must be positive, got %d", size)
	}
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("cryptox: read random: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
