package adaptor

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"course-hub/biz/infrastructure/consts"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKeyPair(t *testing.T) (*ecdsa.PrivateKey, []byte) {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pub := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
	return key, pub
}

func signToken(t *testing.T, key *ecdsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)
	s, err := token.SignedString(key)
	require.NoError(t, err)
	return s
}

func TestParseTokenValid(t *testing.T) {
	key, pub := newKeyPair(t)
	now := time.Now().Unix()
	tokenString := signToken(t, key, jwt.MapClaims{
		"userId": "665f1c2ab7e9d21f3c8a0001",
		"iat":    now,
		"exp":    now + 3600,
	})

	meta, err := ParseToken(tokenString, pub)
	require.NoError(t, err)
	assert.Equal(t, "665f1c2ab7e9d21f3c8a0001", meta.GetUserId())
}

func TestParseTokenExpired(t *testing.T) {
	key, pub := newKeyPair(t)
	now := time.Now().Unix()
	tokenString := signToken(t, key, jwt.MapClaims{
		"userId": "665f1c2ab7e9d21f3c8a0001",
		"iat":    now - 7200,
		"exp":    now - 3600,
	})

	_, err := ParseToken(tokenString, pub)
	assert.ErrorIs(t, err, consts.ErrNotAuthentication)
}

func TestParseTokenWrongKey(t *testing.T) {
	key, _ := newKeyPair(t)
	_, otherPub := newKeyPair(t)
	now := time.Now().Unix()
	tokenString := signToken(t, key, jwt.MapClaims{
		"userId": "665f1c2ab7e9d21f3c8a0001",
		"exp":    now + 3600,
	})

	_, err := ParseToken(tokenString, otherPub)
	assert.ErrorIs(t, err, consts.ErrNotAuthentication)
}

func TestParseTokenTampered(t *testing.T) {
	key, pub := newKeyPair(t)
	now := time.Now().Unix()
	tokenString := signToken(t, key, jwt.MapClaims{
		"userId": "665f1c2ab7e9d21f3c8a0001",
		"exp":    now + 3600,
	})

	tampered := tokenString[:len(tokenString)-4] + "AAAA"
	_, err := ParseToken(tampered, pub)
	assert.ErrorIs(t, err, consts.ErrNotAuthentication)
}

func TestParseTokenRejectsOtherAlg(t *testing.T) {
	// 拒绝以对称算法伪造的凭证
	_, pub := newKeyPair(t)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "665f1c2ab7e9d21f3c8a0001",
		"exp":    time.Now().Unix() + 3600,
	})
	s, err := token.SignedString(pub)
	require.NoError(t, err)

	_, err = ParseToken(s, pub)
	assert.ErrorIs(t, err, consts.ErrNotAuthentication)
}

func TestParseTokenMissing(t *testing.T) {
	_, pub := newKeyPair(t)
	_, err := ParseToken("", pub)
	assert.ErrorIs(t, err, consts.ErrNotAuthentication)

	_, err = ParseToken("not-a-token", pub)
	assert.ErrorIs(t, err, consts.ErrNotAuthentication)
}

func TestParseTokenMissingSubject(t *testing.T) {
	key, pub := newKeyPair(t)
	tokenString := signToken(t, key, jwt.MapClaims{
		"exp": time.Now().Unix() + 3600,
	})

	_, err := ParseToken(tokenString, pub)
	assert.ErrorIs(t, err, consts.ErrNotAuthentication)
}

func TestGenerateAndParseRoundTrip(t *testing.T) {
	key, pub := newKeyPair(t)
	now := time.Now().Unix()

	// 与 GenerateJwtToken 相同的声明布局
	tokenString := signToken(t, key, jwt.MapClaims{
		"exp":      now + 7200,
		"iat":      now,
		"userId":   "665f1c2ab7e9d21f3c8a0002",
		"deviceId": "",
	})

	meta, err := ParseToken(tokenString, pub)
	require.NoError(t, err)
	assert.Equal(t, "665f1c2ab7e9d21f3c8a0002", meta.GetUserId())
	assert.Equal(t, "", meta.GetDeviceId())
}
