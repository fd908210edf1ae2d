package jwt

import (
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret        = "test-secret-key-for-unit-tests"
	testUserID        = "00000000-0000-0000-0000-000000000001"
	testRestauranteID = "00000000-0000-0000-0000-000000000002"
	testIssuer        = "restaurante-api-test"
)

var mesero = Session{UserID: testUserID, RestauranteID: testRestauranteID, Role: "mesero"}

// fixedClock reloj controlable para probar vencimientos.
type fixedClock struct{ t time.Time }

func (c *fixedClock) now() time.Time { return c.t }

func TestIssueAndVerify(t *testing.T) {
	s := NewSigner(testSecret, testIssuer, time.Hour)
	tok, err := s.Issue(mesero)
	require.NoError(t, err)

	got, err := s.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, mesero, got)
}

func TestIssue_ClaimsDelRestaurante(t *testing.T) {
	clock := &fixedClock{t: time.Date(2026, 5, 10, 15, 0, 0, 0, time.UTC)}
	s := NewSigner(testSecret, testIssuer, 8*time.Hour, WithClock(clock.now))
	tok, err := s.Issue(mesero)
	require.NoError(t, err)

	var claims Claims
	_, _, err = gojwt.NewParser().ParseUnverified(tok, &claims)
	require.NoError(t, err)
	assert.Equal(t, testUserID, claims.Subject)
	assert.Equal(t, testRestauranteID, claims.RestauranteID)
	assert.Equal(t, "mesero", claims.Role)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, clock.t.Add(8*time.Hour), claims.ExpiresAt.Time.UTC())

	otro, err := s.Issue(mesero)
	require.NoError(t, err)
	assert.NotEqual(t, tok, otro, "cada token lleva su propio jti")
}

func TestVerify_Vencimiento(t *testing.T) {
	clock := &fixedClock{t: time.Date(2026, 5, 10, 15, 0, 0, 0, time.UTC)}
	s := NewSigner(testSecret, testIssuer, time.Hour, WithClock(clock.now))
	tok, err := s.Issue(mesero)
	require.NoError(t, err)

	// Dentro de la tolerancia sigue siendo válido.
	clock.t = clock.t.Add(time.Hour + Leeway/2)
	_, err = s.Verify(tok)
	assert.NoError(t, err)

	clock.t = clock.t.Add(Leeway)
	_, err = s.Verify(tok)
	assert.ErrorIs(t, err, ErrExpired)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestVerify_Rechazos(t *testing.T) {
	s := NewSigner(testSecret, testIssuer, time.Hour)
	tok, err := s.Issue(mesero)
	require.NoError(t, err)

	cases := []struct {
		name   string
		signer *Signer
		token  string
	}{
		{"secret incorrecto", NewSigner("otro-secret-completamente-distinto", testIssuer, time.Hour), tok},
		{"otro emisor", NewSigner(testSecret, "otra-api", time.Hour), tok},
		{"token alterado", s, tok[:len(tok)-2] + "xx"},
		{"basura", s, "no.es.jwt"},
		{"alg none", s, unsignedToken(t)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.signer.Verify(tc.token)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestVerify_SinEmisorConfigurado(t *testing.T) {
	tok, err := NewSigner(testSecret, testIssuer, time.Hour).Issue(mesero)
	require.NoError(t, err)

	_, err = NewSigner(testSecret, "", time.Hour).Verify(tok)
	assert.NoError(t, err)
}

func TestIssue_Errores(t *testing.T) {
	_, err := NewSigner("", testIssuer, time.Hour).Issue(mesero)
	assert.ErrorIs(t, err, ErrNoSecret)

	_, err = NewSigner(testSecret, testIssuer, time.Hour).Issue(Session{UserID: testUserID, Role: "admin"})
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = NewSigner("", testIssuer, time.Hour).Verify("x.y.z")
	assert.ErrorIs(t, err, ErrNoSecret)
}

func unsignedToken(t *testing.T) string {
	t.Helper()
	claims := Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   testUserID,
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		RestauranteID: testRestauranteID,
		Role:          "admin",
	}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(tok, "."))
	return tok
}
