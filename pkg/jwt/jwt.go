// Package jwt emite y valida los tokens de sesión de los empleados de un restaurante.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrNoSecret = errors.New("jwt: secret vacío")
	ErrExpired  = errors.New("jwt: token expirado")
	ErrInvalid  = errors.New("jwt: token inválido")
)

// Leeway tolerancia de reloj entre instancias al validar exp/iat.
const Leeway = 30 * time.Second

// Session identidad del empleado que viaja en el token.
// Role es informativo: el middleware vuelve a leer el rol vigente del usuario.
type Session struct {
	UserID        string
	RestauranteID string
	Role          string
}

// Claims sub = usuario, rid = restaurante (tenant), rol = rol al emitir.
type Claims struct {
	jwt.RegisteredClaims
	RestauranteID string `json:"rid"`
	Role          string `json:"rol"`
}

// Signer firma y valida tokens HS256 de un emisor.
type Signer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// Option configura un Signer.
type Option func(*Signer)

// WithClock reemplaza time.Now (emisión y validación).
func WithClock(now func() time.Time) Option {
	return func(s *Signer) { s.now = now }
}

// NewSigner crea el firmador. issuer vacío omite la comprobación de iss al validar.
func NewSigner(secret, issuer string, ttl time.Duration, opts ...Option) *Signer {
	s := &Signer{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Issue firma un token para la sesión. Cada token lleva un jti propio.
func (s *Signer) Issue(sess Session) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrNoSecret
	}
	if sess.UserID == "" || sess.RestauranteID == "" {
		return "", fmt.Errorf("%w: sesión sin usuario o restaurante", ErrInvalid)
	}
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   sess.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		RestauranteID: sess.RestauranteID,
		Role:          sess.Role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify valida firma, algoritmo, emisor y vigencia. Un token vencido devuelve ErrExpired;
// cualquier otro defecto, ErrInvalid.
func (s *Signer) Verify(token string) (Session, error) {
	if len(s.secret) == 0 {
		return Session{}, ErrNoSecret
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
		jwt.WithLeeway(Leeway),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Session{}, ErrExpired
		}
		return Session{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if claims.Subject == "" || claims.RestauranteID == "" {
		return Session{}, fmt.Errorf("%w: claims incompletos", ErrInvalid)
	}
	return Session{UserID: claims.Subject, RestauranteID: claims.RestauranteID, Role: claims.Role}, nil
}
