package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Claims carried by a verified bearer token. UID is the identity provider's
// stable user identifier; it becomes the User row's primary key on first
// login.
type Claims struct {
	UID string `json:"uid"`
	jwt.RegisteredClaims
}

// Verifier checks bearer credentials and yields the identity claim. It
// stands at the boundary: handlers never see a raw token, only the claims.
type Verifier struct {
	secret    []byte
	issuer    string
	expiresIn time.Duration
}

func NewVerifier(secret, issuer string, expiresInHours int) *Verifier {
	return &Verifier{
		secret:    []byte(secret),
		issuer:    issuer,
		expiresIn: time.Duration(expiresInHours) * time.Hour,
	}
}

// Verify parses and validates a bearer token, returning its claims.
func (v *Verifier) Verify(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.UID == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// Issue signs a token for the uid. Production tokens come from the identity
// provider; this exists for local development and tests.
func (v *Verifier) Issue(uid string) (string, error) {
	now := time.Now()
	claims := Claims{
		UID: uid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(v.expiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    v.issuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
