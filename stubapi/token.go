package stubapi

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

const tokenLifetime = 24 * time.Hour

func (s *Server) mintToken(portal, subject string) (string, error) {
	claims := jwtlib.MapClaims{
		"iss":    "stubapi",
		"sub":    subject,
		"portal": portal,
		"iat":    NowTimeFunc().Unix(),
		"exp":    NowTimeFunc().Add(tokenLifetime).Unix(),
		"jti":    uuid.New().String(),
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", errors.Wrap(err, "[mintToken] sign")
	}
	return signed, nil
}

// verifyToken checks the signature and expiry, and that the token was minted
// for the expected portal.
func (s *Server) verifyToken(raw, portal string) (subject string, err error) {
	parsed, err := jwtlib.Parse(raw, func(t *jwtlib.Token) (any, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return "", errors.Wrap(err, "[verifyToken] parse")
	}
	claims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok || !parsed.Valid {
		return "", errors.New("[verifyToken] invalid token")
	}
	if p, _ := claims["portal"].(string); p != portal {
		return "", errors.Errorf("[verifyToken] token minted for portal %q", p)
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", errors.New("[verifyToken] missing subject")
	}
	return sub, nil
}
