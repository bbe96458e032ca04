package token

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL est la durée de validité par défaut d'un token d'accès.
const DefaultTTL = 30 * time.Minute

// ErrInvalidToken couvre signature invalide, token malformé et expiration :
// aucun détail ne doit filtrer vers l'appelant.
var ErrInvalidToken = errors.New("token invalide ou expiré")

// Issue signe un token HS256 portant l'email en sujet et une expiration
// absolue. Un ttl nul ou négatif retombe sur DefaultTTL.
func Issue(email string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// Verify contrôle signature et expiration puis renvoie le sujet (email).
func Verify(tokenStr string) (string, error) {
	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("signature invalide")
		}
		return jwtSecret, nil
	})
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}
