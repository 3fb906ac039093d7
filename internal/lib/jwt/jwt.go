package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/ANSH5252/LivePulse/internal/entity"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// NewToken mints an HS256 access token for a user. Issuance normally lives
// with the identity collaborator; this helper exists for seeding and tests.
func NewToken(userID int64, role entity.Role, secret string, ttl time.Duration) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)

	claims["uid"] = userID
	claims["role"] = string(role)
	claims["exp"] = time.Now().Add(ttl).Unix()

	return token.SignedString([]byte(secret))
}

// Parse validates an access token and returns the principal it carries.
func Parse(accessToken, secret string) (entity.Principal, error) {
	const op = "jwt.Parse"

	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return entity.Principal{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return entity.Principal{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	exp, ok := claims["exp"].(float64)
	if !ok || time.Unix(int64(exp), 0).Before(time.Now()) {
		return entity.Principal{}, fmt.Errorf("%s: token is expired: %w", op, ErrInvalidToken)
	}

	uidFloat, ok := claims["uid"].(float64)
	if !ok {
		return entity.Principal{}, fmt.Errorf("%s: uid claim missing: %w", op, ErrInvalidToken)
	}

	role, ok := claims["role"].(string)
	if !ok {
		return entity.Principal{}, fmt.Errorf("%s: role claim missing: %w", op, ErrInvalidToken)
	}

	return entity.Principal{UserID: int64(uidFloat), Role: entity.Role(role)}, nil
}
