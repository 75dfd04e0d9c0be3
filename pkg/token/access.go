package token

import (
	"errors"
	"fmt"
	"time"

	"slot_game/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNotAdmin = errors.New("token does not grant admin role")

// GenerateAdminToken - subject попадает в sub, роль всегда admin
func GenerateAdminToken(subject string, secretKey []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := model.AdminClaims{
		Role: model.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

func VerifyToken(tokenStr string, secretKey []byte) (*model.AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &model.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, errors.New("unexpected token signing method")
		}

		return secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*model.AdminClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	if claims.Role != model.RoleAdmin {
		return nil, ErrNotAdmin
	}

	return claims, nil
}
