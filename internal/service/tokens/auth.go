package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenExpired = errors.New("token expired")

// OwnerClaims данные владельца в токене. Токены выпускаются внешней системой идентификации,
// сервис только проверяет подпись.
type OwnerClaims struct {
	jwt.RegisteredClaims
	ID    int64  `json:"id"`
	Email string `json:"email,omitempty"`
	Admin bool   `json:"admin,omitempty"`
}

func GenerateOwnerJWT(claims OwnerClaims, expire time.Duration, key []byte) (string, error) {
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(expire))
	token, err := generateJWT(claims, key)
	if err != nil {
		return "", fmt.Errorf("generating owner jwt token: %s", err.Error())
	}
	return token, nil
}

func ValidateOwnerJWT(tokenString string, key []byte) (*OwnerClaims, error) {
	token, err := validateJWT(tokenString, new(OwnerClaims), key)
	if err != nil {
		return nil, fmt.Errorf("validating owner jwt token: %w", err)
	}

	claims, ok := token.Claims.(*OwnerClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	if claims.ID <= 0 {
		return nil, errors.New("invalid owner id")
	}
	return claims, nil
}

func generateJWT(claims jwt.Claims, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating jwt token: %s", err.Error())
	}

	return tokenString, nil
}

func validateJWT(tokenString string, claims jwt.Claims, key []byte) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("parsing jwt token: %w", err)
	}

	return token, nil
}
