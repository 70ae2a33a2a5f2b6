package utils

import (
	"fmt"
	"time"

	"addiswheels-backend/models"

	"github.com/golang-jwt/jwt"
)

// jwtSecret is injected once at startup via InitJWT; nothing reads the
// environment after that.
var jwtSecret []byte

func InitJWT(secret string) {
	if secret == "" {
		panic("JWT_SECRET not configured")
	}
	jwtSecret = []byte(secret)
}

// GenerateJWT signs a token carrying the user identity claims, valid for
// the given number of hours.
func GenerateJWT(user models.User, hours int) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(time.Hour * time.Duration(hours)).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func DecodeJWT(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid signature method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid or expired token")
}
