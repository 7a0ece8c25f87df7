package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

// CargarSecreto lee JWT_SECRET del entorno. main la llama al arrancar,
// después de cargar el .env, así una clave ausente corta el inicio y no
// el primer request autenticado.
func CargarSecreto() error {
	s := os.Getenv("JWT_SECRET")
	if s == "" {
		return errors.New("JWT_SECRET no definida")
	}
	jwtSecret = []byte(s)
	return nil
}

// Tiempo de vida del access token
const AccessTTL = 24 * time.Hour

// Claims del token (incluye el estudio para scoping multi-tenant)
type Claims struct {
	UserID    uint `json:"userId"`
	EstudioID uint `json:"estudioId"`
	IsAdmin   bool `json:"isAdmin"`
	jwt.RegisteredClaims
}

// GenerarToken genera un JWT HS256 con validez de 24h
func GenerarToken(userID, estudioID uint, isAdmin bool) (string, error) {
	claims := &Claims{
		UserID:    userID,
		EstudioID: estudioID,
		IsAdmin:   isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userID),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ValidarToken valida el token y devuelve las claims
func ValidarToken(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("token inválido o expirado: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("no se pudieron extraer las claims")
	}
	return claims, nil
}
