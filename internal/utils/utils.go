package utils

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// HashContrasena genera un hash bcrypt para la contraseña informada.
func HashContrasena(contrasena string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(contrasena), bcrypt.DefaultCost)
	return string(hash), err
}

// VerificarContrasena compara el hash bcrypt con la contraseña en texto plano.
func VerificarContrasena(hash, contrasena string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(contrasena))
	return err == nil
}

// GenerarContrasenaTemporal genera una contraseña aleatoria segura de 12 caracteres.
func GenerarContrasenaTemporal() (string, error) {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	length := 12
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		if err != nil {
			return "", err
		}
		result[i] = chars[num.Int64()]
	}
	return string(result), nil
}
