package utils

import (
	"strings"
	"testing"
)

func TestHashYVerificarContrasena(t *testing.T) {
	hash, err := HashContrasena("secreta123")
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if !VerificarContrasena(hash, "secreta123") {
		t.Fatal("la contraseña correcta debe verificar")
	}
	if VerificarContrasena(hash, "otra") {
		t.Fatal("una contraseña distinta no debe verificar")
	}
}

func TestGenerarContrasenaTemporal(t *testing.T) {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	temp, err := GenerarContrasenaTemporal()
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if len(temp) != 12 {
		t.Fatalf("len = %d, want 12", len(temp))
	}
	for _, c := range temp {
		if !strings.ContainsRune(chars, c) {
			t.Fatalf("carácter fuera del alfabeto: %q", c)
		}
	}

	otra, err := GenerarContrasenaTemporal()
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if temp == otra {
		t.Fatal("dos contraseñas temporales no deberían coincidir")
	}
}
