package auth

import (
	"testing"
)

func TestCargarSecreto_SinVariable(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if err := CargarSecreto(); err == nil {
		t.Fatal("sin JWT_SECRET debe fallar al arrancar, no en el primer request")
	}
}

func TestTokenIdaYVuelta(t *testing.T) {
	t.Setenv("JWT_SECRET", "clave-de-prueba")
	if err := CargarSecreto(); err != nil {
		t.Fatalf("error inesperado: %v", err)
	}

	tok, err := GenerarToken(3, 9, true)
	if err != nil {
		t.Fatalf("error al generar: %v", err)
	}
	claims, err := ValidarToken(tok)
	if err != nil {
		t.Fatalf("error al validar: %v", err)
	}
	if claims.UserID != 3 || claims.EstudioID != 9 || !claims.IsAdmin {
		t.Fatalf("claims inesperadas: %+v", claims)
	}
}
