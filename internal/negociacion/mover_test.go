package negociacion

import "testing"

func TestClampPosicion(t *testing.T) {
	casos := []struct {
		nombre    string
		posicion  int
		total     int
		esperado  int
	}{
		{"dentro del rango", 2, 5, 2},
		{"negativa", -3, 5, 0},
		{"al final", 5, 5, 5},
		{"más allá del final", 9, 5, 5},
		{"columna vacía", 4, 0, 0},
	}
	for _, c := range casos {
		if got := clampPosicion(c.posicion, c.total); got != c.esperado {
			t.Errorf("%s: clampPosicion(%d, %d) = %d, want %d", c.nombre, c.posicion, c.total, got, c.esperado)
		}
	}
}

func TestEsEtapaValida(t *testing.T) {
	for _, etapa := range []string{EtapaNuevo, EtapaSeguimiento, EtapaPropuesta, EtapaCerrado, EtapaPerdido} {
		if !EsEtapaValida(etapa) {
			t.Errorf("%q debería ser válida", etapa)
		}
	}
	if EsEtapaValida("Archivado") {
		t.Error("etapa desconocida no debe ser válida")
	}
	if EsEtapaValida("") {
		t.Error("etapa vacía no debe ser válida")
	}
}
