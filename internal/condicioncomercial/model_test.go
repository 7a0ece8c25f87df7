package condicioncomercial

import (
	"errors"
	"testing"
)

func TestValidarDescuento(t *testing.T) {
	if err := ValidarDescuento(0.05, 0.05); err != nil {
		t.Fatalf("descuento igual al sobreprecio debe ser válido, got %v", err)
	}
	if err := ValidarDescuento(0, 0); err != nil {
		t.Fatalf("descuento cero debe ser válido, got %v", err)
	}
	if err := ValidarDescuento(0.10, 0.05); !errors.Is(err, ErrDescuentoExcedeSobreprecio) {
		t.Fatalf("err = %v, want ErrDescuentoExcedeSobreprecio", err)
	}
	if err := ValidarDescuento(-0.01, 0.05); err == nil {
		t.Fatal("descuento negativo debe rechazarse")
	}
}

func TestACondicion(t *testing.T) {
	c := CondicionComercial{PorcentajeDescuento: 0.05}
	cond := c.ACondicion()
	if cond.PermiteMetodo(1) {
		t.Fatal("sin métodos permitidos no debe habilitar ninguno")
	}
	if len(cond.MetodosPermitidos) != 0 {
		t.Fatalf("MetodosPermitidos = %v, want vacío", cond.MetodosPermitidos)
	}
}
