package paquete

import (
	"errors"
	"testing"

	"github.com/ProSocialApp/api-estudio/internal/catalogo"
	"github.com/ProSocialApp/api-estudio/internal/precios"
)

var cfgPrueba = precios.Configuracion{
	PorcentajeUtilidadServicio: 0.30,
	PorcentajeUtilidadProducto: 0.40,
	PorcentajeComisionVenta:    0.10,
	PorcentajeSobreprecio:      0.05,
}

func TestArmarItems_ResuelveUtilidadPorTipo(t *testing.T) {
	items := []catalogo.ItemCatalogo{
		{ID: 1, Costo: 1000, Gasto: 0, TipoUtilidad: "Servicio", PrecioPublico: 1444.44},
		{ID: 2, Costo: 200, Gasto: 20, TipoUtilidad: "Producto", PrecioPublico: 333.33},
	}
	servicios := []ServicioDTO{
		{ItemCatalogoID: 1, Cantidad: 2},
		{ItemCatalogoID: 2, Cantidad: 1},
	}

	out, err := armarItems(items, servicios, cfgPrueba)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
	if out[0].UtilidadBase != 300 {
		t.Fatalf("utilidad servicio = %v, want 300", out[0].UtilidadBase)
	}
	if out[1].UtilidadBase != 80 {
		t.Fatalf("utilidad producto = %v, want 80", out[1].UtilidadBase)
	}
	if out[0].Cantidad != 2 || out[1].Cantidad != 1 {
		t.Fatalf("cantidades mal resueltas: %+v", out)
	}
}

func TestArmarItems_CantidadInvalida(t *testing.T) {
	items := []catalogo.ItemCatalogo{{ID: 1, Costo: 100, TipoUtilidad: "Servicio"}}
	_, err := armarItems(items, []ServicioDTO{{ItemCatalogoID: 1, Cantidad: 0}}, cfgPrueba)
	if !errors.Is(err, ErrCantidadInvalida) {
		t.Fatalf("err = %v, want ErrCantidadInvalida", err)
	}
}

func TestArmarItems_ItemDesconocido(t *testing.T) {
	items := []catalogo.ItemCatalogo{{ID: 1, Costo: 100, TipoUtilidad: "Servicio"}}
	_, err := armarItems(items, []ServicioDTO{{ItemCatalogoID: 99, Cantidad: 1}}, cfgPrueba)
	if err == nil {
		t.Fatal("ítem fuera del catálogo debe rechazarse")
	}
}

func TestValidarServicios(t *testing.T) {
	items := []catalogo.ItemCatalogo{{ID: 1, Costo: 100, TipoUtilidad: "Servicio"}}

	if err := validarServicios(items, []ServicioDTO{{ItemCatalogoID: 1, Cantidad: 2}}); err != nil {
		t.Fatalf("línea válida rechazada: %v", err)
	}
	if err := validarServicios(items, []ServicioDTO{{ItemCatalogoID: 1, Cantidad: 0}}); !errors.Is(err, ErrCantidadInvalida) {
		t.Fatalf("err = %v, want ErrCantidadInvalida", err)
	}
	// Un ID que el catálogo del estudio no devolvió debe rechazarse antes de
	// persistir, no recién al cotizar.
	if err := validarServicios(items, []ServicioDTO{{ItemCatalogoID: 99, Cantidad: 1}}); err == nil {
		t.Fatal("ítem ajeno al catálogo debe rechazarse")
	}
}

func TestArmarItems_Vacio(t *testing.T) {
	out, err := armarItems(nil, nil, cfgPrueba)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("len(out) = %d, want 0", len(out))
	}
}
