package precios

import (
	"errors"
	"math"
	"testing"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

var cfgBase = Configuracion{
	PorcentajeUtilidadServicio: 0.30,
	PorcentajeUtilidadProducto: 0.40,
	PorcentajeComisionVenta:    0.10,
	PorcentajeSobreprecio:      0.05,
}

func TestPrecioPublicoItem_EjemploServicio(t *testing.T) {
	// costo 1000, utilidad 30% => 300, subtotal 1300, precio = 1300/0.9
	precio, err := PrecioPublicoItem(1000, 0, TipoServicio, cfgBase)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	nearlyEqual(t, "precio", precio, 1300.0/0.9)
}

func TestPrecioPublicoItem_IgnoraSobreprecio(t *testing.T) {
	sinSobre := cfgBase
	sinSobre.PorcentajeSobreprecio = 0
	conSobre := cfgBase
	conSobre.PorcentajeSobreprecio = 0.25

	a, err := PrecioPublicoItem(1000, 50, TipoProducto, sinSobre)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	b, err := PrecioPublicoItem(1000, 50, TipoProducto, conSobre)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	nearlyEqual(t, "precio con/sin sobreprecio", a, b)
}

func TestPrecioPublicoItem_ComisionInvalida(t *testing.T) {
	for _, comision := range []float64{1, 1.5, -0.1} {
		cfg := cfgBase
		cfg.PorcentajeComisionVenta = comision
		if _, err := PrecioPublicoItem(1000, 0, TipoServicio, cfg); !errors.Is(err, ErrConfiguracionInvalida) {
			t.Fatalf("comision %v: err = %v, want ErrConfiguracionInvalida", comision, err)
		}
	}
}

func TestConfiguracionValidar(t *testing.T) {
	if err := cfgBase.Validar(); err != nil {
		t.Fatalf("configuración válida rechazada: %v", err)
	}
	for _, comision := range []float64{1, 1.5, -0.1} {
		cfg := cfgBase
		cfg.PorcentajeComisionVenta = comision
		if !errors.Is(cfg.Validar(), ErrConfiguracionInvalida) {
			t.Fatalf("comision %v: debe dar ErrConfiguracionInvalida", comision)
		}
	}
}

func TestCalcularPaquete_PrecioSistemaConSobreprecio(t *testing.T) {
	items := []ItemCalculo{
		{Costo: 1000, Gasto: 0, UtilidadBase: 300, PrecioPublico: 1300.0 / 0.9, Cantidad: 1, TipoUtilidad: TipoServicio},
	}
	r, err := CalcularPaquete(items, cfgBase, ParametrosVenta{PrecioVenta: 1500})
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	base := 1300.0 / 0.9
	nearlyEqual(t, "sobreprecio", r.Sobreprecio, base*0.05)
	nearlyEqual(t, "precioSistema", r.PrecioSistema, base*1.05)
	nearlyEqual(t, "desvio", r.DesvioPrecioSistema, 1500-base*1.05)
}

func TestCalcularPaquete_SumaDePreciosSinSobreprecio(t *testing.T) {
	items := []ItemCalculo{
		{Costo: 1000, UtilidadBase: 300, PrecioPublico: 1300.0 / 0.9, Cantidad: 2, TipoUtilidad: TipoServicio},
		{Costo: 200, Gasto: 20, UtilidadBase: 80, PrecioPublico: 300.0 / 0.9, Cantidad: 1, TipoUtilidad: TipoProducto},
	}
	r, err := CalcularPaquete(items, cfgBase, ParametrosVenta{PrecioVenta: 3000, SumarPreciosItems: true})
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	// La suma de precios públicos no vuelve a aplicar sobreprecio.
	nearlyEqual(t, "precioSistema", r.PrecioSistema, 2*1300.0/0.9+300.0/0.9)
	nearlyEqual(t, "sobreprecio", r.Sobreprecio, 0)
	nearlyEqual(t, "costoTotal", r.CostoTotal, 2200)
	nearlyEqual(t, "gastoTotal", r.GastoTotal, 20)
	nearlyEqual(t, "utilidadBaseTotal", r.UtilidadBaseTotal, 680)
}

func TestCalcularPaquete_Idempotente(t *testing.T) {
	items := []ItemCalculo{
		{Costo: 500, Gasto: 30, UtilidadBase: 150, PrecioPublico: 755, Cantidad: 3, TipoUtilidad: TipoServicio},
	}
	venta := ParametrosVenta{
		PrecioVenta:         2500,
		PorcentajeDescuento: 0.05,
		Condicion:           &CondicionComercial{PorcentajeDescuento: 0.05, MetodosPermitidos: []uint{7}},
		Metodo:              &MetodoPago{ID: 7, PorcentajeComision: 0.03},
	}

	a, err := CalcularPaquete(items, cfgBase, venta)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	b, err := CalcularPaquete(items, cfgBase, venta)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if a != b {
		t.Fatalf("resultados distintos para entradas idénticas:\n%+v\n%+v", a, b)
	}
}

func TestCalcularPaquete_PaqueteVacio(t *testing.T) {
	r, err := CalcularPaquete(nil, cfgBase, ParametrosVenta{})
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if r != (Resultado{}) {
		t.Fatalf("paquete vacío debe dar resultado en cero, got %+v", r)
	}
}

func TestCalcularPaquete_PrecioVentaCero(t *testing.T) {
	items := []ItemCalculo{
		{Costo: 100, UtilidadBase: 30, PrecioPublico: 144.44, Cantidad: 1, TipoUtilidad: TipoServicio},
	}
	r, err := CalcularPaquete(items, cfgBase, ParametrosVenta{PrecioVenta: 0})
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	nearlyEqual(t, "margenNeto", r.MargenNeto, 0)
	if math.IsNaN(r.MargenNeto) || math.IsInf(r.MargenNeto, 0) {
		t.Fatalf("margenNeto no es finito: %v", r.MargenNeto)
	}
}

func TestCalcularPaquete_DescuentoMayorAlSobreprecio(t *testing.T) {
	items := []ItemCalculo{
		{Costo: 1000, UtilidadBase: 300, PrecioPublico: 1300.0 / 0.9, Cantidad: 1, TipoUtilidad: TipoServicio},
	}
	dentro, err := CalcularPaquete(items, cfgBase, ParametrosVenta{PrecioVenta: 1520, PorcentajeDescuento: 0.05})
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	// El 10% supera el 5% de sobreprecio configurado: no es error, el margen
	// neto absorbe el faltante.
	excedido, err := CalcularPaquete(items, cfgBase, ParametrosVenta{PrecioVenta: 1520, PorcentajeDescuento: 0.10})
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if excedido.MargenNeto >= dentro.MargenNeto {
		t.Fatalf("margen con descuento 10%% (%v) debería ser menor que con 5%% (%v)", excedido.MargenNeto, dentro.MargenNeto)
	}
}

func TestCalcularPaquete_MetodoNoPermitido(t *testing.T) {
	items := []ItemCalculo{
		{Costo: 1000, UtilidadBase: 300, PrecioPublico: 1300.0 / 0.9, Cantidad: 1, TipoUtilidad: TipoServicio},
	}
	condicion := &CondicionComercial{PorcentajeDescuento: 0.05, MetodosPermitidos: []uint{1, 2}}

	noPermitido, err := CalcularPaquete(items, cfgBase, ParametrosVenta{
		PrecioVenta: 1500,
		Condicion:   condicion,
		Metodo:      &MetodoPago{ID: 9, PorcentajeComision: 0.04},
	})
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	sinMetodo, err := CalcularPaquete(items, cfgBase, ParametrosVenta{
		PrecioVenta: 1500,
		Condicion:   condicion,
	})
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}

	nearlyEqual(t, "comisionMetodoPago", noPermitido.ComisionMetodoPago, 0)
	if noPermitido != sinMetodo {
		t.Fatalf("método no permitido debe equivaler a método nil:\n%+v\n%+v", noPermitido, sinMetodo)
	}
}

func TestCalcularPaquete_ComisionInvalida(t *testing.T) {
	cfg := cfgBase
	cfg.PorcentajeComisionVenta = 1
	if _, err := CalcularPaquete(nil, cfg, ParametrosVenta{}); !errors.Is(err, ErrConfiguracionInvalida) {
		t.Fatalf("err = %v, want ErrConfiguracionInvalida", err)
	}
}
