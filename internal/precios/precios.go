// internal/precios/precios.go
package precios

import "errors"

// ErrConfiguracionInvalida indica que la comisión de venta está fuera de [0, 1).
// Con comisión >= 1 el precio queda indefinido (división por cero o negativa).
var ErrConfiguracionInvalida = errors.New("configuración inválida: la comisión de venta debe estar en [0, 1)")

// TipoUtilidad distingue qué porcentaje de utilidad aplica a un ítem.
type TipoUtilidad string

const (
	TipoServicio TipoUtilidad = "Servicio"
	TipoProducto TipoUtilidad = "Producto"
)

// Configuracion son los parámetros globales de precios del estudio.
// Todos los porcentajes se expresan como fracción (0.30 = 30%).
type Configuracion struct {
	PorcentajeUtilidadServicio float64 `json:"porcentajeUtilidadServicio"`
	PorcentajeUtilidadProducto float64 `json:"porcentajeUtilidadProducto"`
	PorcentajeComisionVenta    float64 `json:"porcentajeComisionVenta"`
	PorcentajeSobreprecio      float64 `json:"porcentajeSobreprecio"`
}

// Validar rechaza una configuración cuya comisión de venta deja la
// aritmética indefinida. Es la única regla de validez del dominio y todos
// los puntos que la necesitan pasan por acá.
func (c Configuracion) Validar() error {
	if c.PorcentajeComisionVenta < 0 || c.PorcentajeComisionVenta >= 1 {
		return ErrConfiguracionInvalida
	}
	return nil
}

// PorcentajeUtilidad devuelve el porcentaje de utilidad según el tipo de ítem.
func (c Configuracion) PorcentajeUtilidad(tipo TipoUtilidad) float64 {
	if tipo == TipoProducto {
		return c.PorcentajeUtilidadProducto
	}
	return c.PorcentajeUtilidadServicio
}

// ItemCalculo es una línea de paquete con sus valores ya resueltos por ítem.
type ItemCalculo struct {
	Costo         float64
	Gasto         float64
	UtilidadBase  float64
	PrecioPublico float64
	Cantidad      int
	TipoUtilidad  TipoUtilidad
}

// CondicionComercial limita el descuento y los métodos de pago habilitados.
type CondicionComercial struct {
	PorcentajeDescuento float64
	MetodosPermitidos   []uint
}

// PermiteMetodo informa si el método de pago está habilitado por la condición.
func (c CondicionComercial) PermiteMetodo(id uint) bool {
	for _, m := range c.MetodosPermitidos {
		if m == id {
			return true
		}
	}
	return false
}

// MetodoPago aporta la comisión que cobra el medio de pago sobre la venta.
type MetodoPago struct {
	ID                 uint
	PorcentajeComision float64
}

// ParametrosVenta son las variables de la venta concreta: el precio que se
// cobra es independiente del precio sistema, la diferencia se informa como
// desvío. Condicion y Metodo en nil significan "sin selección".
type ParametrosVenta struct {
	PrecioVenta         float64
	PorcentajeDescuento float64
	Condicion           *CondicionComercial
	Metodo              *MetodoPago
	SumarPreciosItems   bool
}

// Resultado es el desglose completo del cálculo de un paquete.
type Resultado struct {
	CostoTotal          float64 `json:"costoTotal"`
	GastoTotal          float64 `json:"gastoTotal"`
	UtilidadBaseTotal   float64 `json:"utilidadBaseTotal"`
	PrecioSistema       float64 `json:"precioSistema"`
	Sobreprecio         float64 `json:"sobreprecio"`
	Descuento           float64 `json:"descuento"`
	ComisionVenta       float64 `json:"comisionVenta"`
	ComisionMetodoPago  float64 `json:"comisionMetodoPago"`
	GananciaNeta        float64 `json:"gananciaNeta"`
	MargenNeto          float64 `json:"margenNeto"`
	DesvioPrecioSistema float64 `json:"desvioPrecioSistema"`
	// ExtraSobreBase = ganancia neta - utilidad base total. Solo informativo.
	ExtraSobreBase float64 `json:"extraSobreBase"`
}

// UtilidadBaseItem calcula la utilidad base de un ítem: costo por el
// porcentaje de utilidad que corresponde a su tipo.
func UtilidadBaseItem(costo float64, tipo TipoUtilidad, cfg Configuracion) float64 {
	return costo * cfg.PorcentajeUtilidad(tipo)
}

// PrecioPublicoItem deriva el precio público de un ítem del catálogo.
// La comisión de venta se resuelve como fracción del precio final, no del
// subtotal: precio × comisión = monto de comisión. El sobreprecio NO aplica
// a nivel ítem, solo al precio sistema del paquete.
func PrecioPublicoItem(costo, gasto float64, tipo TipoUtilidad, cfg Configuracion) (float64, error) {
	if err := cfg.Validar(); err != nil {
		return 0, err
	}
	utilidad := UtilidadBaseItem(costo, tipo, cfg)
	subtotal := costo + gasto + utilidad
	return subtotal / (1 - cfg.PorcentajeComisionVenta), nil
}

// CalcularPaquete calcula el desglose completo de un paquete de ítems.
// Función pura: mismas entradas, mismo resultado; sin estado compartido,
// segura para llamadas concurrentes. Un paquete vacío es válido y devuelve
// todos los totales en cero (se usa mientras se arma el paquete en vivo).
//
// El descuento mayor al sobreprecio configurado no es un error: el faltante
// se come la utilidad base y se refleja en el margen neto. La validación de
// políticas comerciales es responsabilidad de quien llama.
func CalcularPaquete(items []ItemCalculo, cfg Configuracion, venta ParametrosVenta) (Resultado, error) {
	if err := cfg.Validar(); err != nil {
		return Resultado{}, err
	}

	var r Resultado
	var sumaPrecios float64
	for _, it := range items {
		qty := float64(it.Cantidad)
		r.CostoTotal += it.Costo * qty
		r.GastoTotal += it.Gasto * qty
		r.UtilidadBaseTotal += it.UtilidadBase * qty
		sumaPrecios += it.PrecioPublico * qty
	}

	if venta.SumarPreciosItems {
		// Suma directa de precios públicos, sin volver a aplicar sobreprecio.
		r.PrecioSistema = sumaPrecios
	} else {
		subtotal := r.CostoTotal + r.GastoTotal + r.UtilidadBaseTotal
		base := subtotal / (1 - cfg.PorcentajeComisionVenta)
		r.Sobreprecio = base * cfg.PorcentajeSobreprecio
		r.PrecioSistema = base + r.Sobreprecio
	}

	precioVenta := venta.PrecioVenta
	r.Descuento = precioVenta * venta.PorcentajeDescuento
	r.ComisionVenta = precioVenta * cfg.PorcentajeComisionVenta

	// La comisión del método de pago solo aplica si hay método seleccionado
	// y la condición comercial (si hay una) lo permite. Un método no
	// permitido equivale a no haber seleccionado ninguno.
	if venta.Metodo != nil {
		if venta.Condicion == nil || venta.Condicion.PermiteMetodo(venta.Metodo.ID) {
			r.ComisionMetodoPago = precioVenta * venta.Metodo.PorcentajeComision
		}
	}

	r.GananciaNeta = precioVenta - r.Descuento - r.CostoTotal - r.GastoTotal - r.ComisionVenta - r.ComisionMetodoPago
	if precioVenta > 0 {
		r.MargenNeto = (r.GananciaNeta / precioVenta) * 100
	}
	r.DesvioPrecioSistema = precioVenta - r.PrecioSistema
	r.ExtraSobreBase = r.GananciaNeta - r.UtilidadBaseTotal

	return r, nil
}
