// internal/paquete/dto.go
package paquete

// ServicioDTO es una línea del paquete en los payloads de entrada.
type ServicioDTO struct {
	ItemCatalogoID uint `json:"itemCatalogoId"`
	Cantidad       int  `json:"cantidad"`
}

// PaqueteDTO es el payload de alta/edición de un paquete.
type PaqueteDTO struct {
	Nombre              string        `json:"nombre"`
	PrecioVenta         float64       `json:"precioVenta"`
	PorcentajeDescuento float64       `json:"porcentajeDescuento"`
	SumarPreciosItems   bool          `json:"sumarPreciosItems"`
	CondicionID         *uint         `json:"condicionId"`
	MetodoPagoID        *uint         `json:"metodoPagoId"`
	Servicios           []ServicioDTO `json:"servicios"`
}

// CotizacionDTO es el payload del preview ad-hoc: los mismos parámetros de
// venta pero sin necesidad de un paquete persistido.
type CotizacionDTO struct {
	PrecioVenta         float64       `json:"precioVenta"`
	PorcentajeDescuento float64       `json:"porcentajeDescuento"`
	SumarPreciosItems   bool          `json:"sumarPreciosItems"`
	CondicionID         *uint         `json:"condicionId"`
	MetodoPagoID        *uint         `json:"metodoPagoId"`
	Servicios           []ServicioDTO `json:"servicios"`
}
