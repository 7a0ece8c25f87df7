// internal/paquete/model.go
package paquete

import (
	"time"

	"gorm.io/gorm"
)

// Paquete es un conjunto de ítems del catálogo que se vende a un precio
// propio. El precio de venta es una variable independiente: el desglose de
// la última cotización queda guardado como snapshot para el tablero.
type Paquete struct {
	gorm.Model

	EstudioID uint   `gorm:"not null;index" json:"estudioId"`
	Nombre    string `gorm:"size:255;not null" json:"nombre"`

	PrecioVenta         float64 `gorm:"not null;default:0" json:"precioVenta"`
	PorcentajeDescuento float64 `gorm:"not null;default:0" json:"porcentajeDescuento"`
	SumarPreciosItems   bool    `gorm:"not null;default:false" json:"sumarPreciosItems"`
	CondicionID         *uint   `json:"condicionId"`
	MetodoPagoID        *uint   `json:"metodoPagoId"`

	Servicios []ServicioPaquete `gorm:"foreignKey:PaqueteID;constraint:OnDelete:CASCADE" json:"servicios"`

	// Snapshot de la última cotización persistida
	PrecioSistema float64    `gorm:"not null;default:0" json:"precioSistema"`
	GananciaNeta  float64    `gorm:"not null;default:0" json:"gananciaNeta"`
	MargenNeto    float64    `gorm:"not null;default:0" json:"margenNeto"`
	CotizadoEn    *time.Time `json:"cotizadoEn"`
}

// ServicioPaquete es una línea del paquete: referencia a un ítem del
// catálogo con su cantidad.
type ServicioPaquete struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	PaqueteID      uint `gorm:"not null;index" json:"paqueteId"`
	ItemCatalogoID uint `gorm:"not null;index" json:"itemCatalogoId"`
	Cantidad       int  `gorm:"not null;default:1" json:"cantidad"`
}

// Migrate crea las tablas en la base de datos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Paquete{}, &ServicioPaquete{})
}
