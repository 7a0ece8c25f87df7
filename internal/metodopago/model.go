// internal/metodopago/model.go
package metodopago

import "gorm.io/gorm"

// MetodoPago es un medio de cobro del estudio con su comisión (fracción 0-1).
type MetodoPago struct {
	ID                 uint    `gorm:"primaryKey" json:"id"`
	EstudioID          uint    `gorm:"not null;index" json:"estudioId"`
	Nombre             string  `gorm:"size:255;not null" json:"nombre"`
	PorcentajeComision float64 `gorm:"not null;default:0" json:"porcentajeComision"`
	Activo             bool    `gorm:"not null;default:true" json:"activo"`
}

// Migrate crea la tabla en la base de datos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&MetodoPago{})
}
