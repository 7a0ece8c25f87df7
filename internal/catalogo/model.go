// internal/catalogo/model.go
package catalogo

import (
	"time"

	"github.com/ProSocialApp/api-estudio/internal/precios"
	"gorm.io/gorm"
)

// ItemCatalogo es un servicio o producto del catálogo del estudio.
// PrecioPublico se deriva de la configuración de precios al guardar y queda
// almacenado para que los paquetes puedan sumar precios sin recalcular.
type ItemCatalogo struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	EstudioID     uint    `gorm:"not null;index" json:"estudioId"`
	Nombre        string  `gorm:"size:255;not null" json:"nombre"`
	Costo         float64 `gorm:"not null;default:0" json:"costo"`
	Gasto         float64 `gorm:"not null;default:0" json:"gasto"`
	TipoUtilidad  string  `gorm:"size:50;not null;default:'Servicio'" json:"tipoUtilidad"` // "Servicio" | "Producto"
	PrecioPublico float64 `gorm:"not null;default:0" json:"precioPublico"`
	Activo        bool    `gorm:"not null;default:true" json:"activo"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Tipo devuelve el tipo de utilidad como lo entiende el calculador.
func (i ItemCatalogo) Tipo() precios.TipoUtilidad {
	if i.TipoUtilidad == string(precios.TipoProducto) {
		return precios.TipoProducto
	}
	return precios.TipoServicio
}

// Migrate crea la tabla en la base de datos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ItemCatalogo{})
}
