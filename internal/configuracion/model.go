// internal/configuracion/model.go
package configuracion

import (
	"time"

	"github.com/ProSocialApp/api-estudio/internal/precios"
	"gorm.io/gorm"
)

// ConfiguracionPrecios guarda los porcentajes globales de precios del estudio.
// Todos los valores son fracciones (0.30 = 30%). Una fila por estudio.
type ConfiguracionPrecios struct {
	ID                         uint      `gorm:"primaryKey" json:"id"`
	EstudioID                  uint      `gorm:"not null;uniqueIndex" json:"estudioId"`
	PorcentajeUtilidadServicio float64   `gorm:"not null;default:0" json:"porcentajeUtilidadServicio"`
	PorcentajeUtilidadProducto float64   `gorm:"not null;default:0" json:"porcentajeUtilidadProducto"`
	PorcentajeComisionVenta    float64   `gorm:"not null;default:0" json:"porcentajeComisionVenta"`
	PorcentajeSobreprecio      float64   `gorm:"not null;default:0" json:"porcentajeSobreprecio"`
	CreatedAt                  time.Time `json:"createdAt"`
	UpdatedAt                  time.Time `json:"updatedAt"`
}

// AConfiguracion convierte la fila persistida al valor que consume el
// calculador de precios.
func (c ConfiguracionPrecios) AConfiguracion() precios.Configuracion {
	return precios.Configuracion{
		PorcentajeUtilidadServicio: c.PorcentajeUtilidadServicio,
		PorcentajeUtilidadProducto: c.PorcentajeUtilidadProducto,
		PorcentajeComisionVenta:    c.PorcentajeComisionVenta,
		PorcentajeSobreprecio:      c.PorcentajeSobreprecio,
	}
}

// Migrate crea la tabla en la base de datos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ConfiguracionPrecios{})
}
