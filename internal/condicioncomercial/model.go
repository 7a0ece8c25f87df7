// internal/condicioncomercial/model.go
package condicioncomercial

import (
	"errors"
	"time"

	"github.com/ProSocialApp/api-estudio/internal/metodopago"
	"github.com/ProSocialApp/api-estudio/internal/precios"
	"gorm.io/gorm"
)

// ErrDescuentoExcedeSobreprecio se devuelve al intentar guardar una condición
// cuyo descuento supera el sobreprecio configurado del estudio. El sobreprecio
// existe para absorber descuentos sin caer debajo del precio sistema; una
// condición persistida que lo supere produce ventas con margen negativo.
var ErrDescuentoExcedeSobreprecio = errors.New("el descuento de la condición supera el sobreprecio configurado")

// CondicionComercial agrupa un descuento con los métodos de pago habilitados.
type CondicionComercial struct {
	ID                  uint                    `gorm:"primaryKey" json:"id"`
	EstudioID           uint                    `gorm:"not null;index" json:"estudioId"`
	Nombre              string                  `gorm:"size:255;not null" json:"nombre"`
	PorcentajeDescuento float64                 `gorm:"not null;default:0" json:"porcentajeDescuento"`
	Activa              bool                    `gorm:"not null;default:true" json:"activa"`
	MetodosPermitidos   []metodopago.MetodoPago `gorm:"many2many:condicion_metodos;" json:"metodosPermitidos"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// ValidarDescuento rechaza un descuento que supera el sobreprecio disponible.
// La validación vive acá, en el borde de persistencia: el calculador de
// precios nunca rechaza descuentos (un descuento ad-hoc excedido es un
// resultado numérico válido que se refleja en el margen neto).
func ValidarDescuento(descuento, sobreprecio float64) error {
	if descuento < 0 {
		return errors.New("el descuento no puede ser negativo")
	}
	if descuento > sobreprecio {
		return ErrDescuentoExcedeSobreprecio
	}
	return nil
}

// ACondicion convierte la fila persistida al valor que consume el calculador.
func (c CondicionComercial) ACondicion() precios.CondicionComercial {
	ids := make([]uint, 0, len(c.MetodosPermitidos))
	for _, m := range c.MetodosPermitidos {
		ids = append(ids, m.ID)
	}
	return precios.CondicionComercial{
		PorcentajeDescuento: c.PorcentajeDescuento,
		MetodosPermitidos:   ids,
	}
}

// Migrate crea la tabla y la tabla de unión en la base de datos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&CondicionComercial{})
}
