// internal/negociacion/model.go
package negociacion

import (
	"time"

	"github.com/ProSocialApp/api-estudio/internal/comentario"
	"gorm.io/gorm"
)

// Etapas del tablero, en orden de avance.
const (
	EtapaNuevo       = "Nuevo"
	EtapaSeguimiento = "Seguimiento"
	EtapaPropuesta   = "Propuesta"
	EtapaCerrado     = "Cerrado"
	EtapaPerdido     = "Perdido"
)

// EsEtapaValida informa si la etapa pertenece al tablero.
func EsEtapaValida(etapa string) bool {
	switch etapa {
	case EtapaNuevo, EtapaSeguimiento, EtapaPropuesta, EtapaCerrado, EtapaPerdido:
		return true
	}
	return false
}

// Negociacion es un lead del tablero del estudio. Etapa y Posicion definen
// la columna y el orden dentro de la columna; mover una tarjeta reacomoda
// las posiciones de ambas columnas en una transacción.
type Negociacion struct {
	ID        uint           `gorm:"primaryKey" json:"negociacionId"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	EstudioID uint   `gorm:"not null;index" json:"estudioId"`
	Nombre    string `gorm:"size:255;not null" json:"nombre"`
	Contacto  string `gorm:"size:255" json:"contacto"`
	Telefono  string `gorm:"size:50" json:"telefono"`
	Email     string `gorm:"size:255" json:"email"`

	Etapa    string `gorm:"size:50;not null;default:'Nuevo';index" json:"etapa"`
	Posicion int    `gorm:"not null;default:0" json:"posicion"`

	// Paquete ofrecido al lead, si ya hay una propuesta armada
	PaqueteID *uint `json:"paqueteId"`

	Comentarios []comentario.Comentario `gorm:"foreignKey:NegociacionID" json:"comentarios"`
}

// Migrate crea la tabla en la base de datos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Negociacion{})
}
