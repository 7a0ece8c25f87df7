// internal/usuario/model.go
package usuario

import (
	"time"
)

type Usuario struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Nombre     string    `gorm:"size:100;not null" json:"nombre"`
	Apellido   string    `gorm:"size:100;not null" json:"apellido"`
	Email      string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Contrasena string    `gorm:"size:255;not null" json:"-"` // no se expone en JSON
	Telefono   string    `gorm:"size:20" json:"telefono"`
	Foto       string    `gorm:"size:255" json:"foto"`
	EstudioID  uint      `gorm:"not null;index" json:"estudioId"`
	EsAdmin    bool      `gorm:"default:false" json:"esAdmin"`
	// Se marca cuando un admin restablece la contraseña con una temporal
	DebeCambiarContrasena bool `gorm:"default:false" json:"debeCambiarContrasena"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
