package comentario

import "gorm.io/gorm"

type Comentario struct {
	gorm.Model
	Texto         string `json:"texto"`
	NegociacionID uint   `gorm:"not null;index" json:"negociacionId"`
	UsuarioID     uint   `gorm:"index" json:"usuarioId"`
}

// Migrate crea la tabla en la base de datos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Comentario{})
}
