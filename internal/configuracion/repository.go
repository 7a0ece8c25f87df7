// internal/configuracion/repository.go
package configuracion

import (
	"gorm.io/gorm"
)

// Repository encapsula el acceso a datos de la configuración de precios.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// FindByEstudio devuelve la configuración del estudio.
func (r *Repository) FindByEstudio(estudioID uint) (*ConfiguracionPrecios, error) {
	var cfg ConfiguracionPrecios
	if err := r.DB.Where("estudio_id = ?", estudioID).First(&cfg).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Upsert crea la fila del estudio si no existe o actualiza los porcentajes.
func (r *Repository) Upsert(cfg *ConfiguracionPrecios) error {
	var existente ConfiguracionPrecios
	err := r.DB.Where("estudio_id = ?", cfg.EstudioID).First(&existente).Error
	if err == gorm.ErrRecordNotFound {
		return r.DB.Create(cfg).Error
	}
	if err != nil {
		return err
	}
	cfg.ID = existente.ID
	cfg.CreatedAt = existente.CreatedAt
	return r.DB.Save(cfg).Error
}
