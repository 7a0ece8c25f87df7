// internal/metodopago/repository.go
package metodopago

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(m *MetodoPago) error {
	return r.DB.Create(m).Error
}

func (r *Repository) FindByEstudio(estudioID uint) ([]MetodoPago, error) {
	var ms []MetodoPago
	err := r.DB.Where("estudio_id = ?", estudioID).Find(&ms).Error
	return ms, err
}

func (r *Repository) FindByID(estudioID, id uint) (*MetodoPago, error) {
	var m MetodoPago
	if err := r.DB.Where("estudio_id = ?", estudioID).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// FindByIDs resuelve varios métodos del estudio (para las condiciones).
func (r *Repository) FindByIDs(estudioID uint, ids []uint) ([]MetodoPago, error) {
	var ms []MetodoPago
	err := r.DB.Where("estudio_id = ? AND id IN ?", estudioID, ids).Find(&ms).Error
	return ms, err
}

func (r *Repository) Update(m *MetodoPago) error {
	return r.DB.Save(m).Error
}

func (r *Repository) Delete(m *MetodoPago) error {
	return r.DB.Delete(m).Error
}
