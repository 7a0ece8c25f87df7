// internal/catalogo/repository.go
package catalogo

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(item *ItemCatalogo) error {
	return r.DB.Create(item).Error
}

// FindByEstudio devuelve el catálogo completo de un estudio.
func (r *Repository) FindByEstudio(estudioID uint) ([]ItemCatalogo, error) {
	var items []ItemCatalogo
	err := r.DB.Where("estudio_id = ?", estudioID).Order("nombre").Find(&items).Error
	return items, err
}

func (r *Repository) FindByID(estudioID, id uint) (*ItemCatalogo, error) {
	var item ItemCatalogo
	if err := r.DB.Where("estudio_id = ?", estudioID).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByIDs resuelve un conjunto de ítems del estudio (para armar paquetes).
func (r *Repository) FindByIDs(estudioID uint, ids []uint) ([]ItemCatalogo, error) {
	var items []ItemCatalogo
	err := r.DB.Where("estudio_id = ? AND id IN ?", estudioID, ids).Find(&items).Error
	return items, err
}

func (r *Repository) Update(item *ItemCatalogo) error {
	return r.DB.Save(item).Error
}

func (r *Repository) Delete(item *ItemCatalogo) error {
	return r.DB.Delete(item).Error
}
