// internal/condicioncomercial/repository.go
package condicioncomercial

import (
	"github.com/ProSocialApp/api-estudio/internal/metodopago"
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(c *CondicionComercial) error {
	return r.DB.Create(c).Error
}

func (r *Repository) FindByEstudio(estudioID uint) ([]CondicionComercial, error) {
	var list []CondicionComercial
	err := r.DB.Preload("MetodosPermitidos").Where("estudio_id = ?", estudioID).Find(&list).Error
	return list, err
}

func (r *Repository) FindByID(estudioID, id uint) (*CondicionComercial, error) {
	var c CondicionComercial
	if err := r.DB.Preload("MetodosPermitidos").Where("estudio_id = ?", estudioID).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Update(c *CondicionComercial) error {
	return r.DB.Save(c).Error
}

// ReemplazarMetodos reemplaza el conjunto de métodos permitidos.
func (r *Repository) ReemplazarMetodos(c *CondicionComercial, metodos []metodopago.MetodoPago) error {
	return r.DB.Model(c).Association("MetodosPermitidos").Replace(metodos)
}

func (r *Repository) Delete(c *CondicionComercial) error {
	return r.DB.Delete(c).Error
}
