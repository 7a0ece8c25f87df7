// internal/estudio/repository.go
package estudio

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(e *Estudio) error {
	return r.DB.Create(e).Error
}

func (r *Repository) ListAll() ([]Estudio, error) {
	var list []Estudio
	err := r.DB.Preload("Configuracion").Find(&list).Error
	return list, err
}

// FindByID carga el estudio con su consola completa: configuración,
// catálogo, métodos, condiciones (con sus métodos) y paquetes.
func (r *Repository) FindByID(id uint) (*Estudio, error) {
	var e Estudio
	err := r.DB.
		Preload("Configuracion").
		Preload("Catalogo").
		Preload("MetodosPago").
		Preload("Condiciones").
		Preload("Condiciones.MetodosPermitidos").
		Preload("Paquetes").
		Preload("Paquetes.Servicios").
		First(&e, id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository) Update(e *Estudio) error {
	return r.DB.Save(e).Error
}

func (r *Repository) Delete(id uint) error {
	return r.DB.Delete(&Estudio{}, id).Error
}
