package comentario

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(c *Comentario) error {
	return r.DB.Create(c).Error
}

// PerteneceAlEstudio verifica que la negociación exista y sea del estudio.
// Consulta la tabla directamente para no importar el paquete negociacion,
// que importa a este.
func (r *Repository) PerteneceAlEstudio(negID, estudioID uint) (bool, error) {
	var total int64
	err := r.DB.Table("negociacions").
		Where("id = ? AND estudio_id = ? AND deleted_at IS NULL", negID, estudioID).
		Count(&total).Error
	return total > 0, err
}

func (r *Repository) FindByNegociacion(negID uint) ([]Comentario, error) {
	var list []Comentario
	err := r.DB.Where("negociacion_id = ?", negID).Order("created_at").Find(&list).Error
	return list, err
}

func (r *Repository) FindByID(id uint) (*Comentario, error) {
	var c Comentario
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Update(c *Comentario) error {
	return r.DB.Save(c).Error
}

func (r *Repository) Delete(c *Comentario) error {
	return r.DB.Delete(c).Error
}
