// internal/usuario/repository.go
package usuario

import (
	"gorm.io/gorm"
)

type Repository interface {
	FindByEmail(db *gorm.DB, email string) (*Usuario, error)
	Save(db *gorm.DB, u *Usuario) error
	ListByEstudio(db *gorm.DB, estudioID uint) ([]Usuario, error)
	FindByID(db *gorm.DB, id uint) (*Usuario, error)
	Update(db *gorm.DB, id uint, req *UpdateUsuarioRequest) error
	ActualizarContrasena(db *gorm.DB, id uint, hash string, debeCambiar bool) error
	Delete(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) FindByEmail(db *gorm.DB, email string) (*Usuario, error) {
	var u Usuario
	if err := db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) Save(db *gorm.DB, u *Usuario) error {
	return db.Create(u).Error
}

func (r *repositoryImpl) ListByEstudio(db *gorm.DB, estudioID uint) ([]Usuario, error) {
	var list []Usuario
	err := db.Where("estudio_id = ?", estudioID).Find(&list).Error
	return list, err
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*Usuario, error) {
	var u Usuario
	err := db.First(&u, id).Error
	return &u, err
}

func (r *repositoryImpl) Update(db *gorm.DB, id uint, req *UpdateUsuarioRequest) error {
	var u Usuario
	if err := db.First(&u, id).Error; err != nil {
		return err
	}
	if req.Nombre != nil {
		u.Nombre = *req.Nombre
	}
	if req.Apellido != nil {
		u.Apellido = *req.Apellido
	}
	if req.Telefono != nil {
		u.Telefono = *req.Telefono
	}
	if req.Foto != nil {
		u.Foto = *req.Foto
	}
	return db.Save(&u).Error
}

func (r *repositoryImpl) ActualizarContrasena(db *gorm.DB, id uint, hash string, debeCambiar bool) error {
	return db.Model(&Usuario{}).Where("id = ?", id).Updates(map[string]interface{}{
		"contrasena":              hash,
		"debe_cambiar_contrasena": debeCambiar,
	}).Error
}

func (r *repositoryImpl) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&Usuario{}, id).Error
}
