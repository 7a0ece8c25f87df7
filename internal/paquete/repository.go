// internal/paquete/repository.go
package paquete

import (
	"time"

	"github.com/ProSocialApp/api-estudio/internal/precios"
	"gorm.io/gorm"
)

// Repository encapsula el acceso a datos de paquetes y sus líneas.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// WithDB devuelve una copia del repo usando un *gorm.DB específico (ej.: tx).
func (r *Repository) WithDB(db *gorm.DB) *Repository {
	if db == nil {
		db = r.DB
	}
	return &Repository{DB: db}
}

func (r *Repository) Create(p *Paquete) error {
	return r.DB.Create(p).Error
}

func (r *Repository) FindByEstudio(estudioID uint) ([]Paquete, error) {
	var list []Paquete
	err := r.DB.Preload("Servicios").Where("estudio_id = ?", estudioID).Find(&list).Error
	return list, err
}

func (r *Repository) FindByID(estudioID, id uint) (*Paquete, error) {
	var p Paquete
	if err := r.DB.Preload("Servicios").Where("estudio_id = ?", estudioID).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Update(p *Paquete) error {
	return r.DB.Save(p).Error
}

func (r *Repository) Delete(p *Paquete) error {
	return r.DB.Delete(p).Error
}

// ReemplazarServicios borra las líneas actuales y crea las nuevas. Se usa
// dentro de una transacción junto con el update del paquete.
func (r *Repository) ReemplazarServicios(paqueteID uint, servicios []ServicioPaquete) error {
	if err := r.DB.Where("paquete_id = ?", paqueteID).Delete(&ServicioPaquete{}).Error; err != nil {
		return err
	}
	if len(servicios) == 0 {
		return nil
	}
	for i := range servicios {
		servicios[i].ID = 0
		servicios[i].PaqueteID = paqueteID
	}
	return r.DB.Create(&servicios).Error
}

// GuardarCotizacion persiste el snapshot del último cálculo sobre el paquete.
func (r *Repository) GuardarCotizacion(id uint, res precios.Resultado) error {
	ahora := time.Now()
	return r.DB.Model(&Paquete{}).Where("id = ?", id).Updates(map[string]interface{}{
		"precio_sistema": res.PrecioSistema,
		"ganancia_neta":  res.GananciaNeta,
		"margen_neto":    res.MargenNeto,
		"cotizado_en":    &ahora,
	}).Error
}
