// internal/negociacion/repository.go
package negociacion

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(n *Negociacion) error {
	return r.DB.Create(n).Error
}

// FindByEstudio devuelve el tablero completo ordenado por columna y posición.
func (r *Repository) FindByEstudio(estudioID uint) ([]Negociacion, error) {
	var list []Negociacion
	err := r.DB.
		Preload("Comentarios").
		Where("estudio_id = ?", estudioID).
		Order("etapa, posicion").
		Find(&list).Error
	return list, err
}

// FindByEstudioYEtapa filtra una sola columna del tablero.
func (r *Repository) FindByEstudioYEtapa(estudioID uint, etapa string) ([]Negociacion, error) {
	var list []Negociacion
	err := r.DB.
		Where("estudio_id = ? AND etapa = ?", estudioID, etapa).
		Order("posicion").
		Find(&list).Error
	return list, err
}

func (r *Repository) FindByID(estudioID, id uint) (*Negociacion, error) {
	var n Negociacion
	if err := r.DB.Preload("Comentarios").Where("estudio_id = ?", estudioID).First(&n, id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *Repository) Update(n *Negociacion) error {
	return r.DB.Save(n).Error
}

func (r *Repository) Delete(n *Negociacion) error {
	return r.DB.Delete(n).Error
}

// ContarEnEtapa cuenta las tarjetas de una columna.
func (r *Repository) ContarEnEtapa(estudioID uint, etapa string) (int64, error) {
	var total int64
	err := r.DB.Model(&Negociacion{}).
		Where("estudio_id = ? AND etapa = ?", estudioID, etapa).
		Count(&total).Error
	return total, err
}

// Mover cambia la tarjeta de columna y/o posición reacomodando ambas
// columnas en una transacción: cierra el hueco en la columna de origen y
// abre uno en la de destino.
func (r *Repository) Mover(n *Negociacion, etapa string, posicion int) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		// Cierra el hueco en la columna de origen
		if err := tx.Model(&Negociacion{}).
			Where("estudio_id = ? AND etapa = ? AND posicion > ?", n.EstudioID, n.Etapa, n.Posicion).
			UpdateColumn("posicion", gorm.Expr("posicion - 1")).Error; err != nil {
			return err
		}

		var total int64
		if err := tx.Model(&Negociacion{}).
			Where("estudio_id = ? AND etapa = ? AND id <> ?", n.EstudioID, etapa, n.ID).
			Count(&total).Error; err != nil {
			return err
		}
		destino := clampPosicion(posicion, int(total))

		// Abre el hueco en la columna de destino
		if err := tx.Model(&Negociacion{}).
			Where("estudio_id = ? AND etapa = ? AND id <> ? AND posicion >= ?", n.EstudioID, etapa, n.ID, destino).
			UpdateColumn("posicion", gorm.Expr("posicion + 1")).Error; err != nil {
			return err
		}

		n.Etapa = etapa
		n.Posicion = destino
		return tx.Model(n).Updates(map[string]interface{}{
			"etapa":    etapa,
			"posicion": destino,
		}).Error
	})
}
