// internal/condicioncomercial/handler.go
package condicioncomercial

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ProSocialApp/api-estudio/internal/auth"
	"github.com/ProSocialApp/api-estudio/internal/configuracion"
	"github.com/ProSocialApp/api-estudio/internal/metodopago"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// CondicionDTO es el payload de alta/edición de una condición comercial.
type CondicionDTO struct {
	Nombre              string  `json:"nombre"`
	PorcentajeDescuento float64 `json:"porcentajeDescuento"`
	Activa              *bool   `json:"activa,omitempty"`
	MetodoIDs           []uint  `json:"metodoIds"`
}

type Handler struct {
	Repo       *Repository
	MetodoRepo *metodopago.Repository
	ConfigRepo *configuracion.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		Repo:       NewRepository(db),
		MetodoRepo: metodopago.NewRepository(db),
		ConfigRepo: configuracion.NewRepository(db),
	}
}

func (h *Handler) estudioDeRuta(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de estudio inválido", http.StatusBadRequest)
		return 0, false
	}
	if !auth.EsAdmin(r.Context()) && auth.EstudioDesdeContexto(r.Context()) != uint(id) {
		http.Error(w, "Acceso denegado", http.StatusForbidden)
		return 0, false
	}
	return uint(id), true
}

// validarContraConfiguracion aplica el tope de descuento del estudio.
func (h *Handler) validarContraConfiguracion(estudioID uint, descuento float64) error {
	cfg, err := h.ConfigRepo.FindByEstudio(estudioID)
	if err != nil {
		return err
	}
	return ValidarDescuento(descuento, cfg.PorcentajeSobreprecio)
}

// POST /estudios/{id}/condiciones
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	estudioID, ok := h.estudioDeRuta(w, r)
	if !ok {
		return
	}

	var dto CondicionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	if err := h.validarContraConfiguracion(estudioID, dto.PorcentajeDescuento); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "El estudio no tiene configuración de precios", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	metodos, err := h.MetodoRepo.FindByIDs(estudioID, dto.MetodoIDs)
	if err != nil {
		http.Error(w, "Error al resolver los métodos de pago", http.StatusInternalServerError)
		return
	}

	c := CondicionComercial{
		EstudioID:           estudioID,
		Nombre:              dto.Nombre,
		PorcentajeDescuento: dto.PorcentajeDescuento,
		Activa:              true,
		MetodosPermitidos:   metodos,
	}
	if dto.Activa != nil {
		c.Activa = *dto.Activa
	}

	if err := h.Repo.Create(&c); err != nil {
		http.Error(w, "Error al crear la condición", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

// GET /estudios/{id}/condiciones
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	estudioID, ok := h.estudioDeRuta(w, r)
	if !ok {
		return
	}
	list, err := h.Repo.FindByEstudio(estudioID)
	if err != nil {
		http.Error(w, "Error al listar las condiciones", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GET /estudios/{id}/condiciones/{condId}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	estudioID, ok := h.estudioDeRuta(w, r)
	if !ok {
		return
	}
	condID, err := strconv.Atoi(mux.Vars(r)["condId"])
	if err != nil {
		http.Error(w, "ID de condición inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repo.FindByID(estudioID, uint(condID))
	if err != nil {
		http.Error(w, "Condición no encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// PUT /estudios/{id}/condiciones/{condId}
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	estudioID, ok := h.estudioDeRuta(w, r)
	if !ok {
		return
	}
	condID, err := strconv.Atoi(mux.Vars(r)["condId"])
	if err != nil {
		http.Error(w, "ID de condición inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repo.FindByID(estudioID, uint(condID))
	if err != nil {
		http.Error(w, "Condición no encontrada", http.StatusNotFound)
		return
	}

	var dto CondicionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	if err := h.validarContraConfiguracion(estudioID, dto.PorcentajeDescuento); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	c.Nombre = dto.Nombre
	c.PorcentajeDescuento = dto.PorcentajeDescuento
	if dto.Activa != nil {
		c.Activa = *dto.Activa
	}
	if err := h.Repo.Update(c); err != nil {
		http.Error(w, "Error al actualizar la condición", http.StatusInternalServerError)
		return
	}

	if dto.MetodoIDs != nil {
		metodos, err := h.MetodoRepo.FindByIDs(estudioID, dto.MetodoIDs)
		if err != nil {
			http.Error(w, "Error al resolver los métodos de pago", http.StatusInternalServerError)
			return
		}
		if err := h.Repo.ReemplazarMetodos(c, metodos); err != nil {
			http.Error(w, "Error al actualizar los métodos permitidos", http.StatusInternalServerError)
			return
		}
		c.MetodosPermitidos = metodos
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// DELETE /estudios/{id}/condiciones/{condId}
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	estudioID, ok := h.estudioDeRuta(w, r)
	if !ok {
		return
	}
	condID, err := strconv.Atoi(mux.Vars(r)["condId"])
	if err != nil {
		http.Error(w, "ID de condición inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repo.FindByID(estudioID, uint(condID))
	if err != nil {
		http.Error(w, "Condición no encontrada", http.StatusNotFound)
		return
	}
	if err := h.Repo.Delete(c); err != nil {
		http.Error(w, "Error al eliminar la condición", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
