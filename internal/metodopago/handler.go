// internal/metodopago/handler.go
package metodopago

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ProSocialApp/api-estudio/internal/auth"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
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

// POST /estudios/{id}/metodos-pago
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	estudioID, ok := h.estudioDeRuta(w, r)
	if !ok {
		return
	}

	var m MetodoPago
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	m.ID = 0
	m.EstudioID = estudioID

	if err := h.Repo.Create(&m); err != nil {
		http.Error(w, "Error al crear el método de pago", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(m)
}

// GET /estudios/{id}/metodos-pago
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	estudioID, ok := h.estudioDeRuta(w, r)
	if !ok {
		return
	}
	ms, err := h.Repo.FindByEstudio(estudioID)
	if err != nil {
		http.Error(w, "Error al listar los métodos de pago", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ms)
}

// PUT /estudios/{id}/metodos-pago/{metodoId}
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	estudioID, ok := h.estudioDeRuta(w, r)
	if !ok {
		return
	}
	metodoID, err := strconv.Atoi(mux.Vars(r)["metodoId"])
	if err != nil {
		http.Error(w, "ID de método inválido", http.StatusBadRequest)
		return
	}

	m, err := h.Repo.FindByID(estudioID, uint(metodoID))
	if err != nil {
		http.Error(w, "Método de pago no encontrado", http.StatusNotFound)
		return
	}

	var payload MetodoPago
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	m.Nombre = payload.Nombre
	m.PorcentajeComision = payload.PorcentajeComision
	m.Activo = payload.Activo

	if err := h.Repo.Update(m); err != nil {
		http.Error(w, "Error al actualizar el método de pago", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(m)
}

// DELETE /estudios/{id}/metodos-pago/{metodoId}
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	estudioID, ok := h.estudioDeRuta(w, r)
	if !ok {
		return
	}
	metodoID, err := strconv.Atoi(mux.Vars(r)["metodoId"])
	if err != nil {
		http.Error(w, "ID de método inválido", http.StatusBadRequest)
		return
	}

	m, err := h.Repo.FindByID(estudioID, uint(metodoID))
	if err != nil {
		http.Error(w, "Método de pago no encontrado", http.StatusNotFound)
		return
	}
	if err := h.Repo.Delete(m); err != nil {
		http.Error(w, "Error al eliminar el método de pago", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
