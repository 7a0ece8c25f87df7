// internal/estudio/handler.go
package estudio

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ProSocialApp/api-estudio/internal/auth"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type estudioDTO struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
	Logo     string `json:"logo"`
}

type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// POST /estudios (solo admin, el router aplica RequireAdmin)
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var dto estudioDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "Payload inválido", http.StatusBadRequest)
		return
	}

	e := Estudio{
		Nombre:   dto.Nombre,
		Email:    dto.Email,
		Telefono: dto.Telefono,
		Logo:     dto.Logo,
	}
	if err := h.Repo.Create(&e); err != nil {
		http.Error(w, "Error al crear el estudio", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(e)
}

// GET /estudios (solo admin)
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "Error al listar los estudios", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GET /estudios/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if !auth.EsAdmin(r.Context()) && auth.EstudioDesdeContexto(r.Context()) != uint(id) {
		http.Error(w, "Acceso denegado", http.StatusForbidden)
		return
	}

	e, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Estudio no encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(e)
}

// GET /estudios/me
// Devuelve la consola completa del estudio autenticado.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	estudioID := auth.EstudioDesdeContexto(r.Context())
	e, err := h.Repo.FindByID(estudioID)
	if err != nil {
		http.Error(w, "Estudio no encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(e)
}

// PUT /estudios/{id}
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if !auth.EsAdmin(r.Context()) && auth.EstudioDesdeContexto(r.Context()) != uint(id) {
		http.Error(w, "Acceso denegado", http.StatusForbidden)
		return
	}

	var e Estudio
	if err := h.Repo.DB.First(&e, id).Error; err != nil {
		http.Error(w, "Estudio no encontrado", http.StatusNotFound)
		return
	}

	var dto estudioDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "Payload inválido", http.StatusBadRequest)
		return
	}
	e.Nombre = dto.Nombre
	e.Email = dto.Email
	e.Telefono = dto.Telefono
	e.Logo = dto.Logo

	if err := h.Repo.Update(&e); err != nil {
		http.Error(w, "Error al actualizar el estudio", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(e)
}

// DELETE /estudios/{id} (solo admin)
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Delete(uint(id)); err != nil {
		http.Error(w, "Error al eliminar el estudio", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
