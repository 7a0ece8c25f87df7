package comentario

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ProSocialApp/api-estudio/internal/auth"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type crearComentarioDTO struct {
	Texto string `json:"texto"`
}

// VerificadorNegociacion resuelve si una negociación pertenece a un estudio.
type VerificadorNegociacion interface {
	PerteneceAlEstudio(negID, estudioID uint) (bool, error)
}

type Handler struct {
	Repo          *Repository
	Negociaciones VerificadorNegociacion
}

func NewHandler(db *gorm.DB) *Handler {
	repo := NewRepository(db)
	return &Handler{Repo: repo, Negociaciones: repo}
}

// negociacionDelEstudio toma el ID de la ruta y lo valida contra el estudio
// del token: las negociaciones de otros estudios responden como inexistentes.
func (h *Handler) negociacionDelEstudio(w http.ResponseWriter, r *http.Request) (uint, bool) {
	negID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de negociación inválido", http.StatusBadRequest)
		return 0, false
	}
	ok, err := h.Negociaciones.PerteneceAlEstudio(uint(negID), auth.EstudioDesdeContexto(r.Context()))
	if err != nil {
		http.Error(w, "Error al verificar la negociación", http.StatusInternalServerError)
		return 0, false
	}
	if !ok {
		http.Error(w, "Negociación no encontrada", http.StatusNotFound)
		return 0, false
	}
	return uint(negID), true
}

// POST /negociaciones/{id}/comentarios
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	negID, ok := h.negociacionDelEstudio(w, r)
	if !ok {
		return
	}

	var dto crearComentarioDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.Texto == "" {
		http.Error(w, "El texto es obligatorio", http.StatusBadRequest)
		return
	}

	c := Comentario{
		Texto:         dto.Texto,
		NegociacionID: uint(negID),
		UsuarioID:     auth.UsuarioDesdeContexto(r.Context()),
	}
	if err := h.Repo.Create(&c); err != nil {
		http.Error(w, "Error al crear el comentario", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

// GET /negociaciones/{id}/comentarios
func (h *Handler) ListarPorNegociacion(w http.ResponseWriter, r *http.Request) {
	negID, ok := h.negociacionDelEstudio(w, r)
	if !ok {
		return
	}
	list, err := h.Repo.FindByNegociacion(negID)
	if err != nil {
		http.Error(w, "Error al listar los comentarios", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// PUT /comentarios/{id}
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Comentario no encontrado", http.StatusNotFound)
		return
	}

	// Solo el autor o un admin pueden editar
	if !auth.EsAdmin(r.Context()) && c.UsuarioID != auth.UsuarioDesdeContexto(r.Context()) {
		http.Error(w, "Acceso denegado", http.StatusForbidden)
		return
	}

	var dto crearComentarioDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	c.Texto = dto.Texto
	if err := h.Repo.Update(c); err != nil {
		http.Error(w, "Error al actualizar el comentario", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// DELETE /comentarios/{id}
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Comentario no encontrado", http.StatusNotFound)
		return
	}
	if !auth.EsAdmin(r.Context()) && c.UsuarioID != auth.UsuarioDesdeContexto(r.Context()) {
		http.Error(w, "Acceso denegado", http.StatusForbidden)
		return
	}
	if err := h.Repo.Delete(c); err != nil {
		http.Error(w, "Error al eliminar el comentario", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
