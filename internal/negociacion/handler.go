// internal/negociacion/handler.go
package negociacion

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ProSocialApp/api-estudio/internal/auth"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// negociacionDTO es el payload de alta/edición de un lead.
type negociacionDTO struct {
	Nombre    string `json:"nombre"`
	Contacto  string `json:"contacto"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
	Etapa     string `json:"etapa"`
	PaqueteID *uint  `json:"paqueteId"`
}

// moverDTO es el payload de PATCH /negociaciones/{id}/mover.
type moverDTO struct {
	Etapa    string `json:"etapa"`
	Posicion int    `json:"posicion"`
}

// Handler gestiona el tablero de negociaciones del estudio.
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

func (h *Handler) negociacionAutorizada(w http.ResponseWriter, r *http.Request) (*Negociacion, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de negociación inválido", http.StatusBadRequest)
		return nil, false
	}
	estudioID := auth.EstudioDesdeContexto(r.Context())
	n, err := h.Repo.FindByID(estudioID, uint(id))
	if err != nil {
		http.Error(w, "Negociación no encontrada", http.StatusNotFound)
		return nil, false
	}
	return n, true
}

// POST /negociaciones
// La tarjeta nueva entra al final de su columna.
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var dto negociacionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	etapa := dto.Etapa
	if etapa == "" {
		etapa = EtapaNuevo
	}
	if !EsEtapaValida(etapa) {
		http.Error(w, "Etapa inválida", http.StatusBadRequest)
		return
	}

	estudioID := auth.EstudioDesdeContexto(r.Context())
	total, err := h.Repo.ContarEnEtapa(estudioID, etapa)
	if err != nil {
		http.Error(w, "Error al crear la negociación", http.StatusInternalServerError)
		return
	}

	n := Negociacion{
		EstudioID: estudioID,
		Nombre:    dto.Nombre,
		Contacto:  dto.Contacto,
		Telefono:  dto.Telefono,
		Email:     dto.Email,
		Etapa:     etapa,
		Posicion:  int(total),
		PaqueteID: dto.PaqueteID,
	}
	if err := h.Repo.Create(&n); err != nil {
		http.Error(w, "Error al crear la negociación", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(n)
}

// GET /negociaciones
// Acepta un query param opcional `etapa` para traer una sola columna.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	estudioID := auth.EstudioDesdeContexto(r.Context())
	etapa := r.URL.Query().Get("etapa")

	var list []Negociacion
	var err error
	if etapa != "" {
		list, err = h.Repo.FindByEstudioYEtapa(estudioID, etapa)
	} else {
		list, err = h.Repo.FindByEstudio(estudioID)
	}
	if err != nil {
		http.Error(w, "Error al listar las negociaciones", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GET /negociaciones/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	n, ok := h.negociacionAutorizada(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(n)
}

// PUT /negociaciones/{id}
// Edita los datos del lead; la columna/posición se cambian con /mover.
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	n, ok := h.negociacionAutorizada(w, r)
	if !ok {
		return
	}

	var dto negociacionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	n.Nombre = dto.Nombre
	n.Contacto = dto.Contacto
	n.Telefono = dto.Telefono
	n.Email = dto.Email
	n.PaqueteID = dto.PaqueteID

	if err := h.Repo.Update(n); err != nil {
		http.Error(w, "Error al actualizar la negociación", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(n)
}

// PATCH /negociaciones/{id}/mover
func (h *Handler) Mover(w http.ResponseWriter, r *http.Request) {
	n, ok := h.negociacionAutorizada(w, r)
	if !ok {
		return
	}

	var dto moverDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if !EsEtapaValida(dto.Etapa) {
		http.Error(w, "Etapa inválida", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Mover(n, dto.Etapa, dto.Posicion); err != nil {
		http.Error(w, "Error al mover la negociación", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(n)
}

// DELETE /negociaciones/{id}
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	n, ok := h.negociacionAutorizada(w, r)
	if !ok {
		return
	}
	if err := h.Repo.Delete(n); err != nil {
		http.Error(w, "Error al eliminar la negociación", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
