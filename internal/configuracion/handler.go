// internal/configuracion/handler.go
package configuracion

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ProSocialApp/api-estudio/internal/auth"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// UpdateConfiguracionDTO es el payload de PUT /estudios/{id}/configuracion.
type UpdateConfiguracionDTO struct {
	PorcentajeUtilidadServicio float64 `json:"porcentajeUtilidadServicio"`
	PorcentajeUtilidadProducto float64 `json:"porcentajeUtilidadProducto"`
	PorcentajeComisionVenta    float64 `json:"porcentajeComisionVenta"`
	PorcentajeSobreprecio      float64 `json:"porcentajeSobreprecio"`
}

type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

func estudioAutorizado(r *http.Request) (uint, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return 0, false
	}
	if !auth.EsAdmin(r.Context()) && auth.EstudioDesdeContexto(r.Context()) != uint(id) {
		return 0, false
	}
	return uint(id), true
}

// GET /estudios/{id}/configuracion
func (h *Handler) Obtener(w http.ResponseWriter, r *http.Request) {
	estudioID, ok := estudioAutorizado(r)
	if !ok {
		http.Error(w, "Acceso denegado", http.StatusForbidden)
		return
	}

	cfg, err := h.Repo.FindByEstudio(estudioID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "El estudio todavía no tiene configuración de precios", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Error al buscar la configuración", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(cfg)
}

// PUT /estudios/{id}/configuracion
// Es el único punto del dominio que rechaza datos por validez aritmética:
// una comisión fuera de [0, 1) dejaría indefinido el precio sistema.
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	estudioID, ok := estudioAutorizado(r)
	if !ok {
		http.Error(w, "Acceso denegado", http.StatusForbidden)
		return
	}

	var dto UpdateConfiguracionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	cfg := ConfiguracionPrecios{
		EstudioID:                  estudioID,
		PorcentajeUtilidadServicio: dto.PorcentajeUtilidadServicio,
		PorcentajeUtilidadProducto: dto.PorcentajeUtilidadProducto,
		PorcentajeComisionVenta:    dto.PorcentajeComisionVenta,
		PorcentajeSobreprecio:      dto.PorcentajeSobreprecio,
	}
	if err := cfg.AConfiguracion().Validar(); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if err := h.Repo.Upsert(&cfg); err != nil {
		http.Error(w, "Error al guardar la configuración", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(cfg)
}
