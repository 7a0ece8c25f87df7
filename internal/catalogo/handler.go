// internal/catalogo/handler.go
package catalogo

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ProSocialApp/api-estudio/internal/auth"
	"github.com/ProSocialApp/api-estudio/internal/configuracion"
	"github.com/ProSocialApp/api-estudio/internal/precios"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// ItemCatalogoDTO es el payload de alta/edición de un ítem.
type ItemCatalogoDTO struct {
	Nombre       string  `json:"nombre"`
	Costo        float64 `json:"costo"`
	Gasto        float64 `json:"gasto"`
	TipoUtilidad string  `json:"tipoUtilidad"`
	Activo       *bool   `json:"activo,omitempty"`
}

type Handler struct {
	Repo       *Repository
	ConfigRepo *configuracion.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		Repo:       NewRepository(db),
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

// derivarPrecio completa PrecioPublico a partir de la configuración vigente.
func (h *Handler) derivarPrecio(item *ItemCatalogo) error {
	cfg, err := h.ConfigRepo.FindByEstudio(item.EstudioID)
	if err != nil {
		return err
	}
	precio, err := precios.PrecioPublicoItem(item.Costo, item.Gasto, item.Tipo(), cfg.AConfiguracion())
	if err != nil {
		return err
	}
	item.PrecioPublico = precio
	return nil
}

// POST /estudios/{id}/catalogo
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	estudioID, ok := h.estudioDeRuta(w, r)
	if !ok {
		return
	}

	var dto ItemCatalogoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	item := ItemCatalogo{
		EstudioID:    estudioID,
		Nombre:       dto.Nombre,
		Costo:        dto.Costo,
		Gasto:        dto.Gasto,
		TipoUtilidad: dto.TipoUtilidad,
		Activo:       true,
	}
	if dto.Activo != nil {
		item.Activo = *dto.Activo
	}

	if err := h.derivarPrecio(&item); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "El estudio no tiene configuración de precios", http.StatusUnprocessableEntity)
			return
		}
		if errors.Is(err, precios.ErrConfiguracionInvalida) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "Error al derivar el precio público", http.StatusInternalServerError)
		return
	}

	if err := h.Repo.Create(&item); err != nil {
		http.Error(w, "Error al crear el ítem", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(item)
}

// GET /estudios/{id}/catalogo
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	estudioID, ok := h.estudioDeRuta(w, r)
	if !ok {
		return
	}

	items, err := h.Repo.FindByEstudio(estudioID)
	if err != nil {
		http.Error(w, "Error al listar el catálogo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(items)
}

// GET /estudios/{id}/catalogo/{itemId}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	estudioID, ok := h.estudioDeRuta(w, r)
	if !ok {
		return
	}
	itemID, err := strconv.Atoi(mux.Vars(r)["itemId"])
	if err != nil {
		http.Error(w, "ID de ítem inválido", http.StatusBadRequest)
		return
	}

	item, err := h.Repo.FindByID(estudioID, uint(itemID))
	if err != nil {
		http.Error(w, "Ítem no encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(item)
}

// PUT /estudios/{id}/catalogo/{itemId}
// Vuelve a derivar el precio público: cambiar costo o gasto lo mueve.
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	estudioID, ok := h.estudioDeRuta(w, r)
	if !ok {
		return
	}
	itemID, err := strconv.Atoi(mux.Vars(r)["itemId"])
	if err != nil {
		http.Error(w, "ID de ítem inválido", http.StatusBadRequest)
		return
	}

	item, err := h.Repo.FindByID(estudioID, uint(itemID))
	if err != nil {
		http.Error(w, "Ítem no encontrado", http.StatusNotFound)
		return
	}

	var dto ItemCatalogoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	item.Nombre = dto.Nombre
	item.Costo = dto.Costo
	item.Gasto = dto.Gasto
	item.TipoUtilidad = dto.TipoUtilidad
	if dto.Activo != nil {
		item.Activo = *dto.Activo
	}

	if err := h.derivarPrecio(item); err != nil {
		http.Error(w, "Error al derivar el precio público", http.StatusUnprocessableEntity)
		return
	}

	if err := h.Repo.Update(item); err != nil {
		http.Error(w, "Error al actualizar el ítem", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(item)
}

// DELETE /estudios/{id}/catalogo/{itemId}
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	estudioID, ok := h.estudioDeRuta(w, r)
	if !ok {
		return
	}
	itemID, err := strconv.Atoi(mux.Vars(r)["itemId"])
	if err != nil {
		http.Error(w, "ID de ítem inválido", http.StatusBadRequest)
		return
	}

	item, err := h.Repo.FindByID(estudioID, uint(itemID))
	if err != nil {
		http.Error(w, "Ítem no encontrado", http.StatusNotFound)
		return
	}
	if err := h.Repo.Delete(item); err != nil {
		http.Error(w, "Error al eliminar el ítem", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
