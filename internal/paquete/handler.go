// internal/paquete/handler.go
package paquete

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ProSocialApp/api-estudio/internal/auth"
	"github.com/ProSocialApp/api-estudio/internal/catalogo"
	"github.com/ProSocialApp/api-estudio/internal/condicioncomercial"
	"github.com/ProSocialApp/api-estudio/internal/configuracion"
	"github.com/ProSocialApp/api-estudio/internal/metodopago"
	"github.com/ProSocialApp/api-estudio/internal/notificacion"
	"github.com/ProSocialApp/api-estudio/internal/precios"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gestiona paquetes y sus cotizaciones.
type Handler struct {
	DB           *gorm.DB
	Repo         *Repository
	CatalogoRepo *catalogo.Repository
	ConfigRepo   *configuracion.Repository
	CondRepo     *condicioncomercial.Repository
	MetodoRepo   *metodopago.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:           db,
		Repo:         NewRepository(db),
		CatalogoRepo: catalogo.NewRepository(db),
		ConfigRepo:   configuracion.NewRepository(db),
		CondRepo:     condicioncomercial.NewRepository(db),
		MetodoRepo:   metodopago.NewRepository(db),
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

// resolverItems trae del catálogo del estudio los ítems referidos por las
// líneas. Los IDs ajenos no aparecen en el resultado; validarServicios los
// detecta después.
func (h *Handler) resolverItems(estudioID uint, servicios []ServicioDTO) ([]catalogo.ItemCatalogo, error) {
	if len(servicios) == 0 {
		return nil, nil
	}
	ids := make([]uint, 0, len(servicios))
	for _, s := range servicios {
		ids = append(ids, s.ItemCatalogoID)
	}
	return h.CatalogoRepo.FindByIDs(estudioID, ids)
}

// calcular resuelve catálogo, condición y método, y corre el calculador.
func (h *Handler) calcular(estudioID uint, dto CotizacionDTO) (precios.Resultado, error) {
	cfgFila, err := h.ConfigRepo.FindByEstudio(estudioID)
	if err != nil {
		return precios.Resultado{}, err
	}
	cfg := cfgFila.AConfiguracion()

	items, err := h.resolverItems(estudioID, dto.Servicios)
	if err != nil {
		return precios.Resultado{}, err
	}

	lineas, err := armarItems(items, dto.Servicios, cfg)
	if err != nil {
		return precios.Resultado{}, err
	}

	venta := precios.ParametrosVenta{
		PrecioVenta:         dto.PrecioVenta,
		PorcentajeDescuento: dto.PorcentajeDescuento,
		SumarPreciosItems:   dto.SumarPreciosItems,
	}
	if dto.CondicionID != nil {
		c, err := h.CondRepo.FindByID(estudioID, *dto.CondicionID)
		if err != nil {
			return precios.Resultado{}, err
		}
		cond := c.ACondicion()
		venta.Condicion = &cond
	}
	if dto.MetodoPagoID != nil {
		m, err := h.MetodoRepo.FindByID(estudioID, *dto.MetodoPagoID)
		if err != nil {
			return precios.Resultado{}, err
		}
		venta.Metodo = &precios.MetodoPago{ID: m.ID, PorcentajeComision: m.PorcentajeComision}
	}

	return precios.CalcularPaquete(lineas, cfg, venta)
}

func responderErrorCalculo(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		http.Error(w, "Faltan datos para cotizar (configuración, condición o método)", http.StatusUnprocessableEntity)
	case errors.Is(err, precios.ErrConfiguracionInvalida), errors.Is(err, ErrCantidadInvalida):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, "Error al cotizar el paquete", http.StatusInternalServerError)
	}
}

// POST /estudios/{id}/paquetes/cotizar
// Preview en vivo: calcula el desglose sin persistir nada. Se llama en cada
// cambio del formulario, por eso no escribe ni loguea por request.
func (h *Handler) Cotizar(w http.ResponseWriter, r *http.Request) {
	estudioID, ok := h.estudioDeRuta(w, r)
	if !ok {
		return
	}

	var dto CotizacionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	res, err := h.calcular(estudioID, dto)
	if err != nil {
		responderErrorCalculo(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(res)
}

// POST /estudios/{id}/paquetes
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	estudioID, ok := h.estudioDeRuta(w, r)
	if !ok {
		return
	}

	var dto PaqueteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	items, err := h.resolverItems(estudioID, dto.Servicios)
	if err != nil {
		http.Error(w, "Error al resolver el catálogo", http.StatusInternalServerError)
		return
	}
	if err := validarServicios(items, dto.Servicios); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	p := Paquete{
		EstudioID:           estudioID,
		Nombre:              dto.Nombre,
		PrecioVenta:         dto.PrecioVenta,
		PorcentajeDescuento: dto.PorcentajeDescuento,
		SumarPreciosItems:   dto.SumarPreciosItems,
		CondicionID:         dto.CondicionID,
		MetodoPagoID:        dto.MetodoPagoID,
	}
	for _, s := range dto.Servicios {
		p.Servicios = append(p.Servicios, ServicioPaquete{
			ItemCatalogoID: s.ItemCatalogoID,
			Cantidad:       s.Cantidad,
		})
	}

	if err := h.Repo.Create(&p); err != nil {
		http.Error(w, "Error al crear el paquete", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// GET /estudios/{id}/paquetes
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	estudioID, ok := h.estudioDeRuta(w, r)
	if !ok {
		return
	}
	list, err := h.Repo.FindByEstudio(estudioID)
	if err != nil {
		http.Error(w, "Error al listar los paquetes", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GET /estudios/{id}/paquetes/{pid}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	estudioID, ok := h.estudioDeRuta(w, r)
	if !ok {
		return
	}
	pid, err := strconv.Atoi(mux.Vars(r)["pid"])
	if err != nil {
		http.Error(w, "ID de paquete inválido", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.FindByID(estudioID, uint(pid))
	if err != nil {
		http.Error(w, "Paquete no encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// PUT /estudios/{id}/paquetes/{pid}
// Actualiza cabecera y reemplaza las líneas en una única transacción.
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	estudioID, ok := h.estudioDeRuta(w, r)
	if !ok {
		return
	}
	pid, err := strconv.Atoi(mux.Vars(r)["pid"])
	if err != nil {
		http.Error(w, "ID de paquete inválido", http.StatusBadRequest)
		return
	}

	p, err := h.Repo.FindByID(estudioID, uint(pid))
	if err != nil {
		http.Error(w, "Paquete no encontrado", http.StatusNotFound)
		return
	}

	var dto PaqueteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	items, err := h.resolverItems(estudioID, dto.Servicios)
	if err != nil {
		http.Error(w, "Error al resolver el catálogo", http.StatusInternalServerError)
		return
	}
	if err := validarServicios(items, dto.Servicios); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	servicios := make([]ServicioPaquete, 0, len(dto.Servicios))
	for _, s := range dto.Servicios {
		servicios = append(servicios, ServicioPaquete{
			ItemCatalogoID: s.ItemCatalogoID,
			Cantidad:       s.Cantidad,
		})
	}

	p.Nombre = dto.Nombre
	p.PrecioVenta = dto.PrecioVenta
	p.PorcentajeDescuento = dto.PorcentajeDescuento
	p.SumarPreciosItems = dto.SumarPreciosItems
	p.CondicionID = dto.CondicionID
	p.MetodoPagoID = dto.MetodoPagoID
	p.Servicios = nil

	tx := h.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "No se pudo iniciar la transacción", http.StatusInternalServerError)
		return
	}
	txRepo := h.Repo.WithDB(tx)
	if err := txRepo.Update(p); err != nil {
		_ = tx.Rollback()
		http.Error(w, "Error al actualizar el paquete", http.StatusInternalServerError)
		return
	}
	if err := txRepo.ReemplazarServicios(p.ID, servicios); err != nil {
		_ = tx.Rollback()
		http.Error(w, "Error al actualizar las líneas del paquete", http.StatusInternalServerError)
		return
	}
	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Error al confirmar la transacción", http.StatusInternalServerError)
		return
	}

	p, err = h.Repo.FindByID(estudioID, p.ID)
	if err != nil {
		http.Error(w, "Error al recargar el paquete", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// POST /estudios/{id}/paquetes/{pid}/cotizacion
// Cotiza con los parámetros guardados del paquete y persiste el snapshot.
// Si la ganancia neta da negativa dispara la alerta por webhook.
func (h *Handler) CotizarYGuardar(w http.ResponseWriter, r *http.Request) {
	estudioID, ok := h.estudioDeRuta(w, r)
	if !ok {
		return
	}
	pid, err := strconv.Atoi(mux.Vars(r)["pid"])
	if err != nil {
		http.Error(w, "ID de paquete inválido", http.StatusBadRequest)
		return
	}

	p, err := h.Repo.FindByID(estudioID, uint(pid))
	if err != nil {
		http.Error(w, "Paquete no encontrado", http.StatusNotFound)
		return
	}

	dto := CotizacionDTO{
		PrecioVenta:         p.PrecioVenta,
		PorcentajeDescuento: p.PorcentajeDescuento,
		SumarPreciosItems:   p.SumarPreciosItems,
		CondicionID:         p.CondicionID,
		MetodoPagoID:        p.MetodoPagoID,
	}
	for _, s := range p.Servicios {
		dto.Servicios = append(dto.Servicios, ServicioDTO{
			ItemCatalogoID: s.ItemCatalogoID,
			Cantidad:       s.Cantidad,
		})
	}

	res, err := h.calcular(estudioID, dto)
	if err != nil {
		responderErrorCalculo(w, err)
		return
	}

	if err := h.Repo.GuardarCotizacion(p.ID, res); err != nil {
		http.Error(w, "Error al guardar la cotización", http.StatusInternalServerError)
		return
	}

	if res.GananciaNeta < 0 {
		go notificacion.EnviarAlertaMargen(estudioID, p.Nombre, res.GananciaNeta, res.MargenNeto)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(res)
}

// DELETE /estudios/{id}/paquetes/{pid}
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	estudioID, ok := h.estudioDeRuta(w, r)
	if !ok {
		return
	}
	pid, err := strconv.Atoi(mux.Vars(r)["pid"])
	if err != nil {
		http.Error(w, "ID de paquete inválido", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.FindByID(estudioID, uint(pid))
	if err != nil {
		http.Error(w, "Paquete no encontrado", http.StatusNotFound)
		return
	}
	if err := h.Repo.Delete(p); err != nil {
		http.Error(w, "Error al eliminar el paquete", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
