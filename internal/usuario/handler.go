// internal/usuario/handler.go
package usuario

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ProSocialApp/api-estudio/internal/auth"
	"github.com/ProSocialApp/api-estudio/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// POST /usuarios/login
// Valida email/contraseña y emite el access token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Payload inválido", http.StatusBadRequest)
		return
	}

	u, err := h.Repository.FindByEmail(h.DB, req.Email)
	if err != nil {
		http.Error(w, "Credenciales inválidas", http.StatusUnauthorized)
		return
	}

	if !utils.VerificarContrasena(u.Contrasena, req.Contrasena) {
		http.Error(w, "Contraseña incorrecta", http.StatusUnauthorized)
		return
	}

	access, err := auth.GenerarToken(u.ID, u.EstudioID, u.EsAdmin)
	if err != nil {
		http.Error(w, "Error al generar el token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"access_token":            access,
		"token_type":              "Bearer",
		"expires_in":              int(auth.AccessTTL.Seconds()),
		"debe_cambiar_contrasena": u.DebeCambiarContrasena,
	})
}

// POST /usuarios/{id}/restablecer-contrasena (solo admin)
// Genera una contraseña temporal, guarda el hash y devuelve la temporal una
// única vez; el usuario queda marcado para cambiarla en el próximo ingreso.
func (h *Handler) RestablecerContrasena(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if _, err := h.Repository.FindByID(h.DB, uint(id)); err != nil {
		http.Error(w, "Usuario no encontrado", http.StatusNotFound)
		return
	}

	temp, err := utils.GenerarContrasenaTemporal()
	if err != nil {
		http.Error(w, "Error al generar la contraseña temporal", http.StatusInternalServerError)
		return
	}
	hash, err := utils.HashContrasena(temp)
	if err != nil {
		http.Error(w, "Error al procesar la contraseña", http.StatusInternalServerError)
		return
	}
	if err := h.Repository.ActualizarContrasena(h.DB, uint(id), hash, true); err != nil {
		http.Error(w, "Error al guardar la contraseña", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"contrasena_temporal": temp,
	})
}

// POST /usuarios
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var req CreateUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Payload inválido", http.StatusBadRequest)
		return
	}

	// Un usuario no admin solo puede dar de alta gente de su propio estudio
	if !auth.EsAdmin(r.Context()) && req.EstudioID != auth.EstudioDesdeContexto(r.Context()) {
		http.Error(w, "Acceso denegado", http.StatusForbidden)
		return
	}

	hash, err := utils.HashContrasena(req.Contrasena)
	if err != nil {
		http.Error(w, "Error al procesar la contraseña", http.StatusInternalServerError)
		return
	}

	u := Usuario{
		Nombre:     req.Nombre,
		Apellido:   req.Apellido,
		Email:      req.Email,
		Telefono:   req.Telefono,
		Foto:       req.Foto,
		Contrasena: hash,
		EstudioID:  req.EstudioID,
		EsAdmin:    req.EsAdmin,
	}

	if err := h.Repository.Save(h.DB, &u); err != nil {
		http.Error(w, "Error al guardar el usuario", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(u)
}

// GET /usuarios
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	estudioID := auth.EstudioDesdeContexto(r.Context())
	list, err := h.Repository.ListByEstudio(h.DB, estudioID)
	if err != nil {
		http.Error(w, "Error al listar los usuarios", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GET /usuarios/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if !auth.EsAdmin(r.Context()) && uint(id) != auth.UsuarioDesdeContexto(r.Context()) {
		http.Error(w, "Acceso denegado", http.StatusForbidden)
		return
	}

	u, err := h.Repository.FindByID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Usuario no encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(u)
}

// PUT /usuarios/{id}
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if !auth.EsAdmin(r.Context()) && uint(id) != auth.UsuarioDesdeContexto(r.Context()) {
		http.Error(w, "Acceso denegado", http.StatusForbidden)
		return
	}

	var req UpdateUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Payload inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Update(h.DB, uint(id), &req); err != nil {
		http.Error(w, "Error al actualizar el usuario", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("usuario actualizado con éxito"))
}

// DELETE /usuarios/{id}
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if !auth.EsAdmin(r.Context()) && uint(id) != auth.UsuarioDesdeContexto(r.Context()) {
		http.Error(w, "Acceso denegado", http.StatusForbidden)
		return
	}

	if err := h.Repository.Delete(h.DB, uint(id)); err != nil {
		http.Error(w, "Error al eliminar el usuario", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("usuario eliminado con éxito"))
}

// GET /usuarios/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID := auth.UsuarioDesdeContexto(r.Context())

	var u Usuario
	if err := h.DB.First(&u, userID).Error; err != nil {
		http.Error(w, "Usuario no encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(u)
}
