// internal/usuario/dto.go
package usuario

// LoginRequest se usa en POST /usuarios/login
type LoginRequest struct {
	Email      string `json:"email"`
	Contrasena string `json:"contrasena"`
}

// CreateUsuarioRequest se usa en POST /usuarios
type CreateUsuarioRequest struct {
	Nombre     string `json:"nombre"`
	Apellido   string `json:"apellido"`
	Email      string `json:"email"`
	Telefono   string `json:"telefono"`
	Foto       string `json:"foto"`
	Contrasena string `json:"contrasena"`
	EstudioID  uint   `json:"estudioId"`
	EsAdmin    bool   `json:"esAdmin"`
}

// UpdateUsuarioRequest se usa en PUT /usuarios/{id}
// Los campos como puntero permiten omitirlos en el JSON si no cambian
type UpdateUsuarioRequest struct {
	Nombre   *string `json:"nombre,omitempty"`
	Apellido *string `json:"apellido,omitempty"`
	Telefono *string `json:"telefono,omitempty"`
	Foto     *string `json:"foto,omitempty"`
}
