// internal/estudio/model.go
package estudio

import (
	"github.com/ProSocialApp/api-estudio/internal/catalogo"
	"github.com/ProSocialApp/api-estudio/internal/condicioncomercial"
	"github.com/ProSocialApp/api-estudio/internal/configuracion"
	"github.com/ProSocialApp/api-estudio/internal/metodopago"
	"github.com/ProSocialApp/api-estudio/internal/negociacion"
	"github.com/ProSocialApp/api-estudio/internal/paquete"
	"github.com/ProSocialApp/api-estudio/internal/usuario"
	"gorm.io/gorm"
)

// Estudio es el tenant: todo lo demás cuelga de acá.
type Estudio struct {
	gorm.Model
	Nombre   string `json:"nombre"`
	Email    string `json:"email" gorm:"unique"`
	Telefono string `json:"telefono"`
	Logo     string `json:"logo"`

	Configuracion *configuracion.ConfiguracionPrecios     `gorm:"foreignKey:EstudioID" json:"configuracion,omitempty"`
	Usuarios      []usuario.Usuario                       `gorm:"foreignKey:EstudioID" json:"usuarios,omitempty"`
	Catalogo      []catalogo.ItemCatalogo                 `gorm:"foreignKey:EstudioID" json:"catalogo,omitempty"`
	MetodosPago   []metodopago.MetodoPago                 `gorm:"foreignKey:EstudioID" json:"metodosPago,omitempty"`
	Condiciones   []condicioncomercial.CondicionComercial `gorm:"foreignKey:EstudioID" json:"condiciones,omitempty"`
	Paquetes      []paquete.Paquete                       `gorm:"foreignKey:EstudioID" json:"paquetes,omitempty"`
	Negociaciones []negociacion.Negociacion               `gorm:"foreignKey:EstudioID" json:"negociaciones,omitempty"`
}
