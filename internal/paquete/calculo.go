// internal/paquete/calculo.go
package paquete

import (
	"errors"
	"fmt"

	"github.com/ProSocialApp/api-estudio/internal/catalogo"
	"github.com/ProSocialApp/api-estudio/internal/precios"
)

var ErrCantidadInvalida = errors.New("la cantidad de cada línea debe ser mayor a cero")

// validarServicios chequea cantidades y que cada línea apunte a un ítem del
// catálogo del estudio. Se corre tanto al cotizar como antes de persistir
// líneas, así un ID ajeno falla en el alta y no recién al cotizar.
func validarServicios(items []catalogo.ItemCatalogo, servicios []ServicioDTO) error {
	porID := make(map[uint]struct{}, len(items))
	for _, it := range items {
		porID[it.ID] = struct{}{}
	}
	for _, s := range servicios {
		if s.Cantidad <= 0 {
			return ErrCantidadInvalida
		}
		if _, ok := porID[s.ItemCatalogoID]; !ok {
			return fmt.Errorf("ítem %d no pertenece al catálogo del estudio", s.ItemCatalogoID)
		}
	}
	return nil
}

// armarItems resuelve las líneas del paquete contra los ítems del catálogo
// ya cargados y arma las entradas del calculador. La utilidad base se deriva
// del costo y la configuración; el precio público es el almacenado en el
// catálogo (se usa en el modo suma de precios).
func armarItems(items []catalogo.ItemCatalogo, servicios []ServicioDTO, cfg precios.Configuracion) ([]precios.ItemCalculo, error) {
	if err := validarServicios(items, servicios); err != nil {
		return nil, err
	}

	porID := make(map[uint]catalogo.ItemCatalogo, len(items))
	for _, it := range items {
		porID[it.ID] = it
	}

	out := make([]precios.ItemCalculo, 0, len(servicios))
	for _, s := range servicios {
		it := porID[s.ItemCatalogoID]
		out = append(out, precios.ItemCalculo{
			Costo:         it.Costo,
			Gasto:         it.Gasto,
			UtilidadBase:  precios.UtilidadBaseItem(it.Costo, it.Tipo(), cfg),
			PrecioPublico: it.PrecioPublico,
			Cantidad:      s.Cantidad,
			TipoUtilidad:  it.Tipo(),
		})
	}
	return out, nil
}
