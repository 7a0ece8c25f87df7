// internal/negociacion/mover.go
package negociacion

// clampPosicion acota la posición pedida al rango válido de la columna
// destino: [0, total]. El front manda la posición donde soltó la tarjeta;
// con listas desincronizadas puede venir fuera de rango.
func clampPosicion(posicion, total int) int {
	if posicion < 0 {
		return 0
	}
	if posicion > total {
		return total
	}
	return posicion
}
