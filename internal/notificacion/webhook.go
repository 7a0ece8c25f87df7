package notificacion

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
)

// EnviarAlertaMargen avisa por webhook que una cotización quedó con ganancia
// neta negativa. Mejor esfuerzo: si la URL no está configurada o el POST
// falla, solo se loguea.
func EnviarAlertaMargen(estudioID uint, paquete string, gananciaNeta, margenNeto float64) {
	url := os.Getenv("WEBHOOK_ALERTAS_URL")
	if url == "" {
		return
	}

	payload := map[string]interface{}{
		"mensaje":      "Alerta: cotización con ganancia neta negativa",
		"estudioId":    estudioID,
		"paquete":      paquete,
		"gananciaNeta": gananciaNeta,
		"margenNeto":   margenNeto,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Error al enviar webhook: %v", err)
		return
	}
	defer resp.Body.Close()
}
