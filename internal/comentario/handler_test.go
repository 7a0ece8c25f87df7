package comentario

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ProSocialApp/api-estudio/internal/auth"
	"github.com/gorilla/mux"
)

// verificadorFijo considera que la negociación pertenece a un único estudio.
type verificadorFijo struct {
	estudioDueno uint
}

func (v verificadorFijo) PerteneceAlEstudio(negID, estudioID uint) (bool, error) {
	return estudioID == v.estudioDueno, nil
}

func requestDeEstudio(metodo, cuerpo string, estudioID uint) *http.Request {
	req := httptest.NewRequest(metodo, "/negociaciones/7/comentarios", strings.NewReader(cuerpo))
	ctx := context.WithValue(req.Context(), auth.CtxUserID, uint(1))
	ctx = context.WithValue(ctx, auth.CtxEstudioID, estudioID)
	return mux.SetURLVars(req.WithContext(ctx), map[string]string{"id": "7"})
}

func TestCrear_NegociacionDeOtroEstudio(t *testing.T) {
	h := &Handler{Negociaciones: verificadorFijo{estudioDueno: 1}}

	rr := httptest.NewRecorder()
	h.Crear(rr, requestDeEstudio(http.MethodPost, `{"texto":"hola"}`, 2))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}

func TestListarPorNegociacion_NegociacionDeOtroEstudio(t *testing.T) {
	h := &Handler{Negociaciones: verificadorFijo{estudioDueno: 1}}

	rr := httptest.NewRecorder()
	h.ListarPorNegociacion(rr, requestDeEstudio(http.MethodGet, "", 2))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}
