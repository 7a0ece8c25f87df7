package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const (
	CtxUserID    ctxKey = "usuarioID"
	CtxEstudioID ctxKey = "estudioID"
	CtxIsAdmin   ctxKey = "isAdmin"
)

func MiddlewareAutenticacion(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "Token ausente", http.StatusUnauthorized)
			return
		}
		raw := strings.TrimPrefix(h, "Bearer ")
		claims, err := ValidarToken(raw)
		if err != nil {
			http.Error(w, "Token inválido", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), CtxUserID, claims.UserID)
		ctx = context.WithValue(ctx, CtxEstudioID, claims.EstudioID)
		ctx = context.WithValue(ctx, CtxIsAdmin, claims.IsAdmin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v := r.Context().Value(CtxIsAdmin)
		if ok, _ := v.(bool); !ok {
			http.Error(w, "Acceso restringido a administradores", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// EstudioDesdeContexto devuelve el estudio del token. Los handlers lo usan
// para limitar cada consulta al tenant autenticado.
func EstudioDesdeContexto(ctx context.Context) uint {
	id, _ := ctx.Value(CtxEstudioID).(uint)
	return id
}

// UsuarioDesdeContexto devuelve el usuario autenticado.
func UsuarioDesdeContexto(ctx context.Context) uint {
	id, _ := ctx.Value(CtxUserID).(uint)
	return id
}

// EsAdmin informa si el token tiene rol de administrador.
func EsAdmin(ctx context.Context) bool {
	ok, _ := ctx.Value(CtxIsAdmin).(bool)
	return ok
}
