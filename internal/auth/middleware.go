package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/VisualPrintBR/api-pcp/internal/models"
)

type ctxKey string

const (
	CtxUserID  ctxKey = "usuarioID"
	CtxNome    ctxKey = "usuarioNome"
	CtxIsAdmin ctxKey = "isAdmin"
	CtxSetor   ctxKey = "setor"
)

// MiddlewareAutenticacao exige Bearer token válido e injeta as claims no
// contexto da requisição.
func MiddlewareAutenticacao(next http.Handler) http.Handler {
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
		ctx = context.WithValue(ctx, CtxNome, claims.Nome)
		ctx = context.WithValue(ctx, CtxIsAdmin, claims.IsAdmin)
		ctx = context.WithValue(ctx, CtxSetor, claims.Setor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin bloqueia a rota para não administradores.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v := r.Context().Value(CtxIsAdmin)
		if ok, _ := v.(bool); !ok {
			http.Error(w, "Forbidden (admin only)", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UsuarioDoContexto devolve id, nome, admin e setor das claims injetadas
// pelo middleware. Valores zero quando a rota não passou pela autenticação.
func UsuarioDoContexto(ctx context.Context) (uint, string, bool, models.Etapa) {
	id, _ := ctx.Value(CtxUserID).(uint)
	nome, _ := ctx.Value(CtxNome).(string)
	isAdmin, _ := ctx.Value(CtxIsAdmin).(bool)
	setor, _ := ctx.Value(CtxSetor).(models.Etapa)
	return id, nome, isAdmin, setor
}
