package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/vfg2006/flux-sync-api/pkg/apiErrors"
	"github.com/vfg2006/flux-sync-api/pkg/log"
)

// SchedulerSecretHeader é o cabeçalho com o segredo compartilhado das rotas
// de sincronização. As rotas são chamadas apenas por operadores e pelo
// disparador externo, nunca por navegadores de tenants.
const SchedulerSecretHeader = "X-Scheduler-Secret"

// SchedulerAuth valida o segredo compartilhado das rotas de sincronização
func SchedulerAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(SchedulerSecretHeader)
			if provided == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingSecret, "Cabeçalho de autenticação ausente", nil)
				return
			}

			if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"path":        r.URL.Path,
					"remote_addr": r.RemoteAddr,
				}).Warn("Segredo do agendador inválido")

				apiErrors.WriteError(w, apiErrors.ErrInvalidSecret, "Segredo inválido", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
