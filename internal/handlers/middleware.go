package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"contacts-api/internal/utils"
)

// RequestLogger atribui um id a cada requisição e registra método, rota,
// id e duração no log de acesso.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		next.ServeHTTP(w, r)
		utils.LogInfo("%s %s [%s] em %s", r.Method, r.URL.Path, requestID, time.Since(start))
	})
}
