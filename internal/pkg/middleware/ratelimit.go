package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"fulfilment/internal/pkg/cache"
	"fulfilment/internal/pkg/logger"
)

// RateLimiter limita as requisições por IP numa janela fixa, com o contador no cache.
// O contador é incrementado antes da leitura; o primeiro incremento da janela define o TTL.
// Falhas do cache não bloqueiam a requisição.
func RateLimiter(client cache.Client, limit int, window time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := "rate-limit:" + ip
			ctx := r.Context()

			count, err := client.Incr(ctx, key)
			if err != nil {
				log.Warn("Falha ao incrementar contador de rate limit.", map[string]interface{}{"key": key, "error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				if err := client.Expire(ctx, key, window); err != nil {
					log.Warn("Falha ao definir janela do rate limit.", map[string]interface{}{"key": key, "error": err.Error()})
				}
			}

			if count > int64(limit) {
				w.Header().Set("X-RateLimit-Remaining", "0")
				http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(int64(limit)-count, 10))
			next.ServeHTTP(w, r)
		})
	}
}
