package router

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	// Documento Swagger registrado no init do pacote docs
	_ "fulfilment/docs"
	"fulfilment/internal/api/warehouse"
	"fulfilment/internal/pkg/logger"
	"fulfilment/internal/pkg/middleware"
)

// Middleware é um decorator de http.Handler.
type Middleware func(http.Handler) http.Handler

// NewRouter configura e retorna o roteador HTTP principal.
// Recebe os Handlers já inicializados por injeção de dependências. Os middlewares
// extras (ex.: rate limiter) são aplicados por dentro de request id e access log.
func NewRouter(warehouseHandler *warehouse.Handler, log logger.Logger, extra ...Middleware) http.Handler {
	mux := http.NewServeMux()

	// --- 1. Health Check e Documentação ---
	mux.HandleFunc("GET /ping", PingHandler)
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// --- 2. Rotas de Armazéns ---
	mux.HandleFunc("GET /warehouse", warehouseHandler.ListHandler)
	mux.HandleFunc("POST /warehouse", warehouseHandler.CreateHandler)
	mux.HandleFunc("GET /warehouse/{id}", warehouseHandler.GetByIDHandler)
	mux.HandleFunc("DELETE /warehouse/{id}", warehouseHandler.ArchiveHandler)
	mux.HandleFunc("POST /warehouse/{businessUnitCode}/replacement", warehouseHandler.ReplaceHandler)

	// --- 3. Middlewares Globais ---
	var handler http.Handler = mux
	for i := len(extra) - 1; i >= 0; i-- {
		handler = extra[i](handler)
	}
	handler = middleware.AccessLog(log)(handler)
	return middleware.RequestID(handler)
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}
