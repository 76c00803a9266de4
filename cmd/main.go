package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Nossos pacotes de infraestrutura e utilitários
	"fulfilment/config"
	"fulfilment/internal/domain"
	"fulfilment/internal/pkg/cache"
	"fulfilment/internal/pkg/database"
	"fulfilment/internal/pkg/logger"
	"fulfilment/internal/pkg/middleware"

	// Camadas de Armazéns para Injeção de Dependências
	"fulfilment/internal/api/router"    // Roteador central
	"fulfilment/internal/api/warehouse" // Handlers
	"fulfilment/internal/repository/locationrepo"
	"fulfilment/internal/repository/memstore"
	"fulfilment/internal/repository/warehouserepo" // Acesso a Dados
	"fulfilment/internal/service/warehouseservice" // Lógica de Negócio
)

// @title Fulfilment Warehouse API
// @version 1.0
// @description Ciclo de vida das unidades de armazém: criação, substituição e arquivamento.
// @host localhost:8080
// @BasePath /
func main() {
	// 0. CARREGAR VARIÁVEIS DE AMBIENTE (.env)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	// 1. Configuração e Logger
	cfg := config.LoadConfig()
	var appLog logger.Logger
	if cfg.IsDevelopment() {
		appLog = logger.NewDevelopmentLogger(cfg.LogLevel)
	} else {
		appLog = logger.NewLogger(cfg.LogLevel)
	}
	if s, ok := appLog.(interface{ Sync() error }); ok {
		defer func() { _ = s.Sync() }()
	}
	appLog.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment, "store_driver": cfg.StoreDriver})

	// 2. Persistência: Store + TxManager
	var (
		store warehouseservice.WarehouseStore
		tx    warehouseservice.TxManager
	)
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		mem := memstore.NewStore(appLog)
		if err := mem.Seed(context.Background(), seedUnits()...); err != nil {
			appLog.Fatal("Falha ao popular o Store em memória.", err)
		}
		store, tx = mem, mem
		appLog.Warn("Usando Store em memória; os dados não sobrevivem ao processo.", nil)
	default:
		db, err := database.NewPostgresDB(cfg.DatabaseURL, cfg.DBTimeout)
		if err != nil {
			appLog.Fatal("Falha ao conectar ao banco de dados.", err)
		}
		defer db.Close()
		appLog.Info("Conexão PostgreSQL estabelecida.", nil)

		store = warehouserepo.NewWarehouseRepository(db, cfg.DBTimeout, appLog)
		tx = database.NewTxManager(db, appLog)
	}

	// 3. Catálogo de localizações (+ cache Redis opcional)
	catalog, err := locationrepo.LoadCatalog(cfg.LocationCatalogPath)
	if err != nil {
		appLog.Fatal("Falha ao carregar o catálogo de localizações.", err)
	}
	appLog.Info("Catálogo de localizações carregado.", map[string]interface{}{"locations": catalog.Len()})

	var (
		locations   warehouseservice.LocationResolver = catalog
		middlewares []router.Middleware
	)
	if cfg.RedisAddr != "" {
		cacheClient, err := cache.NewRedisClient(cfg.RedisAddr, cfg.CacheTimeout)
		if err != nil {
			appLog.Warn("Redis indisponível no início; o cache seguirá tentando a cada operação.", map[string]interface{}{"addr": cfg.RedisAddr, "error": err.Error()})
		} else {
			appLog.Info("Conexão Redis estabelecida.", map[string]interface{}{"addr": cfg.RedisAddr})
		}
		defer cacheClient.Close()

		locations = locationrepo.NewCachedResolver(catalog, cacheClient, cfg.LocationCacheTTL, appLog)
		middlewares = append(middlewares, router.Middleware(
			middleware.RateLimiter(cacheClient, cfg.RateLimitMaxRequests, cfg.RateLimitPeriod, appLog),
		))
	}

	// 4. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler
	warehouseSvc := warehouseservice.NewService(store, locations, tx, appLog)
	warehouseHandler := warehouse.NewHandler(warehouseSvc, appLog)

	// 5. Configuração e Início do Roteador/Servidor
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.NewRouter(warehouseHandler, appLog, middlewares...),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLog.Info("Servidor ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal("Servidor falhou.", err)
		}
	}()

	// 6. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLog.Error("Desligamento do servidor forçado.", err)
	}

	appLog.Info("Servidor encerrado com sucesso.", nil)
}

// seedUnits são as unidades iniciais da rede, as mesmas da migração de seed.
func seedUnits() []domain.Warehouse {
	now := time.Now().UTC()
	return []domain.Warehouse{
		{BusinessUnitCode: "MWH.001", Location: "ZWOLLE-001", Capacity: domain.IntPtr(30), Stock: domain.IntPtr(10), CreatedAt: now},
		{BusinessUnitCode: "MWH.012", Location: "AMSTERDAM-001", Capacity: domain.IntPtr(50), Stock: domain.IntPtr(5), CreatedAt: now},
		{BusinessUnitCode: "MWH.023", Location: "TILBURG-001", Capacity: domain.IntPtr(30), Stock: domain.IntPtr(27), CreatedAt: now},
	}
}
