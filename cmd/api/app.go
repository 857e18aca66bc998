package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"

	"github.com/hugohenrick/wallet-agent-chat/docs"
	"github.com/hugohenrick/wallet-agent-chat/internal/adapter/api/controller"
	"github.com/hugohenrick/wallet-agent-chat/internal/adapter/api/route"
	"github.com/hugohenrick/wallet-agent-chat/internal/adapter/repository"
	"github.com/hugohenrick/wallet-agent-chat/internal/config"
	"github.com/hugohenrick/wallet-agent-chat/internal/infrastructure/cache"
	"github.com/hugohenrick/wallet-agent-chat/internal/infrastructure/database"
	"github.com/hugohenrick/wallet-agent-chat/pkg/agent"
	"github.com/hugohenrick/wallet-agent-chat/pkg/auth"
	"github.com/hugohenrick/wallet-agent-chat/pkg/chat"
	"github.com/hugohenrick/wallet-agent-chat/pkg/llm"
	"github.com/hugohenrick/wallet-agent-chat/pkg/logger"
	"github.com/hugohenrick/wallet-agent-chat/pkg/pkcs12"
)

const (
	version         = "1.0.0"
	shutdownTimeout = 10 * time.Second
)

// App representa a aplicação e suas dependências
type App struct {
	cfg       *config.Config
	logger    logger.Logger
	router    *gin.Engine
	tlsConfig *tls.Config
	closers   []func()
}

// NewApp cria uma nova instância do aplicativo
func NewApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	app := &App{cfg: cfg, logger: log}

	jwtService, err := auth.NewJWTService(cfg.Auth.SecretKey, cfg.Auth.Expiration)
	if err != nil {
		return nil, err
	}

	repo, err := app.newRepository(ctx)
	if err != nil {
		app.Close()
		return nil, err
	}

	llmClient := llm.NewClient(llm.Config{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	}, log)
	if llmClient.Configured() {
		log.Info("Agente configurado", "model", llmClient.Model())
	} else {
		log.Warn("XAI_API_KEY não configurada: o agente responderá com a mensagem de desculpas")
	}
	bridge := agent.NewBridge(llmClient, log)
	service := chat.NewService(repo, bridge, log)

	if cfg.HTTP.TLSPFXPath != "" {
		app.tlsConfig, err = pkcs12.LoadTLSConfig(cfg.HTTP.TLSPFXPath, cfg.HTTP.TLSPFXPassword)
		if err != nil {
			app.Close()
			return nil, err
		}
	}

	gin.SetMode(cfg.HTTP.GinMode)
	router := gin.New()
	router.Use(gin.Recovery(), logger.GinMiddleware(log))
	corsConfig := cors.Config{
		AllowOrigins:     cfg.HTTP.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	router.Use(cors.New(corsConfig))

	docs.SwaggerInfo.BasePath = cfg.HTTP.BasePath
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group(cfg.HTTP.BasePath)
	route.ConfigureSessionRoutes(api,
		controller.NewSessionController(jwtService, log),
		controller.NewHealthController(version, llmClient.Configured(), cfg.WalletConfigured()),
	)
	route.ConfigureChatRoutes(api,
		controller.NewChatController(service, log),
		controller.NewSocketController(service, log, cfg.HTTP.AllowedOrigins),
		jwtService,
	)

	app.router = router
	return app, nil
}

// newRepository escolhe o armazenamento do histórico conforme CHAT_STORE
func (a *App) newRepository(ctx context.Context) (chat.Repository, error) {
	switch a.cfg.Store.Kind {
	case config.StorePostgres:
		dbURL := a.cfg.Store.Postgres.ConnectionString()
		if a.cfg.Store.AutoMigrate {
			if err := database.RunMigrations(dbURL); err != nil {
				return nil, err
			}
			a.logger.Info("Migrações aplicadas")
		}

		pool, err := database.NewPostgresDB(ctx, a.cfg.Store.Postgres)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, pool.Close)
		a.logger.Info("Histórico no PostgreSQL")
		return repository.NewPostgresChatRepository(pool), nil

	case config.StoreRedis:
		client, err := cache.NewRedisClient(ctx, a.cfg.Store.RedisURL)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = client.Close() })
		a.logger.Info("Histórico no Redis", "ttl", a.cfg.Store.TTL)
		return repository.NewRedisChatRepository(client, a.cfg.Store.TTL), nil

	case config.StoreMemory:
		a.logger.Info("Histórico em memória")
		return repository.NewMemoryChatRepository(), nil
	}

	return nil, fmt.Errorf("%w: %s", repository.ErrUnknownStore, a.cfg.Store.Kind)
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Run inicia o servidor HTTP e o encerra quando ctx for cancelado
func (a *App) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              ":" + a.cfg.HTTP.Port,
		Handler:           a.router,
		TLSConfig:         a.tlsConfig,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("Servidor iniciado", "addr", server.Addr, "tls", a.tlsConfig != nil, "base_path", a.cfg.HTTP.BasePath)

		var err error
		if a.tlsConfig != nil {
			err = server.ListenAndServeTLS("", "")
		} else {
			err = server.ListenAndServe()
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("Encerrando servidor")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
