package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ANSH5252/LivePulse/internal/handlers"
	"github.com/ANSH5252/LivePulse/internal/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type App struct {
	log    *slog.Logger
	engine *gin.Engine
	server *http.Server
	port   int
}

func NewApp(
	log *slog.Logger,
	port int,
	handler *handlers.VotingHandler,
	authMiddleware gin.HandlerFunc,
	optionalAuth gin.HandlerFunc,
) *App {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		AllowWebSockets:  true,
	}))

	api := r.Group("/api")
	{
		publicGroup := api.Group("/live")
		routes.RegisterPublicRoutes(publicGroup, handler)
		routes.RegisterRealtimeRoutes(publicGroup, handler, optionalAuth)

		privateGroup := api.Group("/live", authMiddleware)
		routes.RegisterPrivateRoutes(privateGroup, handler)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	addr := fmt.Sprintf(":%d", port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	return &App{
		log:    log,
		engine: r,
		server: httpServer,
		port:   port,
	}
}

func (a *App) Run() error {
	a.log.Info("HTTP server is running", slog.String("addr", a.server.Addr))
	return a.server.ListenAndServe()
}

func (a *App) Stop(ctx context.Context) error {
	a.log.Info("HTTP server is stopping...")
	return a.server.Shutdown(ctx)
}

func (a *App) Engine() *gin.Engine {
	return a.engine
}
