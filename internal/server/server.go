// Package server exposes game sessions over an HTTP JSON API.
package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/session"
)

// Server is the HTTP front end of a session manager.
type Server struct {
	app   *fiber.App
	cfg   *config.Config
	games *session.Manager
}

// New builds the fiber app and registers all routes.
func New(cfg *config.Config, games *session.Manager) *Server {
	s := &Server{cfg: cfg, games: games}

	s.app = fiber.New(fiber.Config{
		AppName:               "chess-rules",
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		ErrorHandler:          errorHandler,
		Immutable:             true,
		DisableStartupMessage: cfg.Verbosity < 1,
	})

	s.app.Use(recover.New())
	if cfg.LogFile != nil && cfg.Verbosity >= 1 {
		s.app.Use(logger.New(logger.Config{Output: cfg.LogFile}))
	}
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))

	api := s.app.Group("/api")
	gameRoutes := api.Group("/games")
	gameRoutes.Post("/", s.createGame)
	gameRoutes.Get("/", s.listGames)
	gameRoutes.Get("/:id", s.getGame)
	gameRoutes.Delete("/:id", s.deleteGame)
	gameRoutes.Get("/:id/board", s.getBoard)
	gameRoutes.Post("/:id/moves", s.playMove)
	gameRoutes.Get("/:id/moves/:square", s.legalMoves)

	return s
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on the configured address until Shutdown.
func (s *Server) Listen() error {
	s.cfg.Logf(1, "listening on %s", s.cfg.Server.Addr)
	return s.app.Listen(s.cfg.Server.Addr)
}

// Shutdown stops the server, letting in-flight requests finish.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
