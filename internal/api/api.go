package api

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/nirbhaypatil1311-max/Task-Management-System/internal/auth"
	"github.com/nirbhaypatil1311-max/Task-Management-System/internal/config"
	"github.com/nirbhaypatil1311-max/Task-Management-System/internal/migrations"
	"github.com/nirbhaypatil1311-max/Task-Management-System/internal/services"
)

// Server is the HTTP server for the task management API.
type Server struct {
	srv      *fasthttp.Server
	addr     string
	services *services.Services
	sessions *auth.SessionManager
	guard    *auth.Guard
}

// New wires config, migrations, services and the auth core into a server.
func New() *Server {
	conf := config.ReadConfig()

	m, err := migrations.NewMigrator()
	if err != nil {
		panic("unable to create migrator")
	}

	err = m.Up(0)
	if err != nil {
		panic("unable to run migrations")
	}

	svc := services.NewServices(conf)
	sessions := auth.NewSessionManager(auth.NewTokenCodec(conf.JWT_SECRET), conf.IsProduction())

	s := &Server{
		srv:      &fasthttp.Server{},
		addr:     conf.HTTP_ADDR,
		services: svc,
		sessions: sessions,
		guard:    auth.NewGuard(sessions, svc.User),
	}

	s.srv.Handler = s.initRoutes()

	return s
}

// Start the rest server
func (s *Server) Start() {
	slog.Info("Starting REST server...")
	go func() {
		if err := s.srv.ListenAndServe(s.addr); err != nil {
			slog.Error("Server shutdown", slog.Any("error", err))
		}
	}()
	slog.Info("REST server started!")

	// Listen for OS interrupts
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	// Block till we receive an interrupt
	<-c
	slog.Info("Received interrupt...")

	// Create a timeout
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	s.shutdown(ctx)
}

// shutdown shuts down the rest server
func (s *Server) shutdown(_ context.Context) {
	slog.Info("Gracefully shutting down REST server...")
	if err := s.srv.Shutdown(); err != nil {
		slog.Error("Failed to shutdown the server", slog.Any("error", err))
	}
	slog.Info("REST server shutdown!")
}
