// Package server exposes the HTTP API: login, chat, audio upload, menu
// catalog CRUD, and kitchen order management.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/solvelysaid/orderdesk/internal/menu"
	"github.com/solvelysaid/orderdesk/internal/notify"
	"github.com/solvelysaid/orderdesk/internal/order"
	"github.com/solvelysaid/orderdesk/internal/transcribe"
)

// ChatEngine processes one utterance for a session. Implemented by
// chat.Engine; abstracted here so handlers can be tested with a fake.
type ChatEngine interface {
	Process(ctx context.Context, sessionID, text, lang string) (string, error)
}

// Server holds the wired collaborators behind the HTTP handlers.
type Server struct {
	engine      ChatEngine
	transcriber transcribe.Transcriber
	menus       *menu.Repo
	orders      *order.Repo
	notifier    notify.Notifier

	password  string
	uploadDir string
	origins   []string
	port      int
	maxAge    time.Duration
}

// Opts holds parameters for creating a Server.
type Opts struct {
	Engine      ChatEngine
	Transcriber transcribe.Transcriber
	Menus       *menu.Repo
	Orders      *order.Repo
	// Notifier receives newly placed orders. Optional; nil disables
	// notifications.
	Notifier notify.Notifier

	LoginPassword  string
	UploadDir      string
	AllowedOrigins []string
	Port           int
	// MaxOrderAge is the threshold used by the manual cleanup endpoint.
	MaxOrderAge time.Duration
}

// New creates a Server.
func New(opts Opts) (*Server, error) {
	if opts.Engine == nil {
		return nil, fmt.Errorf("server: engine is required")
	}
	if opts.Transcriber == nil {
		return nil, fmt.Errorf("server: transcriber is required")
	}
	if opts.Menus == nil {
		return nil, fmt.Errorf("server: menu repo is required")
	}
	if opts.Orders == nil {
		return nil, fmt.Errorf("server: order repo is required")
	}
	if opts.Port <= 0 {
		opts.Port = 5000
	}
	if opts.UploadDir == "" {
		opts.UploadDir = "uploads"
	}
	if opts.MaxOrderAge <= 0 {
		opts.MaxOrderAge = 6 * time.Hour
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.NewMulti()
	}
	return &Server{
		engine:      opts.Engine,
		transcriber: opts.Transcriber,
		menus:       opts.Menus,
		orders:      opts.Orders,
		notifier:    notifier,
		password:    opts.LoginPassword,
		uploadDir:   opts.UploadDir,
		origins:     opts.AllowedOrigins,
		port:        opts.Port,
		maxAge:      opts.MaxOrderAge,
	}, nil
}

// Router builds the gin handler with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware(s.origins))
	s.registerRoutes(router)
	return router
}

// Start runs the HTTP server. It blocks until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
