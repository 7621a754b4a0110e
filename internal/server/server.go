package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"github.com/Zachkp/folio/internal/components"
	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/ui"
)

// Server serves the portfolio page and its static assets.
type Server struct {
	cfg    *config.Config
	store  *content.Store
	log    *zap.Logger
	media  content.MediaPolicy
	now    func() time.Time
	engine *gin.Engine
}

// New wires the gin engine. The caller sets gin's mode beforehand.
func New(cfg *config.Config, store *content.Store, log *zap.Logger) (*Server, error) {
	media, err := cfg.Media()
	if err != nil {
		return nil, err
	}
	hasher, err := newIPHasher()
	if err != nil {
		return nil, fmt.Errorf("seeding ip hasher: %w", err)
	}

	s := &Server{
		cfg:   cfg,
		store: store,
		log:   log,
		media: media,
		now:   time.Now,
	}

	r := gin.New()
	r.Use(recovery(log), requestLogger(log, hasher))

	for _, dir := range []string{"images", "videos", "files", "static"} {
		r.Static("/"+dir, filepath.Join(cfg.AssetsDir, dir))
	}

	r.GET("/", s.handlePage)
	r.GET("/health", s.handleHealth)
	r.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "404 page not found")
	})

	s.engine = r
	return s, nil
}

// Router exposes the engine for tests and embedding.
func (s *Server) Router() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", zap.String("addr", "http://localhost"+srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listening on %s: %w", srv.Addr, err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down", zap.Duration("timeout", s.cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

func (s *Server) options() components.Options {
	return components.Options{
		Linker: ui.QueryLinker{Path: "/"},
		Media:  s.media,
		Year:   s.now().Year(),
		Boost:  true,
	}
}

// handlePage renders the page for the state carried in the query string.
func (s *Server) handlePage(c *gin.Context) {
	state := ui.FromQuery(c.Request.URL.Query())
	page := components.Page(s.store.Current(), state, s.options())
	c.Render(http.StatusOK, nodeRender{node: page})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// nodeRender adapts a gomponents node to gin's render.Render.
type nodeRender struct {
	node g.Node
}

func (r nodeRender) Render(w http.ResponseWriter) error {
	r.WriteContentType(w)
	return r.node.Render(w)
}

func (r nodeRender) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = []string{"text/html; charset=utf-8"}
	}
}
