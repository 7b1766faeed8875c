package dev

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pagecraft-dev/pagecraft/pkg/middleware"
)

// reloadScript is injected into served HTML pages. It reconnects with a
// short backoff so a server restart does not strand the browser, and shows
// a full-screen overlay for error messages until a clear arrives.
const reloadScript = `<script>
(function () {
  function showOverlay(error) {
    clearOverlay();
    var overlay = document.createElement("div");
    overlay.id = "pagecraft-error-overlay";
    overlay.style.cssText = "position:fixed;top:0;left:0;right:0;bottom:0;background:rgba(0,0,0,0.9);color:#fff;font-family:monospace;font-size:14px;padding:20px;overflow:auto;z-index:999999;";
    var pre = document.createElement("pre");
    pre.style.cssText = "white-space:pre-wrap;word-wrap:break-word;";
    pre.textContent = error;
    overlay.appendChild(pre);
    document.body.appendChild(overlay);
  }
  function clearOverlay() {
    var overlay = document.getElementById("pagecraft-error-overlay");
    if (overlay) overlay.remove();
  }
  function connect() {
    var ws = new WebSocket("ws://" + location.host + "/_pagecraft/reload");
    ws.onmessage = function (ev) {
      var msg = JSON.parse(ev.data);
      switch (msg.type) {
        case "reload":
          location.reload();
          break;
        case "error":
          showOverlay(msg.error);
          break;
        case "clear":
          clearOverlay();
          break;
      }
    };
    ws.onclose = function () { setTimeout(connect, 1000); };
  }
  connect();
})();
</script>`

// ServerConfig configures the preview server.
type ServerConfig struct {
	// Host is the interface to bind to.
	Host string

	// Port is the port to listen on.
	Port int

	// Dir is the built output directory to serve.
	Dir string

	// Ignore lists extra watcher ignore patterns.
	Ignore []string

	// Logger is used for request and lifecycle logging.
	Logger *slog.Logger
}

// Server serves a built site directory with live reload.
type Server struct {
	config  ServerConfig
	logger  *slog.Logger
	reload  *ReloadServer
	watcher *Watcher
	httpSrv *http.Server
}

// NewServer creates a preview server for the given configuration.
func NewServer(config ServerConfig) *Server {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		config: config,
		logger: logger,
		reload: NewReloadServer(),
		watcher: NewWatcher(WatcherConfig{
			Paths:    []string{config.Dir},
			Ignore:   append(append([]string{}, DefaultIgnore...), config.Ignore...),
			Debounce: 250 * time.Millisecond,
		}),
	}

	r := chi.NewRouter()
	r.Use(middleware.Metrics())
	r.Use(middleware.Tracing(
		middleware.WithRequestFilter(func(req *http.Request) bool {
			return req.URL.Path != "/metrics" && !strings.HasPrefix(req.URL.Path, "/_pagecraft/")
		}),
	))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/_pagecraft/reload", s.reload.HandleWebSocket)
	r.NotFound(s.serveFile)

	s.httpSrv = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", config.Host, config.Port),
		Handler: r,
	}
	return s
}

// Run starts the watcher and the HTTP server, blocking until the context is
// cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.watcher.OnChange(func(c Change) {
		s.logger.Info("file changed", "path", c.Path)
		if _, err := os.Stat(s.config.Dir); err != nil {
			s.reload.NotifyError(fmt.Sprintf("output directory %s is gone; rebuild the site", s.config.Dir))
			return
		}
		s.reload.ClearError()
		s.reload.NotifyReload(filepath.Base(c.Path))
	})

	go s.watcher.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening",
			"addr", s.httpSrv.Addr, "dir", s.config.Dir)
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.watcher.Stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.httpSrv.Shutdown(shutdownCtx)
}

// Handler returns the server's HTTP handler, for tests.
func (s *Server) Handler() http.Handler { return s.httpSrv.Handler }

// serveFile serves a file from the output directory. HTML responses get the
// live-reload script appended; directory requests fall back to index.html.
func (s *Server) serveFile(w http.ResponseWriter, r *http.Request) {
	rel := strings.TrimPrefix(filepath.Clean("/"+r.URL.Path), "/")
	if rel == "" || rel == "." {
		rel = "index.html"
	}

	path := filepath.Join(s.config.Dir, filepath.FromSlash(rel))
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		path = filepath.Join(path, "index.html")
		info, err = os.Stat(path)
	}
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if !strings.HasSuffix(path, ".html") {
		http.ServeFile(w, r, path)
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		s.reload.NotifyError(fmt.Sprintf("reading %s: %v", rel, err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	buf.Grow(len(data) + len(reloadScript))
	buf.Write(data)
	buf.WriteString(reloadScript)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	http.ServeContent(w, r, path, info.ModTime(), bytes.NewReader(buf.Bytes()))
}
