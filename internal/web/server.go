package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"slidedeck/internal/deck"
	"slidedeck/internal/input"
	"slidedeck/internal/nav"
	"slidedeck/internal/render"
	"slidedeck/internal/telemetry"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/websocket"
)

// Options holds server configuration.
type Options struct {
	Addr           string
	AllowedOrigins []string // CORS and websocket origins; "*" allows all
	Language       string   // document language, overrides the deck's
	Labels         render.Labels
	Telemetry      *telemetry.Provider
	Verbose        bool
}

// Server serves one deck to any number of browsers, each with its own
// position.
type Server struct {
	opts     Options
	deck     *deck.Deck
	labels   render.Labels
	mapper   *input.Mapper
	upgrader websocket.Upgrader
	router   chi.Router

	mu         sync.Mutex
	sessions   map[string]*session
	httpServer *http.Server
}

// New creates a server for d.
func New(d *deck.Deck, opts Options) (*Server, error) {
	if d == nil || d.Len() == 0 {
		return nil, deck.ErrEmptyDeck
	}
	if opts.Labels == (render.Labels{}) {
		opts.Labels = render.LabelsFor(d.Meta().Language)
	}
	s := &Server{
		opts:     opts,
		deck:     d,
		labels:   opts.Labels,
		mapper:   input.NewMapper(),
		sessions: make(map[string]*session),
	}
	s.upgrader = websocket.Upgrader{CheckOrigin: s.checkOrigin}
	s.router = s.buildRouter()
	return s, nil
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", s.handleIndex)
	r.Get("/ws", s.handleWebSocket)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	return r
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// Sessions returns the number of open websocket sessions.
func (s *Server) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	// Every page load starts on the first slide; the websocket session
	// takes over from there.
	start, err := nav.New(s.deck.Len())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	meta := s.deck.Meta()
	lang := s.opts.Language
	if lang == "" {
		lang = meta.Language
	}
	page, err := RenderPage(PageData{
		Language:    lang,
		Title:       meta.Title,
		Description: meta.Description,
		Keys:        s.mapper.BoundKeys(),
		Suppressed:  s.mapper.SuppressedKeys(),
	}, render.Shell(s.deck, start, s.labels))
	if err != nil {
		log.Printf("web: index: %v", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("web: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	id := middleware.GetReqID(r.Context())
	sess, err := newSession(s, conn, id)
	if err != nil {
		log.Printf("web: %v", err)
		return
	}
	s.track(sess)
	defer s.untrack(sess)

	sess.run()
}

func (s *Server) track(sess *session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.id] = sess
}

func (s *Server) untrack(sess *session) {
	sess.close()
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sess.id)
}

// checkOrigin accepts same-host pages and the configured origins. Patterns
// may end in ":*" to allow any port.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if strings.EqualFold(u.Host, r.Host) {
		return true
	}
	for _, allowed := range s.opts.AllowedOrigins {
		switch {
		case allowed == "*":
			return true
		case strings.HasSuffix(allowed, ":*"):
			if strings.EqualFold(u.Scheme+"://"+u.Hostname(), strings.TrimSuffix(allowed, ":*")) {
				return true
			}
		case strings.EqualFold(allowed, origin):
			return true
		}
	}
	return false
}

// Start begins listening on the configured address. It returns
// http.ErrServerClosed after Shutdown.
func (s *Server) Start() error {
	s.mu.Lock()
	s.httpServer = &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	srv := s.httpServer
	s.mu.Unlock()

	log.Printf("slidedeck server listening on %s", s.opts.Addr)
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("listen %s: %w", s.opts.Addr, err)
	}
	return nil
}

// Shutdown gracefully shuts down the server. Hijacked websocket connections
// are not tracked by http.Server, so open sessions are closed here.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.httpServer
	for _, sess := range s.sessions {
		sess.conn.Close()
	}
	s.mu.Unlock()
	if srv != nil {
		return srv.Shutdown(ctx)
	}
	return nil
}
