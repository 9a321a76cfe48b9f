// Package web provides the HTTP host for the comment queue.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"

	"github.com/evcraddock/comment-queue/internal/comment"
	"github.com/evcraddock/comment-queue/internal/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Server owns a single comment queue and exposes it over HTTP.
type Server struct {
	mu      sync.Mutex // guards queue and message
	queue   *comment.Queue
	message string // last text shown on the viewer page

	templates *template.Template
	mux       *http.ServeMux
}

// NewServer creates a server with an empty queue.
func NewServer() (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	s := &Server{
		queue:     comment.NewQueue(),
		message:   InitialMessage,
		templates: tmpl,
		mux:       http.NewServeMux(),
	}

	staticContent, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("creating static sub-fs: %w", err)
	}

	s.mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticContent))))
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/add", s.handleAddPost)
	s.mux.HandleFunc("/pop", s.handlePopPost)
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/comments", s.handleAPIComments)
	s.mux.HandleFunc("/api/comments/pop", s.handleAPIPop)
	s.mux.HandleFunc("/api/greet", s.handleAPIGreet)

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server with request logging.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	slog.Info("starting comment queue server", "addr", addr)
	return http.ListenAndServe(addr, logging.RequestLogger(s))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		slog.Error("writing health response", "error", err)
	}
}

// addComment and popNextText are the only paths into the queue.
func (s *Server) addComment(c comment.Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.AddComment(c.ID, c.Author, c.Text)
}

func (s *Server) popNextText() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.PopNextText()
}

// popToMessage pops the next text into the viewer message.
func (s *Server) popToMessage() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	text, ok := s.queue.PopNextText()
	if ok {
		s.message = text
	} else {
		s.message = EmptyQueueMessage
	}
	return ok
}

func (s *Server) currentMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}
