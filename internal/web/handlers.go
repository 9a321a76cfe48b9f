package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/evcraddock/comment-queue/internal/comment"
)

// Viewer page messages. They are shown verbatim to existing users.
const (
	InitialMessage    = "まだコメントはありません"
	EmptyQueueMessage = "キューは空っぽです"
)

// Defaults prefilled in the add form.
const (
	defaultFormID     = 1
	defaultFormAuthor = "テストユーザー"
	defaultFormText   = "こんにちは！Wasm！"
)

type indexData struct {
	Message string
	ID      int32
	Author  string
	Text    string
}

// handleIndex renders the viewer page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.render(w, "index.html", indexData{
		Message: s.currentMessage(),
		ID:      defaultFormID,
		Author:  defaultFormAuthor,
		Text:    defaultFormText,
	})
}

// handleAddPost queues a comment from the add form.
func (s *Server) handleAddPost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	for _, field := range []string{"id", "author", "text"} {
		if _, ok := r.PostForm[field]; !ok {
			http.Error(w, fmt.Sprintf("Missing field %q", field), http.StatusBadRequest)
			return
		}
	}

	id, err := strconv.ParseInt(r.PostForm.Get("id"), 10, 32)
	if err != nil {
		http.Error(w, "Invalid comment ID", http.StatusBadRequest)
		return
	}

	s.addComment(comment.Comment{
		ID:     int32(id),
		Author: r.PostForm.Get("author"),
		Text:   r.PostForm.Get("text"),
	})
	slog.Debug("comment queued", "id", id)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handlePopPost pops the next comment into the viewer message.
func (s *Server) handlePopPost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	found := s.popToMessage()
	slog.Debug("comment popped", "found", found)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// render executes the named template.
func (s *Server) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("Error rendering template: %v", err), http.StatusInternalServerError)
	}
}
