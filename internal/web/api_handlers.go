package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/evcraddock/comment-queue/internal/comment"
	"github.com/evcraddock/comment-queue/internal/greet"
)

// PopResponse is the body of POST /api/comments/pop.
// Text is null when the queue was empty.
type PopResponse struct {
	Text *string `json:"text"`
}

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	resp := map[string]string{"error": msg}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// handleAPIComments handles POST /api/comments.
func (s *Server) handleAPIComments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	c, err := decodeComment(r)
	if err != nil {
		apiError(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.addComment(c)
	slog.Debug("comment queued", "id", c.ID)

	apiJSON(w, map[string]string{"status": "queued"}, http.StatusCreated)
}

// handleAPIPop handles POST /api/comments/pop.
func (s *Server) handleAPIPop(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var resp PopResponse
	if text, ok := s.popNextText(); ok {
		resp.Text = &text
	}
	slog.Debug("comment popped", "found", resp.Text != nil)

	apiJSON(w, resp, http.StatusOK)
}

// handleAPIGreet handles GET /api/greet?name=X.
func (s *Server) handleAPIGreet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := r.URL.Query().Get("name")
	apiJSON(w, map[string]string{"message": greet.Greet(name)}, http.StatusOK)
}

// commentRequest is the wire form of a comment. Pointers tell an
// absent or null field apart from a zero value.
type commentRequest struct {
	ID     *int32  `json:"id"`
	Author *string `json:"author"`
	Text   *string `json:"text"`
}

// decodeComment reads a comment from the request body. A value of the
// wrong kind for any field is rejected here, before the queue sees it.
func decodeComment(r *http.Request) (comment.Comment, error) {
	dec := json.NewDecoder(r.Body)

	var req commentRequest
	if err := dec.Decode(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return comment.Comment{}, fmt.Errorf("invalid value for field %q: expected %s", typeErr.Field, typeErr.Type)
		}
		return comment.Comment{}, errors.New("invalid request body")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return comment.Comment{}, errors.New("invalid request body: unexpected data after comment")
	}

	switch {
	case req.ID == nil:
		return comment.Comment{}, errors.New(`field "id" is required and must be an integer`)
	case req.Author == nil:
		return comment.Comment{}, errors.New(`field "author" is required and must be a string`)
	case req.Text == nil:
		return comment.Comment{}, errors.New(`field "text" is required and must be a string`)
	}

	return comment.Comment{ID: *req.ID, Author: *req.Author, Text: *req.Text}, nil
}
