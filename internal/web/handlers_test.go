package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func getIndex(t *testing.T, srv *Server) string {
	t.Helper()
	r := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	return w.Body.String()
}

func postForm(t *testing.T, srv *Server, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)
	return w
}

func TestIndexInitialMessage(t *testing.T) {
	srv := testServer(t)

	body := getIndex(t, srv)
	if !strings.Contains(body, InitialMessage) {
		t.Errorf("expected initial message %q", InitialMessage)
	}
	if !strings.Contains(body, "add-comment-form") || !strings.Contains(body, "pop-comment-form") {
		t.Error("expected add and pop forms")
	}
}

func TestIndexNotFound(t *testing.T) {
	srv := testServer(t)

	r := httptest.NewRequest("GET", "/missing", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestPopEmptyShowsEmptyMessage(t *testing.T) {
	srv := testServer(t)

	w := postForm(t, srv, "/pop", url.Values{})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}

	body := getIndex(t, srv)
	if !strings.Contains(body, EmptyQueueMessage) {
		t.Errorf("expected empty queue message %q", EmptyQueueMessage)
	}
	if strings.Contains(body, InitialMessage) {
		t.Error("initial message should be replaced after pop")
	}
}

func TestAddThenPopShowsText(t *testing.T) {
	srv := testServer(t)

	for _, text := range []string{"first", "<b>second</b>"} {
		w := postForm(t, srv, "/add", url.Values{
			"id":     {"1"},
			"author": {"alice"},
			"text":   {text},
		})
		if w.Code != http.StatusSeeOther {
			t.Fatalf("add status = %d, want %d", w.Code, http.StatusSeeOther)
		}
	}

	postForm(t, srv, "/pop", url.Values{})
	if body := getIndex(t, srv); !strings.Contains(body, "<p>first</p>") {
		t.Errorf("expected first text shown, got %s", body)
	}

	postForm(t, srv, "/pop", url.Values{})
	body := getIndex(t, srv)
	if !strings.Contains(body, "&lt;b&gt;second&lt;/b&gt;") {
		t.Error("expected escaped second text shown")
	}

	postForm(t, srv, "/pop", url.Values{})
	if body := getIndex(t, srv); !strings.Contains(body, EmptyQueueMessage) {
		t.Errorf("expected empty queue message after drain")
	}
}

func TestAddFormSharesQueueWithAPI(t *testing.T) {
	srv := testServer(t)

	postForm(t, srv, "/add", url.Values{
		"id":     {"-3"},
		"author": {""},
		"text":   {"from form"},
	})

	got := popComment(t, srv)
	if got == nil || *got != "from form" {
		t.Errorf("api pop = %v, want %q", got, "from form")
	}
}

func TestAddFormRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
	}{
		{"non-numeric id", url.Values{"id": {"abc"}, "author": {"a"}, "text": {"t"}}},
		{"id overflow", url.Values{"id": {"2147483648"}, "author": {"a"}, "text": {"t"}}},
		{"missing id", url.Values{"author": {"a"}, "text": {"t"}}},
		{"missing author", url.Values{"id": {"1"}, "text": {"t"}}},
		{"missing text", url.Values{"id": {"1"}, "author": {"a"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := testServer(t)
			w := postForm(t, srv, "/add", tt.form)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
			if got := popComment(t, srv); got != nil {
				t.Errorf("pop = %q, want null", *got)
			}
		})
	}
}

func TestPageMethodNotAllowed(t *testing.T) {
	srv := testServer(t)

	for _, tt := range []struct{ method, path string }{
		{"GET", "/add"},
		{"GET", "/pop"},
		{"POST", "/"},
	} {
		r := httptest.NewRequest(tt.method, tt.path, nil)
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, r)
		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s %s status = %d, want %d", tt.method, tt.path, w.Code, http.StatusMethodNotAllowed)
		}
	}
}

func TestStaticStylesheet(t *testing.T) {
	srv := testServer(t)

	r := httptest.NewRequest("GET", "/static/style.css", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), ".card") {
		t.Error("expected stylesheet content")
	}
}
