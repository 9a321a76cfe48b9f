// Package client provides an HTTP client for the comment queue API.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/evcraddock/comment-queue/internal/comment"
)

// Client is an HTTP client for the comment queue API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// AddComment queues a comment on the server.
func (c *Client) AddComment(id int32, author, text string) error {
	body := comment.Comment{ID: id, Author: author, Text: text}
	return c.post("/api/comments", body, nil)
}

// PopNextText takes the oldest queued comment text from the server.
// It returns false when the queue is empty.
func (c *Client) PopNextText() (string, bool, error) {
	var resp struct {
		Text *string `json:"text"`
	}
	if err := c.post("/api/comments/pop", nil, &resp); err != nil {
		return "", false, err
	}
	if resp.Text == nil {
		return "", false, nil
	}
	return *resp.Text, true, nil
}

// Greet asks the server for a greeting addressed to name.
func (c *Client) Greet(name string) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.get("/api/greet?name="+url.QueryEscape(name), &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Health checks that the server is reachable.
func (c *Client) Health() error {
	return c.get("/health", nil)
}

// get performs a GET request and decodes the response.
func (c *Client) get(path string, result interface{}) error {
	req, err := http.NewRequest("GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, result)
}

// post performs a POST request with an optional JSON body and decodes the response.
func (c *Client) post(path string, body interface{}, result interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest("POST", c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, result)
}

// do executes an HTTP request and turns error responses into errors.
func (c *Client) do(req *http.Request, result interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			fmt.Printf("warning: closing response body: %v\n", cerr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return fmt.Errorf("%s", errResp.Error)
		}
		return fmt.Errorf("server error: %s", http.StatusText(resp.StatusCode))
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
