// Package client talks to a remote weekdeck server. It implements the
// same store contract as the local database, so a board can be backed
// by either interchangeably.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/existflow/weekdeck/internal/board"
	"github.com/existflow/weekdeck/internal/model"
)

// Client is a REST client for the task server
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the given server URL
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Ping checks that the server is reachable
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server unhealthy: %s", resp.Status)
	}
	return nil
}

// ListTasks fetches all tasks from the server
func (c *Client) ListTasks(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := c.do(ctx, http.MethodGet, "/api/v1/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask stores a new task on the server
func (c *Client) CreateTask(ctx context.Context, t model.Task) (model.Task, error) {
	var stored model.Task
	if err := c.do(ctx, http.MethodPost, "/api/v1/tasks", t, &stored); err != nil {
		return model.Task{}, err
	}
	return stored, nil
}

// UpdateTask replaces the stored task with the given id
func (c *Client) UpdateTask(ctx context.Context, t model.Task) (model.Task, error) {
	var stored model.Task
	if err := c.do(ctx, http.MethodPut, "/api/v1/tasks/"+t.ID, t, &stored); err != nil {
		return model.Task{}, err
	}
	return stored, nil
}

// DeleteTask removes the task with the given id
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/tasks/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return board.ErrNotFound
	case resp.StatusCode >= 400:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s %s failed: %s", method, path, string(respBody))
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
