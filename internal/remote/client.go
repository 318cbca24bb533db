package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is the HTTP implementation of Store and Probe.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a client for the remote entry store.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type createEntryResponse struct {
	ID string `json:"id"`
}

// CreateEntry persists an entry remotely and returns the server id.
// Includes retry logic with exponential backoff (up to 3 attempts).
func (c *Client) CreateEntry(ctx context.Context, e Entry) (string, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("marshaling entry: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 1s, 2s
			backoff := time.Duration(1<<uint(attempt-1)) * time.Second
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		id, err := c.doCreate(ctx, body)
		if err == nil {
			return id, nil
		}
		lastErr = err
	}

	return "", fmt.Errorf("after 3 attempts: %w", lastErr)
}

func (c *Client) doCreate(ctx context.Context, body []byte) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/entries", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("remote store returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var created createEntryResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if created.ID == "" {
		return "", fmt.Errorf("remote store returned no entry id")
	}

	return created.ID, nil
}

// SetActionCompleted flips the action flag on a persisted entry.
func (c *Client) SetActionCompleted(ctx context.Context, userID, entryID string, completed bool) error {
	body, err := json.Marshal(map[string]any{
		"user_id":          userID,
		"action_completed": completed,
	})
	if err != nil {
		return fmt.Errorf("marshaling update: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "PATCH", c.baseURL+"/entries/"+entryID, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("remote store returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}
	return nil
}

// Online probes reachability of the remote store. This is the engine's
// connectivity signal; the probe uses its own short timeout.
func (c *Client) Online(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}
