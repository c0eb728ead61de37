// Package client talks to the remote game server. The server owns all
// game logic; this client only ships configurations and slide
// directions over and mirrors back the authoritative state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"twenty48/internal/game"
)

const (
	createGamePath   = "/create_game/v1"
	performSlidePath = "/perform_slide/v1"

	DefaultTimeout = 10 * time.Second
)

// Client issues the two game-server operations against a base URL.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for the given base URL. A non-positive timeout
// falls back to DefaultTimeout.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// CreateGameResponse is the session descriptor minted by the server.
type CreateGameResponse struct {
	GameUUID string     `json:"game_uuid"`
	Game     game.State `json:"game"`
}

// PerformSlideResponse carries the full replacement state after a move.
type PerformSlideResponse struct {
	Game   game.State        `json:"game"`
	Reason game.SpawnOutcome `json:"reason"`
	Result game.Result       `json:"result"`
}

type performSlideRequest struct {
	GameUUID       string         `json:"game_uuid"`
	SlideDirection game.Direction `json:"slide_direction"`
}

// CreateGame starts a new game from cfg and returns the session token
// plus the initial state.
func (c *Client) CreateGame(ctx context.Context, cfg game.Config) (*CreateGameResponse, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	var resp CreateGameResponse
	if err := c.postJSON(ctx, createGamePath, cfg, &resp); err != nil {
		return nil, err
	}
	if resp.GameUUID == "" {
		return nil, fmt.Errorf("server returned an empty game_uuid")
	}
	return &resp, nil
}

// PerformSlide submits a move for an existing session. The direction
// must be one of up, down, left or right; the none sentinel is a
// programming error and is rejected before any network I/O.
func (c *Client) PerformSlide(ctx context.Context, gameUUID string, dir game.Direction) (*PerformSlideResponse, error) {
	if gameUUID == "" {
		return nil, fmt.Errorf("perform_slide requires a session token")
	}
	if !dir.Sendable() {
		return nil, fmt.Errorf("direction %q cannot be sent to the server", dir)
	}
	var resp PerformSlideResponse
	req := performSlideRequest{GameUUID: gameUUID, SlideDirection: dir}
	if err := c.postJSON(ctx, performSlidePath, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s: server returned %s: %s", path, resp.Status, strings.TrimSpace(string(snippet)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
