// Package stubserver is a scripted stand-in for the real game server.
// It implements the create_game and perform_slide endpoints by
// replaying a fixed sequence of states from a YAML script, so the
// client can be exercised offline. It contains no tile-merge, spawn or
// win logic of its own.
package stubserver

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"twenty48/internal/game"
)

//go:embed default_script.yaml
var defaultScript []byte

// Step is one scripted perform_slide response. Every slide advances
// the session to its next step; once the script is exhausted the final
// step repeats.
type Step struct {
	Game   game.State        `yaml:"game"`
	Reason game.SpawnOutcome `yaml:"reason"`
	Result game.Result       `yaml:"result"`
}

// Script is a canned game: the state returned at creation plus the
// responses to successive slides.
type Script struct {
	Initial game.State `yaml:"initial"`
	Steps   []Step     `yaml:"steps"`
}

// LoadScript reads a script from a YAML file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script %s: %w", path, err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("script %s has no steps", path)
	}
	return &s, nil
}

// DefaultScript returns the embedded demo script.
func DefaultScript() *Script {
	var s Script
	if err := yaml.Unmarshal(defaultScript, &s); err != nil {
		panic(fmt.Sprintf("embedded script is invalid: %v", err))
	}
	return &s
}

// Server replays a Script, tracking each session's position in it.
type Server struct {
	script *Script

	mu       sync.Mutex
	sessions map[string]int
}

func New(script *Script) *Server {
	return &Server{
		script:   script,
		sessions: make(map[string]int),
	}
}

// Router returns the HTTP surface: the two POST endpoints the real
// server exposes.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Post("/create_game/v1", s.handleCreateGame)
	r.Post("/perform_slide/v1", s.handlePerformSlide)
	return r
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var cfg game.Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := cfg.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = 0
	s.mu.Unlock()

	// The scripted grids stay as authored; only the config echoes the
	// caller's request.
	initial := s.script.Initial
	initial.Config = cfg

	writeJSON(w, map[string]any{
		"game_uuid": id,
		"game":      initial,
	})
}

func (s *Server) handlePerformSlide(w http.ResponseWriter, r *http.Request) {
	var req struct {
		GameUUID       string         `json:"game_uuid"`
		SlideDirection game.Direction `json:"slide_direction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !req.SlideDirection.Sendable() {
		http.Error(w, fmt.Sprintf("invalid slide_direction %q", req.SlideDirection), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	idx, ok := s.sessions[req.GameUUID]
	if ok {
		s.sessions[req.GameUUID] = idx + 1
	}
	s.mu.Unlock()
	if !ok {
		http.Error(w, "unknown game_uuid", http.StatusNotFound)
		return
	}

	if idx >= len(s.script.Steps) {
		idx = len(s.script.Steps) - 1
	}
	step := s.script.Steps[idx]

	writeJSON(w, map[string]any{
		"game":   step.Game,
		"reason": step.Reason,
		"result": step.Result,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(v)
}
