// Package tui is the terminal front end: the configuration form, the
// board renderer and the session controller. All game logic lives on
// the server; this model only mirrors the state it is sent.
package tui

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"twenty48/internal/client"
	"twenty48/internal/config"
	"twenty48/internal/game"
	"twenty48/internal/scores"
)

// GameClient is the slice of the network layer the controller uses.
type GameClient interface {
	CreateGame(ctx context.Context, cfg game.Config) (*client.CreateGameResponse, error)
	PerformSlide(ctx context.Context, gameUUID string, dir game.Direction) (*client.PerformSlideResponse, error)
}

type sessionState int

const (
	stateConfig sessionState = iota
	stateCreating
	statePlaying
	stateConfirmReset
	stateGameOver
)

type model struct {
	state  sessionState
	client GameClient

	form    configForm
	gameCfg game.Config // config the current session was created with

	gameUUID  string
	gameState *game.State

	// generation guards against responses from abandoned sessions;
	// nextSeq/appliedSeq guard against overlapping moves resolving out
	// of issue order.
	generation int
	nextSeq    int
	appliedSeq int
	inFlight   int

	moveLog  string
	viewport viewport.Model
	spin     spinner.Model

	err    error  // creation failure, shown on the config screen
	notice string // non-fatal move failures

	scores    *scores.Table
	scorePath string
	newBest   bool

	width  int
	height int
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Width(24)

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#EEEEEE")).
				Bold(true).
				Width(24)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)
)

func newModel(cfg *config.Config, cli GameClient, table *scores.Table) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return model{
		state:     stateConfig,
		client:    cli,
		form:      newConfigForm(cfg.DefaultGame),
		gameCfg:   cfg.DefaultGame,
		spin:      sp,
		scores:    table,
		scorePath: cfg.ScoreFile,
		viewport:  viewport.New(34, 12),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

// Messages carried back from the asynchronous network calls. Each one
// is stamped with the generation (and sequence, for slides) it was
// issued under so stale arrivals can be discarded.

type gameCreatedMsg struct {
	generation int
	resp       *client.CreateGameResponse
}

type createFailedMsg struct {
	generation int
	err        error
}

type slideResolvedMsg struct {
	generation int
	seq        int
	dir        game.Direction
	resp       *client.PerformSlideResponse
}

type slideFailedMsg struct {
	generation int
	seq        int
	dir        game.Direction
	err        error
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if msg.Height > 16 {
			m.viewport.Height = msg.Height - 12
		}
		return m, nil

	case spinner.TickMsg:
		if m.state != stateCreating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case gameCreatedMsg:
		if msg.generation != m.generation || m.state != stateCreating {
			return m, nil
		}
		m.state = statePlaying
		m.gameUUID = msg.resp.GameUUID
		st := msg.resp.Game
		m.gameState = &st
		m.appliedSeq = 0
		m.nextSeq = 0
		m.inFlight = 0
		m.newBest = false
		m.moveLog = ""
		m.appendLog(fmt.Sprintf("new %dx%d game", m.gameCfg.GridSize, m.gameCfg.GridSize))
		return m, nil

	case createFailedMsg:
		if msg.generation != m.generation || m.state != stateCreating {
			return m, nil
		}
		// A failed creation lands back on the editable form instead of
		// a stuck "started" screen.
		m.state = stateConfig
		m.err = msg.err
		m.gameUUID = ""
		m.gameState = nil
		return m, nil

	case slideResolvedMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		if m.state != statePlaying && m.state != stateConfirmReset {
			return m, nil
		}
		m.inFlight--
		if msg.seq <= m.appliedSeq {
			log.Printf("discarding stale response for move %d (%s); already at move %d", msg.seq, msg.dir, m.appliedSeq)
			return m, nil
		}
		m.appliedSeq = msg.seq
		st := msg.resp.Game
		m.gameState = &st
		m.notice = ""
		m.appendLog(fmt.Sprintf("%-5s  score %d  spawn: %s", msg.dir, st.Score, msg.resp.Reason))
		if msg.resp.Result == game.ResultGameOver {
			m.state = stateGameOver
			m.recordScore(st.Score)
		}
		return m, nil

	case slideFailedMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		m.inFlight--
		// The board keeps its last known state; the player is told the
		// move went nowhere.
		m.notice = fmt.Sprintf("move %s dropped: %v", msg.dir, msg.err)
		log.Printf("move %d (%s) failed: %v", msg.seq, msg.dir, msg.err)
		return m, nil
	}

	if m.state == stateConfig {
		return m, m.form.update(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateConfig:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab, tea.KeyDown:
			m.form.next()
			return m, nil
		case tea.KeyShiftTab, tea.KeyUp:
			m.form.prev()
			return m, nil
		case tea.KeyEnter:
			if !m.form.onLastField() {
				m.form.next()
				return m, nil
			}
			return m.startGame()
		}
		return m, m.form.update(msg)

	case stateCreating:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}

	case statePlaying:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyUp:
			return m.issueSlide(game.DirUp)
		case tea.KeyDown:
			return m.issueSlide(game.DirDown)
		case tea.KeyLeft:
			return m.issueSlide(game.DirLeft)
		case tea.KeyRight:
			return m.issueSlide(game.DirRight)
		}
		if msg.String() == "r" {
			m.state = stateConfirmReset
		}

	case stateConfirmReset:
		switch msg.String() {
		case "y":
			return m.reset(), nil
		case "n", "esc":
			m.state = statePlaying
		case "ctrl+c":
			return m, tea.Quit
		}

	case stateGameOver:
		switch msg.String() {
		case "n", "enter":
			return m.reset(), nil
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) startGame() (tea.Model, tea.Cmd) {
	cfg, err := m.form.config()
	if err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.gameCfg = cfg
	m.state = stateCreating
	return m, tea.Batch(m.spin.Tick, m.createGame(m.generation, cfg))
}

func (m model) issueSlide(dir game.Direction) (tea.Model, tea.Cmd) {
	m.nextSeq++
	m.inFlight++
	return m, m.performSlide(m.generation, m.nextSeq, dir)
}

// reset abandons the current session: it never contacts the server,
// and bumping the generation makes any in-flight response land dead.
func (m model) reset() model {
	m.generation++
	m.state = stateConfig
	m.gameUUID = ""
	m.gameState = nil
	m.appliedSeq = 0
	m.nextSeq = 0
	m.inFlight = 0
	m.newBest = false
	m.notice = ""
	m.err = nil
	m.moveLog = ""
	m.form.focusFirst()
	return m
}

func (m *model) recordScore(score int) {
	if m.scores == nil {
		return
	}
	if m.scores.Record(m.gameCfg.GridSize, score) {
		m.newBest = true
		if err := m.scores.Save(m.scorePath); err != nil {
			log.Printf("failed to save scores: %v", err)
		}
	}
}

func (m *model) appendLog(line string) {
	m.moveLog += line + "\n"
	m.viewport.SetContent(m.moveLog)
	m.viewport.GotoBottom()
}

func (m model) createGame(generation int, cfg game.Config) tea.Cmd {
	return func() tea.Msg {
		resp, err := m.client.CreateGame(context.Background(), cfg)
		if err != nil {
			return createFailedMsg{generation: generation, err: err}
		}
		return gameCreatedMsg{generation: generation, resp: resp}
	}
}

func (m model) performSlide(generation, seq int, dir game.Direction) tea.Cmd {
	gameUUID := m.gameUUID
	return func() tea.Msg {
		resp, err := m.client.PerformSlide(context.Background(), gameUUID, dir)
		if err != nil {
			return slideFailedMsg{generation: generation, seq: seq, dir: dir, err: err}
		}
		return slideResolvedMsg{generation: generation, seq: seq, dir: dir, resp: resp}
	}
}

// displayGrid is what the board renderer draws: the server's grid
// during a session, or the all-zero placeholder at the configured size
// before one starts.
func (m model) displayGrid() ([][]int, []game.SpawnLocation) {
	if m.gameState != nil {
		return m.gameState.Grid, m.gameState.LatestSpawnLocations
	}
	size := m.gameCfg.GridSize
	if v, ok := m.form.gridSize(); ok {
		size = v
	}
	if size <= 0 {
		size = 4
	}
	return game.PlaceholderGrid(size), nil
}

func (m model) View() string {
	var s string

	switch m.state {
	case stateConfig:
		grid, _ := m.displayGrid()
		form := titleStyle.Render("TWENTY48") + "\n\n" + m.form.view()
		if m.err != nil {
			form += "\n" + errStyle.Render("Error: "+m.err.Error())
		}
		s = lipgloss.JoinHorizontal(lipgloss.Top, renderBoard(grid, nil), "   ", form)
		s += "\n\n" + helpStyle.Render("tab/enter: next field · enter on last field: start · esc: quit")

	case stateCreating:
		s = fmt.Sprintf("\n %s Creating game...\n", m.spin.View())

	case statePlaying, stateConfirmReset, stateGameOver:
		grid, spawns := m.displayGrid()
		s = lipgloss.JoinHorizontal(lipgloss.Top, renderBoard(grid, spawns), m.sidePanel())

		switch m.state {
		case stateConfirmReset:
			s += "\n" + promptStyle.Render("Abandon this game? (y/n)")
		case stateGameOver:
			over := fmt.Sprintf("GAME OVER — final score %d", m.currentScore())
			if m.newBest {
				over += "  ★ new best"
			}
			s += "\n" + promptStyle.Render(over)
			s += "\n" + helpStyle.Render("n: new game · q: quit")
		default:
			s += "\n" + helpStyle.Render("arrows: slide · r: reset · esc: quit")
		}
		if m.notice != "" {
			s += "\n" + errStyle.Render(m.notice)
		}
	}

	return "\n" + s + "\n"
}

func (m model) currentScore() int {
	if m.gameState == nil {
		return 0
	}
	return m.gameState.Score
}

func (m model) sidePanel() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("SCORE") + "\n")
	fmt.Fprintf(&b, "%d\n", m.currentScore())
	if m.scores != nil {
		if best := m.scores.BestFor(m.gameCfg.GridSize); best > 0 {
			fmt.Fprintf(&b, "best: %d\n", best)
		}
	}
	b.WriteString("\n")

	if m.gameState != nil && m.gameState.LatestSpawnResult != "" {
		b.WriteString(titleStyle.Render("SPAWN") + "\n")
		fmt.Fprintf(&b, "%s\n\n", m.gameState.LatestSpawnResult)
	}

	if m.inFlight > 0 {
		fmt.Fprintf(&b, "%d move(s) in flight\n\n", m.inFlight)
	}

	b.WriteString(titleStyle.Render("MOVES") + "\n")
	b.WriteString(m.viewport.View())

	return panelStyle.Render(b.String())
}

// Run starts the interactive program.
func Run(cfg *config.Config, cli GameClient, table *scores.Table) error {
	p := tea.NewProgram(newModel(cfg, cli, table), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
