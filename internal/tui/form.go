package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"twenty48/internal/game"
)

type fieldKind int

const (
	fieldInt fieldKind = iota
	fieldFloat
	fieldBool
)

type formField struct {
	label string
	kind  fieldKind
	input textinput.Model
}

// configForm edits the eight game-configuration fields before a game
// starts.
type configForm struct {
	fields []formField
	focus  int
}

func newConfigForm(cfg game.Config) configForm {
	defs := []struct {
		label string
		kind  fieldKind
		value string
	}{
		{"Grid size", fieldInt, strconv.Itoa(cfg.GridSize)},
		{"Root tile value", fieldInt, strconv.Itoa(cfg.RootTileValue)},
		{"Spawn tiles per move", fieldInt, strconv.Itoa(cfg.SpawnTileCount)},
		{"Starting tiles", fieldInt, strconv.Itoa(cfg.StartingTileCount)},
		{"Win tile value", fieldInt, strconv.Itoa(cfg.WinTileValue)},
		{"Mutation probability", fieldFloat, strconv.FormatFloat(cfg.MutationProbability, 'g', -1, 64)},
		{"Mutation at start", fieldBool, strconv.FormatBool(cfg.MutationAtStart)},
		{"Spawn kill", fieldBool, strconv.FormatBool(cfg.SpawnKill)},
	}

	f := configForm{fields: make([]formField, len(defs))}
	for i, def := range defs {
		ti := textinput.New()
		ti.SetValue(def.value)
		ti.CharLimit = 12
		ti.Width = 10
		ti.Prompt = ""
		f.fields[i] = formField{label: def.label, kind: def.kind, input: ti}
	}
	f.fields[0].input.Focus()
	return f
}

func (f *configForm) next() {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + 1) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f *configForm) prev() {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + len(f.fields) - 1) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f *configForm) focusFirst() {
	f.fields[f.focus].input.Blur()
	f.focus = 0
	f.fields[0].input.Focus()
}

func (f *configForm) onLastField() bool {
	return f.focus == len(f.fields)-1
}

func (f *configForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

func (f *configForm) setValue(i int, value string) {
	f.fields[i].input.SetValue(value)
}

// config parses the form into a validated game.Config.
func (f *configForm) config() (game.Config, error) {
	var cfg game.Config
	dests := []struct {
		kind  fieldKind
		intp  *int
		fltp  *float64
		boolp *bool
	}{
		{kind: fieldInt, intp: &cfg.GridSize},
		{kind: fieldInt, intp: &cfg.RootTileValue},
		{kind: fieldInt, intp: &cfg.SpawnTileCount},
		{kind: fieldInt, intp: &cfg.StartingTileCount},
		{kind: fieldInt, intp: &cfg.WinTileValue},
		{kind: fieldFloat, fltp: &cfg.MutationProbability},
		{kind: fieldBool, boolp: &cfg.MutationAtStart},
		{kind: fieldBool, boolp: &cfg.SpawnKill},
	}

	for i, dest := range dests {
		raw := strings.TrimSpace(f.fields[i].input.Value())
		switch dest.kind {
		case fieldInt:
			v, err := strconv.Atoi(raw)
			if err != nil {
				return cfg, fmt.Errorf("%s: %q is not a whole number", f.fields[i].label, raw)
			}
			*dest.intp = v
		case fieldFloat:
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return cfg, fmt.Errorf("%s: %q is not a number", f.fields[i].label, raw)
			}
			*dest.fltp = v
		case fieldBool:
			v, err := strconv.ParseBool(raw)
			if err != nil {
				return cfg, fmt.Errorf("%s: %q is not true or false", f.fields[i].label, raw)
			}
			*dest.boolp = v
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// gridSize parses just the grid-size field, for sizing the placeholder
// board while the rest of the form may still be invalid.
func (f *configForm) gridSize() (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(f.fields[0].input.Value()))
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

func (f *configForm) view() string {
	var b strings.Builder
	for i, field := range f.fields {
		label := field.label
		if i == f.focus {
			label = focusedLabelStyle.Render("> " + label)
		} else {
			label = labelStyle.Render("  " + label)
		}
		fmt.Fprintf(&b, "%s %s\n", label, field.input.View())
	}
	return b.String()
}
