// ============================================================================
// SnakeMath - Numerical Mathematics Engine
// ============================================================================
//
// Package:     explorer
// Description: Interactive terminal explorer for limits, derivatives and
//              Riemann sums of catalog functions
// Created:     2026-03-18
// License:     MIT
// ============================================================================

package explorer

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	smlog "github.com/Cal-ly/SnakeMath-sub002/foundation/core/log"
	"github.com/Cal-ly/SnakeMath-sub002/foundation/utils/mathx"
	"github.com/Cal-ly/SnakeMath-sub002/internal/tui"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/core/version"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/catalog"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/derivative"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/integral"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/limit"
)

// Step bounds for the difference quotient
const (
	MinStep = 1e-10
	MaxStep = 1.0
)

var methods = []derivative.Method{derivative.Central, derivative.Forward, derivative.Backward}

// ViewMode is the current screen
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewExplore
)

// Config holds the explorer configuration
type Config struct {
	Engine *engine.Engine
	Logger *smlog.Logger

	// Function preselects a catalog ID and skips the list
	Function string
	X        float64
}

type functionItem struct {
	fn *catalog.Function
}

func (i functionItem) Title() string       { return i.fn.Name }
func (i functionItem) Description() string { return i.fn.Notation }
func (i functionItem) FilterValue() string { return i.fn.ID + " " + i.fn.Name }

// Model is the Bubble Tea model of the explorer
type Model struct {
	width, height int

	eng    *engine.Engine
	logger *smlog.Logger

	viewMode ViewMode
	list     list.Model
	keys     keyMap
	help     help.Model

	in   inputs
	seq  int
	snap *snapshot
}

// New creates the explorer model
func New(cfg Config) (Model, error) {
	eng := cfg.Engine
	if eng == nil {
		var err error
		if eng, err = engine.New(nil, nil, cfg.Logger); err != nil {
			return Model{}, err
		}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = smlog.Discard()
	}

	items := make([]list.Item, 0, eng.Catalog().Len())
	for _, fn := range eng.Catalog().All() {
		items = append(items, functionItem{fn: fn})
	}
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(tui.ColorPrimary).BorderForeground(tui.ColorPrimary)
	fnList := list.New(items, delegate, 0, 0)
	fnList.Title = "Functions"
	fnList.Styles.Title = tui.TitleStyle
	fnList.SetFilteringEnabled(true)

	s := eng.Settings()
	m := Model{
		eng:      eng,
		logger:   logger.WithName("explorer"),
		viewMode: ViewList,
		list:     fnList,
		keys:     defaultKeyMap(),
		help:     help.New(),
		in: inputs{
			x:         cfg.X,
			method:    derivative.Method(s.Derivative.Method),
			h:         s.Derivative.Step,
			n:         s.Integral.Partitions,
			sumMethod: integral.Method(s.Integral.Method),
		},
	}
	if cfg.Function != "" {
		if _, err := eng.Function(cfg.Function); err != nil {
			return Model{}, err
		}
		m.in.id = cfg.Function
		m.viewMode = ViewExplore
	}
	return m, nil
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	if m.viewMode == ViewExplore {
		return m.compute(m.seq)
	}
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width, msg.Height-2)
		m.help.Width = msg.Width
		return m, nil

	case computedMsg:
		// Results for superseded inputs are dropped
		if msg.seq != m.seq {
			return m, nil
		}
		m.snap = &msg.snap
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) && !(m.viewMode == ViewList && m.list.FilterState() == list.Filtering) {
			return m, tea.Quit
		}
		if m.viewMode == ViewList {
			return m.updateList(msg)
		}
		return m.updateExplore(msg)
	}

	if m.viewMode == ViewList {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter && m.list.FilterState() != list.Filtering {
		item, ok := m.list.SelectedItem().(functionItem)
		if !ok {
			return m, nil
		}
		m.in.id = item.fn.ID
		m.in.x = startX(item.fn)
		m.viewMode = ViewExplore
		m.snap = nil
		return m.recompute()
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// startX picks the first labeled point, which is where the function is interesting
func startX(fn *catalog.Function) float64 {
	if len(fn.InterestingPoints) > 0 {
		return fn.InterestingPoints[0].X
	}
	return 0
}

func (m Model) updateExplore(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.viewMode = ViewList
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Left):
		m.in.x = roundX(m.in.x - 0.1)
	case key.Matches(msg, m.keys.Right):
		m.in.x = roundX(m.in.x + 0.1)
	case key.Matches(msg, m.keys.Up):
		m.in.x = roundX(m.in.x + 1)
	case key.Matches(msg, m.keys.Down):
		m.in.x = roundX(m.in.x - 1)
	case key.Matches(msg, m.keys.Method):
		m.in.method = next(methods, m.in.method)
	case key.Matches(msg, m.keys.Shrink):
		m.in.h = mathx.Clamp(m.in.h/10, MinStep, MaxStep)
	case key.Matches(msg, m.keys.Grow):
		m.in.h = mathx.Clamp(m.in.h*10, MinStep, MaxStep)
	case key.Matches(msg, m.keys.MoreRects):
		m.in.n = min(m.in.n+2, integral.MaxPartitions)
	case key.Matches(msg, m.keys.FewerRects):
		m.in.n = max(m.in.n-2, 2)
	case key.Matches(msg, m.keys.SumMethod):
		m.in.sumMethod = next(integral.Methods(), m.in.sumMethod)
	default:
		return m, nil
	}
	return m.recompute()
}

// roundX keeps repeated ±0.1 steps on the decimal grid
func roundX(x float64) float64 {
	return math.Round(x*1e9) / 1e9
}

func next[T comparable](values []T, current T) T {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}

func (m Model) recompute() (tea.Model, tea.Cmd) {
	m.seq++
	return m, m.compute(m.seq)
}

// compute evaluates everything for the current inputs off the update loop
func (m Model) compute(seq int) tea.Cmd {
	in := m.in
	eng := m.eng
	logger := m.logger
	return func() tea.Msg {
		snap := evaluate(eng, in)
		logger.Trace("recomputed", smlog.String("function", in.id), smlog.Float64("x", in.x), smlog.Int("seq", seq))
		return computedMsg{seq: seq, snap: snap}
	}
}

func evaluate(eng *engine.Engine, in inputs) snapshot {
	s := snapshot{in: in}
	s.limit, s.limitErr = eng.Limit(in.id, in.x, limit.Both)
	s.continuity, s.contErr = eng.Continuity(in.id, in.x)
	s.slope, s.slopeErr = eng.Derivative(in.id, in.x, in.method, in.h)
	s.tangent, s.tangentErr = eng.Tangent(in.id, in.x, in.method, in.h)
	a, b := math.Min(0, in.x), math.Max(0, in.x)
	n := in.n
	if in.sumMethod == integral.Simpson && n%2 == 1 {
		n++
	}
	s.sum, s.sumErr = eng.Riemann(in.id, a, b, n, in.sumMethod)
	return s
}

// View implements tea.Model
func (m Model) View() string {
	if m.viewMode == ViewList {
		return m.list.View()
	}
	fn, err := m.eng.Function(m.in.id)
	if err != nil {
		return tui.RenderError(err)
	}

	var b strings.Builder
	b.WriteString(tui.RenderTitle(fmt.Sprintf("%s   f(x) = %s", fn.Name, fn.Notation)))
	b.WriteString("  ")
	b.WriteString(tui.SubtitleStyle.Render("explorer v" + version.Explorer))
	b.WriteString("\n\n")

	b.WriteString(tui.KV(
		[2]string{"x", fmtFloat(m.in.x)},
		[2]string{"method", string(m.in.method)},
		[2]string{"h", fmtFloat(m.in.h)},
		[2]string{"sum", fmt.Sprintf("%s, n = %d", m.in.sumMethod, m.in.n)},
	))

	if m.snap == nil {
		b.WriteString("\n" + tui.SubtitleStyle.Render("computing…") + "\n")
	} else {
		panels := []string{
			panel("limit", m.snap.limitErr, func() string {
				return tui.KV(
					[2]string{"lim f(x)", m.snap.limit.String()},
					[2]string{"behavior", string(m.snap.limit.Behavior)},
				)
			}),
			panel("continuity", m.snap.contErr, func() string {
				c := m.snap.continuity
				return tui.KV([2]string{"at x", tui.RenderFlag(c.Classification == limit.Continuous, c.Classification.Describe())})
			}),
			panel("derivative", m.snap.slopeErr, func() string {
				rows := [][2]string{{"f'(x)", fmtFloat(m.snap.slope.Slope)}}
				if exact, ok := fn.ExactDerivative(m.in.x); ok {
					rows = append(rows, [2]string{"error", fmtFloat(m.snap.slope.Slope - exact)})
				}
				return tui.KV(rows...)
			}),
			panel("tangent", m.snap.tangentErr, func() string {
				t := m.snap.tangent
				return tui.KV([2]string{"line", fmt.Sprintf("y = %s·x + %s", fmtFloat(t.Slope), fmtFloat(t.Intercept))})
			}),
			panel("riemann sum", m.snap.sumErr, func() string {
				sum := m.snap.sum
				rows := [][2]string{
					{"interval", fmt.Sprintf("[%s, %s]", fmtFloat(sum.A), fmtFloat(sum.B))},
					{"value", fmtFloat(sum.Value)},
				}
				if sum.HasExact {
					rows = append(rows, [2]string{"error", fmtFloat(sum.Error)})
				}
				return tui.KV(rows...)
			}),
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panels[:3]...))
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panels[3:]...))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func panel(title string, err error, body func() string) string {
	content := tui.TitleStyle.Render(title) + "\n"
	if err != nil {
		content += tui.ErrorStyle.Render(err.Error())
	} else {
		content += strings.TrimRight(body(), "\n")
	}
	return tui.BoxStyle.Width(34).Render(content)
}

func fmtFloat(x float64) string {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return fmt.Sprint(x)
	}
	return fmt.Sprintf("%.6g", x)
}

// Run starts the explorer in the alternate screen
func Run(cfg Config) error {
	m, err := New(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
