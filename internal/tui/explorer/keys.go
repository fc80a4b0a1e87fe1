package explorer

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Method     key.Binding
	Shrink     key.Binding
	Grow       key.Binding
	MoreRects  key.Binding
	FewerRects key.Binding
	SumMethod  key.Binding
	Back       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "x − 0.1")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "x + 0.1")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "x + 1")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "x − 1")),
		Method:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "difference quotient")),
		Shrink:     key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "h ÷ 10")),
		Grow:       key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "h × 10")),
		MoreRects:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "more partitions")),
		FewerRects: key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "fewer partitions")),
		SumMethod:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sum rule")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "functions")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Method, k.Shrink, k.Grow, k.Back, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Method, k.Shrink, k.Grow},
		{k.MoreRects, k.FewerRects, k.SumMethod},
		{k.Back, k.Help, k.Quit},
	}
}
