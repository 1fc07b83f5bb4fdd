package modes

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding of the brochure. It satisfies help.KeyMap so
// the footer and the help popup render from the same source.
type KeyMap struct {
	NextSection key.Binding
	PrevSection key.Binding
	Home        key.Binding
	Prev        key.Binding
	Next        key.Binding
	Up          key.Binding
	Down        key.Binding
	Jump        key.Binding
	Open        key.Binding
	AllReviews  key.Binding
	Help        key.Binding
	Close       key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

// DefaultKeyMap returns the stock bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextSection: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next section")),
		PrevSection: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous section")),
		Home:        key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "back to Home")),
		Prev:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous image/page")),
		Next:        key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next image/page")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move down")),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "go to image/page"),
		),
		Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open attraction")),
		AllReviews: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "read all reviews")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Close:      key.NewBinding(key.WithKeys("esc", "?", "q"), key.WithHelp("esc", "close")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp is the footer line
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSection, k.Prev, k.Next, k.Help, k.Quit}
}

// FullHelp groups bindings into the help popup columns
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextSection, k.PrevSection, k.Home},
		{k.Prev, k.Next, k.Jump, k.AllReviews},
		{k.Up, k.Down, k.Open},
		{k.Help, k.Quit},
	}
}
