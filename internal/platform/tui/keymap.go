package tui

import "github.com/charmbracelet/bubbles/key"

// BrowserKeyMap defines the key bindings for the artwork browser.
type BrowserKeyMap struct {
	NextSeed    key.Binding
	PrevSeed    key.Binding
	NextArtwork key.Binding
	PrevArtwork key.Binding
	Random      key.Binding
	Slideshow   key.Binding
	Save        key.Binding
	History     key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSeed, k.PrevSeed, k.NextArtwork, k.Save, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextSeed, k.PrevSeed, k.Random, k.Slideshow},
		{k.NextArtwork, k.PrevArtwork},
		{k.Save, k.History, k.Help, k.Quit},
	}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		NextSeed: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next seed"),
		),
		PrevSeed: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev seed"),
		),
		NextArtwork: key.NewBinding(
			key.WithKeys("tab", "down", "j"),
			key.WithHelp("tab", "next artwork"),
		),
		PrevArtwork: key.NewBinding(
			key.WithKeys("shift+tab", "up", "k"),
			key.WithHelp("S-tab", "prev artwork"),
		),
		Random: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "random seed"),
		),
		Slideshow: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "slideshow"),
		),
		Save: key.NewBinding(
			key.WithKeys("s", "enter"),
			key.WithHelp("s", "save svg"),
		),
		History: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "history"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
