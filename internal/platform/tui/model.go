package tui

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/seedart/internal/config"
	"github.com/vovakirdan/seedart/internal/core"
	"github.com/vovakirdan/seedart/internal/prng"
	"github.com/vovakirdan/seedart/internal/registry"
	"github.com/vovakirdan/seedart/internal/storage"
)

// SlideshowInterval is the delay between seeds while the slideshow runs.
const SlideshowInterval = 1500 * time.Millisecond

// chromeRows is the number of rows reserved for the title, status and help lines.
const chromeRows = 4

// BrowserOptions configures a browser session.
type BrowserOptions struct {
	Config    *config.Config
	Store     *storage.Store // optional; enables render history
	Artwork   string         // initial artwork, the first registered when empty
	Seed      prng.Seed
	ExportDir string // where saved SVGs go, ~/.seedart/exports when empty
	Width     int
	Height    int
	Label     string // shown in the title bar, e.g. the SSH user
	NoSave    bool   // disables writing SVG files, for remote sessions
	Rand      *rand.Rand
}

// BrowserModel is the Bubble Tea model for stepping through seeds and
// artworks with a live terminal preview.
type BrowserModel struct {
	opts      BrowserOptions
	artworks  []registry.ArtworkInfo
	cursor    int
	seed      prng.Seed
	screen    *core.Screen
	renderer  *ScreenRenderer
	preview   string
	keys      BrowserKeyMap
	help      help.Model
	width     int
	height    int
	slideshow bool
	tickGen   int
	status    string
	history   *HistoryModel
	quitting  bool
}

// NewBrowserModel creates a browser positioned at opts.Artwork and opts.Seed.
func NewBrowserModel(opts BrowserOptions) BrowserModel {
	if opts.Config == nil {
		d := config.Default()
		opts.Config = &d
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	m := BrowserModel{
		opts:     opts,
		artworks: registry.List(),
		seed:     opts.Seed,
		renderer: NewScreenRenderer(),
		keys:     DefaultBrowserKeyMap(),
		help:     help.New(),
		width:    opts.Width,
		height:   opts.Height,
	}
	for i, a := range m.artworks {
		if a.ID == opts.Artwork {
			m.cursor = i
		}
	}
	m.screen = core.NewScreen(m.previewSize())
	m.refresh()
	return m
}

func (m BrowserModel) previewSize() (int, int) {
	return max(m.width, 0), max(m.height-chromeRows, 0)
}

// Artwork returns the ID of the artwork on display.
func (m BrowserModel) Artwork() string {
	if len(m.artworks) == 0 {
		return ""
	}
	return m.artworks[m.cursor].ID
}

// Seed returns the seed on display.
func (m BrowserModel) Seed() prng.Seed {
	return m.seed
}

// Status returns the last status line.
func (m BrowserModel) Status() string {
	return m.status
}

// refresh redraws the preview for the current artwork and seed.
func (m *BrowserModel) refresh() {
	if err := Preview(m.screen, m.Artwork(), m.seed, m.opts.Config); err != nil {
		m.status = "error: " + err.Error()
		m.screen.Clear()
		m.screen.DrawTextCentered(m.screen.Height()/2, "no preview")
		m.preview = m.renderer.Render(m.screen)
		return
	}
	m.preview = m.renderer.Render(m.screen)
}

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.history != nil {
		return m.updateHistory(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.screen.Resize(m.previewSize())
		m.refresh()
		return m, nil

	case TickMsg:
		if !m.slideshow || msg.Gen != m.tickGen {
			return m, nil
		}
		m.seed = stepSeed(m.seed, 1)
		m.refresh()
		return m, tickCmd(SlideshowInterval, m.tickGen)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m BrowserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextSeed):
		m.seed = stepSeed(m.seed, 1)

	case key.Matches(msg, m.keys.PrevSeed):
		m.seed = stepSeed(m.seed, -1)

	case key.Matches(msg, m.keys.Random):
		m.seed = prng.RandomSeed(m.opts.Rand)

	case key.Matches(msg, m.keys.NextArtwork):
		if len(m.artworks) > 0 {
			m.cursor = (m.cursor + 1) % len(m.artworks)
		}

	case key.Matches(msg, m.keys.PrevArtwork):
		if len(m.artworks) > 0 {
			m.cursor = (m.cursor - 1 + len(m.artworks)) % len(m.artworks)
		}

	case key.Matches(msg, m.keys.Slideshow):
		m.slideshow = !m.slideshow
		m.tickGen++
		if m.slideshow {
			return m, tickCmd(SlideshowInterval, m.tickGen)
		}
		return m, nil

	case key.Matches(msg, m.keys.Save):
		m.status = m.save()
		return m, nil

	case key.Matches(msg, m.keys.History):
		if m.opts.Store == nil {
			m.status = "history unavailable: no database"
			return m, nil
		}
		h := NewHistoryModel(m.opts.Store, m.width, m.height)
		m.history = &h
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	default:
		return m, nil
	}

	m.status = ""
	m.refresh()
	return m, nil
}

// updateHistory forwards messages to the embedded history view until it
// is dismissed.
func (m BrowserModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.screen.Resize(m.previewSize())
		m.refresh()
	}

	next, cmd := m.history.Update(msg)
	h, ok := next.(HistoryModel)
	if !ok || h.IsGoingBack() {
		m.history = nil
		return m, nil
	}
	if h.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	m.history = &h
	return m, cmd
}

// save writes the current artwork as SVG and records it in the store.
func (m BrowserModel) save() string {
	if m.opts.NoSave {
		return "saving is disabled in this session"
	}
	id := m.Artwork()
	var out []byte
	var err error
	if id == "member-card" && m.opts.Label != "" {
		out, err = registry.RenderMemberCard(m.seed, m.opts.Config, m.opts.Label)
	} else {
		out, err = registry.Render(id, m.seed, m.opts.Config)
	}
	if err != nil {
		return "error: " + err.Error()
	}

	dir := m.opts.ExportDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "error: " + err.Error()
		}
		dir = filepath.Join(home, ".seedart", "exports")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "error: " + err.Error()
	}

	path := filepath.Join(dir, ExportName(id, m.seed))
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return "error: " + err.Error()
	}
	if m.opts.Store != nil {
		if _, err := m.opts.Store.RecordRender(id, m.seed, len(out)); err != nil {
			return fmt.Sprintf("saved %s (history: %v)", path, err)
		}
	}
	return "saved " + path
}

// ExportName is the file name of a saved artwork.
func ExportName(id string, seed prng.Seed) string {
	return fmt.Sprintf("%s-%s.svg", id, strings.ReplaceAll(seed.String(), ",", "-"))
}

// stepSeed moves every register by delta, so single-integer seeds step
// to the neighboring integer.
func stepSeed(s prng.Seed, delta int32) prng.Seed {
	for i := range s {
		s[i] = uint32(int64(s[i]) + int64(delta))
	}
	return s
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}
	if m.history != nil {
		return m.history.View()
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	title := "seedart"
	if len(m.artworks) > 0 {
		title = fmt.Sprintf("seedart - %s  seed %s", m.artworks[m.cursor].Title, m.seed)
	}
	if m.opts.Label != "" {
		title += "  [" + m.opts.Label + "]"
	}
	if m.slideshow {
		title += "  (slideshow)"
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")

	b.WriteString(m.preview)
	b.WriteString("\n")

	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunBrowser starts the browser in the alternate screen.
func RunBrowser(opts BrowserOptions) error {
	p := tea.NewProgram(
		NewBrowserModel(opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
