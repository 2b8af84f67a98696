package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/seedart/internal/core"
	"github.com/vovakirdan/seedart/internal/palette"
)

// ScreenRenderer converts a Screen buffer to a styled string. Token styles
// are resolved once and cached; a renderer belongs to one model.
type ScreenRenderer struct {
	styles map[string]lipgloss.Style
}

// NewScreenRenderer creates a renderer with an empty style cache.
func NewScreenRenderer() *ScreenRenderer {
	return &ScreenRenderer{styles: make(map[string]lipgloss.Style)}
}

// style returns the foreground style for token. Unknown tokens and the
// empty token render with the terminal default.
func (r *ScreenRenderer) style(token string) lipgloss.Style {
	if st, ok := r.styles[token]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if token != "" {
		if hex, err := palette.Resolve(token); err == nil {
			st = st.Foreground(lipgloss.Color(hex))
		}
	}
	r.styles[token] = st
	return st
}

// Render groups adjacent cells with the same token to minimize ANSI escape
// sequences.
func (r *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, run := range s.Runs(y) {
			sb.WriteString(r.style(run.Token).Render(run.Text))
		}
	}
	return sb.String()
}
