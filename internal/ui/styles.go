// internal/ui/styles.go
//
// Console styling with lipgloss.
// Every game has its own color (list output, titles); outcomes use
// green / red / magenta the way the scramble results do.

package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/varunvasudeva1/wordplay/internal/game"
)

const (
	SectionSeparator    = "=========================================================================================="
	SubsectionSeparator = "#################################"
)

const banner = `
          _______  _______  ______   _______  _        _______
|\     /|(  ___  )(  ____ )(  __  \ (  ____ )( \      (  ___  )|\     /|
| )   ( || (   ) || (    )|| (  \  )| (    )|| (      | (   ) |( \   / )
| | _ | || |   | || (____)|| |   ) || (____)|| |      | (___) | \ (_) /
| |( )| || |   | ||     __)| |   | ||  _____)| |      |  ___  |  \   /
| || || || |   | || (\ (   | |   ) || (      | |      | (   ) |   ) (
| () () || (___) || ) \ \__| (__/  )| )      | (____/\| )   ( |   | |
(_______)(_______)|/   \__/(______/ |/       (_______/|/     \|   \_/
`

var gameColors = map[game.Type]lipgloss.Color{
	game.Trivia:   lipgloss.Color("4"), // blue
	game.Hunt:     lipgloss.Color("2"), // green
	game.Scramble: lipgloss.Color("5"), // magenta
}

// Styles renders text for one output stream.
type Styles struct {
	r       *lipgloss.Renderer
	noColor bool
}

// NewStyles binds styles to w. Color is dropped when noColor is set or w is
// not a terminal.
func NewStyles(w io.Writer, noColor bool) *Styles {
	return &Styles{r: lipgloss.NewRenderer(w), noColor: noColor}
}

func (s *Styles) fg(c lipgloss.Color, text string) string {
	if s.noColor {
		return text
	}
	return s.r.NewStyle().Foreground(c).Render(text)
}

func (s *Styles) Good(text string) string   { return s.fg(lipgloss.Color("2"), text) }
func (s *Styles) Bad(text string) string    { return s.fg(lipgloss.Color("1"), text) }
func (s *Styles) Unique(text string) string { return s.fg(lipgloss.Color("5"), text) }
func (s *Styles) Dim(text string) string    { return s.fg(lipgloss.Color("8"), text) }

// Game colors a game name with its own color.
func (s *Styles) Game(t game.Type, text string) string {
	c, ok := gameColors[t]
	if !ok {
		return text
	}
	return s.fg(c, text)
}

// Ready is the badge shown once content has been generated.
func (s *Styles) Ready() string {
	if s.noColor {
		return "READY TO PLAY"
	}
	return s.r.NewStyle().Background(lipgloss.Color("2")).Foreground(lipgloss.Color("0")).Render("READY TO PLAY")
}

// Banner is the welcome screen.
func (s *Styles) Banner() string {
	var b strings.Builder
	b.WriteString(SectionSeparator + "\n")
	b.WriteString(banner)
	b.WriteString("An on-demand, LM-powered collection of text-based games.\n")
	b.WriteString(s.fg(lipgloss.Color("5"), "Developed by Varun Vasudeva.") + "\n\n")
	b.WriteString(SectionSeparator + "\n")
	return b.String()
}

// Title is the header printed when a game starts.
func (s *Styles) Title(t game.Type) string {
	return "\n" + SubsectionSeparator + "\n\nWELCOME TO " +
		s.Game(t, strings.ToUpper(string(t))) +
		"\n\n" + SubsectionSeparator + "\n"
}
