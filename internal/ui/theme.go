package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette, glyphs and the panel border.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending lipgloss.TerminalColor

	SwitchOn, SwitchOff string
	SymDone, SymPending string
	Border              lipgloss.Border
}

var current Theme

func init() { SetTheme("classic") }

// SetTheme switches the palette. Unknown names fall back to classic.
// Mono carries no colors at all; forcing color on does not bring them back.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Title: lipgloss.Color("13"), Muted: lipgloss.Color("8"), Accent: lipgloss.Color("14"),
			Success: lipgloss.Color("10"), Error: lipgloss.Color("9"), Pending: lipgloss.Color("11"),
			SwitchOn: "━━●", SwitchOff: "●━━",
			SymDone: "✔", SymPending: "•",
			Border: lipgloss.RoundedBorder(),
		}
	case "mono":
		none := lipgloss.NoColor{}
		current = Theme{
			Title: none, Muted: none, Accent: none,
			Success: none, Error: none, Pending: none,
			SwitchOn: "[ on]", SwitchOff: "[off]",
			SymDone: "x", SymPending: "-",
			Border: lipgloss.Border{
				Top: "-", Bottom: "-", Left: "|", Right: "|",
				TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
			},
		}
	default: // classic
		current = Theme{
			Title: lipgloss.NoColor{}, Muted: lipgloss.Color("8"), Accent: lipgloss.Color("12"),
			Success: lipgloss.Color("42"), Error: lipgloss.Color("9"), Pending: lipgloss.Color("214"),
			SwitchOn: "(  ●)", SwitchOff: "(●  )",
			SymDone: "✔", SymPending: "•",
			Border: lipgloss.NormalBorder(),
		}
	}
}

// Current exposes what renderers need.
func Current() Theme { return current }

// Sep is the column separator used between row fields.
func (t Theme) Sep() string { return t.Border.Left }
