package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/idilsaglam/toggles/internal/model"
)

var (
	forceColor   bool
	disableColor bool
)

// SetColorForcing overrides terminal detection for every Printer created
// afterwards. disable wins over force.
func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
}

// Printer renders themed text for one destination. Color is decided by
// whether that destination is a terminal, not by stdout.
type Printer struct {
	w io.Writer
	r *lipgloss.Renderer
	t Theme
}

// NewPrinter returns a Printer for w using the current theme.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	switch {
	case disableColor:
		r.SetColorProfile(termenv.Ascii)
	case forceColor:
		r.SetColorProfile(termenv.ANSI256)
	}
	return &Printer{w: w, r: r, t: Current()}
}

// Paint colors s with c.
func (p *Printer) Paint(c lipgloss.TerminalColor, s string) string {
	return p.r.NewStyle().Foreground(c).Render(s)
}

// Title renders s bold in the title color.
func (p *Printer) Title(s string) string {
	return p.r.NewStyle().Bold(true).Foreground(p.t.Title).Render(s)
}

// Switch renders the on/off control for a done flag.
func (p *Printer) Switch(done bool) string {
	if done {
		return p.Paint(p.t.Success, p.t.SwitchOn)
	}
	return p.Paint(p.t.Muted, p.t.SwitchOff)
}

// Row renders one list row: position, identity and the switch.
func (p *Printer) Row(pos int, it model.Item) string {
	sep := p.t.Sep()
	return fmt.Sprintf("%s %s %s %s %s Is Done",
		p.Paint(p.t.Muted, fmt.Sprintf("%2d", pos)), sep,
		it.ID.String(), sep,
		p.Switch(it.Done))
}

// Panel draws lines inside a frame using the theme's border.
func (p *Printer) Panel(lines []string) {
	box := p.r.NewStyle().
		Border(p.t.Border).
		BorderForeground(p.t.Muted).
		Padding(0, 1)
	fmt.Fprintln(p.w, box.Render(strings.Join(lines, "\n")))
}

func (p *Printer) Fail(msg string) { fmt.Fprintln(p.w, p.Paint(p.t.Error, "✖ "+msg)) }
func (p *Printer) Hint(msg string) { fmt.Fprintln(p.w, p.Paint(p.t.Muted, "Hint: "+msg)) }

// Fail writes an error line to w.
func Fail(w io.Writer, msg string) { NewPrinter(w).Fail(msg) }

// Hint prints a muted follow-up line under a failure.
func Hint(w io.Writer, msg string) { NewPrinter(w).Hint(msg) }
