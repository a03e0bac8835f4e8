package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/toggles/internal/logging"
	"github.com/idilsaglam/toggles/internal/model"
	"github.com/idilsaglam/toggles/internal/snapshot"
	"github.com/idilsaglam/toggles/internal/store"
	"github.com/idilsaglam/toggles/internal/tui"
	"github.com/idilsaglam/toggles/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	JSON      bool // print replay result as JSON
	AltScreen bool // run the TUI on the alternate screen

	Stdout io.Writer
	Stderr io.Writer
	Logger *log.Logger
}

func (o *Options) defaults() {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
// No arguments starts the interactive list.
func Run(ctx context.Context, args []string, opt Options) int {
	opt.defaults()
	if len(args) == 0 {
		return doTUI(ctx, opt)
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return 0

	case "tui":
		return doTUI(ctx, opt)

	case "run":
		if len(a) == 0 {
			ui.Fail(opt.Stderr, "usage: toggles run <action...>")
			return 2
		}
		return doReplay(a, opt)
	}

	ui.Fail(opt.Stderr, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Stderr)
	PrintHelp(opt.Stderr)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `toggles - a list of switches

Usage:
  toggles [flags] [subcommand] [args]
  toggles run <action...>

Subcommands:
  tui                Interactive list (default)
  run <action...>    Replay actions on an empty list and print the result
  help               Show this help

Replay actions (positions are 0-based, newest item is 0):
  add                Insert a new item at the front
  rm                 Remove the last item (no-op when empty)
  done <pos>         Switch the item at pos on
  undone <pos>       Switch the item at pos off
  toggle <pos>       Flip the item at pos

Keys (tui):
  a add  x remove last  space/enter toggle  q quit

Flags:
  -config <file>  -theme classic|neon|mono  -json
  -log-level <lvl>  -log-file <path|->  -log-format text|json|logfmt
  -no-alt-screen  -color auto|always|never

Examples:
  toggles run add add done 0 rm
  toggles -json run add toggle 0
`)
}

// -------------- subcommand impls ----------------

func doTUI(ctx context.Context, opt Options) int {
	s := store.New()
	s.Subscribe(logging.StoreObserver(opt.Logger))
	if err := tui.Run(ctx, s, opt.Logger, tui.Options{AltScreen: opt.AltScreen}); err != nil {
		if errors.Is(err, context.Canceled) {
			return 0
		}
		opt.Logger.Error("tui failed", "err", err)
		ui.Fail(opt.Stderr, err.Error())
		return 1
	}
	return 0
}

// usageError marks replay failures caused by bad input rather than runtime faults.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func doReplay(actions []string, opt Options) int {
	s := store.New()
	s.Subscribe(logging.StoreObserver(opt.Logger))

	if err := replay(s, actions); err != nil {
		opt.Logger.Error("replay failed", "err", err)
		ui.Fail(opt.Stderr, err.Error())
		if errors.Is(err, store.ErrIndexOutOfRange) {
			ui.Hint(opt.Stderr, "positions are 0-based and must be below the current item count")
		}
		return 2
	}

	if opt.JSON {
		if err := snapshot.Encode(opt.Stdout, s.Indexed()); err != nil {
			ui.Fail(opt.Stderr, "encode: "+err.Error())
			return 1
		}
		return 0
	}
	printList(opt.Stdout, s)
	return 0
}

// replay applies actions in order and stops at the first bad one.
func replay(s *store.Store, actions []string) error {
	for i := 0; i < len(actions); i++ {
		act := actions[i]
		switch act {
		case "add":
			s.AddItem()
		case "rm":
			s.RemoveLast()
		case "done", "undone", "toggle":
			if i+1 >= len(actions) {
				return &usageError{msg: fmt.Sprintf("%s: missing position", act)}
			}
			i++
			pos, err := strconv.Atoi(actions[i])
			if err != nil {
				return &usageError{msg: fmt.Sprintf("%s: not a number: %s", act, actions[i])}
			}
			switch act {
			case "done":
				err = s.SetDone(pos, true)
			case "undone":
				err = s.SetDone(pos, false)
			default:
				err = s.Toggle(pos)
			}
			if err != nil {
				return fmt.Errorf("%s: %w", act, err)
			}
		default:
			return &usageError{msg: "unknown action: " + act}
		}
	}
	return nil
}

// -------------- rendering helpers --------------

func printList(w io.Writer, s *store.Store) {
	d, p := stats(s.Items())
	pr := ui.NewPrinter(w)
	t := ui.Current()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		pr.Title("Toggles"),
		pr.Paint(t.Success, t.SymDone), d,
		pr.Paint(t.Pending, t.SymPending), p,
		pr.Paint(t.Accent, "Total"), s.Len(),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, pr.Paint(t.Muted, ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")
	if s.Len() == 0 {
		lines = append(lines, pr.Paint(t.Muted, "no items"))
	}
	for pos, it := range s.Indexed() {
		lines = append(lines, pr.Row(pos, it))
	}
	pr.Panel(lines)
}

func stats(items []model.Item) (done, pending int) {
	for _, it := range items {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}
