package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/mindtips/internal/app"
	"github.com/idilsaglam/mindtips/internal/config"
	"github.com/idilsaglam/mindtips/internal/logging"
	"github.com/idilsaglam/mindtips/internal/store/textstore"
	"github.com/idilsaglam/mindtips/internal/tui"
	"github.com/idilsaglam/mindtips/internal/ui"
)

// Exit codes: 0 ok, 1 runtime error, 2 usage or validation error.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// exitErr carries the exit code up through cobra.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func usagef(format string, a ...any) error {
	return &exitErr{code: exitUsage, msg: fmt.Sprintf(format, a...)}
}

func failf(format string, a ...any) error {
	return &exitErr{code: exitError, msg: fmt.Sprintf(format, a...)}
}

// Options are the global flags.
type Options struct {
	ConfigPath string
	File       string
	Theme      string
	NoColor    bool
}

// runtime is what every subcommand needs once flags are parsed.
type runtime struct {
	opt    Options
	cfg    *config.Config
	log    *log.Logger
	closer io.Closer
	app    *app.App
	load   app.Status
	out    io.Writer
	tui    bool
}

// Run builds the command tree, executes args and returns an exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	ui.Out, ui.Err = stdout, stderr

	rt := &runtime{out: stdout}
	root := newRootCmd(rt)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	rt.closeLog()
	if err == nil {
		return exitOK
	}
	ui.Fail(err.Error())
	var ee *exitErr
	if errors.As(err, &ee) {
		return ee.code
	}
	// cobra's own flag and arg validation
	return exitUsage
}

func newRootCmd(rt *runtime) *cobra.Command {
	root := &cobra.Command{
		Use:   "tips",
		Short: "Keep a list of mental health tips",
		Long: `tips keeps a short list of mental health tips in a plain text file,
one tip per line. Run without a subcommand for the interactive list.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			rt.tui = cmd.Parent() == nil
			return rt.open()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opt := tui.Options{StatusTimeout: rt.cfg.Status.Timeout, DailyTip: true}
			if err := tui.Run(rt.app, rt.load, opt); err != nil {
				return failf("tui: %v", err)
			}
			return nil
		},
	}

	root.CompletionOptions.DisableDefaultCmd = true

	f := root.PersistentFlags()
	f.StringVar(&rt.opt.ConfigPath, "config", "", "config file (default ./"+config.DefaultConfigFile+" if present)")
	f.StringVar(&rt.opt.File, "file", "", "tips file (overrides store.path)")
	f.StringVar(&rt.opt.Theme, "theme", "", "output theme: classic, neon or mono")
	f.BoolVar(&rt.opt.NoColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newListCmd(rt),
		newAddCmd(rt),
		newRemoveCmd(rt),
		newFavoriteCmd(rt),
		newSortCmd(rt),
		newDailyCmd(rt),
	)
	return root
}

// open loads config, builds the logger and opens the app.
func (rt *runtime) open() error {
	cfg, err := config.Load(rt.opt.ConfigPath)
	if err != nil {
		return usagef("config: %v", err)
	}
	if rt.opt.File != "" {
		cfg.Store.Path = rt.opt.File
	}
	if rt.opt.Theme != "" {
		cfg.UI.Theme = rt.opt.Theme
	}
	if err := cfg.Validate(); err != nil {
		return usagef("%v", err)
	}
	rt.cfg = cfg

	ui.SetTheme(cfg.UI.Theme)
	ui.SetNoColor(rt.opt.NoColor || cfg.UI.Theme == "mono")

	switch {
	case cfg.Log.File.Enabled:
		rt.log, rt.closer = logging.New(cfg.Log, nil)
	case rt.tui:
		// stderr would tear the alt screen
		rt.log = logging.Discard()
	default:
		rt.log, rt.closer = logging.New(cfg.Log, ui.Err)
	}

	rt.app, rt.load = app.Open(app.Options{
		Store:     textstore.New(cfg.Store.Path),
		UndoDepth: cfg.Undo.Depth,
		Logger:    rt.log.With("file", cfg.Store.Path),
	})
	if !rt.tui && rt.load.Message != "" {
		ui.Warn(rt.load.Message)
	}
	return nil
}

// closeLog releases the log file. The logger may be writing into it, so a
// failure goes straight to stderr.
func (rt *runtime) closeLog() {
	if rt.closer == nil {
		return
	}
	if err := rt.closer.Close(); err != nil {
		ui.Warn(fmt.Sprintf("closing log file: %v", err))
	}
}

// report prints a command outcome and turns failures into exit codes.
func report(st app.Status) error {
	switch st.Kind() {
	case app.KindOK:
		ui.OK(st.Message)
		return nil
	case app.KindIOError:
		return failf("%s", st.Message)
	default:
		return usagef("%s", st.Message)
	}
}

// parseIndexes turns 1-based CLI indexes into stored representations.
func parseIndexes(args []string, entries []app.Entry) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, usagef("not a number: %s", a)
		}
		if n < 1 || n > len(entries) {
			return nil, usagef("index out of range: have %d, got %d", len(entries), n)
		}
		out = append(out, entries[n-1].Stored)
	}
	return out, nil
}

func newListCmd(rt *runtime) *cobra.Command {
	var favorites, group bool
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List tips",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printList(rt.out, rt.app.ViewOf(false), favorites, group)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&favorites, "favorites", "f", false, "show favorites only")
	cmd.Flags().BoolVar(&group, "group", false, "group output by favorites/others")
	return cmd
}

func newAddCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "add <tip...>",
		Short: "Add a tip (can be multiple words)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return report(rt.app.AddTip(strings.Join(args, " ")))
		},
	}
}

func newRemoveCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <index>...",
		Short: "Remove tips at 1-based indexes (see `tips ls`)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stored, err := parseIndexes(args, rt.app.ViewOf(false))
			if err != nil {
				return err
			}
			return report(rt.app.RemoveSelected(stored))
		},
	}
}

func newFavoriteCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "fav <index>",
		Short: "Toggle favorite for the tip at a 1-based index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stored, err := parseIndexes(args, rt.app.ViewOf(false))
			if err != nil {
				return err
			}
			return report(rt.app.ToggleFavorite(stored[0]))
		},
	}
}

func newSortCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "sort",
		Short: "Sort tips alphabetically",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return report(rt.app.Sort())
		},
	}
}

func newDailyCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "daily",
		Short: "Show a random tip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tip, ok := rt.app.RandomTip()
			if !ok {
				return usagef("no tips yet. Add one with `tips add`")
			}
			ui.Panel(rt.out, []string{
				ui.C(ui.Current().Title, "Daily Mental Health Tip"),
				"",
				tip,
			})
			return nil
		},
	}
}
