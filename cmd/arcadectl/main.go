package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"text/tabwriter"
	"time"

	"github.com/matheus3301/arcade/internal/config"
	"github.com/matheus3301/arcade/internal/paths"
	"github.com/matheus3301/arcade/internal/store"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

type options struct {
	json  bool
	limit int
}

// run parses the global flags, then the subcommand's own flags, so both
// `arcadectl --json history` and `arcadectl history --json` work.
func run(args []string, stdout, stderr io.Writer) error {
	global := flag.NewFlagSet("arcadectl", flag.ContinueOnError)
	global.SetOutput(stderr)
	global.Usage = func() { printUsage(stderr) }
	homeFlag := global.String("home", "", "arcade home directory (default $ARCADE_HOME or ~/.arcade)")
	opts := options{limit: 20}
	global.BoolVar(&opts.json, "json", false, "output in JSON format")
	global.IntVar(&opts.limit, "limit", opts.limit, "number of history entries")
	if err := global.Parse(args); err != nil {
		return err
	}

	args = global.Args()
	if len(args) == 0 {
		printUsage(stderr)
		return errors.New("missing command")
	}
	l := paths.Resolve(*homeFlag)

	switch args[0] {
	case "history":
		sub := subcommand("history", stderr, &opts, true)
		if err := parseExact(sub, args[1:]); err != nil {
			return err
		}
		return cmdHistory(stdout, l, opts)
	case "stats":
		sub := subcommand("stats", stderr, &opts, false)
		if err := parseExact(sub, args[1:]); err != nil {
			return err
		}
		return cmdStats(stdout, l, opts)
	case "config":
		if len(args) < 2 {
			return errors.New("usage: arcadectl config <show|init>")
		}
		sub := subcommand("config "+args[1], stderr, &opts, false)
		if err := parseExact(sub, args[2:]); err != nil {
			return err
		}
		return cmdConfig(stdout, l, args[1], opts)
	default:
		printUsage(stderr)
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func subcommand(name string, stderr io.Writer, opts *options, withLimit bool) *flag.FlagSet {
	set := flag.NewFlagSet(name, flag.ContinueOnError)
	set.SetOutput(stderr)
	set.BoolVar(&opts.json, "json", opts.json, "output in JSON format")
	if withLimit {
		set.IntVar(&opts.limit, "limit", opts.limit, "number of history entries")
	}
	return set
}

func parseExact(set *flag.FlagSet, args []string) error {
	if err := set.Parse(args); err != nil {
		return err
	}
	if set.NArg() > 0 {
		return fmt.Errorf("%s: unexpected argument %q", set.Name(), set.Arg(0))
	}
	return nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: arcadectl [--home <dir>] <command> [flags]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "commands:")
	fmt.Fprintln(w, "  history [--limit N] [--json]   Show recent activations")
	fmt.Fprintln(w, "  stats [--json]                 Show activation counts per game")
	fmt.Fprintln(w, "  config show [--json]           Print the effective config")
	fmt.Fprintln(w, "  config init                    Write the default config file")
}

func openHistory(l paths.Layout) (*store.DB, error) {
	if _, err := os.Stat(l.DBPath()); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("no history at %s (run arcade first)", l.DBPath())
	}
	return store.OpenReadOnly(l.DBPath())
}

func cmdHistory(w io.Writer, l paths.Layout, opts options) error {
	db, err := openHistory(l)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	acts, err := db.RecentActivations(opts.limit)
	if err != nil {
		return err
	}
	if opts.json {
		return outputJSON(w, acts)
	}
	if len(acts) == 0 {
		_, err := fmt.Fprintln(w, "No activations yet.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "WHEN\tGAME\tID")
	for _, a := range acts {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", a.ActivatedAt.Local().Format(time.DateTime), a.Label, a.ID)
	}
	return tw.Flush()
}

func cmdStats(w io.Writer, l paths.Layout, opts options) error {
	db, err := openHistory(l)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	stats, err := db.ActivationStats()
	if err != nil {
		return err
	}
	if opts.json {
		return outputJSON(w, stats)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "GAME\tCOUNT\tLAST")
	for _, s := range stats {
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%s\n", s.Label, s.Count, s.Last.Local().Format(time.DateTime))
	}
	return tw.Flush()
}

func cmdConfig(w io.Writer, l paths.Layout, subcmd string, opts options) error {
	switch subcmd {
	case "show":
		cfg, err := config.LoadOrDefault(l.ConfigPath())
		if err != nil {
			return err
		}
		if opts.json {
			return outputJSON(w, cfg)
		}
		_, _ = fmt.Fprintf(w, "# %s\n", l.ConfigPath())
		_, _ = fmt.Fprintf(w, "accent_color  = %q\n", cfg.AccentColor)
		_, _ = fmt.Fprintf(w, "navigation    = %q\n", cfg.Navigation)
		_, _ = fmt.Fprintf(w, "activate_key  = %q\n", cfg.ActivateKey)
		_, _ = fmt.Fprintf(w, "tick_interval = %q\n", cfg.TickInterval)
		_, err = fmt.Fprintf(w, "log_level     = %q\n", cfg.LogLevel)
		return err
	case "init":
		if _, err := os.Stat(l.ConfigPath()); err == nil {
			return fmt.Errorf("%s already exists", l.ConfigPath())
		}
		if err := config.Save(l.ConfigPath(), config.Default()); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "wrote %s\n", l.ConfigPath())
		return err
	default:
		return fmt.Errorf("unknown config subcommand: %s", subcmd)
	}
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
