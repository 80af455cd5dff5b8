package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/nikolasavic/hexblend/internal/color"
	"github.com/nikolasavic/hexblend/internal/config"
	"github.com/nikolasavic/hexblend/internal/outfile"
	"github.com/nikolasavic/hexblend/internal/palette"
	"github.com/nikolasavic/hexblend/internal/subset"
	"github.com/nikolasavic/hexblend/internal/svgdoc"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Exit codes
const (
	ExitOK      = 0
	ExitError   = 1
	ExitInvalid = 2
	ExitUsage   = 64
)

const ratioPrompt = "Enter the blending ratio (between 0.0 and 1.0): "

// Swapped out by tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		usage(stderr)
		return ExitUsage
	}

	cmd := args[0]
	args = args[1:]

	switch cmd {
	case "version":
		fmt.Fprintf(stdout, "hexblend %s (commit: %s, built: %s)\n", version, commit, date)
		return ExitOK
	case "render":
		return cmdRender(args)
	case "blend":
		return cmdBlend(args)
	case "subsets":
		return cmdSubsets(args)
	case "help", "-h", "--help":
		usage(stdout)
		return ExitOK
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n", cmd)
		usage(stderr)
		return ExitUsage
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "hexblend - blend palette subsets into an SVG chart")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: hexblend <command> [options] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render                  Write the subset chart SVG")
	fmt.Fprintln(w, "    --ratio r             Blend ratio (prompted for if unset)")
	fmt.Fprintln(w, "    --out path            Output file (default "+config.DefaultOutput+")")
	fmt.Fprintln(w, "    --verbose             Debug logging")
	fmt.Fprintln(w, "  blend <a> <b> <ratio>   Blend two colors (#rrggbb or r,g,b)")
	fmt.Fprintln(w, "  subsets [--ratio r]     List every subset with its blended color")
	fmt.Fprintln(w, "  version                 Show version info")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  "+config.EnvOutput+", "+config.EnvRatio+", "+config.EnvLogLevel+", "+config.EnvEnvFile)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0   Success")
	fmt.Fprintln(w, "  1   General or I/O error")
	fmt.Fprintln(w, "  2   Invalid color or ratio")
	fmt.Fprintln(w, "  64  Usage error")
}

func newLogger(level logrus.Level) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return log
}

// exitCode maps an error to an exit code and reports it on stderr.
func exitCode(err error) int {
	fmt.Fprintf(stderr, "error: %v\n", err)
	switch {
	case errors.Is(err, color.ErrInvalidFormat),
		errors.Is(err, color.ErrInvalidColor),
		errors.Is(err, color.ErrInvalidRatio):
		return ExitInvalid
	default:
		return ExitError
	}
}

// resolveRatio prompts for a ratio if neither flag nor environment
// supplied one.
func resolveRatio(cfg *config.Config) error {
	if cfg.HasRatio {
		return nil
	}

	fmt.Fprint(stdout, ratioPrompt)
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return fmt.Errorf("%w: no ratio entered", color.ErrInvalidRatio)
	}
	return cfg.SetRatio(line, config.SourcePrompt)
}

func cmdRender(args []string) int {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	ratio := fs.String("ratio", "", "Blend ratio between 0.0 and 1.0")
	out := fs.String("out", "", "Output SVG path")
	verbose := fs.Bool("verbose", false, "Debug logging")
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintln(stderr, "usage: hexblend render [--ratio r] [--out path] [--verbose]")
		return ExitUsage
	}

	ov := config.Overrides{Output: *out, Ratio: *ratio}
	if *verbose {
		ov.LogLevel = logrus.DebugLevel.String()
	}
	cfg, err := config.Load(ov)
	if err != nil {
		return exitCode(err)
	}
	log := newLogger(cfg.LogLevel)

	if err := resolveRatio(cfg); err != nil {
		return exitCode(err)
	}
	log.WithFields(logrus.Fields{
		"ratio":        cfg.Ratio,
		"ratio_source": cfg.RatioSource,
		"output":       cfg.Output,
		"env_file":     cfg.EnvFile,
	}).Debug("resolved config")

	opts := svgdoc.DefaultOptions()
	opts.Logger = log
	doc, err := svgdoc.Generate(palette.Default(), cfg.Ratio, opts)
	if err != nil {
		return exitCode(err)
	}

	if err := outfile.Write(cfg.Output, doc.Bytes()); err != nil {
		return exitCode(err)
	}
	log.WithField("path", cfg.Output).Info("wrote chart")

	fmt.Fprintf(stdout, "SVG file '%s' generated successfully.\n", cfg.Output)
	return ExitOK
}

func cmdBlend(args []string) int {
	if len(args) != 3 {
		fmt.Fprintln(stderr, "usage: hexblend blend <colorA> <colorB> <ratio>")
		return ExitUsage
	}

	a, err := color.ParseInput(args[0])
	if err != nil {
		return exitCode(err)
	}
	b, err := color.ParseInput(args[1])
	if err != nil {
		return exitCode(err)
	}
	ratio, err := color.ParseRatio(args[2])
	if err != nil {
		return exitCode(err)
	}

	c, err := color.Blend(a, b, ratio)
	if err != nil {
		return exitCode(err)
	}
	fmt.Fprintln(stdout, c.Hex())
	return ExitOK
}

func cmdSubsets(args []string) int {
	fs := flag.NewFlagSet("subsets", flag.ContinueOnError)
	fs.SetOutput(stderr)
	ratio := fs.String("ratio", "", "Blend ratio between 0.0 and 1.0")
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	cfg, err := config.Load(config.Overrides{Ratio: *ratio})
	if err != nil {
		return exitCode(err)
	}
	if err := resolveRatio(cfg); err != nil {
		return exitCode(err)
	}

	blends, err := subset.Blends(palette.Default(), cfg.Ratio)
	if err != nil {
		return exitCode(err)
	}
	for _, b := range blends {
		fmt.Fprintf(stdout, "%-24s %s\n", b.Subset.Label(), b.Color.Hex())
	}
	return ExitOK
}
