package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/wippyai/elf-inspect/elf"
)

var version = "dev"

type options struct {
	file        string
	program     bool
	section     bool
	all         bool
	wide        bool
	interactive bool
	noColor     bool
	logLevel    string

	// exit is set once --help or --version has run.
	exit *int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func newApp(opts *options, stdout, stderr io.Writer) *kingpin.Application {
	app := kingpin.New(filepath.Base(os.Args[0]), "A tool for parsing ELF32/64 files.").
		UsageWriter(stdout).
		ErrorWriter(stderr).
		Terminate(func(code int) { opts.exit = &code })
	app.Version(version)

	app.Flag("program", "Print program header information.").Short('p').BoolVar(&opts.program)
	app.Flag("section", "Print section header information.").Short('s').BoolVar(&opts.section)
	app.Flag("all", "Print all information.").Short('a').BoolVar(&opts.all)
	app.Flag("wide", "Print the extra section size table.").Short('w').BoolVar(&opts.wide)
	app.Flag("interactive", "Browse segments and sections in a TUI.").Short('i').BoolVar(&opts.interactive)
	app.Flag("no-color", "Disable styled output.").Envar("ELFINSPECT_NO_COLOR").BoolVar(&opts.noColor)
	app.Flag("log-level", "Log level for diagnostics written to stderr.").
		Envar("ELFINSPECT_LOG_LEVEL").
		Default("warn").
		EnumVar(&opts.logLevel, "debug", "info", "warn", "error")
	app.Arg("file", "ELF file to inspect.").Required().StringVar(&opts.file)
	return app
}

func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), lvl)), nil
}

// run executes the command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	errTheme := newTheme(stderr, isTerminal(stderr))

	_, err := newApp(&opts, stdout, stderr).Parse(args)
	if opts.exit != nil {
		return *opts.exit
	}
	if err != nil {
		fmt.Fprintln(stderr, errTheme.err.Render("Error: "+err.Error()))
		return 2
	}
	if opts.noColor {
		errTheme = newTheme(stderr, false)
	}

	logger, err := newLogger(opts.logLevel, stderr)
	if err != nil {
		fmt.Fprintln(stderr, errTheme.err.Render("Error: "+err.Error()))
		return 2
	}
	defer func() { _ = logger.Sync() }()
	elf.SetLogger(logger.Named("elf"))

	f, err := elf.Open(opts.file)
	if err != nil {
		logger.Debug("open failed", zap.String("file", opts.file), zap.Error(err))
		fmt.Fprintln(stderr, errTheme.err.Render("Error: "+err.Error()))
		return 1
	}

	color := !opts.noColor && isTerminal(stdout)
	th := newTheme(stdout, color)

	if opts.interactive {
		if !isTerminal(stdout) {
			fmt.Fprintln(stderr, errTheme.err.Render("Error: interactive mode needs a terminal"))
			return 1
		}
		if err := runInteractive(f, opts.file, th); err != nil {
			fmt.Fprintln(stderr, errTheme.err.Render("Error: "+err.Error()))
			return 1
		}
		return 0
	}

	r := &report{w: stdout, f: f, th: th, wide: opts.wide}
	switch {
	case opts.all:
		r.brief()
		r.programs()
		r.sections()
	case !opts.program && !opts.section:
		r.brief()
	default:
		if opts.program {
			r.programs()
		}
		if opts.section {
			r.sections()
		}
	}
	return 0
}
