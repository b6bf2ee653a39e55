package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"

	"github.com/vschwaberow/rustalize/grammar"
	"github.com/vschwaberow/rustalize/internal/config"
	"github.com/vschwaberow/rustalize/internal/errors"
	"github.com/vschwaberow/rustalize/internal/parser"
	"github.com/vschwaberow/rustalize/internal/render"
)

func usage() {
	fmt.Fprintf(os.Stderr, `rustalize - visualize Rust type declarations

Usage:
  rustalize [flags] <file.rs>
  rustalize [flags] -        read from stdin

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	configPath := flag.String("config", "", "config file (YAML or JSON)")
	tree := flag.Bool("tree", false, "render as a branch-glyph tree")
	fmtMode := flag.Bool("fmt", false, "reformat the declaration to canonical source instead of rendering")
	watch := flag.Bool("watch", false, "watch the file and re-render on change")
	maxDepth := flag.Int("max-depth", 0, "maximum type nesting depth (0 uses the config default)")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	cfg := config.New()
	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "rustalize: %v\n", err)
			os.Exit(1)
		}
	}

	// Flags override config file settings.
	if *tree {
		cfg.Output.Tree = true
	}
	if *maxDepth > 0 {
		cfg.Parser.MaxDepth = *maxDepth
	}
	if *noColor {
		cfg.Output.NoColor = true
	}
	if cfg.Output.NoColor {
		color.NoColor = true
	}

	path := flag.Arg(0)

	if *watch {
		if path == "" || path == "-" {
			fmt.Fprintln(os.Stderr, "rustalize: -watch requires a file argument")
			os.Exit(1)
		}
		if err := watchFile(cfg, path, *fmtMode); err != nil {
			fmt.Fprintf(os.Stderr, "rustalize: %v\n", err)
			os.Exit(1)
		}
		return
	}

	source, name, err := readInput(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rustalize: %v\n", err)
		os.Exit(1)
	}

	if !processSource(cfg, name, source, *fmtMode) {
		os.Exit(1)
	}
}

func readInput(path string) (source, name string, err error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "<stdin>", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), path, nil
}

// processSource parses and prints one declaration. It reports success.
func processSource(cfg *config.Config, name, source string, fmtMode bool) bool {
	startTime := time.Now()

	if fmtMode {
		decl, err := grammar.ParseSource(name, source)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			color.Red("Formatting failed after %s", formatDuration(time.Since(startTime)))
			return false
		}
		fmt.Println(decl.String())
		return true
	}

	decl, err := parser.ParseSourceMaxDepth(name, source, cfg.Parser.MaxDepth)
	if err != nil {
		reporter := errors.NewReporter(name, source)
		fmt.Print(reporter.Format(err))
		color.Red("Parsing failed after %s", formatDuration(time.Since(startTime)))
		return false
	}

	if cfg.Output.Tree {
		fmt.Println(render.RenderTree(decl))
	} else {
		fmt.Println(render.RenderIndent(decl, cfg.Output.Indent))
	}
	color.Green("Successfully processed %s in %s", name, formatDuration(time.Since(startTime)))
	return true
}

// watchFile re-renders the declaration whenever the file changes. Editors
// often replace files on save, so the parent directory is watched and events
// are debounced and filtered to the target path.
func watchFile(cfg *config.Config, path string, fmtMode bool) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return err
	}

	debounce := time.Duration(cfg.Watch.DebounceMillis) * time.Millisecond
	if debounce <= 0 {
		debounce = 250 * time.Millisecond
	}

	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}

	run := func() {
		source, name, err := readInput(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "rustalize: %v\n", err)
			return
		}
		processSource(cfg, name, source, fmtMode)
	}

	run()
	fmt.Fprintf(os.Stderr, "watching %s\n", path)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			eventPath, _ := filepath.Abs(event.Name)
			if eventPath != absPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(debounce)

		case <-timer.C:
			run()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "rustalize: watch error: %v\n", err)
		}
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
