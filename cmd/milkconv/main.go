/*
File    : milkconv/cmd/milkconv/main.go

Package main is the entry point for the milkconv shader compiler. It
provides three modes of operation:
 1. convert - compile one .milk preset to a .frag GLSL file
 2. watch   - recompile on save
 3. repl    - interactive single-expression EEL2-to-GLSL playground

The compiler uses a lexer-parser-symtab-codegen-wavemode-shader pipeline
to translate preset expression blocks into GLSL 330 core fragment shaders.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/milkconv/milkconv/preset"
	"github.com/milkconv/milkconv/profile"
	"github.com/milkconv/milkconv/replshell"
	"github.com/milkconv/milkconv/translate"
)

var VERSION = "v1.0.0"

var BANNER = `
 __  __ _ _ _
|  \/  (_) | | _____ ___  _ ____   __
| |\/| | | |/ / __/ _ \ \/ / '_ \ / _ \
| |  | | |   < (_| (_) >  <| | | |  __/
|_|  |_|_|_|\_\___\___/_/\_\_| |_|\___|
`

var LINE = "----------------------------------------------------------------"

var (
	redColor   = color.New(color.FgRed)
	greenColor = color.New(color.FgGreen)
	cyanColor  = color.New(color.FgCyan)
)

func main() {
	app := &cli.App{
		Name:    "milkconv",
		Usage:   "compile MilkDrop presets into GLSL 330 fragment shaders",
		Version: VERSION,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "profile", Usage: "path to a .toml compiler tuning profile"},
			&cli.BoolFlag{Name: "verbose", Usage: "enable structured diagnostic logging"},
			&cli.IntFlag{Name: "wave-mode", Value: -1, Usage: "override nWaveMode from the preset"},
		},
		Commands: []*cli.Command{
			{
				Name:      "convert",
				Usage:     "compile a single preset to a .frag file",
				ArgsUsage: "<input.milk> <output.frag>",
				Action:    runConvert,
			},
			{
				Name:      "watch",
				Usage:     "recompile a preset to .frag on every save",
				ArgsUsage: "<input.milk> <output.frag>",
				Action:    runWatch,
			},
			{
				Name:   "repl",
				Usage:  "interactive single-statement EEL2-to-GLSL playground",
				Action: runRepl,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		redColor.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(1)
	}
}

func newLogger(c *cli.Context) zerolog.Logger {
	level := zerolog.InfoLevel
	if !c.Bool("verbose") {
		level = zerolog.Disabled
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("session", uuid.New().String()).
		Logger()
}

func loadProfile(c *cli.Context) (profile.Profile, error) {
	if path := c.String("profile"); path != "" {
		return profile.Load(path)
	}
	return profile.Default(), nil
}

// compileOnce reads inputPath, translates it, writes the result to
// outputPath, and returns any diagnostics produced along the way.
func compileOnce(c *cli.Context) ([]translate.Diagnostic, error) {
	inputPath, outputPath := c.Args().Get(0), c.Args().Get(1)
	if inputPath == "" || outputPath == "" {
		return nil, fmt.Errorf("usage: milkconv convert <input.milk> <output.frag>")
	}

	log := newLogger(c)
	log.Info().Str("input", inputPath).Msg("reading preset")

	p, err := preset.Read(inputPath)
	if err != nil {
		return nil, err
	}

	prof, err := loadProfile(c)
	if err != nil {
		return nil, err
	}

	waveMode := prof.DefaultWave
	if override := c.Int("wave-mode"); override >= 0 {
		waveMode = override
	} else if raw, ok := p.GetScalar("nwavemode"); ok {
		if n, err := parseWaveMode(raw); err == nil {
			waveMode = n
		} else {
			log.Warn().Str("nwavemode", raw).Msg("non-numeric nwavemode, using default wave mode")
		}
	}

	log.Info().Int("wave_mode", waveMode).Msg("translating preset")
	result := translate.Translate(p, waveMode, prof)

	if err := os.WriteFile(outputPath, []byte(result.GLSL), 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", outputPath, err)
	}
	log.Info().Str("output", outputPath).Msg("wrote shader")

	return result.Diagnostics, nil
}

func runConvert(c *cli.Context) error {
	diags, err := compileOnce(c)
	if err != nil {
		return err
	}
	for _, d := range diags {
		redColor.Fprintf(os.Stderr, "[%s] %d:%d: %s\n", d.Block, d.Line, d.Column, d.Message)
	}
	greenColor.Fprintf(os.Stdout, "compiled %s -> %s\n", c.Args().Get(0), c.Args().Get(1))
	return nil
}

func runWatch(c *cli.Context) error {
	inputPath := c.Args().Get(0)
	if inputPath == "" {
		return fmt.Errorf("usage: milkconv watch <input.milk> <output.frag>")
	}

	if _, err := compileOnce(c); err != nil {
		redColor.Fprintf(os.Stderr, "[ERROR] %v\n", err)
	} else {
		greenColor.Fprintf(os.Stdout, "compiled %s -> %s\n", c.Args().Get(0), c.Args().Get(1))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(inputPath); err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	cyanColor.Fprintf(os.Stdout, "watching %s for changes (ctrl-c to stop)\n", inputPath)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			diags, err := compileOnce(c)
			if err != nil {
				redColor.Fprintf(os.Stderr, "[ERROR] %v\n", err)
				continue
			}
			for _, d := range diags {
				redColor.Fprintf(os.Stderr, "[%s] %d:%d: %s\n", d.Block, d.Line, d.Column, d.Message)
			}
			greenColor.Fprintf(os.Stdout, "recompiled %s -> %s\n", c.Args().Get(0), c.Args().Get(1))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			redColor.Fprintf(os.Stderr, "[WATCH ERROR] %v\n", err)
		}
	}
}

func runRepl(c *cli.Context) error {
	shell := replshell.New(BANNER, VERSION, LINE, "milkconv >>> ")
	shell.Start(os.Stdout)
	return nil
}

func parseWaveMode(raw string) (int, error) {
	var n int
	_, err := fmt.Sscanf(raw, "%d", &n)
	return n, err
}
