package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/chronos-tachyon/go-charstream"
	"github.com/chronos-tachyon/go-charstream/internal/config"
	"github.com/chronos-tachyon/go-charstream/report"
)

type MainConfig struct {
	Enc      string `cli:"name=enc aliases=e desc='input encoding (utf-8, latin1, windows-1252, macroman, utf-16, ...)'"`
	Tabs     int    `cli:"name=tabs desc='distance between tab stops'"`
	Config   string `cli:"name=config desc='YAML configuration file'"`
	StripBOM bool   `cli:"name=strip-bom desc='drop a leading byte order mark'"`
	Color    bool   `cli:"name=color desc='color diagnostics'"`
	V        bool   `cli:"name=v desc='log debug information'"`

	Main *cli.Command
}

// isSet reports whether the named option appeared on the command line.
func (cfg *MainConfig) isSet(name string) bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

// settings merges the configuration file, if any, with command line
// options, which take precedence.
func (cfg *MainConfig) settings() (*config.Config, error) {
	fileCfg := config.Default()
	if cfg.Config != "" {
		var err error
		fileCfg, err = config.Load(cfg.Config)
		if err != nil {
			return nil, err
		}
	}
	if cfg.isSet("enc") {
		fileCfg.Encoding = cfg.Enc
	}
	if cfg.isSet("tabs") {
		fileCfg.TabSize = cfg.Tabs
	}
	if cfg.StripBOM {
		fileCfg.StripBOM = true
	}
	if cfg.V {
		fileCfg.LogLevel = "debug"
	}
	if err := fileCfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return fileCfg, nil
}

func (cfg *MainConfig) colorMode() report.ColorMode {
	if !cfg.isSet("color") {
		return report.ColorAuto
	}
	if cfg.Color {
		return report.ColorAlways
	}
	return report.ColorNever
}

// options builds the stream options for one input.  Diagnostics are written
// to errOut, prefixed with name.
func (cfg *MainConfig) options(settings *config.Config, errOut io.Writer, name string) (charstream.Options, error) {
	level, err := settings.Level()
	if err != nil {
		return charstream.Options{}, err
	}
	log := newLog(errOut, level).With("input", name)
	reporters := []charstream.Reporter{report.NewTerminal(errOut, name, cfg.colorMode())}
	if level <= slog.LevelDebug {
		reporters = append(reporters, report.Logger(log))
	}
	return settings.Options(report.Multi(reporters...), log)
}

type DecodeConfig struct {
	*MainConfig

	Unpack bool `cli:"name=unpack desc='convert Big5, Shift_JIS and ISO-2022-JP to Unicode'"`

	Decode *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Offsets bool `cli:"name=offsets desc='include byte offsets'"`

	Dump *cli.Command
}

type TablesConfig struct {
	*MainConfig

	Tables *cli.Command
}

// eachInput calls fn for each named file, or for standard input when no
// files are named.  The file "-" also means standard input.
func eachInput(cc *cli.Context, files []string, fn func(name string, r io.Reader) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		if file == "-" {
			if err := fn("<stdin>", cc.In); err != nil {
				return err
			}
			continue
		}
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		err = fn(file, f)
		f.Close()
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}
