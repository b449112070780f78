package config

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"clite/common"
)

// Config is the checker configuration.  It is stored in the `[checker]` table
// of the configuration file.
type Config struct {
	// LogLevel is the name of the reporter's log level: one of "silent",
	// "error", "warn" or "verbose".
	LogLevel string

	// Color selects whether coloured output is used: "auto" enables it only
	// when writing to a terminal.
	Color string

	// TraceEnvironments indicates whether the type environment computed for
	// the globals and for each function should be displayed.
	TraceEnvironments bool

	// Output is the format diagnostics are written in: "pretty" or "yaml".
	Output string
}

// Available colour modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Available output formats
const (
	OutputPretty = "pretty"
	OutputYAML   = "yaml"
)

// tomlConfigFile represents the configuration file as it is encoded in TOML
type tomlConfigFile struct {
	Checker *tomlChecker `toml:"checker"`
}

// tomlChecker represents the `[checker]` table as it is encoded in TOML
type tomlChecker struct {
	LogLevel          string `toml:"log-level"`
	Color             string `toml:"color"`
	TraceEnvironments bool   `toml:"trace-environments"`
	Output            string `toml:"output"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		LogLevel:          "verbose",
		Color:             ColorAuto,
		TraceEnvironments: false,
		Output:            OutputPretty,
	}
}

// Load loads and validates the configuration file in the directory dir.  If
// there is no configuration file, the default configuration is returned.
// Fields missing from the file take their default values.
func Load(dir string) (*Config, error) {
	f, err := os.Open(filepath.Join(dir, common.ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}

		return nil, err
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	tcf := &tomlConfigFile{}
	if err := toml.Unmarshal(buff, tcf); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", common.ConfigFileName, err)
	}

	cfg := Default()
	if tcf.Checker != nil {
		if tcf.Checker.LogLevel != "" {
			cfg.LogLevel = tcf.Checker.LogLevel
		}

		if tcf.Checker.Color != "" {
			cfg.Color = tcf.Checker.Color
		}

		if tcf.Checker.Output != "" {
			cfg.Output = tcf.Checker.Output
		}

		cfg.TraceEnvironments = tcf.Checker.TraceEnvironments
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that every field of the configuration holds a known value.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "silent", "error", "warn", "verbose":
	default:
		return fmt.Errorf("invalid log level `%s`", c.LogLevel)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode `%s`", c.Color)
	}

	switch c.Output {
	case OutputPretty, OutputYAML:
	default:
		return fmt.Errorf("invalid output format `%s`", c.Output)
	}

	return nil
}

// Init creates a new configuration file holding the default configuration in
// the directory dir.  It fails if a configuration file already exists.
func Init(dir string) error {
	cfgFilePath := filepath.Join(dir, common.ConfigFileName)

	// check to see if a configuration already exists
	_, err := os.Stat(cfgFilePath)
	if err == nil {
		return errors.New("configuration file already exists")
	}

	if !os.IsNotExist(err) {
		return fmt.Errorf("configuration file error: %s", err.Error())
	}

	def := Default()
	tcf := &tomlConfigFile{
		Checker: &tomlChecker{
			LogLevel:          def.LogLevel,
			Color:             def.Color,
			TraceEnvironments: def.TraceEnvironments,
			Output:            def.Output,
		},
	}

	f, err := os.Create(cfgFilePath)
	if err != nil {
		return fmt.Errorf("error creating configuration file: %s", err.Error())
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(tcf); err != nil {
		return fmt.Errorf("error encoding TOML %s", err.Error())
	}

	return nil
}
