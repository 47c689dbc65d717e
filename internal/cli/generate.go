package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/example/sumgen/internal/generator"
)

func newGenerateCommand() *cobra.Command {
	var config GenerateConfig

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Expand sum type declarations into Go source",
		RunE: func(_ *cobra.Command, _ []string) error {
			return Generate(&config)
		},
	}

	cmd.Flags().StringSliceVarP(&config.Inputs, "input", "i", []string{"."}, "Directories containing sum type declarations")
	cmd.Flags().BoolVar(&config.TryFrom, "try-from", true, "Emit fallible projection methods alongside constructors")
	cmd.Flags().StringVar(&config.Example, "example", "", "Directory to write the demonstration union into")
	cmd.Flags().StringVar(&config.Output, "output", "", "Directory for generated files (default: next to each declaration)")
	cmd.Flags().StringVar(&config.ConfigPath, "config", "", "Path to .sumgen.yml config file")

	return cmd
}

// GenerateConfig holds configuration for sum type expansion.
type GenerateConfig struct {
	Inputs     []string `validate:"min=1,dive,required"`
	TryFrom    bool
	Example    string
	Output     string
	ConfigPath string
}

// Generate expands the sum type declarations found under the configured
// directories.
func Generate(config *GenerateConfig) error {
	if err := loadConfigFile(config); err != nil {
		return err
	}

	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	g := generator.New(generator.Config{
		Dirs:       config.Inputs,
		TryFrom:    config.TryFrom,
		ExampleDir: config.Example,
		OutputDir:  config.Output,
	})
	return g.Run()
}

func loadConfigFile(config *GenerateConfig) error {
	if config.ConfigPath == "" {
		return nil
	}

	data, err := os.ReadFile(filepath.Clean(config.ConfigPath))
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var cfg struct {
		Sumgen struct {
			Inputs  []string `yaml:"inputs"`
			TryFrom *bool    `yaml:"try_from"`
			Example string   `yaml:"example"`
			Output  string   `yaml:"output"`
		} `yaml:"sumgen"`
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	// Apply config values if flags weren't set
	if isDefaultInputs(config.Inputs) && len(cfg.Sumgen.Inputs) > 0 {
		config.Inputs = cfg.Sumgen.Inputs
	}
	if config.TryFrom && cfg.Sumgen.TryFrom != nil {
		config.TryFrom = *cfg.Sumgen.TryFrom
	}
	if config.Example == "" {
		config.Example = cfg.Sumgen.Example
	}
	if config.Output == "" {
		config.Output = cfg.Sumgen.Output
	}

	return nil
}

func isDefaultInputs(inputs []string) bool {
	return len(inputs) == 0 || (len(inputs) == 1 && inputs[0] == ".")
}
