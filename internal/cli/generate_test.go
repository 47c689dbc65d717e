package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigFile(t *testing.T) {
	tests := []struct {
		name       string
		configPath string
		wantErr    bool
	}{
		{
			name:       "no config file",
			configPath: "",
			wantErr:    false,
		},
		{
			name:       "nonexistent config file",
			configPath: "/nonexistent/config.yml",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &GenerateConfig{ConfigPath: tt.configPath}
			err := loadConfigFile(config)
			if (err != nil) != tt.wantErr {
				t.Errorf("loadConfigFile() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigFileWithValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, ".sumgen.yml")

	configContent := `
sumgen:
  inputs:
    - "custom-input"
  try_from: false
  example: "custom-example"
  output: "custom-output"
`
	if err := os.WriteFile(configFile, []byte(configContent), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	config := &GenerateConfig{
		Inputs:     []string{"."},
		TryFrom:    true,
		ConfigPath: configFile,
	}
	if err := loadConfigFile(config); err != nil {
		t.Fatalf("loadConfigFile() error = %v", err)
	}

	if len(config.Inputs) != 1 || config.Inputs[0] != "custom-input" {
		t.Errorf("Inputs = %v, want [custom-input]", config.Inputs)
	}
	if config.TryFrom {
		t.Error("TryFrom should be overridden to false by config file")
	}
	if config.Example != "custom-example" {
		t.Errorf("Example = %q, want custom-example", config.Example)
	}
	if config.Output != "custom-output" {
		t.Errorf("Output = %q, want custom-output", config.Output)
	}
}

func TestLoadConfigFileFlagPrecedence(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, ".sumgen.yml")

	configContent := `
sumgen:
  inputs:
    - "from-config"
  output: "from-config"
`
	if err := os.WriteFile(configFile, []byte(configContent), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	config := &GenerateConfig{
		Inputs:     []string{"from-flag"},
		Output:     "from-flag",
		ConfigPath: configFile,
	}
	if err := loadConfigFile(config); err != nil {
		t.Fatalf("loadConfigFile() error = %v", err)
	}

	if config.Inputs[0] != "from-flag" {
		t.Errorf("Inputs = %v, flag value must win over config", config.Inputs)
	}
	if config.Output != "from-flag" {
		t.Errorf("Output = %q, flag value must win over config", config.Output)
	}
}

func TestLoadConfigFileWithInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, ".sumgen.yml")

	if err := os.WriteFile(configFile, []byte("sumgen: [not: a: map"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	config := &GenerateConfig{ConfigPath: configFile}
	if err := loadConfigFile(config); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestGenerateRejectsEmptyInputs(t *testing.T) {
	err := Generate(&GenerateConfig{Inputs: nil})
	if err == nil {
		t.Fatal("expected validation error for empty inputs")
	}
	if !strings.Contains(err.Error(), "invalid configuration") {
		t.Errorf("error = %v, want validation failure", err)
	}
}

func TestGenerateEndToEnd(t *testing.T) {
	tmpDir := t.TempDir()

	decl := `//go:build sumtype

package demo

//sumgen:union
type Value struct {
	Number int
	Text   string
}
`
	if err := os.WriteFile(filepath.Join(tmpDir, "value.go"), []byte(decl), 0o644); err != nil {
		t.Fatalf("write declaration: %v", err)
	}

	config := &GenerateConfig{
		Inputs:  []string{tmpDir},
		TryFrom: true,
	}
	if err := Generate(config); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	out, err := os.ReadFile(filepath.Join(tmpDir, "value_sumgen.go"))
	if err != nil {
		t.Fatalf("generated file missing: %v", err)
	}
	for _, want := range []string{
		"package demo",
		"type Value struct {",
		"func NewValueFromInt(v int) Value {",
		"func (u Value) AsString() (string, error) {",
	} {
		if !strings.Contains(string(out), want) {
			t.Errorf("generated file missing %q", want)
		}
	}
}

func TestGenerateReportsDeclarationErrors(t *testing.T) {
	tmpDir := t.TempDir()

	decl := `//go:build sumtype

package demo

//sumgen:union
type Lonely struct {
	Only string
}
`
	if err := os.WriteFile(filepath.Join(tmpDir, "lonely.go"), []byte(decl), 0o644); err != nil {
		t.Fatalf("write declaration: %v", err)
	}

	err := Generate(&GenerateConfig{Inputs: []string{tmpDir}})
	if err == nil {
		t.Fatal("expected error for single-variant declaration")
	}
	if !strings.Contains(err.Error(), `type "Lonely" must have more than one variant`) {
		t.Errorf("error = %v, want arity diagnostic", err)
	}
}
