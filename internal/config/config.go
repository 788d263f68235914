package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/readmegen/pkg/readmegen"
)

// ErrConfigNotFound is returned when an explicitly requested config file does
// not exist. Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

const (
	ConfigFileName = "readmegen.yaml"
	EnvFileName    = ".env"
)

// Environment variables honoured on top of readmegen.yaml.
const (
	EnvOutput         = "READMEGEN_OUTPUT"
	EnvTemplate       = "READMEGEN_TEMPLATE"
	EnvTemplateName   = "READMEGEN_TEMPLATE_NAME"
	EnvNonInteractive = "READMEGEN_NON_INTERACTIVE"
	EnvHostingDomains = "READMEGEN_HOSTING_DOMAINS"
)

type ListsConfig struct {
	RequireSecondary bool `yaml:"require_secondary"`
}

// ToolConfig holds the generator's own settings. It never carries project
// metadata; that comes from package.json, flags and prompts.
type ToolConfig struct {
	Output         string      `yaml:"output"`
	Template       string      `yaml:"template"`
	TemplateName   string      `yaml:"template_name"`
	HostingDomains []string    `yaml:"hosting_domains"`
	Lists          ListsConfig `yaml:"lists"`
	NonInteractive bool        `yaml:"non_interactive"`
}

// Default returns the built-in tool configuration.
func Default() ToolConfig {
	domains := make([]string, len(readmegen.DefaultHostingDomains))
	copy(domains, readmegen.DefaultHostingDomains)
	return ToolConfig{
		Output:         readmegen.DefaultOutputFileName,
		TemplateName:   readmegen.DefaultTemplateName,
		HostingDomains: domains,
	}
}

// LookupFunc resolves an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Load builds the tool configuration for dir.
//
// Precedence (lowest to highest): built-in defaults, readmegen.yaml, the
// .env file in dir, then the process environment via lookup. An absent
// readmegen.yaml is not an error unless explicitPath names it.
func Load(dir, explicitPath string, lookup LookupFunc) (ToolConfig, error) {
	cfg := Default()

	configPath := explicitPath
	if configPath == "" {
		configPath = filepath.Join(dir, ConfigFileName)
	}

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return ToolConfig{}, fmt.Errorf("%w: %s: %v", readmegen.ErrInvalidConfig, configPath, err)
		}
	case os.IsNotExist(err):
		if explicitPath != "" {
			return ToolConfig{}, fmt.Errorf("%w: %w: %s", readmegen.ErrInvalidConfig, ErrConfigNotFound, explicitPath)
		}
	default:
		return ToolConfig{}, err
	}

	envFile, err := readEnvFile(filepath.Join(dir, EnvFileName))
	if err != nil {
		return ToolConfig{}, err
	}

	if lookup == nil {
		lookup = os.LookupEnv
	}
	layered := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := envFile[key]
		return v, ok
	}

	if err := applyEnv(&cfg, layered); err != nil {
		return ToolConfig{}, err
	}

	cfg.HostingDomains = normalizeDomains(cfg.HostingDomains)
	if len(cfg.HostingDomains) == 0 {
		cfg.HostingDomains = Default().HostingDomains
	}
	if cfg.Output == "" {
		cfg.Output = readmegen.DefaultOutputFileName
	}
	if cfg.TemplateName == "" {
		cfg.TemplateName = readmegen.DefaultTemplateName
	}
	return cfg, nil
}

// readEnvFile parses a .env file without touching the process environment.
// A missing file yields an empty map.
func readEnvFile(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("%w: %s: %v", readmegen.ErrInvalidConfig, path, err)
	}
	return values, nil
}

func applyEnv(cfg *ToolConfig, lookup LookupFunc) error {
	if v, ok := lookup(EnvOutput); ok && v != "" {
		cfg.Output = v
	}
	if v, ok := lookup(EnvTemplate); ok && v != "" {
		cfg.Template = v
	}
	if v, ok := lookup(EnvTemplateName); ok && v != "" {
		cfg.TemplateName = v
	}
	if v, ok := lookup(EnvHostingDomains); ok && v != "" {
		cfg.HostingDomains = strings.Split(v, ",")
	}
	if v, ok := lookup(EnvNonInteractive); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", readmegen.ErrInvalidConfig, EnvNonInteractive, v)
		}
		cfg.NonInteractive = b
	}
	return nil
}

func normalizeDomains(domains []string) []string {
	out := make([]string, 0, len(domains))
	seen := make(map[string]bool, len(domains))
	for _, d := range domains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}
