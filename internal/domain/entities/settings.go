package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	defaultRemote     = "origin"
	defaultMaxCommits = 50
	defaultLLMModel   = "gpt-4"
	defaultLLMURL     = "https://api.openai.com/v1/chat/completions"
)

// Settings is the top-level configuration for commitlens.
type Settings struct {
	// Endpoint receives each commit change set as an HTTP POST.
	Endpoint string `yaml:"endpoint"`
	// Remote is the git remote the upstream branch is resolved against.
	Remote string `yaml:"remote"`
	// MaxCommits bounds the unpushed-commit walk when no upstream exists.
	MaxCommits int `yaml:"max_commits"`

	LLM LLMSettings `yaml:"llm"`
}

// LLMSettings configures the analysis provider used by the serve mode.
type LLMSettings struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"api_key"` // Inline, ${ENV_VAR}, or file path
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewSettings reads and parses a configuration file, expanding environment
// variables in secrets and filling in defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.LLM.APIKey = resolveSecret(settings.LLM.APIKey)
	settings.applyDefaults()

	return &settings, nil
}

// DefaultSettings returns settings usable without a config file.
func DefaultSettings() *Settings {
	settings := &Settings{}
	settings.applyDefaults()
	return settings
}

func (s *Settings) applyDefaults() {
	if s.Remote == "" {
		s.Remote = defaultRemote
	}
	if s.MaxCommits <= 0 {
		s.MaxCommits = defaultMaxCommits
	}
	if s.LLM.Model == "" {
		s.LLM.Model = defaultLLMModel
	}
	if s.LLM.Endpoint == "" {
		s.LLM.Endpoint = defaultLLMURL
	}
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".commitlens.yaml",
		".commitlens.yml",
		"commitlens.yaml",
		"commitlens.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// resolveSecret expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the secret from the file.
func resolveSecret(raw string) string {
	if raw == "" {
		return raw
	}

	// Expand ${ENV_VAR} references
	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	// If the resolved value is a path to an existing file, read the secret from it
	if _, statErr := os.Stat(resolved); statErr == nil {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read secret file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read secret from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}
