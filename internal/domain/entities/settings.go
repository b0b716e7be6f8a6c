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

const defaultListen = ":8080"

// Settings is the runtime configuration for the hosting checker.
type Settings struct {
	Jira   JiraSettings   `yaml:"jira"`
	GitHub GitHubSettings `yaml:"github"`
	Listen string         `yaml:"listen"`
	Debug  bool           `yaml:"debug"` // Dry run: log the report instead of commenting
}

// JiraSettings holds the issue tracker connection details.
type JiraSettings struct {
	BaseURL  string `yaml:"base_url"`
	Username string `yaml:"username"`
	Token    string `yaml:"token"` // Inline, ${ENV_VAR}, or file path
	// Fields overrides the custom field id used for a hosting request field.
	Fields map[string]string `yaml:"fields"`
}

// GitHubSettings holds the source host credential.
type GitHubSettings struct {
	Token string `yaml:"token"` // Inline, ${ENV_VAR}, or file path
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewSettings reads and parses a configuration file, expanding environment
// variables and resolving token file paths. An empty path means environment
// variables only.
func NewSettings(path string) (*Settings, error) {
	settings := &Settings{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
		if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
		}
	}

	// Environment fallbacks for values the file does not set
	settings.Jira.BaseURL = firstNonEmpty(ResolveToken(settings.Jira.BaseURL), os.Getenv("JIRA_BASE_URL"))
	settings.Jira.Username = firstNonEmpty(ResolveToken(settings.Jira.Username), os.Getenv("JIRA_USERNAME"))
	settings.Jira.Token = firstNonEmpty(ResolveToken(settings.Jira.Token), os.Getenv("JIRA_TOKEN"))
	settings.GitHub.Token = firstNonEmpty(ResolveToken(settings.GitHub.Token), os.Getenv("GITHUB_TOKEN"))
	settings.Listen = firstNonEmpty(settings.Listen, os.Getenv("HOSTING_CHECKER_LISTEN"), defaultListen)
	if os.Getenv("DEBUG") == "true" {
		settings.Debug = true
	}

	if validateErr := validate(settings); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{"."}
	if homeDir != "" {
		locations = append(locations, homeDir, filepath.Join(homeDir, ".config"))
	}

	patterns := []string{
		"hosting-checker.yaml",
		"hosting-checker.yml",
		".hosting-checker.yaml",
		".hosting-checker.yml",
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

// ResolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the value from the file.
func ResolveToken(raw string) string {
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

	// If the resolved value is a path to an existing file, read it
	if info, statErr := os.Stat(resolved); statErr == nil && !info.IsDir() {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		return strings.TrimSpace(string(data))
	}

	return resolved
}

// validate checks for required configuration values.
func validate(settings *Settings) error {
	if settings.Jira.BaseURL == "" {
		return errors.New("the issue tracker base URL is required (set jira.base_url or JIRA_BASE_URL)")
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
