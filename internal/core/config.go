package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/julien-sobczak/nt-bulk/pkg/resync"
)

// Default config content
const DefaultConfig = `
[ankiconnect]
url = "http://127.0.0.1:8765"
timeout = "30s"

[defaults]
deck = ""
note_type = ""
delimiters = ["Tab", "Semicolon"]
numbered = false
markdown = false

[medias]
dir = ""
slugify = false
`

const (
	DefaultAnkiConnectURL     = "http://127.0.0.1:8765"
	DefaultAnkiConnectTimeout = "30s"
)

const (
	configFilename   = "config"
	settingsFilename = "settings.json"
	journalFilename  = "journal.db"
)

var (
	// Lazy-load configuration and ensure a single read
	configOnce      resync.Once
	configSingleton *Config
)

// Note: Fields must be public for toml package to unmarshall
type ConfigFile struct {
	AnkiConnect ConfigAnkiConnect `toml:"ankiconnect"`
	Defaults    ConfigDefaults    `toml:"defaults"`
	Medias      ConfigMedias      `toml:"medias"`
}
type ConfigAnkiConnect struct {
	URL     string `toml:"url"`
	Timeout string `toml:"timeout"`
}
type ConfigDefaults struct {
	Deck       string   `toml:"deck"`
	NoteType   string   `toml:"note_type"`
	Delimiters []string `toml:"delimiters"`
	Numbered   bool     `toml:"numbered"`
	Markdown   bool     `toml:"markdown"`
}
type ConfigMedias struct {
	// Empty to ask the host application
	Dir     string `toml:"dir"`
	Slugify bool   `toml:"slugify"`
}

// TimeoutDuration returns the HTTP timeout to use with AnkiConnect.
func (c ConfigAnkiConnect) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// DelimiterSet returns the delimiters enabled by default.
func (d ConfigDefaults) DelimiterSet() (*DelimiterSet, error) {
	return NewDelimiterSet(d.Delimiters...)
}

/* Main config */

type Config struct {
	// Directory containing the config file, the settings and the journal
	RootDirectory string

	// config content
	ConfigFile ConfigFile
}

func CurrentConfig() *Config {
	configOnce.Do(func() {
		var err error
		configSingleton, err = ReadConfigFromDirectory(CurrentHome())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to read current configuration: %v\n", err)
			os.Exit(1)
		}
	})
	return configSingleton
}

// ResetConfig forces the configuration to be read again.
func ResetConfig() {
	configOnce.Reset()
	configSingleton = nil
}

func (c *Config) SettingsPath() string {
	return filepath.Join(c.RootDirectory, settingsFilename)
}

func (c *Config) JournalPath() string {
	return filepath.Join(c.RootDirectory, journalFilename)
}

// CurrentHome returns the directory containing the configuration.
func CurrentHome() string {
	// Supports overriding the root directory mainly for testing purposes.
	if path, ok := os.LookupEnv("NT_BULK_HOME"); ok {
		abspath, err := filepath.Abs(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to evaluate $NT_BULK_HOME")
			os.Exit(1)
		}
		return abspath
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to determine home directory: %v\n", err)
		os.Exit(1)
	}
	return filepath.Join(home, ".nt-bulk")
}

// ReadConfigFromDirectory loads the configuration present in the given directory.
// The default configuration is used when the directory or the config file is missing.
func ReadConfigFromDirectory(path string) (*Config, error) {
	configPath := filepath.Join(path, configFilename)
	content := DefaultConfig
	_, err := os.Stat(configPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to check for config file: %v", err)
	}
	if err == nil {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %v", err)
		}
		content = string(data)
	}

	configFile, err := parseConfigFile(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	config := &Config{
		RootDirectory: path,
		ConfigFile:    *configFile,
	}
	if err := config.Check(); err != nil {
		return nil, err
	}
	return config, nil
}

func parseConfigFile(content string) (*ConfigFile, error) {
	d := toml.NewDecoder(strings.NewReader(content))
	d.DisallowUnknownFields()
	var result ConfigFile
	err := d.Decode(&result)

	// Apply default values
	if result.AnkiConnect.URL == "" {
		result.AnkiConnect.URL = DefaultAnkiConnectURL
	}
	if result.AnkiConnect.Timeout == "" {
		result.AnkiConnect.Timeout = DefaultAnkiConnectTimeout
	}
	if result.Defaults.Delimiters == nil {
		result.Defaults.Delimiters = []string{Tab.Name, Semicolon.Name}
	}

	return &result, err
}

// InitConfigFromDirectory creates the configuration directory with the default config file.
func InitConfigFromDirectory(path string) (*Config, error) {
	configPath := filepath.Join(path, configFilename)
	if _, err := os.Stat(configPath); err == nil {
		// Do not override current configuration
		return nil, fmt.Errorf("current configuration detected in %s", path)
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(configPath, []byte(DefaultConfig), 0644); err != nil {
		return nil, err
	}

	// Reread configuration
	return ReadConfigFromDirectory(path)
}

func (c *Config) Check() error {
	if _, err := c.ConfigFile.Defaults.DelimiterSet(); err != nil {
		return fmt.Errorf("invalid default delimiters: %v", err)
	}
	if _, err := time.ParseDuration(c.ConfigFile.AnkiConnect.Timeout); err != nil {
		return fmt.Errorf("invalid AnkiConnect timeout %q: %v", c.ConfigFile.AnkiConnect.Timeout, err)
	}
	return nil
}
