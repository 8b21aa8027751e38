package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/julianstephens/imaan/internal/constants"
)

// EnvConfigPath names the environment variable that overrides the config file location
const EnvConfigPath = "IMAAN_CONFIG"

// Config holds all imaan configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Log     LogConfig     `toml:"log"`
	Prayers PrayersConfig `toml:"prayers"`
	Backup  BackupConfig  `toml:"backup"`
}

// GeneralConfig holds storage and time settings.
type GeneralConfig struct {
	DataPath string `toml:"data_path,omitempty"`
	Timezone string `toml:"timezone,omitempty" validate:"omitempty,timezone"`
	// Watch reloads the dashboard when the data file changes on disk
	Watch bool `toml:"watch"`
}

type LogConfig struct {
	Debug bool   `toml:"debug"`
	Level string `toml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
}

// PrayersConfig sets the time shown for each prayer in a new record (HH:MM).
type PrayersConfig struct {
	Fajr    string `toml:"fajr" validate:"omitempty,datetime=15:04"`
	Dhuhr   string `toml:"dhuhr" validate:"omitempty,datetime=15:04"`
	Asr     string `toml:"asr" validate:"omitempty,datetime=15:04"`
	Maghrib string `toml:"maghrib" validate:"omitempty,datetime=15:04"`
	Isha    string `toml:"isha" validate:"omitempty,datetime=15:04"`
}

type BackupConfig struct {
	MaxBackups int `toml:"max_backups" validate:"min=0"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{Watch: true},
		Prayers: PrayersConfig{
			Fajr:    constants.DefaultFajrTime,
			Dhuhr:   constants.DefaultDhuhrTime,
			Asr:     constants.DefaultAsrTime,
			Maghrib: constants.DefaultMaghribTime,
			Isha:    constants.DefaultIshaTime,
		},
		Backup: BackupConfig{MaxBackups: constants.MaxBackups},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, constants.AppName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", constants.AppName)
}

// ResolvePath picks the config file: an explicit path, then $IMAAN_CONFIG, then the default.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return ExpandHome(explicit)
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return ExpandHome(env)
	}
	return filepath.Join(ConfigDir(), constants.DefaultConfigFile)
}

// Load reads the config file at path, returning defaults if it doesn't exist.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Save writes the config to path.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Validate checks field formats.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// DataPath returns the configured storage path, defaulting to imaan.json in the config dir.
func (c Config) DataPath() string {
	if c.General.DataPath != "" {
		return ExpandHome(c.General.DataPath)
	}
	return filepath.Join(ConfigDir(), constants.DefaultDataFile)
}

// Location returns the configured timezone, or the system zone when unset.
func (c Config) Location() (*time.Location, error) {
	if c.General.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.General.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.General.Timezone, err)
	}
	return loc, nil
}

// PrayerTimes maps prayer names to their configured times, omitting unset ones.
func (c Config) PrayerTimes() map[string]string {
	times := map[string]string{
		constants.PrayerFajr:    c.Prayers.Fajr,
		constants.PrayerDhuhr:   c.Prayers.Dhuhr,
		constants.PrayerAsr:     c.Prayers.Asr,
		constants.PrayerMaghrib: c.Prayers.Maghrib,
		constants.PrayerIsha:    c.Prayers.Isha,
	}
	for name, t := range times {
		if t == "" {
			delete(times, name)
		}
	}
	return times
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
