package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rnkit-labs/rnsetup/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyNodeMinVersion         = "node_min_version"
	KeyPackageManager         = "package_manager"
	KeyFallbackPackageManager = "fallback_package_manager"
	KeyHookManager            = "hook_manager"
	KeyTemplatesDir           = "templates_dir"
)

// defaultValues are applied before the config file and environment are read.
var defaultValues = map[string]string{
	KeyNodeMinVersion:         "18.0.0",
	KeyPackageManager:         "yarn",
	KeyFallbackPackageManager: "npm",
	KeyHookManager:            "husky",
	KeyTemplatesDir:           "templates",
}

// Settings is the resolved view of every key the scaffolder reads.
type Settings struct {
	NodeMinVersion         string
	PackageManager         string
	FallbackPackageManager string
	HookManager            string
	TemplatesDir           string
}

// Keys returns the known setting keys in a stable order.
func Keys() []string {
	return []string{
		KeyNodeMinVersion,
		KeyPackageManager,
		KeyFallbackPackageManager,
		KeyHookManager,
		KeyTemplatesDir,
	}
}

// IsKnownKey reports whether key is one of the recognised settings.
func IsKnownKey(key string) bool {
	_, ok := defaultValues[key]
	return ok
}

// Dir returns the path to the config directory (~/.rnsetup/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.rnsetup/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	for key, value := range defaultValues {
		viper.SetDefault(key, value)
	}
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Current returns the resolved settings. Load must have been called first.
func Current() Settings {
	return Settings{
		NodeMinVersion:         strings.TrimSpace(Get(KeyNodeMinVersion)),
		PackageManager:         strings.TrimSpace(Get(KeyPackageManager)),
		FallbackPackageManager: strings.TrimSpace(Get(KeyFallbackPackageManager)),
		HookManager:            strings.TrimSpace(Get(KeyHookManager)),
		TemplatesDir:           strings.TrimSpace(Get(KeyTemplatesDir)),
	}
}

// Defaults returns the built-in settings, ignoring file and environment.
func Defaults() Settings {
	return Settings{
		NodeMinVersion:         defaultValues[KeyNodeMinVersion],
		PackageManager:         defaultValues[KeyPackageManager],
		FallbackPackageManager: defaultValues[KeyFallbackPackageManager],
		HookManager:            defaultValues[KeyHookManager],
		TemplatesDir:           defaultValues[KeyTemplatesDir],
	}
}

// ResolveTemplatesDir returns the templates directory for a target. Relative
// paths are resolved against the target directory.
func (s Settings) ResolveTemplatesDir(target string) string {
	if s.TemplatesDir == "" {
		return filepath.Join(target, defaultValues[KeyTemplatesDir])
	}
	if filepath.IsAbs(s.TemplatesDir) {
		return s.TemplatesDir
	}
	return filepath.Join(target, s.TemplatesDir)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys(), ", "))
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
