package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"
)

const (
	AppName      = "tafsird"
	DefaultLabel = "Default"

	// EnvConfigHome overrides the XDG location, mainly for tests.
	EnvConfigHome = "TAFSIRD_CONFIG_HOME"
)

var ErrNoConfig = errors.New("no config selected")

func ConfigRoot() string {
	if dir := os.Getenv(EnvConfigHome); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppName)
}

func ConfigsDir() string {
	return filepath.Join(ConfigRoot(), "configs")
}

func CurrentLabelFile() string {
	return filepath.Join(ConfigRoot(), "current_config")
}

func ConfigPath(label string) string {
	return filepath.Join(ConfigsDir(), label+".yaml")
}

func ensureDirs() error {
	return os.MkdirAll(ConfigsDir(), 0755)
}

func CurrentLabel() (string, error) {
	b, err := os.ReadFile(CurrentLabelFile())
	if os.IsNotExist(err) {
		return "", ErrNoConfig
	}
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(b)), nil
}

func ActiveConfigPath() (string, error) {
	label, err := CurrentLabel()
	if err != nil {
		return "", err
	}
	if label == "" {
		return "", ErrNoConfig
	}

	return ConfigPath(label), nil
}

type ConfigInfo struct {
	Label  string
	Path   string
	Active bool
}

func ListConfigs() ([]ConfigInfo, error) {
	entries, err := os.ReadDir(ConfigsDir())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	activeLabel, _ := CurrentLabel()
	var out []ConfigInfo

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".yaml") {
			continue
		}

		label := strings.TrimSuffix(name, ".yaml")
		out = append(out, ConfigInfo{
			Label:  label,
			Path:   filepath.Join(ConfigsDir(), name),
			Active: label == activeLabel,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out, nil
}

func SwitchConfig(label string) error {
	if strings.TrimSpace(label) == "" {
		return errors.New("label cannot be empty")
	}
	if err := ensureDirs(); err != nil {
		return err
	}

	if _, err := os.Stat(ConfigPath(label)); err != nil {
		return fmt.Errorf("config %q does not exist", label)
	}

	return os.WriteFile(CurrentLabelFile(), []byte(label), 0644)
}

// CreateConfig writes a profile with default values and returns its path.
func CreateConfig(label string) (string, error) {
	if strings.TrimSpace(label) == "" {
		return "", errors.New("label cannot be empty")
	}
	if strings.ContainsAny(label, `/\`) {
		return "", fmt.Errorf("label %q must not contain path separators", label)
	}
	if err := ensureDirs(); err != nil {
		return "", err
	}

	path := ConfigPath(label)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config %q already exists", label)
	}

	if err := SaveYAML(DefaultConfig(), path); err != nil {
		return "", err
	}

	return path, nil
}

// InitDefaultConfig creates the Default profile if missing and activates it.
// It returns os.ErrExist alongside the path when the profile was already
// there.
func InitDefaultConfig() (string, error) {
	path, err := CreateConfig(DefaultLabel)
	if err != nil {
		path = ConfigPath(DefaultLabel)
		if _, statErr := os.Stat(path); statErr != nil {
			return "", err
		}
		err = os.ErrExist
	}

	if serr := SwitchConfig(DefaultLabel); serr != nil {
		return "", serr
	}

	return path, err
}

// RenameConfig moves a profile to a new label and keeps it active if it
// was.
func RenameConfig(oldLabel, newLabel string) error {
	newLabel = strings.TrimSpace(newLabel)
	if newLabel == "" {
		return errors.New("new label cannot be empty")
	}
	if strings.ContainsAny(newLabel, `/\`) {
		return fmt.Errorf("label %q must not contain path separators", newLabel)
	}
	if oldLabel == DefaultLabel {
		return errors.New("cannot rename the Default config")
	}

	oldPath, newPath := ConfigPath(oldLabel), ConfigPath(newLabel)
	if _, err := os.Stat(oldPath); err != nil {
		return fmt.Errorf("config %q does not exist", oldLabel)
	}
	if _, err := os.Stat(newPath); err == nil {
		return fmt.Errorf("config %q already exists", newLabel)
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return err
	}

	if active, _ := CurrentLabel(); active == oldLabel {
		return os.WriteFile(CurrentLabelFile(), []byte(newLabel), 0644)
	}

	return nil
}

// RemoveConfig deletes a profile. Removing the active one falls back to
// Default.
func RemoveConfig(label string) error {
	if strings.TrimSpace(label) == "" {
		return errors.New("label cannot be empty")
	}
	if label == DefaultLabel {
		return errors.New("cannot remove the Default config")
	}

	path := ConfigPath(label)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("config %q does not exist", label)
	}

	active, _ := CurrentLabel()
	if active == label {
		if err := SwitchConfig(DefaultLabel); err != nil {
			return fmt.Errorf("failed switching to Default: %w", err)
		}
	}

	return os.Remove(path)
}
