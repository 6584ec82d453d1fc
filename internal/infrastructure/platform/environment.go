// Package platform describes the host the launcher backends run on.
package platform

import (
	"errors"
	"os"
	"runtime"

	"github.com/adrg/xdg"

	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/launcher"
)

// Environment is the injectable view of the host operating system.
// Backends branch on OS at runtime so every platform path can be exercised
// from any build host.
type Environment struct {
	OS        launcher.Platform
	Getenv    func(key string) string
	HomeDir   func() (string, error)
	ConfigDir func() (string, error)
}

// Detect returns the Environment of the running process.
func Detect() Environment {
	return Environment{
		OS:        launcher.Platform(runtime.GOOS),
		Getenv:    os.Getenv,
		HomeDir:   homeDir,
		ConfigDir: configDir,
	}
}

// Static returns an Environment with a fixed OS and variables, resolving the
// home and config directories from them the same way a real host would.
func Static(osName launcher.Platform, vars map[string]string) Environment {
	getenv := func(key string) string { return vars[key] }
	return Environment{
		OS:     osName,
		Getenv: getenv,
		HomeDir: func() (string, error) {
			key := "HOME"
			if osName == launcher.PlatformWindows {
				key = "USERPROFILE"
			}
			if v := getenv(key); v != "" {
				return v, nil
			}
			return "", errNoHome
		},
		ConfigDir: func() (string, error) {
			switch osName {
			case launcher.PlatformWindows:
				if v := getenv("APPDATA"); v != "" {
					return v, nil
				}
			case launcher.PlatformMacOS:
				if v := getenv("HOME"); v != "" {
					return v + "/Library/Application Support", nil
				}
			default:
				if v := getenv("XDG_CONFIG_HOME"); v != "" {
					return v, nil
				}
				if v := getenv("HOME"); v != "" {
					return v + "/.config", nil
				}
			}
			return "", errNoConfig
		},
	}
}

// Supports reports whether the environment runs on p.
func (e Environment) Supports(p launcher.Platform) bool {
	return e.OS == p
}

var (
	errNoHome   = errors.New("home directory is not set")
	errNoConfig = errors.New("config directory is not set")
)

func homeDir() (string, error) {
	if xdg.Home != "" {
		return xdg.Home, nil
	}
	return os.UserHomeDir()
}

func configDir() (string, error) {
	if xdg.ConfigHome != "" {
		return xdg.ConfigHome, nil
	}
	return os.UserConfigDir()
}
