package cli

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// AppPaths is an interface to determine application specific paths for configuration
// and logging/tracing.
type AppPaths interface {
	ConfigDir() string
	LogDir() string
}

// DefaultAppPaths returns an AppPaths instance with platform-dependent defaults
// set, given appTag. appTag is a string specific to a client's application to identify it.
func DefaultAppPaths(appTag string) (AppPaths, error) {
	home, err := os.UserHomeDir()
	return appPaths{tag: appTag, home: home, goos: runtime.GOOS}, err
}

type appPaths struct {
	tag  string
	home string
	goos string
}

var _ AppPaths = appPaths{}

// name is the directory name for the application. Unix flavours use lower
// case names.
func (a appPaths) name() string {
	switch a.goos {
	case "darwin", "windows":
		return a.tag
	}
	return strings.ToLower(a.tag)
}

func (a appPaths) ConfigDir() string {
	c, err := os.UserConfigDir()
	if err != nil {
		switch a.goos {
		case "darwin":
			c = filepath.Join(a.home, "Library", "Application Support")
		case "windows":
			c = a.home
		default:
			c = filepath.Join(a.home, ".config")
		}
	}
	return filepath.Join(c, a.name())
}

func (a appPaths) LogDir() string {
	switch a.goos {
	case "darwin":
		return filepath.Join(a.home, "Library", "Application Support", "Logs", a.name())
	case "windows":
		c, err := os.UserCacheDir()
		if err != nil {
			c = a.home
		}
		return filepath.Join(c, "Logs", a.name())
	}
	c, err := os.UserCacheDir()
	if err != nil {
		c = a.home
	}
	return filepath.Join(c, "logs", a.name())
}
