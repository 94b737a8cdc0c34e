package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/kirsle/configdir"
)

// Operating system constants
const (
	OSLinux = "linux"
)

// SharedResourceRoot is where packaged resources are installed on Linux
const SharedResourceRoot = "/usr/local/share"

// ErrResourceNotFound is returned when no candidate directory holds the file
var ErrResourceNotFound = errors.New("resource not found")

// ResourceDirs returns the directories searched for resources, highest
// priority first: the per-user config dir, the system config dirs and,
// on Linux, the shared install prefix.
func ResourceDirs(appName string) []string {
	dirs := []string{configdir.LocalConfig(appName)}
	dirs = append(dirs, configdir.SystemConfig(appName)...)
	if runtime.GOOS == OSLinux {
		dirs = append(dirs, filepath.Join(SharedResourceRoot, appName))
	}
	return dirs
}

// FindResource returns the first existing regular file named file in dirs
func FindResource(dirs []string, file string) (string, error) {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, file)
		info, err := os.Stat(path)
		if err == nil && info.Mode().IsRegular() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrResourceNotFound, file)
}

// EnsureUserResourceDir creates the per-user resource directory so users
// can drop replacement resources into it
func EnsureUserResourceDir(appName string) (string, error) {
	dir := configdir.LocalConfig(appName)
	if err := configdir.MakePath(dir); err != nil {
		return "", fmt.Errorf("failed to create resource dir %s: %w", dir, err)
	}
	return dir, nil
}
