package model

import (
	"os"
	"path/filepath"
)

// defaultCacheDir places the page cache under the user cache directory,
// falling back to a local directory when none is available.
func defaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "actlens")
	}
	return ".actlens-cache"
}
