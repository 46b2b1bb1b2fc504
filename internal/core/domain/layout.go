package domain

import (
	"os"
	"path/filepath"
)

const (
	// AppDirName is the name of the per-user directory holding semverver state.
	AppDirName = "semverver"

	// IndexDirName is the name of the registry index cache directory.
	IndexDirName = "index"

	// CratesDirName is the name of the directory holding downloaded .crate files.
	CratesDirName = "crates"

	// SrcDirName is the name of the directory holding extracted package sources.
	SrcDirName = "src"

	// WorkDirName is the name of the directory holding ephemeral workspaces.
	WorkDirName = "work"

	// PackageCacheLockName is the name of the lock file guarding the package cache.
	PackageCacheLockName = ".package-cache"

	// ManifestFileName is the name of a cargo package manifest.
	ManifestFileName = "Cargo.toml"

	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "config.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the default root of the package cache.
// It joins the user cache directory and semverver, falling back to the
// temp directory when no user cache directory is known.
func DefaultCachePath() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, AppDirName)
}

// DefaultConfigPath returns the default location of the config file.
func DefaultConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, AppDirName, ConfigFileName)
}
