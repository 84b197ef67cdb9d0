package config

import "path/filepath"

// Persisted state layout below the cache root:
//
//	<cache_dir>/repos/<encoded identity>   one mirror per cached repository
//	<cache_dir>/locks/<encoded identity>   one lock file per mirror
//	<cache_dir>/update-lock                global lock for fleet sweeps

// ReposDir returns the directory holding the mirror directories.
func (c *Config) ReposDir() string {
	return filepath.Join(c.Settings.CacheDir, "repos")
}

// LocksDir returns the directory holding per-mirror lock files.
func (c *Config) LocksDir() string {
	return filepath.Join(c.Settings.CacheDir, "locks")
}

// UpdateLockPath returns the global fleet-update lock file.
func (c *Config) UpdateLockPath() string {
	return filepath.Join(c.Settings.CacheDir, "update-lock")
}
