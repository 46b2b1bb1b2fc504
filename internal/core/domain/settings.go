package domain

import "time"

const (
	// DefaultRegistryAPI is the base URL of the crates.io web API.
	DefaultRegistryAPI = "https://crates.io"
	// DefaultRegistryIndex is the crates.io sparse index.
	DefaultRegistryIndex = "https://index.crates.io"
	// DefaultRegistryDownload is the crates.io download endpoint.
	DefaultRegistryDownload = "https://static.crates.io/crates"
	// DefaultCargo is the cargo executable.
	DefaultCargo = "cargo"
	// DefaultDriver is the comparing analysis driver.
	DefaultDriver = "rust-semverver"
	// DefaultPublicDriver is the single-crate public surface driver.
	DefaultPublicDriver = "rust-semver-public"
	// DefaultHTTPTimeout bounds each registry request.
	DefaultHTTPTimeout = 30 * time.Second
)

// Settings is the resolved tool configuration.
type Settings struct {
	RegistryAPI      string
	RegistryIndex    string
	RegistryDownload string
	CacheDir         string
	Cargo            string
	Driver           string
	PublicDriver     string
	HTTPTimeout      time.Duration
}

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings() *Settings {
	return &Settings{
		RegistryAPI:      DefaultRegistryAPI,
		RegistryIndex:    DefaultRegistryIndex,
		RegistryDownload: DefaultRegistryDownload,
		CacheDir:         DefaultCachePath(),
		Cargo:            DefaultCargo,
		Driver:           DefaultDriver,
		PublicDriver:     DefaultPublicDriver,
		HTTPTimeout:      DefaultHTTPTimeout,
	}
}
