package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestNotFound is returned when no Cargo.toml can be located for a path.
	ErrManifestNotFound = zerr.New("could not find Cargo.toml")

	// ErrManifestInvalid is returned when a manifest cannot be read as a package manifest.
	ErrManifestInvalid = zerr.New("invalid package manifest")

	// ErrInvalidPackageSpec is returned when a package reference is not of the form name:version.
	ErrInvalidPackageSpec = zerr.New("spec has to be of form `name:version`")

	// ErrPackageIDInvalid is returned when a name/version pair does not form a valid package identifier.
	ErrPackageIDInvalid = zerr.New("invalid package identifier")

	// ErrRegistryUnavailable is returned when the registry cannot be reached or answered unusably.
	ErrRegistryUnavailable = zerr.New("registry unavailable")

	// ErrPackageNotFound is returned when the registry does not publish the requested package revision.
	ErrPackageNotFound = zerr.New("package not found in registry")

	// ErrNoMatch is returned when a registry search yields no crate with exactly the requested name.
	ErrNoMatch = zerr.New("failed to find a matching crate")

	// ErrChecksumMismatch is returned when a downloaded package does not match its index checksum.
	ErrChecksumMismatch = zerr.New("downloaded package checksum mismatch")

	// ErrCacheLockFailed is returned when the package cache lock cannot be acquired.
	ErrCacheLockFailed = zerr.New("failed to acquire package cache lock")

	// ErrMissingLibraryTarget is returned when a package has no [lib] target to analyze.
	ErrMissingLibraryTarget = zerr.New("package lacks required [lib] target")

	// ErrBuildFailed is returned when a cargo invocation exits unsuccessfully.
	ErrBuildFailed = zerr.New("build failed")

	// ErrBuildPlanUnreadable is returned when the captured build plan cannot be decoded.
	ErrBuildPlanUnreadable = zerr.New("can't read build plan")

	// ErrCapturePoisoned is returned when a writer panicked while holding the capture buffer.
	ErrCapturePoisoned = zerr.New("lock poison")

	// ErrArtifactNotFound is returned when the build plan holds no library output for the package.
	ErrArtifactNotFound = zerr.New("lost build artifact")

	// ErrSpawnFailed is returned when the analysis driver process cannot be started.
	ErrSpawnFailed = zerr.New("could not spawn rustc")

	// ErrPipeUnavailable is returned when the driver's standard input cannot be piped.
	ErrPipeUnavailable = zerr.New("could not pipe to rustc")

	// ErrChildWaitFailed is returned when waiting for the driver process fails.
	ErrChildWaitFailed = zerr.New("failed to wait for rustc")

	// ErrAnalysisFailed is returned when the analysis driver exits with a non-zero status.
	ErrAnalysisFailed = zerr.New("rust-semverver errored")

	// ErrCratesNotFound is returned by the driver side when the stub's crates cannot be recovered.
	ErrCratesNotFound = zerr.New("could not find `old` and `new` crates")

	// ErrPublicCrateNotFound is returned by the driver side when the public surface stub's crate cannot be recovered.
	ErrPublicCrateNotFound = zerr.New("could not find `new` crate")

	// ErrDriverArgsMissing is returned when a driver is started without compiler arguments.
	ErrDriverArgsMissing = zerr.New("missing compiler arguments")

	// ErrSysrootNotFound is returned when no sysroot can be determined for the driver.
	ErrSysrootNotFound = zerr.New("need to specify SYSROOT env var, or use rustup")

	// ErrConfigReadFailed is returned when the config file exists but cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrCacheCreateFailed is returned when a cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create cache directory")
)
