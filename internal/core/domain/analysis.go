package domain

// AnalysisConfig is propagated to the analysis driver.
type AnalysisConfig struct {
	// StableVersion is the version string of the stable package, used in report headers.
	StableVersion string
	// Explain requests detailed explanations.
	Explain bool
	// Compact requests only the suggested version on stdout.
	Compact bool
	// JSON requests a JSON description of all collected data.
	JSON bool
	// APIGuidelines restricts reporting to API-guidelines breakage.
	APIGuidelines bool
	// Target is the optional target triple, identical to the one used for the lanes.
	Target string
}

// ExternCrate is an external crate as seen by the driver after analysis.
type ExternCrate struct {
	// CrateNum is the compiler's crate number.
	CrateNum int
	// Name is the crate's name; the identity protocol never relies on it.
	Name string
	// Direct is set for crates declared by the compiled input itself, as
	// opposed to dependencies of dependencies.
	Direct bool
	// SpanLo is the byte offset of the declaration; zero for compiler-injected crates.
	SpanLo int
}

// ElaboratedProgram is the driver's view of the crates loaded for the stub.
type ElaboratedProgram struct {
	Crates []ExternCrate
}
