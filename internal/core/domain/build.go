package domain

// Invocation is one compiler invocation listed in a cargo build plan.
type Invocation struct {
	PackageName string   `json:"package_name"`
	TargetKinds []string `json:"target_kind"`
	Outputs     []string `json:"outputs"`
}

// BuildPlan is the machine readable description of a build pass.
type BuildPlan struct {
	Invocations []Invocation `json:"invocations"`
}

// BuildOptions are the user options forwarded identically to both lanes.
type BuildOptions struct {
	// Target is an optional cross-compilation target triple.
	Target string
	// Features is the list of features to activate.
	Features []string
	// AllFeatures activates all available features.
	AllFeatures bool
	// NoDefaultFeatures disables the default feature.
	NoDefaultFeatures bool
}

// BuildRequest is a single cargo check pass.
type BuildRequest struct {
	Workspace *Workspace
	Package   string
	// Tag is the build-identity tag passed as -C metadata.
	Tag     string
	Options BuildOptions
	// Plan makes cargo emit its build plan instead of compiling.
	Plan bool
}

// BuildOutput is what a real build pass reports back.
type BuildOutput struct {
	// DepsDir is the dependency search directory for the requested platform.
	DepsDir string
}

// ResolvedArtifact is the final output of a lane.
type ResolvedArtifact struct {
	LibraryPath          string
	DependencySearchPath string
}
