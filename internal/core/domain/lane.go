package domain

// BuildLane tags one of the two compilation passes.
type BuildLane int

const (
	// LaneCurrent is the version under review ("new").
	LaneCurrent BuildLane = iota
	// LaneStable is the published baseline ("old").
	LaneStable
)

// Tag returns the build-identity tag injected into the compiler for the lane.
// It depends on the lane only, never on package contents.
func (l BuildLane) Tag() string {
	if l == LaneCurrent {
		return "new"
	}
	return "old"
}

// String returns a human readable lane name.
func (l BuildLane) String() string {
	if l == LaneCurrent {
		return "current"
	}
	return "stable"
}
