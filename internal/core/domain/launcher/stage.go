package launcher

// Stage is the position of an install run in its lifecycle.
// Stages only move forward; a failed run stays at the last stage it reached.
type Stage int

const (
	StageInit Stage = iota
	StageChecked
	StageGenerated
	StageDeployed
	StageCompleted
)

// String implements the Stringer interface
func (s Stage) String() string {
	switch s {
	case StageInit:
		return "init"
	case StageChecked:
		return "checked"
	case StageGenerated:
		return "generated"
	case StageDeployed:
		return "deployed"
	case StageCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Next returns the stage that follows s. Completed is terminal.
func (s Stage) Next() Stage {
	if s >= StageCompleted {
		return StageCompleted
	}
	return s + 1
}
