package domain

// OperatingMode selects between AI-backed and heuristic-only analysis. It is
// decided once at startup and never changes for the life of the process.
type OperatingMode int

// Operating modes
const (
	ModeHeuristic OperatingMode = iota
	ModeAI
)

// String returns the lowercase name of the mode.
func (m OperatingMode) String() string {
	switch m {
	case ModeAI:
		return "ai"
	default:
		return "heuristic"
	}
}
