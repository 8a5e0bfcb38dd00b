package analysis

import "github.com/phrazzld/taskflow-api/internal/domain"

// DecideMode picks the operating mode for the process. AI mode requires both
// a configured credential and a client that could be constructed; anything
// less selects heuristic mode, which is not an error.
func DecideMode(hasCredential, clientLoadable bool) domain.OperatingMode {
	if hasCredential && clientLoadable {
		return domain.ModeAI
	}
	return domain.ModeHeuristic
}
