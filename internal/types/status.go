package types

// ProcessingStatus is the single process-wide status value gating pipeline
// invocations. New submissions may start only from StatusIdle.
type ProcessingStatus string

// Processing status constants
const (
	// StatusIdle means no synthesis is in flight; submissions are allowed
	StatusIdle ProcessingStatus = "IDLE"
	// StatusProcessing means a manual-entry synthesis is in flight
	StatusProcessing ProcessingStatus = "PROCESSING"
	// StatusSearching means a batch search synthesis is in flight
	StatusSearching ProcessingStatus = "SEARCHING"
	// StatusError means the last synthesis failed and must be dismissed
	StatusError ProcessingStatus = "ERROR"
)

// validTransitions is the full status state machine. There is no way out of
// Processing or Searching except completion of the in-flight call.
var validTransitions = map[ProcessingStatus][]ProcessingStatus{
	StatusIdle:       {StatusProcessing, StatusSearching},
	StatusProcessing: {StatusIdle, StatusError},
	StatusSearching:  {StatusIdle, StatusError},
	StatusError:      {StatusIdle},
}

// ValidTransition reports whether moving from one status to another is
// permitted by the state machine.
func ValidTransition(from, to ProcessingStatus) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
