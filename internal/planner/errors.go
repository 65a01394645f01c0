package planner

import "fmt"

// ValidationError identifies a malformed request record. Index is -1 when
// the problem is not tied to a single POI.
type ValidationError struct {
	Index  int
	Name   string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid %s: %s", e.Name, e.Reason)
	}
	return fmt.Sprintf("invalid poi %d (%q): %s", e.Index, e.Name, e.Reason)
}
