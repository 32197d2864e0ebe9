package department

// Events published on the controller's event bus. Subscribers receive them
// synchronously on the goroutine completing the transition.

// SwitchStarted fires when the controller enters Switching(target).
type SwitchStarted struct {
	Target string
}

// SwitchCommitted fires after a successful switch has been committed and the
// active department updated.
type SwitchCommitted struct {
	Target string
}

// SwitchFailed fires when the switch collaborator reports a failure. The
// active department is unchanged.
type SwitchFailed struct {
	Target  string
	Message string
}

// SelectionCleared fires when re-selecting the active department clears the
// selection locally.
type SelectionCleared struct {
	Previous string
}

// SelectionRestored fires when a persisted department selection is restored
// at initialization.
type SelectionRestored struct {
	DepartmentID string
}
