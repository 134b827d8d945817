package booking

// ValidationError signals that client input was rejected before any state
// was mutated.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}
