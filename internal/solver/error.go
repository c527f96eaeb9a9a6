package solver

// SnapshotError reports a malformed board snapshot, e.g. a revealed
// count inconsistent with the flags around it. The turn's solve is
// abandoned; the caller may re-supply a corrected snapshot.
type SnapshotError struct {
	message string
}

// [SnapshotError] implements [error]
func (e SnapshotError) Error() string {
	return "malformed snapshot: " + e.message
}

// ContradictionError reports an impossible board: a constraint whose
// mine count fell out of bounds, or a component admitting no valid
// assignment. This is a hard error and is never guessed around.
type ContradictionError struct {
	message string
}

// [ContradictionError] implements [error]
func (e ContradictionError) Error() string {
	return "board contradiction: " + e.message
}
