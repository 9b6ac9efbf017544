// Package diagnostics tracks error-severity diagnostics across a
// workspace snapshot and detects when new errors appear.
//
// Detection is a coarse counter by design: it compares total Error counts
// and cannot distinguish "two errors replaced by two different errors"
// from no change. That limitation is documented, observable behavior, not
// a defect to fix with per-message diffing.
package diagnostics

// Severity of a diagnostic. Only SeverityError is relevant to the
// trigger engine.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInformation
	SeverityHint
)

// Diagnostic is one reported issue with a severity and message text.
type Diagnostic struct {
	Severity Severity
	Message  string
}

// Resource is one diagnosable entity (usually a file) with its
// diagnostics in report order.
type Resource struct {
	Path        string
	Diagnostics []Diagnostic
}

// Snapshot is the full set of workspace diagnostics. It is a slice, not
// a map, so resource insertion order survives and the latest-error scan
// stays deterministic.
type Snapshot []Resource

// CurrentErrorCount sums Error-severity diagnostics across every
// resource in the snapshot.
func CurrentErrorCount(snap Snapshot) int {
	count := 0
	for _, res := range snap {
		for _, d := range res.Diagnostics {
			if d.Severity == SeverityError {
				count++
			}
		}
	}
	return count
}

// LatestError returns the most recently appended Error-severity
// diagnostic: resources are scanned last-first, and within a resource
// diagnostics last-first. The second return is false when the snapshot
// holds no errors.
func LatestError(snap Snapshot) (Diagnostic, bool) {
	for i := len(snap) - 1; i >= 0; i-- {
		diags := snap[i].Diagnostics
		for j := len(diags) - 1; j >= 0; j-- {
			if diags[j].Severity == SeverityError {
				return diags[j], true
			}
		}
	}
	return Diagnostic{}, false
}

// HasNewError reports whether snap contains strictly more errors than the
// previously recorded count.
func HasNewError(previous int, snap Snapshot) bool {
	return CurrentErrorCount(snap) > previous
}
