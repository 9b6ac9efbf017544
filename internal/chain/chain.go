// Package chain implements an ordered fallback executor for external
// commands. A chain is a list of candidates in decreasing preference;
// candidates are tried left to right until one exits successfully.
package chain

// Candidate is one concrete external command to attempt.
type Candidate struct {
	Exe  string
	Args []string
}

// Runner abstracts process spawning so chains can be exercised in tests
// without touching the host system. A nil error means the process started
// and exited with code 0; spawn failures and non-zero exits are both
// reported as non-nil errors.
type Runner interface {
	Run(exe string, args []string) error
}

// Run tries candidates strictly in order. The first candidate whose Run
// returns nil halts the chain and later candidates are never attempted.
// Spawn failures and non-zero exits are treated identically: advance to
// the next candidate. Traversal is a single pass with no retries.
//
// It returns the index of the successful candidate, or (-1, false) when
// the chain is exhausted. Callers decide the ultimate fallback.
func Run(r Runner, candidates []Candidate) (int, bool) {
	for i, c := range candidates {
		if err := r.Run(c.Exe, c.Args); err == nil {
			return i, true
		}
	}
	return -1, false
}
