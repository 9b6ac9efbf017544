package chain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRunner returns queued results in order and records every call.
type scriptedRunner struct {
	results map[string]error
	calls   []string
}

func newScriptedRunner() *scriptedRunner {
	return &scriptedRunner{results: make(map[string]error)}
}

func (r *scriptedRunner) with(exe string, err error) *scriptedRunner {
	r.results[exe] = err
	return r
}

func (r *scriptedRunner) Run(exe string, _ []string) error {
	r.calls = append(r.calls, exe)
	return r.results[exe]
}

func TestRunStopsAtFirstSuccess(t *testing.T) {
	// A fails to spawn, B exits non-zero, C succeeds, D would succeed
	// but must never be invoked.
	runner := newScriptedRunner().
		with("a", errors.New("executable file not found in $PATH")).
		with("b", errors.New("exit status 1")).
		with("c", nil).
		with("d", nil)

	candidates := []Candidate{
		{Exe: "a"},
		{Exe: "b"},
		{Exe: "c"},
		{Exe: "d"},
	}

	index, ok := Run(runner, candidates)

	require.True(t, ok)
	assert.Equal(t, 2, index)
	assert.Equal(t, []string{"a", "b", "c"}, runner.calls)
}

func TestRunExhaustion(t *testing.T) {
	runner := newScriptedRunner().
		with("a", errors.New("exit status 127")).
		with("b", errors.New("exit status 1"))

	index, ok := Run(runner, []Candidate{{Exe: "a"}, {Exe: "b"}})

	assert.False(t, ok)
	assert.Equal(t, -1, index)
	assert.Equal(t, []string{"a", "b"}, runner.calls)
}

func TestRunEmptyChain(t *testing.T) {
	runner := newScriptedRunner()

	index, ok := Run(runner, nil)

	assert.False(t, ok)
	assert.Equal(t, -1, index)
	assert.Empty(t, runner.calls)
}

func TestRunSinglePassNoRetries(t *testing.T) {
	runner := newScriptedRunner().
		with("only", errors.New("exit status 1"))

	_, ok := Run(runner, []Candidate{{Exe: "only"}})

	assert.False(t, ok)
	assert.Len(t, runner.calls, 1)
}

func TestRunPassesArguments(t *testing.T) {
	var gotExe string
	var gotArgs []string
	runner := runnerFunc(func(exe string, args []string) error {
		gotExe = exe
		gotArgs = args
		return nil
	})

	index, ok := Run(runner, []Candidate{{Exe: "afplay", Args: []string{"/tmp/ding.mp3"}}})

	require.True(t, ok)
	assert.Equal(t, 0, index)
	assert.Equal(t, "afplay", gotExe)
	assert.Equal(t, []string{"/tmp/ding.mp3"}, gotArgs)
}

type runnerFunc func(exe string, args []string) error

func (f runnerFunc) Run(exe string, args []string) error { return f(exe, args) }

func TestExecRunnerSpawnFailure(t *testing.T) {
	err := ExecRunner{}.Run("faaah-definitely-not-a-real-binary", nil)
	assert.Error(t, err)
}
