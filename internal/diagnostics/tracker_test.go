package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorsOnly(messages ...string) []Diagnostic {
	diags := make([]Diagnostic, 0, len(messages))
	for _, m := range messages {
		diags = append(diags, Diagnostic{Severity: SeverityError, Message: m})
	}
	return diags
}

func TestCurrentErrorCountIsAdditive(t *testing.T) {
	snap := Snapshot{
		{Path: "a.go", Diagnostics: errorsOnly("e1", "e2")},
		{Path: "b.go", Diagnostics: []Diagnostic{
			{Severity: SeverityWarning, Message: "w1"},
		}},
		{Path: "c.go", Diagnostics: errorsOnly("e3", "e4", "e5")},
	}

	assert.Equal(t, 5, CurrentErrorCount(snap))
}

func TestCurrentErrorCountIgnoresNonErrors(t *testing.T) {
	snap := Snapshot{
		{Path: "a.go", Diagnostics: []Diagnostic{
			{Severity: SeverityWarning, Message: "w"},
			{Severity: SeverityInformation, Message: "i"},
			{Severity: SeverityHint, Message: "h"},
		}},
	}

	assert.Equal(t, 0, CurrentErrorCount(snap))
}

func TestCurrentErrorCountEmptySnapshot(t *testing.T) {
	assert.Equal(t, 0, CurrentErrorCount(nil))
}

func TestHasNewError(t *testing.T) {
	five := Snapshot{{Path: "a.go", Diagnostics: errorsOnly("1", "2", "3", "4", "5")}}
	six := Snapshot{{Path: "a.go", Diagnostics: errorsOnly("1", "2", "3", "4", "5", "6")}}

	assert.False(t, HasNewError(5, five), "same count is not a new error")
	assert.True(t, HasNewError(5, six))
	assert.False(t, HasNewError(5, nil), "fewer errors never fires")
}

func TestLatestErrorScansInReverse(t *testing.T) {
	snap := Snapshot{
		{Path: "a.go", Diagnostics: errorsOnly("oldest")},
		{Path: "b.go", Diagnostics: []Diagnostic{
			{Severity: SeverityError, Message: "middle"},
			{Severity: SeverityError, Message: "newest in b"},
			{Severity: SeverityWarning, Message: "trailing warning"},
		}},
	}

	latest, ok := LatestError(snap)

	require.True(t, ok)
	assert.Equal(t, "newest in b", latest.Message)
}

func TestLatestErrorSkipsErrorFreeResources(t *testing.T) {
	snap := Snapshot{
		{Path: "a.go", Diagnostics: errorsOnly("the error")},
		{Path: "b.go", Diagnostics: []Diagnostic{
			{Severity: SeverityWarning, Message: "only warnings here"},
		}},
	}

	latest, ok := LatestError(snap)

	require.True(t, ok)
	assert.Equal(t, "the error", latest.Message)
}

func TestLatestErrorNone(t *testing.T) {
	_, ok := LatestError(Snapshot{
		{Path: "a.go", Diagnostics: []Diagnostic{{Severity: SeverityHint, Message: "h"}}},
	})
	assert.False(t, ok)
}
