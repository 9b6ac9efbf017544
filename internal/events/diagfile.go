package events

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/morshedulmunna/faaaa-sound/internal/diagnostics"
	"github.com/morshedulmunna/faaaa-sound/internal/logging"
)

// FileDiagnostics reads the workspace diagnostic snapshot from a JSON
// file: an array of resources, each with an ordered list of diagnostics.
// A missing or unreadable file degrades to an empty snapshot: the
// diagnostics capability is simply unavailable, never fatal.
type FileDiagnostics struct {
	Path   string
	warned bool
}

type fileResource struct {
	Path        string           `json:"path"`
	Diagnostics []fileDiagnostic `json:"diagnostics"`
}

type fileDiagnostic struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Snapshot loads the current snapshot. Order in the file is preserved so
// the latest-error scan works on report order.
func (d *FileDiagnostics) Snapshot() diagnostics.Snapshot {
	data, err := os.ReadFile(d.Path)
	if err != nil {
		if !d.warned {
			logging.Logf("diagnostics: %s unavailable, treating as empty: %v", d.Path, err)
			d.warned = true
		}
		return nil
	}
	d.warned = false

	var raw []fileResource
	if err := json.Unmarshal(data, &raw); err != nil {
		logging.Logf("diagnostics: cannot parse %s: %v", d.Path, err)
		return nil
	}

	snap := make(diagnostics.Snapshot, 0, len(raw))
	for _, res := range raw {
		resource := diagnostics.Resource{Path: res.Path}
		for _, diag := range res.Diagnostics {
			resource.Diagnostics = append(resource.Diagnostics, diagnostics.Diagnostic{
				Severity: parseSeverity(diag.Severity),
				Message:  diag.Message,
			})
		}
		snap = append(snap, resource)
	}
	return snap
}

func parseSeverity(s string) diagnostics.Severity {
	switch strings.ToLower(s) {
	case "error":
		return diagnostics.SeverityError
	case "warning":
		return diagnostics.SeverityWarning
	case "information", "info":
		return diagnostics.SeverityInformation
	default:
		return diagnostics.SeverityHint
	}
}
