// Package health checks that the current platform has the external
// tools the playback chains depend on.
package health

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/fatih/color"

	"github.com/morshedulmunna/faaaa-sound/internal/pathutil"
	"github.com/morshedulmunna/faaaa-sound/internal/playback"
)

// lookPath is swapped in tests so results do not depend on the host.
var lookPath = exec.LookPath

// CheckResult represents the result of a single health check.
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
}

// Report contains all health check results. Passed means at least one
// audio candidate and one speech candidate are available, since the
// chains only need one working tool each.
type Report struct {
	Checks []CheckResult
	Passed bool
}

// RunChecks probes the audio and speech executables for the given
// platform, plus the resolved sound file when one is configured.
func RunChecks(goos, soundPath string) *Report {
	report := &Report{}

	audioOK := false
	for _, c := range playback.AudioCandidates(goos, "probe") {
		check := checkTool("audio: "+c.Exe, c.Exe)
		if check.Passed {
			audioOK = true
		}
		report.Checks = append(report.Checks, check)
	}

	speechOK := false
	for _, c := range playback.SpeechCandidates(goos, "probe") {
		check := checkTool("speech: "+c.Exe, c.Exe)
		if check.Passed {
			speechOK = true
		}
		report.Checks = append(report.Checks, check)
	}

	if soundPath != "" {
		report.Checks = append(report.Checks, checkSoundFile(soundPath))
	}

	report.Passed = audioOK && speechOK
	return report
}

func checkTool(name, exe string) CheckResult {
	if _, err := lookPath(exe); err != nil {
		return CheckResult{
			Name:    name,
			Message: fmt.Sprintf("%s not found in PATH", exe),
		}
	}
	return CheckResult{Name: name, Passed: true, Message: exe + " found"}
}

func checkSoundFile(path string) CheckResult {
	if !pathutil.Exists(path) {
		return CheckResult{
			Name:    "sound file",
			Message: fmt.Sprintf("%s does not exist (speech fallback will be used)", path),
		}
	}
	return CheckResult{Name: "sound file", Passed: true, Message: path}
}

// FormatReport formats the health report for console output.
func FormatReport(report *Report) string {
	var b strings.Builder
	for _, check := range report.Checks {
		if check.Passed {
			fmt.Fprintf(&b, "%s %s: %s\n", color.GreenString("✓"), check.Name, check.Message)
		} else {
			fmt.Fprintf(&b, "%s %s: %s\n", color.RedString("✗"), check.Name, check.Message)
		}
	}
	return b.String()
}
