// Package playback maps a platform to the ordered command chains used to
// play an audio file or speak a phrase, and drives those chains with
// fallback. Chain resolution is a pure function of the platform
// identifier; running them is the Player's job.
package playback

import (
	"strings"

	"github.com/morshedulmunna/faaaa-sound/internal/chain"
)

// AudioCandidates returns the audio playback chain for the given GOOS.
// Candidates are ordered by preference; unavailable tools simply fail to
// spawn and the chain moves on.
func AudioCandidates(goos, file string) []chain.Candidate {
	switch goos {
	case "darwin":
		return []chain.Candidate{
			{Exe: "afplay", Args: []string{file}},
		}
	case "windows":
		script := "(New-Object Media.SoundPlayer '" + escapePowerShell(file) + "').PlaySync();"
		return []chain.Candidate{powershell(script)}
	default:
		return []chain.Candidate{
			{Exe: "ffplay", Args: []string{"-nodisp", "-autoexit", "-loglevel", "quiet", file}},
			{Exe: "mpg123", Args: []string{"-q", file}},
		}
	}
}

// SpeechCandidates returns the speech synthesis chain for the given GOOS.
func SpeechCandidates(goos, text string) []chain.Candidate {
	switch goos {
	case "darwin":
		return []chain.Candidate{
			{Exe: "say", Args: []string{text}},
		}
	case "windows":
		script := "Add-Type -AssemblyName System.Speech; " +
			"(New-Object System.Speech.Synthesis.SpeechSynthesizer).Speak('" + escapePowerShell(text) + "');"
		return []chain.Candidate{powershell(script)}
	default:
		return []chain.Candidate{
			{Exe: "spd-say", Args: []string{text}},
			{Exe: "espeak", Args: []string{text}},
		}
	}
}

func powershell(script string) chain.Candidate {
	return chain.Candidate{
		Exe:  "powershell",
		Args: []string{"-NoProfile", "-Command", script},
	}
}

// escapePowerShell doubles single quotes so an embedded quote cannot
// terminate the single-quoted PowerShell string literal. This is a
// correctness measure, not a security boundary.
func escapePowerShell(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
