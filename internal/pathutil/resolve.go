// Package pathutil expands the symbolic tokens allowed in the configured
// sound file path.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// Tokens recognized in sound_file_path. Every occurrence is substituted,
// not just the first.
const (
	TokenAppDir          = "${appDir}"
	TokenWorkspaceFolder = "${workspaceFolder}"
)

// Resolve expands tokens in raw and anchors relative results at appDir.
// An empty raw means no path is configured and resolution yields nothing.
// The workspace token is only substituted when a workspace folder is
// known. Checking that the result exists is the caller's concern.
func Resolve(raw, appDir, workspaceFolder string) (string, bool) {
	if raw == "" {
		return "", false
	}
	out := strings.ReplaceAll(raw, TokenAppDir, appDir)
	if workspaceFolder != "" {
		out = strings.ReplaceAll(out, TokenWorkspaceFolder, workspaceFolder)
	}
	if !filepath.IsAbs(out) {
		out = filepath.Join(appDir, out)
	}
	return out, true
}

// Exists reports whether path names an existing regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// AppDir returns the directory containing the running executable, the
// anchor for ${appDir} and for relative sound paths.
func AppDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
