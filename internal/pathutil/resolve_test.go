package pathutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEmptyPath(t *testing.T) {
	_, ok := Resolve("", "/opt/faaah", "/home/me/project")
	assert.False(t, ok)
}

func TestResolveAppDirToken(t *testing.T) {
	path, ok := Resolve("${appDir}/assets/faaah.mp3", "/opt/faaah", "")

	require.True(t, ok)
	assert.Equal(t, filepath.Join("/opt/faaah", "assets", "faaah.mp3"), path)
}

func TestResolveWorkspaceToken(t *testing.T) {
	path, ok := Resolve("${workspaceFolder}/sounds/alert.wav", "/opt/faaah", "/home/me/project")

	require.True(t, ok)
	assert.Equal(t, filepath.Join("/home/me/project", "sounds", "alert.wav"), path)
}

func TestResolveReplacesAllOccurrences(t *testing.T) {
	path, ok := Resolve("${appDir}/a/${appDir}/b.mp3", "/opt", "")

	require.True(t, ok)
	assert.Equal(t, filepath.Join("/opt", "a", "opt", "b.mp3"), path)
}

func TestResolveWorkspaceTokenLeftWhenUnknown(t *testing.T) {
	// No workspace folder known: the token stays literal and the result
	// anchors at appDir.
	path, ok := Resolve("${workspaceFolder}/alert.wav", "/opt/faaah", "")

	require.True(t, ok)
	assert.Contains(t, path, "${workspaceFolder}")
	assert.True(t, filepath.IsAbs(path))
}

func TestResolveRelativeAnchorsAtAppDir(t *testing.T) {
	path, ok := Resolve("assets/faaah.mp3", "/opt/faaah", "/home/me/project")

	require.True(t, ok)
	assert.Equal(t, filepath.Join("/opt/faaah", "assets", "faaah.mp3"), path)
}

func TestResolveAbsolutePathUntouched(t *testing.T) {
	path, ok := Resolve("/usr/share/sounds/bell.ogg", "/opt/faaah", "")

	require.True(t, ok)
	assert.Equal(t, "/usr/share/sounds/bell.ogg", path)
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "ding.mp3")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	assert.True(t, Exists(file))
	assert.False(t, Exists(filepath.Join(dir, "missing.mp3")))
	assert.False(t, Exists(dir), "directories are not playable files")
}
