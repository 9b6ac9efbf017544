package config

// DefaultPhrase is spoken when no custom phrase is configured or when a
// sanitized message comes out empty.
const DefaultPhrase = "Faaaaaaah"

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"enabled":            true,
		"on_test_failure":    true,
		"on_errors":          false,
		"read_error_message": false,
		"sound_file_path":    "${appDir}/assets/faaah.mp3",
		"cooldown_ms":        2500,
		"custom_phrase":      DefaultPhrase,
	}
}
