// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride and configFileOverride let tests and the --config flag
// redirect config resolution away from the user's real home directory.
var (
	configDirOverride  string
	configFileOverride string
)

// Reset clears overrides. Call from test cleanup to restore defaults.
func Reset() {
	configDirOverride = ""
	configFileOverride = ""
}

// SetConfigDirOverride sets a custom config directory path, bypassing the
// platform lookup.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// SetConfigFilePathOverride pins config loading to one explicit file
// (the --config flag).
func SetConfigFilePathOverride(path string) {
	configFileOverride = path
}
