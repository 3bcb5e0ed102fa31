package tui

import (
	"os"
	"path/filepath"
)

// LogFileEnv overrides the log file location.
const LogFileEnv = "VIGIT_LOG_FILE"

// LogFilePath returns where the rotating log lives for a user whose vigit
// directory is dir (normally ~/.vigit). An empty result disables file logging.
func LogFilePath(dir string) string {
	if custom := os.Getenv(LogFileEnv); custom != "" {
		return custom
	}
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "logs", "vigit.log")
}
