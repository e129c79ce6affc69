package domain

import "path/filepath"

const (
	// ConfigFileName is the default configuration file name.
	ConfigFileName = "commons.yaml"

	// StateDirName is the name of the directory holding local state.
	StateDirName = ".commons"

	// StateFileName is the name of the conversion state file.
	StateFileName = "state.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStatePath returns the conversion state file below root.
func DefaultStatePath(root string) string {
	return filepath.Join(root, StateDirName, StateFileName)
}
