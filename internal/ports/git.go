package ports

import "context"

// GitInfo holds git context captured when a task starts.
type GitInfo struct {
	Branch string
	Commit string
}

// GitDetector detects git context for the working directory.
type GitDetector interface {
	// Detect scans workingDir (or the process cwd when empty) for a git
	// repository.
	Detect(ctx context.Context, workingDir string) (*GitInfo, error)

	// IsAvailable reports whether a repository is reachable at all.
	IsAvailable() bool
}
