package discovery

import "time"

// Project represents a discovered project root.
type Project struct {
	// Path is the absolute path to the project directory.
	Path string
	// DisplayPath is the path relative to the scan root that contained it,
	// always slash-separated. It is the matching target and what users see.
	DisplayPath string
}

// Result represents the result of a discovery scan.
type Result struct {
	Projects []Project
	Scanned  int           // Number of directories visited
	Duration time.Duration // Time taken to scan
}
