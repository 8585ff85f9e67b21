// Package buildinfo reports which cipherstack build is running.
//
// Release builds stamp the values with ldflags, for example
//
//	-X github.com/cipherstack/cipherstack/pkg/buildinfo.Version=v0.3.0
//
// and likewise for Commit and Date. Local builds keep the defaults.
package buildinfo

import "fmt"

// Stamped by ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is a snapshot of the stamped build values.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Current returns the running binary's build values. Commit is shortened to
// twelve characters.
func Current() Info {
	commit := Commit
	if len(commit) > 12 {
		commit = commit[:12]
	}
	return Info{Version: Version, Commit: commit, Date: Date}
}

// String renders the build as three "key: value" lines.
func String() string {
	i := Current()
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", i.Version, i.Commit, i.Date)
}

// Template is the cobra version template. {{.Name}} is filled in by cobra.
func Template() string {
	i := Current()
	return fmt.Sprintf("{{.Name}} %s (%s, built %s)\n", i.Version, i.Commit, i.Date)
}
