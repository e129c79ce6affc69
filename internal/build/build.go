// Package build holds build-time information.
package build

import "runtime"

// Version and Commit default to development values and can be overwritten by
// linker flags, e.g. -ldflags "-X go.trai.ch/commons/internal/build.Version=v1.0.0".
var (
	Version = "dev"
	Commit  = "none"
)

// Info returns a one-line description of the running binary.
func Info() string {
	return "commons version " + Version + " (" + Commit + ", " + runtime.Version() + ")"
}
