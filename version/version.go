// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version reports the version of the running binary from the
// build information embedded by the Go toolchain.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"

	"go.astrophena.name/spdxlint/syncx"
)

// Info describes the running binary.
type Info struct {
	// Name is the base name of the binary.
	Name string
	// Version is the module version, or the VCS revision when built
	// from a source checkout.
	Version string
	// GoVersion is the version of the Go toolchain that built the binary.
	GoVersion string
}

// String implements the [fmt.Stringer] interface.
func (i Info) String() string {
	return fmt.Sprintf("%s %s (built with %s, %s/%s)\n", i.Name, i.Version, i.GoVersion, runtime.GOOS, runtime.GOARCH)
}

var info syncx.Lazy[Info]

// Version returns the [Info] of the running binary.
func Version() Info { return info.Get(readBuildInfo) }

// CmdName returns the base name of the running binary.
func CmdName() string { return Version().Name }

func readBuildInfo() Info {
	i := Info{
		Name:      filepath.Base(os.Args[0]),
		Version:   "devel",
		GoVersion: runtime.Version(),
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return i
	}
	if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		i.Version = bi.Main.Version
	}
	var rev, modified string
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value
		}
	}
	if i.Version == "devel" && rev != "" {
		if len(rev) > 12 {
			rev = rev[:12]
		}
		i.Version = rev
		if modified == "true" {
			i.Version += "-dirty"
		}
	}
	return i
}
