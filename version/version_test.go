// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package version

import (
	"strings"
	"testing"
)

func TestVersion(t *testing.T) {
	i := Version()
	if i.Name == "" {
		t.Error("Name must not be empty")
	}
	if i.Version == "" {
		t.Error("Version must not be empty")
	}
	if !strings.HasPrefix(i.GoVersion, "go") {
		t.Errorf("GoVersion must start with \"go\", got %q", i.GoVersion)
	}
	if got := i.String(); !strings.Contains(got, i.Name) || !strings.HasSuffix(got, "\n") {
		t.Errorf("String() must contain the name and end with a newline, got %q", got)
	}
}

func TestCmdName(t *testing.T) {
	if got, want := CmdName(), Version().Name; got != want {
		t.Errorf("CmdName() = %q, want %q", got, want)
	}
}
