package buildinfo

import (
	"strings"
	"testing"
)

func stamp(t *testing.T, version, commit, date string) {
	t.Helper()
	oldV, oldC, oldD := Version, Commit, Date
	Version, Commit, Date = version, commit, date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })
}

func TestCurrent(t *testing.T) {
	stamp(t, "v1.2.3", "0123456789abcdef0123", "2026-01-02T03:04:05Z")

	got := Current()
	want := Info{Version: "v1.2.3", Commit: "0123456789ab", Date: "2026-01-02T03:04:05Z"}
	if got != want {
		t.Errorf("Current() = %+v, want %+v", got, want)
	}
}

func TestCurrentDefaults(t *testing.T) {
	stamp(t, "dev", "none", "unknown")

	if got := Current(); got.Commit != "none" {
		t.Errorf("short commit should be kept, got %q", got.Commit)
	}
}

func TestTemplate(t *testing.T) {
	stamp(t, "v1.2.3", "abc", "today")

	if got, want := Template(), "{{.Name}} v1.2.3 (abc, built today)\n"; got != want {
		t.Errorf("Template() = %q, want %q", got, want)
	}
	if got := String(); !strings.Contains(got, "version: v1.2.3") || !strings.Contains(got, "commit: abc") {
		t.Errorf("String() = %q", got)
	}
}
