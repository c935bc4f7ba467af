package path

import (
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := map[string]string{
		"~":                      home,
		"~/.config/sysfacts.yml": filepath.Join(home, ".config/sysfacts.yml"),
		"/etc/sysfacts.yml":      "/etc/sysfacts.yml",
		"x":                      "x",
	}
	for in, want := range tests {
		got, err := ExpandPath(in)
		if err != nil || got != want {
			t.Errorf("ExpandPath(%q) = %q, %v; want %q", in, got, err, want)
		}
	}

	if _, err := ExpandPath(""); err == nil {
		t.Fatal("expected an error for an empty path")
	}
}
