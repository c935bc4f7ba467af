package strutils

import (
	"sync"
	"testing"
)

func TestFold(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"RAM", "ram"},
		{" Networking ", "networking"},
		{"CPU Info", "cpu info"},
		{"STRASSE", "strasse"},
	}
	for _, tc := range tests {
		if got := Fold(tc.in); got != tc.want {
			t.Errorf("Fold(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestFoldConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if got := Fold("System Info"); got != "system info" {
					t.Errorf("Fold = %q", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestFoldSet(t *testing.T) {
	set := FoldSet([]string{"CPU", "", "  ", "ram"})
	if len(set) != 2 || !set["cpu"] || !set["ram"] {
		t.Fatalf("FoldSet = %v", set)
	}
}
