package fonts

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestIsVariableFontFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/fonts/Roboto-Regular.ttf", false},
		{"/fonts/Roboto-VariableFont_wght.ttf", true},
		{"/fonts/Inter-Variable-Font.otf", true},
		{"/fonts/VARIABLEFONT.TTF", true},
		{"/fonts/variably-named.ttf", false},
	}
	for _, tt := range tests {
		if got := IsVariableFontFile(tt.path); got != tt.want {
			t.Errorf("IsVariableFontFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "beta.ttf"))
	touch(t, filepath.Join(dir, "Alpha.OTF"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "nested", "gamma.ttf"))
	touch(t, filepath.Join(dir, "Delta-VariableFont_wght.ttf"))

	t.Run("skips non-fonts and variable fonts", func(t *testing.T) {
		got := Scan([]string{dir}, false)
		want := []string{
			filepath.Join(dir, "Alpha.OTF"),
			filepath.Join(dir, "beta.ttf"),
			filepath.Join(dir, "nested", "gamma.ttf"),
		}
		if len(got) != len(want) {
			t.Fatalf("Scan = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("Scan = %v, want %v", got, want)
			}
		}
	})

	t.Run("includes variable fonts when asked", func(t *testing.T) {
		got := Scan([]string{dir}, true)
		if len(got) != 4 {
			t.Fatalf("Scan with variable fonts = %v, want 4 entries", got)
		}
	})

	t.Run("missing directories are skipped", func(t *testing.T) {
		got := Scan([]string{filepath.Join(dir, "no-such-dir"), dir}, false)
		if len(got) != 3 {
			t.Errorf("Scan = %v, want 3 entries", got)
		}
	})

	t.Run("duplicate directories do not duplicate results", func(t *testing.T) {
		got := Scan([]string{dir, dir}, false)
		if len(got) != 3 {
			t.Errorf("Scan = %v, want 3 entries", got)
		}
	})
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("/usr/share/fonts/Roboto-Regular.ttf"); got != "Roboto-Regular.ttf" {
		t.Errorf("DisplayName = %q", got)
	}
}
