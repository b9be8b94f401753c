// Package fonts discovers TrueType/OpenType font files on disk.
// Discovery is filename-based only; parsing and rendering belong to the
// outline provider.
package fonts

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultDirectories returns the conventional font locations scanned
// when the user names none.
func DefaultDirectories() []string {
	home, _ := os.UserHomeDir()
	return []string{
		"/usr/share/fonts",
		"/usr/local/share/fonts",
		filepath.Join(home, ".local/share/fonts"),
		filepath.Join(home, ".fonts"),
	}
}

// IsVariableFontFile reports whether the filename follows the common
// variable-font naming convention. Variable fonts render with their
// default instance only, so they are filtered out unless asked for.
func IsVariableFontFile(path string) bool {
	base := strings.ToLower(filepath.Base(path))
	return strings.Contains(base, "variablefont") || strings.Contains(base, "variable-font")
}

// Scan walks the given directories and returns every .ttf/.otf file
// found, deduplicated and sorted case-insensitively. Directories that do
// not exist are skipped. Variable fonts are excluded unless
// includeVariable is set.
func Scan(dirs []string, includeVariable bool) []string {
	seen := map[string]bool{}
	var found []string

	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			lower := strings.ToLower(path)
			if !strings.HasSuffix(lower, ".ttf") && !strings.HasSuffix(lower, ".otf") {
				return nil
			}
			if !includeVariable && IsVariableFontFile(path) {
				return nil
			}
			if !seen[path] {
				seen[path] = true
				found = append(found, path)
			}
			return nil
		})
	}

	sort.Slice(found, func(i, j int) bool {
		return strings.ToLower(found[i]) < strings.ToLower(found[j])
	})
	return found
}

// DisplayName returns the name shown for a font path.
func DisplayName(path string) string {
	return filepath.Base(path)
}
