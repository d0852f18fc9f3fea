package rooms

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed data/*
var roomsFS embed.FS

// Source resolves room files: an optional disk directory first (so authors
// can iterate without rebuilding), then the embedded defaults.
type Source struct {
	Dir string
}

// Load reads a rooms file by name (manifest, layout, script, or media).
func (s *Source) Load(name string) ([]byte, error) {
	clean := cleanRoomPath(name)
	if s != nil && s.Dir != "" {
		if data, err := os.ReadFile(filepath.Join(s.Dir, filepath.FromSlash(clean))); err == nil {
			return data, nil
		}
	}
	return roomsFS.ReadFile("data/" + clean)
}

// ManifestName is the well-known manifest file within a rooms dir.
const ManifestName = "manifest.yaml"

// LoadManifest reads and validates the manifest.
func (s *Source) LoadManifest() (*Manifest, error) {
	data, err := s.Load(ManifestName)
	if err != nil {
		return nil, err
	}
	return ParseManifest(data)
}

func cleanRoomPath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "rooms/data/"); ok {
		return after
	}
	if after, ok := strings.CutPrefix(s, "rooms/"); ok {
		return after
	}
	if after, ok := strings.CutPrefix(s, "data/"); ok {
		return after
	}
	return s
}
