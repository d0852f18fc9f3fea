// Package export turns a finished session snapshot into documents on disk:
// a human-readable markdown summary and a machine-readable YAML payload.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mirrorhall/mirrorhall/session"
)

// Writer writes session documents into a directory.
type Writer struct {
	Dir string
}

// Write renders both documents. The base name carries a timestamp so runs
// never clobber each other. Returns the markdown path.
func (w *Writer) Write(snap session.Snapshot) (string, error) {
	dir := w.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: mkdir %s: %w", dir, err)
	}

	base := "walkthrough-" + time.Now().Format("20060102-150405")

	mdPath := filepath.Join(dir, base+".md")
	if err := os.WriteFile(mdPath, []byte(Summary(snap)), 0o644); err != nil {
		return "", fmt.Errorf("export: write %s: %w", mdPath, err)
	}

	payload, err := yaml.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("export: marshal session: %w", err)
	}
	yamlPath := filepath.Join(dir, base+".yaml")
	if err := os.WriteFile(yamlPath, payload, 0o644); err != nil {
		return "", fmt.Errorf("export: write %s: %w", yamlPath, err)
	}

	return mdPath, nil
}

// Summary renders the human-readable report: the initial belief first, then
// every door's questions and answers in chronological order.
func Summary(snap session.Snapshot) string {
	var b strings.Builder

	title := strings.TrimSpace(snap.Topic)
	if title == "" {
		title = "Reflective Walkthrough"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "**Where I started:** %s\n", snap.InitialBelief)

	lastDoor := ""
	for _, a := range snap.Answers {
		if a.DoorID != lastDoor {
			fmt.Fprintf(&b, "\n## %s\n", a.DoorID)
			lastDoor = a.DoorID
		}
		fmt.Fprintf(&b, "\n> %s\n\n%s\n", a.Question, a.Answer)
	}

	return b.String()
}
