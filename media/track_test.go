package media

import (
	"errors"
	"testing"
	"time"
)

func TestSilenceIsInstantlyReady(t *testing.T) {
	var m Silence
	m.Start()
	if !m.Ready() {
		t.Fatalf("silence must be ready immediately")
	}
	m.Stop()
	if !m.Ready() {
		t.Fatalf("silence stays ready after Stop")
	}
}

func TestTrackLoadFailureNeverReady(t *testing.T) {
	tr := NewTrack(nil, "missing.wav", func(string) ([]byte, error) {
		return nil, errors.New("no such file")
	})
	if tr.Failed() {
		t.Fatalf("Failed must not be set before Start")
	}

	tr.Start()

	deadline := time.Now().Add(2 * time.Second)
	for !tr.Failed() {
		if time.Now().After(deadline) {
			t.Fatalf("load failure never reported")
		}
		time.Sleep(time.Millisecond)
	}
	if tr.Ready() {
		t.Fatalf("a failed track must never report ready")
	}
}
