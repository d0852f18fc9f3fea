package rooms

import (
	"strings"
	"testing"
	"time"
)

func TestCompileAnswerHook(t *testing.T) {
	cases := []struct {
		name    string
		script  string
		answer  string
		wantOut string
		wantOK  bool
	}{
		{
			name:    "no_overrides_pass_through",
			script:  "",
			answer:  "anything",
			wantOut: "anything",
			wantOK:  true,
		},
		{
			name:   "accept_rejects",
			script: `accept = func(answer) { return len(answer) > 3 }`,
			answer: "no",
			wantOK: false,
		},
		{
			name:    "accept_passes",
			script:  `accept = func(answer) { return len(answer) > 3 }`,
			answer:  "a full answer",
			wantOut: "a full answer",
			wantOK:  true,
		},
		{
			name: "rewrite_applies",
			script: `text := import("text")
rewrite = func(answer) { return text.to_lower(answer) }`,
			answer:  "LOUD Thought",
			wantOut: "loud thought",
			wantOK:  true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			hook, err := CompileAnswerHook(c.name, []byte(c.script))
			if err != nil {
				t.Fatalf("CompileAnswerHook: %v", err)
			}
			out, ok := hook(c.answer)
			if ok != c.wantOK {
				t.Fatalf("ok = %v, want %v", ok, c.wantOK)
			}
			if ok && out != c.wantOut {
				t.Fatalf("out = %q, want %q", out, c.wantOut)
			}
		})
	}
}

func TestCompileAnswerHookBadSource(t *testing.T) {
	if _, err := CompileAnswerHook("bad", []byte("accept = func(")); err == nil {
		t.Fatal("expected compile error")
	}
}

func TestDoor2ScriptRequiresTwoWords(t *testing.T) {
	src := &Source{}
	data, err := src.Load("door2.tengo")
	if err != nil {
		t.Fatalf("load door2.tengo: %v", err)
	}
	hook, err := CompileAnswerHook("door2.tengo", data)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := hook("fine"); ok {
		t.Fatal("single-word answer should be rejected")
	}
	out, ok := hook("  because it is familiar  ")
	if !ok {
		t.Fatal("sentence answer rejected")
	}
	if strings.HasPrefix(out, " ") || strings.HasSuffix(out, " ") {
		t.Fatalf("rewrite did not trim: %q", out)
	}
}

func TestLoaderEndToEnd(t *testing.T) {
	src := &Source{}
	m, err := src.LoadManifest()
	if err != nil {
		t.Fatal(err)
	}

	p := StartLoad(src, m, 2)
	var loaded *LoadedRoom
	for i := 0; i < 100; i++ {
		var done bool
		var err error
		loaded, err, done = p.Result()
		if done {
			if err != nil {
				t.Fatalf("load room 2: %v", err)
			}
			break
		}
		time.Sleep(time.Millisecond)
	}
	if loaded == nil {
		t.Fatal("load did not finish")
	}
	if loaded.Room.Door.ID != "door-2" {
		t.Fatalf("door = %q, want door-2", loaded.Room.Door.ID)
	}
	if loaded.Level == nil || loaded.Hook == nil {
		t.Fatalf("room 2 should carry a level and a compiled hook: %+v", loaded)
	}

	bad := StartLoad(src, m, 99)
	for i := 0; i < 100; i++ {
		if _, err, done := bad.Result(); done {
			if err == nil {
				t.Fatal("out-of-range load should surface an error")
			}
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("bad load never finished")
}
