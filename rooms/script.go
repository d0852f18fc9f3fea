package rooms

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// AnswerHook post-processes a non-empty answer before it is recorded. The
// returned string replaces the answer when ok; ok=false rejects the
// submission and leaves the prompt open.
type AnswerHook func(answer string) (string, bool)

// Door scripts may reassign either of these:
//
//	accept = func(answer) { ... return true/false }
//	rewrite = func(answer) { ... return text }
//
// The prelude provides pass-through defaults so a script only has to define
// what it cares about.
const hookPrelude = `
accept := func(answer) { return true }
rewrite := func(answer) { return answer }
`

const hookDispatch = `
__ok := accept(__answer)
__out := __answer
if __ok {
	__out = rewrite(__answer)
}
`

// CompileAnswerHook compiles a door script once and returns a hook that
// re-runs it per submission. A hook never blocks the run on its own
// failure: runtime errors log and fall back to accepting the raw answer.
func CompileAnswerHook(name string, src []byte) (AnswerHook, error) {
	script := tengo.NewScript([]byte(hookPrelude + string(src) + hookDispatch))
	if err := script.Add("__answer", ""); err != nil {
		return nil, fmt.Errorf("rooms: script %s: %w", name, err)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("rooms: compile script %s: %w", name, err)
	}

	return func(answer string) (string, bool) {
		run := compiled.Clone()
		if err := run.Set("__answer", answer); err != nil {
			log.Printf("rooms: script %s: set answer: %v", name, err)
			return answer, true
		}
		if err := run.Run(); err != nil {
			log.Printf("rooms: script %s: %v", name, err)
			return answer, true
		}
		if !run.Get("__ok").Bool() {
			return "", false
		}
		out := strings.TrimSpace(run.Get("__out").String())
		if out == "" {
			return answer, true
		}
		return out, true
	}, nil
}
