package gsync

import (
	"context"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Labeler evaluates the workspace auto-label script against one candidate.
// The script sees the candidate fields as globals and must assign a string to
// `label`; an empty label means "no label". Script failures skip the label,
// never the import.
type Labeler struct {
	script string
}

func NewLabeler(script string) *Labeler {
	return &Labeler{script: script}
}

func (l *Labeler) Label(ctx context.Context, candidate PreviewCandidate) (string, error) {
	if l.script == "" {
		return "", nil
	}

	script := tengo.NewScript([]byte(l.script))
	script.SetImports(stdlib.GetModuleMap("text", "math", "times"))

	_ = script.Add("name", candidate.Name)
	_ = script.Add("email", candidate.Email)
	_ = script.Add("phone", candidate.Phone)
	_ = script.Add("source", candidate.Source)
	_ = script.Add("label", "")

	compiled, err := script.RunContext(ctx)
	if err != nil {
		return "", fmt.Errorf("auto-label script failed: %w", err)
	}

	label := compiled.Get("label")
	if label == nil {
		return "", nil
	}
	return label.String(), nil
}
