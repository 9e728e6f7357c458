package script

import (
	"context"
	"slices"

	"github.com/matzehuels/structkit/pkg/errors"
	"github.com/matzehuels/structkit/pkg/observability"
)

// Divergence describes the first step at which the list implementations
// disagree.
type Divergence struct {
	Step   int
	Op     Op
	Linked Step
	Array  Step
}

// DiffResult is the outcome of a differential run.
type DiffResult struct {
	RunID string
	// Steps is the number of operations both implementations executed.
	Steps int
	// Divergence is nil when every step and the final contents agree.
	Divergence *Divergence
	Linked     *Result
	Array      *Result
}

// Diff runs a list script against a LinkedList and an ArrayList and
// compares each step's output, error code and resulting size. The capacity
// of the script applies to the ArrayList.
func (r *Runner) Diff(ctx context.Context, s *Script) (*DiffResult, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if !s.IsList() {
		return nil, errors.New(errors.ErrCodeInvalidScript, "diff needs a list script, got %q", s.Structure)
	}

	linkedScript, arrayScript := *s, *s
	linkedScript.Structure, linkedScript.Capacity = LinkedList, 0
	arrayScript.Structure = ArrayList

	linked, err := r.Run(ctx, &linkedScript)
	if err != nil {
		return nil, err
	}
	array, err := r.Run(ctx, &arrayScript)
	if err != nil {
		return nil, err
	}

	res := &DiffResult{RunID: r.newID(), Steps: len(linked.Steps), Linked: linked, Array: array}
	res.Divergence = compare(linked, array)
	if d := res.Divergence; d != nil {
		observability.Script().OnDivergence(ctx, res.RunID, d.Step, d.Op.Name)
		r.logger.Warn("lists diverge", "run", res.RunID, "step", d.Step, "op", d.Op,
			"linked", d.Linked.Output+string(d.Linked.Code), "array", d.Array.Output+string(d.Array.Code))
	}
	return res, nil
}

func compare(linked, array *Result) *Divergence {
	for i := range linked.Steps {
		l, a := linked.Steps[i], array.Steps[i]
		if l.Output != a.Output || l.Code != a.Code || l.Size != a.Size {
			return &Divergence{Step: i, Op: l.Op, Linked: l, Array: a}
		}
	}
	if !slices.Equal(linked.Contents, array.Contents) {
		last := len(linked.Steps) - 1
		d := &Divergence{Step: last}
		if last >= 0 {
			d.Op, d.Linked, d.Array = linked.Steps[last].Op, linked.Steps[last], array.Steps[last]
		}
		return d
	}
	return nil
}
