package script

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/structkit/pkg/errors"
	"github.com/matzehuels/structkit/pkg/observability"
)

// Step is the recorded outcome of one operation.
type Step struct {
	Index  int
	Op     Op
	Output string
	// Code is the error code of a failed operation, empty on success.
	Code errors.Code
	// Size is the container size after the operation.
	Size int
}

// Failed reports whether the operation returned an error.
func (s Step) Failed() bool { return s.Code != "" }

// Result is the outcome of a run.
type Result struct {
	RunID     string
	Structure string
	Steps     []Step
	// Contents holds the final elements for lists (in index order) and
	// trees (in order). It is nil for stacks and queues.
	Contents []string
	Duration time.Duration
}

// Failures counts the steps that returned an error.
func (r *Result) Failures() int {
	n := 0
	for _, s := range r.Steps {
		if s.Failed() {
			n++
		}
	}
	return n
}

// Runner executes scripts.
type Runner struct {
	logger *log.Logger
	newID  func() string
}

// NewRunner returns a Runner that logs to logger. A nil logger discards
// output.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{logger: logger, newID: uuid.NewString}
}

// Run executes every operation of s against a fresh container.
func (r *Runner) Run(ctx context.Context, s *Script) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Elements == ElementsInt {
		return run[int](ctx, r, s, strconv.Atoi)
	}
	return run[string](ctx, r, s, func(v string) (string, error) { return v, nil })
}

func run[T cmp.Ordered](ctx context.Context, r *Runner, s *Script, parse func(string) (T, error)) (res *Result, err error) {
	res = &Result{RunID: r.newID(), Structure: s.Structure}
	logger := r.logger.With("run", res.RunID, "structure", s.Structure)

	observability.Script().OnRunStart(ctx, res.RunID, s.Structure, len(s.Ops))
	start := time.Now()
	defer func() {
		res.Duration = time.Since(start)
		observability.Script().OnRunComplete(ctx, res.RunID, s.Structure, len(res.Steps), res.Duration, err)
	}()

	t, err := newTarget[T](s.Structure, s.Capacity)
	if err != nil {
		return res, errors.Wrap(errors.ErrCodeInvalidScript, err, "create %s", s.Structure)
	}

	for i, op := range s.Ops {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		step := exec(t, i, op, parse)
		logger.Debug("step", "i", i, "op", op, "out", step.Output, "code", step.Code, "size", step.Size)
		res.Steps = append(res.Steps, step)
	}
	if c := t.contents(); c != nil {
		res.Contents = toStrings(c)
	}
	logger.Info("run complete", "steps", len(res.Steps), "failures", res.Failures())
	return res, nil
}

func exec[T cmp.Ordered](t target[T], i int, op Op, parse func(string) (T, error)) Step {
	step := Step{Index: i, Op: op}
	var v T
	if takesValue[op.Name] {
		parsed, err := parse(op.Value)
		if err != nil {
			step.Code = errors.ErrCodeInvalidScript
			step.Size = t.size()
			return step
		}
		v = parsed
	}
	out, err := t.apply(op, v)
	if err != nil {
		step.Code = errors.GetCode(err)
		if step.Code == "" {
			step.Code = errors.ErrCodeInternal
		}
	} else {
		step.Output = out
	}
	step.Size = t.size()
	return step
}

func toStrings[T any](vs []T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = fmt.Sprint(v)
	}
	return out
}

func unsupported(op Op) error {
	return errors.New(errors.ErrCodeUnsupported, "operation %q not supported", op.Name)
}
