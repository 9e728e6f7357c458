package script

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/structkit/pkg/errors"
)

// Session applies operations one at a time to a single container. It backs
// the interactive playground; a Runner is the batch equivalent.
type Session struct {
	structure string
	ops       []string
	next      int
	exec      func(i int, op Op) Step
	contents  func() []string
}

// NewSession creates an empty container for structure. elements and
// capacity follow the Script fields of the same name.
func NewSession(structure, elements string, capacity int) (*Session, error) {
	s := &Script{Structure: structure, Elements: elements, Capacity: capacity}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Elements == ElementsInt {
		return newSession[int](s, strconv.Atoi)
	}
	return newSession[string](s, func(v string) (string, error) { return v, nil })
}

func newSession[T cmp.Ordered](s *Script, parse func(string) (T, error)) (*Session, error) {
	t, err := newTarget[T](s.Structure, s.Capacity)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScript, err, "create %s", s.Structure)
	}
	return &Session{
		structure: s.Structure,
		ops:       supported[s.Structure],
		exec:      func(i int, op Op) Step { return exec(t, i, op, parse) },
		contents: func() []string {
			if c := t.contents(); c != nil {
				return toStrings(c)
			}
			return nil
		},
	}, nil
}

// Structure returns the container name.
func (s *Session) Structure() string { return s.structure }

// Ops lists the operations the container accepts.
func (s *Session) Ops() []string { return slices.Clone(s.ops) }

// Apply runs op. An operation the container does not know is rejected with
// UNSUPPORTED and not recorded; any other failure is reported in the Step.
func (s *Session) Apply(op Op) (Step, error) {
	if !slices.Contains(s.ops, op.Name) {
		return Step{}, errors.New(errors.ErrCodeUnsupported, "%s does not support %q", s.structure, op.Name)
	}
	step := s.exec(s.next, op)
	s.next++
	return step, nil
}

// Contents returns the elements of a list or tree, nil for a stack or queue.
func (s *Session) Contents() []string { return s.contents() }

// ParseOp reads an operation typed as "name [index] [value]", for example
// "push 3", "get 0" or "insert 1 x". Insert with a single argument takes it
// as the value, which is the form a bst expects.
func ParseOp(line string) (Op, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Op{}, errors.New(errors.ErrCodeInvalidInput, "empty operation")
	}
	op := Op{Name: strings.ToLower(fields[0])}
	args := fields[1:]

	if op.Name == "insert" && len(args) == 1 {
		op.Value = args[0]
		return op, nil
	}

	want := 0
	if takesIndex[op.Name] {
		want++
	}
	if takesValue[op.Name] {
		want++
	}
	if len(args) != want {
		return Op{}, errors.New(errors.ErrCodeInvalidInput, "%s takes %d argument(s), got %d", op.Name, want, len(args))
	}
	if takesIndex[op.Name] {
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return Op{}, errors.New(errors.ErrCodeInvalidInput, "index %q is not an integer", args[0])
		}
		op.Index = i
		args = args[1:]
	}
	if takesValue[op.Name] {
		op.Value = args[0]
	}
	return op, nil
}
