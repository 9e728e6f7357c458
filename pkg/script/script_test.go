package script

import (
	"path/filepath"
	"testing"

	"github.com/matzehuels/structkit/pkg/errors"
)

func TestParse(t *testing.T) {
	s, err := Parse([]byte(`
structure = "stack"

[[op]]
name = "push"
value = "a"

[[op]]
name = "pop"
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if s.Structure != Stack || len(s.Ops) != 2 {
		t.Errorf("Parse() = %+v", s)
	}
	if s.Elements != ElementsString {
		t.Errorf("Elements = %q, want default %q", s.Elements, ElementsString)
	}
	if s.Ops[0] != (Op{Name: "push", Value: "a"}) {
		t.Errorf("Ops[0] = %+v", s.Ops[0])
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax", `structure = `},
		{"unknown structure", `structure = "heap"`},
		{"unknown key", "structure = \"stack\"\ncolour = \"red\""},
		{"unsupported op", "structure = \"stack\"\n[[op]]\nname = \"poll\""},
		{"bad element type", "structure = \"stack\"\nelements = \"float\""},
		{"non-int value", "structure = \"bst\"\nelements = \"int\"\n[[op]]\nname = \"insert\"\nvalue = \"x\""},
		{"negative capacity", "structure = \"arraylist\"\ncapacity = -1"},
		{"capacity on stack", "structure = \"stack\"\ncapacity = 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			if !errors.Is(err, errors.ErrCodeInvalidScript) {
				t.Errorf("Parse() error = %v, want %v", err, errors.ErrCodeInvalidScript)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "list.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Capacity != 2 || s.Elements != ElementsInt || len(s.Ops) != 8 {
		t.Errorf("Load() = %+v", s)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, errors.ErrCodeResourceAccess) {
		t.Errorf("Load(missing) error = %v, want %v", err, errors.ErrCodeResourceAccess)
	}
}

func TestOp_String(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{Op{Name: "pop"}, "pop()"},
		{Op{Name: "push", Value: "x"}, "push(x)"},
		{Op{Name: "get", Index: 2}, "get(2)"},
		{Op{Name: "insert", Index: 1, Value: "y"}, "insert(1, y)"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
