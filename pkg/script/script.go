package script

import (
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/structkit/pkg/errors"
)

// Structure names accepted in scripts.
const (
	Stack      = "stack"
	Queue      = "queue"
	List       = "list"
	ArrayList  = "arraylist"
	LinkedList = "linkedlist"
	BST        = "bst"
)

// Element types accepted in scripts.
const (
	ElementsString = "string"
	ElementsInt    = "int"
)

// Script is a parsed operation script.
type Script struct {
	Structure string `toml:"structure"`
	// Capacity is the initial ArrayList capacity; 0 selects the default.
	Capacity int `toml:"capacity"`
	// Elements is "string" (default) or "int". Int elements order
	// numerically in a bst.
	Elements string `toml:"elements"`
	Ops      []Op   `toml:"op"`
}

// Op is one operation. Value and Index are used only by the operations that
// take them.
type Op struct {
	Name  string `toml:"name"`
	Value string `toml:"value"`
	Index int    `toml:"index"`
}

func (o Op) String() string {
	switch {
	case takesIndex[o.Name] && takesValue[o.Name]:
		return o.Name + "(" + strconv.Itoa(o.Index) + ", " + o.Value + ")"
	case takesIndex[o.Name]:
		return o.Name + "(" + strconv.Itoa(o.Index) + ")"
	case takesValue[o.Name]:
		return o.Name + "(" + o.Value + ")"
	}
	return o.Name + "()"
}

var listOps = []string{"add", "insert", "set", "get", "remove", "first", "last", "contains", "clear", "size"}

var supported = map[string][]string{
	Stack:      {"push", "pop", "size", "clear"},
	Queue:      {"add", "poll", "size", "clear"},
	List:       listOps,
	ArrayList:  listOps,
	LinkedList: listOps,
	BST:        {"add", "insert", "contains", "size", "depth", "inorder"},
}

var takesValue = map[string]bool{"push": true, "add": true, "insert": true, "set": true, "contains": true}

// takesIndex lists the list operations that address a position. A bst
// ignores the index of insert.
var takesIndex = map[string]bool{"insert": true, "set": true, "get": true, "remove": true}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScript, err, "parse script")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidScript, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeResourceAccess, err, "read script %s", path)
	}
	return Parse(data)
}

// Validate checks the structure, element type and every operation. It fills
// in the default element type.
func (s *Script) Validate() error {
	ops, ok := supported[s.Structure]
	if !ok {
		return errors.New(errors.ErrCodeInvalidScript, "unknown structure %q", s.Structure)
	}
	if s.Elements == "" {
		s.Elements = ElementsString
	}
	if s.Elements != ElementsString && s.Elements != ElementsInt {
		return errors.New(errors.ErrCodeInvalidScript, "unknown element type %q", s.Elements)
	}
	if s.Capacity < 0 {
		return errors.New(errors.ErrCodeInvalidScript, "capacity must not be negative, got %d", s.Capacity)
	}
	if s.Capacity > 0 && !s.IsList() {
		return errors.New(errors.ErrCodeInvalidScript, "capacity only applies to lists")
	}

	for i, op := range s.Ops {
		if !slices.Contains(ops, op.Name) {
			return errors.New(errors.ErrCodeInvalidScript, "op %d: %s does not support %q", i, s.Structure, op.Name)
		}
		if !takesValue[op.Name] {
			continue
		}
		if s.Elements == ElementsInt {
			if _, err := strconv.Atoi(op.Value); err != nil {
				return errors.New(errors.ErrCodeInvalidScript, "op %d: %q is not an int", i, op.Value)
			}
		}
	}
	return nil
}

// IsList reports whether the script targets a list implementation.
func (s *Script) IsList() bool {
	return s.Structure == List || s.Structure == ArrayList || s.Structure == LinkedList
}
