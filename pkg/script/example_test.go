package script_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/structkit/pkg/script"
)

func ExampleRunner_Run() {
	s, _ := script.Parse([]byte(`
structure = "stack"

[[op]]
name = "push"
value = "x"

[[op]]
name = "pop"

[[op]]
name = "pop"
`))

	res, _ := script.NewRunner(nil).Run(context.Background(), s)
	for _, step := range res.Steps {
		fmt.Printf("%-8s out=%q code=%q size=%d\n", step.Op, step.Output, step.Code, step.Size)
	}
	// Output:
	// push(x)  out="" code="" size=1
	// pop()    out="x" code="" size=0
	// pop()    out="" code="EMPTY_STACK" size=0
}
