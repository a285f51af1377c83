package context_test

import (
	"fmt"

	"github.com/db47h/floatparse/context"
)

// Example demonstrates parsing a batch of literals under a pinned
// precision and trap policy, checking for an accumulated error once at
// the end rather than after every call.
func Example() {
	ctx := context.New(context.Binary64).SetTrapOverflow(true)

	inputs := []string{"3.14159", "1e400", "2.5"}
	var results []float64
	for _, s := range inputs {
		results = append(results, ctx.ParseFloat64([]byte(s)))
	}

	if err := ctx.Err(); err != nil {
		fmt.Println("stopped on:", err)
	}
	fmt.Println(results[:2])
	// Output:
	// stopped on: context: exceptional result trapped
	// [3.14159 0]
}
