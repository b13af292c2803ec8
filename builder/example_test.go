package builder_test

import (
	"fmt"

	"github.com/katalvlaran/hopdom/builder"
)

func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(4))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Println(e.From, e.To)
	}
	// Output:
	// 1 2
	// 2 3
	// 3 4
	// 4 1
}
