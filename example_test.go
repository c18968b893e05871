package spindle_test

import (
	"fmt"
	"log"

	"github.com/aretw0/spindle"
	"github.com/aretw0/spindle/pkg/catalog"
	"github.com/aretw0/spindle/pkg/machine"
)

// Run one of the catalog machines on a few inputs.
func Example() {
	interp, err := spindle.New(catalog.EvenOnes())
	if err != nil {
		log.Fatal(err)
	}

	for _, input := range []string{"", "1", "11"} {
		out, err := interp.Run(input)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%q -> %s\n", input, out.Verdict)
	}

	// Output:
	// "" -> accept
	// "1" -> reject
	// "11" -> accept
}

// Build a machine programmatically instead of loading a document.
func ExampleNew() {
	def, err := machine.New(
		machine.NewSet("q0", "accept"),
		machine.NewSet("a"),
		machine.NewSet("a", "_"),
		machine.Transitions{
			{State: "q0", Symbol: "a"}: {Next: "q0", Write: "a", Move: machine.Right},
			{State: "q0", Symbol: "_"}: {Next: "accept", Write: "_", Move: machine.Right},
		},
		"q0",
		machine.NewSet("accept"),
		machine.NewSet(),
	)
	if err != nil {
		log.Fatal(err)
	}

	interp, err := spindle.New(def)
	if err != nil {
		log.Fatal(err)
	}

	out, err := interp.Run("aaa")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out.Verdict, out.Steps)

	// Output:
	// accept 4
}
