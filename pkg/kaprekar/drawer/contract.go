package drawer

import (
	"github.com/askiada/go-kaprekar/pkg/kaprekar/measure"
)

// Drawer is an interface that defines the methods for drawing the transition graph of Kaprekar's routine.
type Drawer interface {
	// AddValue adds a value to the graph. Adding a value twice is not an error.
	AddValue(value string) error
	// AddTransition adds an edge from a value to the difference it produces.
	AddTransition(input, difference string) error
	// PathTo returns the values visited from value to target.
	PathTo(value, target string) ([]string, error)
	// AddMeasure adds the measure summary to the graph.
	AddMeasure(measure measure.Measure) error
	// Draw creates a file with the graph.
	Draw() error
}
