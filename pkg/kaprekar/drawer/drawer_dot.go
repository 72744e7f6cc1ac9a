package drawer

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"text/template"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/askiada/go-kaprekar/internal/transitions"
	"github.com/askiada/go-kaprekar/pkg/kaprekar/measure"
)

const fixpoint = "6174"

// DOTDrawer is a drawer that creates a Graphviz DOT file with the transition graph.
type DOTDrawer struct {
	mu          sync.Mutex
	graph       graph.Graph[string, string]
	store       transitions.Store[string, string]
	attributes  map[string]string
	dotFileName string
}

// NewDOTDrawer creates a new DOT drawer writing to dotFileName.
func NewDOTDrawer(dotFileName string) *DOTDrawer {
	store := transitions.NewMemoryStore[string, string]()

	return &DOTDrawer{
		dotFileName: dotFileName,
		store:       store,
		graph:       graph.NewWithStore(graph.StringHash, graph.Store[string, string](store), graph.Directed()),
		attributes:  make(map[string]string),
	}
}

// AddValue adds a value to the transition graph.
func (d *DOTDrawer) AddValue(value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.addValue(value)
}

func (d *DOTDrawer) addValue(value string) error {
	err := d.graph.AddVertex(value)
	if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
		return errors.Wrapf(err, "unable to add vertex %s", value)
	}

	return nil
}

// AddTransition adds an edge from input to difference, both values are added when missing.
// The self transition of the fixpoint is not drawn.
func (d *DOTDrawer) AddTransition(input, difference string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	err := d.addValue(input)
	if err != nil {
		return err
	}

	err = d.addValue(difference)
	if err != nil {
		return err
	}

	if input == difference {
		return nil
	}

	err = d.graph.AddEdge(input, difference)
	if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
		return errors.Wrapf(err, "unable to add edge from %s to %s", input, difference)
	}

	return nil
}

// PathTo returns the shortest list of values from value to target.
func (d *DOTDrawer) PathTo(value, target string) ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	path, err := graph.ShortestPath(d.graph, value, target)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to find path from %s to %s", value, target)
	}

	return path, nil
}

// AddMeasure labels the graph with the distribution of sequence lengths.
func (d *DOTDrawer) AddMeasure(msr measure.Measure) error {
	lengths := msr.Lengths()
	if len(lengths) == 0 {
		return nil
	}

	sorted := make([]int, 0, len(lengths))
	for length := range lengths {
		sorted = append(sorted, length)
	}

	sort.Ints(sorted)

	parts := make([]string, 0, len(sorted))
	for _, length := range sorted {
		parts = append(parts, fmt.Sprintf("%d steps: %d", length, lengths[length]))
	}

	if nonConverged := msr.NonConverged(); nonConverged > 0 {
		parts = append(parts, fmt.Sprintf("not converged: %d", nonConverged))
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.attributes["label"] = strings.Join(parts, `\n`)
	d.attributes["labelloc"] = "t"

	return nil
}

const maxRGB = 240

// colourDepths colours every value reaching the fixpoint from blue (close) to red (far) and labels its depth.
func (d *DOTDrawer) colourDepths() error {
	depths := d.store.Depths(fixpoint)

	maxDepth := 0
	for _, depth := range depths {
		if depth > maxDepth {
			maxDepth = depth
		}
	}

	for value, depth := range depths {
		fraction := 0.0
		if maxDepth > 0 {
			fraction = float64(depth) / float64(maxDepth)
		}

		red := maxRGB * fraction
		blue := -maxRGB*fraction + maxRGB

		colour, err := colors.RGB(uint8(red), 0, uint8(blue)) //nolint
		if err != nil {
			return errors.Wrap(err, "unable to get colour")
		}

		err = d.store.UpdateVertex(value,
			graph.VertexAttribute("color", colour.ToHEX().String()),
			graph.VertexAttribute("xlabel", fmt.Sprintf("depth %d", depth)),
		)
		if err != nil {
			return errors.Wrapf(err, "unable to update vertex %s", value)
		}
	}

	return nil
}

// Draw creates a DOT file with the transition graph.
func (d *DOTDrawer) Draw() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	err := d.colourDepths()
	if err != nil {
		return errors.Wrap(err, "unable to colour vertices")
	}

	file, err := os.Create(d.dotFileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.dotFileName)
	}
	defer file.Close()

	options := make([]func(*description), 0, len(d.attributes))
	for key, value := range d.attributes {
		options = append(options, GraphAttribute(key, value))
	}

	err = dot(d.graph, file, options...)
	if err != nil {
		return errors.Wrapf(err, "unable to create dot file %s", d.dotFileName)
	}

	return nil
}

//nolint:lll //this is a template
const dotTemplate = `strict {{.GraphType}} {
	{{range $k, $v := .Attributes}}
		{{$k}}="{{$v}}";
	{{end}}
	{{range $s := .Statements}}
		"{{.Source}}" {{if .Target}}{{$.EdgeOperator}} "{{.Target}}" [ {{range $k, $v := .EdgeAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .HTMLAttributes}}{{$k}}={{$v}}, {{end}} {{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.SourceWeight}} ]{{end}};
	{{end}}
	}
	`

type description struct {
	GraphType    string
	Attributes   map[string]string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           interface{}
	Target           interface{}
	SourceAttributes map[string]string
	HTMLAttributes   map[string]string
	EdgeAttributes   map[string]string
	SourceWeight     int
	EdgeWeight       int
}

func dot[K comparable, T any](g graph.Graph[K, T], wrt io.Writer, options ...func(*description)) error {
	desc, err := generateDOT(g, options...)
	if err != nil {
		return fmt.Errorf("failed to generate DOT description: %w", err)
	}

	return renderDOT(wrt, desc)
}

// GraphAttribute is a functional option setting a graph level attribute of the DOT output.
func GraphAttribute(key, value string) func(*description) {
	return func(d *description) {
		d.Attributes[key] = value
	}
}

func generateDOT[K comparable, T any](gra graph.Graph[K, T], options ...func(*description)) (description, error) {
	desc := description{
		GraphType:    "graph",
		Attributes:   make(map[string]string),
		EdgeOperator: "--",
		Statements:   make([]statement, 0),
	}

	for _, option := range options {
		option(&desc)
	}

	if gra.Traits().IsDirected {
		desc.GraphType = "digraph"
		desc.EdgeOperator = "->"
	}

	adjacencyMap, err := gra.AdjacencyMap()
	if err != nil {
		return desc, errors.Wrap(err, "unable to get adjacency map")
	}

	for vertex, adjacencies := range adjacencyMap {
		_, sourceProperties, err := gra.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		htmlAttributes := make(map[string]string)
		sourceAttributes := make(map[string]string, len(sourceProperties.Attributes))

		for key, value := range sourceProperties.Attributes {
			if key == "xlabel" {
				htmlAttributes["label"] = fmt.Sprintf(`<%+v <BR /> <FONT POINT-SIZE="10">%s</FONT>>`, vertex, value)

				continue
			}

			sourceAttributes[key] = value
		}

		stmt := statement{
			Source:           vertex,
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: sourceAttributes,
			HTMLAttributes:   htmlAttributes,
		}
		desc.Statements = append(desc.Statements, stmt)

		for adjacency, edge := range adjacencies {
			stmt := statement{
				Source:         vertex,
				Target:         adjacency,
				EdgeWeight:     edge.Properties.Weight,
				EdgeAttributes: edge.Properties.Attributes,
			}
			desc.Statements = append(desc.Statements, stmt)
		}
	}

	sort.SliceStable(desc.Statements, func(i, j int) bool {
		return fmt.Sprint(desc.Statements[i].Source) < fmt.Sprint(desc.Statements[j].Source)
	})

	return desc, nil
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

var _ Drawer = (*DOTDrawer)(nil)
