// Package render prints kaprekar sequences and survey reports on a terminal.
package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pkg/errors"

	"github.com/askiada/go-kaprekar/pkg/kaprekar"
	"github.com/askiada/go-kaprekar/pkg/kaprekar/measure"
)

const maxBarWidth = 40

// Palette, muted and dark-terminal friendly.
var (
	purple = lipgloss.Color("99")
	green  = lipgloss.Color("76")
	red    = lipgloss.Color("204")
	yellow = lipgloss.Color("214")
	dim    = lipgloss.Color("243")
)

// Printer renders values with styles matching the colour profile of its writer.
type Printer struct {
	w       io.Writer
	accent  lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	warn    lipgloss.Style
	muted   lipgloss.Style
	bold    lipgloss.Style
}

func NewPrinter(w io.Writer) *Printer {
	renderer := lipgloss.NewRenderer(w)

	return &Printer{
		w:       w,
		accent:  renderer.NewStyle().Foreground(purple),
		success: renderer.NewStyle().Foreground(green),
		failure: renderer.NewStyle().Foreground(red),
		warn:    renderer.NewStyle().Foreground(yellow),
		muted:   renderer.NewStyle().Foreground(dim),
		bold:    renderer.NewStyle().Bold(true),
	}
}

func (p *Printer) println(s string) error {
	_, err := fmt.Fprintln(p.w, s)
	if err != nil {
		return errors.Wrap(err, "unable to write output")
	}

	return nil
}

// Validation prints whether input is a valid start value.
func (p *Printer) Validation(input string, valid bool) error {
	if valid {
		return p.println(p.success.Render("✓") + " " + fmt.Sprintf("%q is a valid start value", input))
	}

	return p.println(p.failure.Render("✗") + " " +
		fmt.Sprintf("%q is not a valid start value: %s", input, kaprekar.ErrInvalidInput))
}

// Sequence prints the steps of seq followed by its state.
func (p *Printer) Sequence(seq kaprekar.Sequence) error {
	steps := seq.Steps()
	rows := make([][]string, 0, len(steps))

	for _, step := range steps {
		index := strconv.Itoa(step.Index)
		if step.Terminal {
			index = "∎"
		}

		rows = append(rows, []string{index, step.Input, step.Descending, step.Ascending, step.Difference})
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.muted).
		Headers("#", "INPUT", "DESC", "ASC", "DIFFERENCE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return p.bold.Padding(0, 1)
			case row >= 0 && row < len(steps) && steps[row].IsFixpoint && col == 4:
				return p.success.Padding(0, 1)
			default:
				return lipgloss.NewStyle().Padding(0, 1)
			}
		})

	err := p.println(tbl.Render())
	if err != nil {
		return err
	}

	return p.println(p.status(seq))
}

func (p *Printer) status(seq kaprekar.Sequence) string {
	switch seq.State() {
	case kaprekar.StateConverged:
		return p.success.Render("✓") + " " +
			fmt.Sprintf("%s reached %s in %d steps", seq.Start(), kaprekar.Fixpoint, seq.ConvergedAt())
	case kaprekar.StateDegenerate:
		return p.failure.Render("✗") + " " +
			fmt.Sprintf("%s collapsed to %s, repdigits never reach %s", seq.Start(), kaprekar.Degenerate, kaprekar.Fixpoint)
	case kaprekar.StateInProgress:
		last, _ := seq.Last()

		return p.warn.Render("!") + " " +
			fmt.Sprintf("%s in progress after %d steps, next input %s", seq.Start(), seq.NaturalSteps(), last.Difference)
	default:
		return p.muted.Render("empty sequence")
	}
}

// Survey prints the distribution of sequence lengths of report.
func (p *Printer) Survey(report *kaprekar.SurveyReport) error {
	lengths := make([]int, 0, len(report.Histogram))
	maxCount := 0

	for length, count := range report.Histogram {
		lengths = append(lengths, length)
		if count > maxCount {
			maxCount = count
		}
	}

	sort.Ints(lengths)

	rows := make([][]string, 0, len(lengths))
	for _, length := range lengths {
		count := report.Histogram[length]
		width := 0

		if maxCount > 0 {
			width = count * maxBarWidth / maxCount
		}

		rows = append(rows, []string{strconv.Itoa(length), strconv.Itoa(count), p.accent.Render(strings.Repeat("█", width))})
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.muted).
		Headers("STEPS", "VALUES", "").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.bold.Padding(0, 1)
			}

			return lipgloss.NewStyle().Padding(0, 1)
		})

	err := p.println(tbl.Render())
	if err != nil {
		return err
	}

	summary := fmt.Sprintf("%d start values, longest sequence %d steps", report.Total, report.MaxNaturalSteps)
	if len(report.NonConverged) == 0 {
		return p.println(p.success.Render("✓") + " " + summary)
	}

	return p.println(p.warn.Render("!") + " " + summary + fmt.Sprintf(
		", %d did not reach %s: %s", len(report.NonConverged), kaprekar.Fixpoint, strings.Join(report.NonConverged, " ")))
}

// Measure prints the average computation duration of every step index of msr.
func (p *Printer) Measure(msr measure.Measure) error {
	metrics := msr.AllMetrics()

	indexes := []int{}
	for index := 1; ; index++ {
		if _, ok := metrics[measure.StepMetricName(index)]; !ok {
			break
		}

		indexes = append(indexes, index)
	}

	rows := make([][]string, 0, len(indexes))
	for _, index := range indexes {
		mt := metrics[measure.StepMetricName(index)]
		rows = append(rows, []string{strconv.Itoa(index), strconv.FormatInt(mt.Total(), 10), mt.AVGDuration().String()})
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.muted).
		Headers("STEP", "COMPUTED", "AVG").
		Rows(rows...)

	err := p.println(tbl.Render())
	if err != nil {
		return err
	}

	if total, ok := metrics[measure.TotalMetricName]; ok && total.GetTotalDuration() > 0 {
		return p.println(p.muted.Render("total " + total.GetTotalDuration().String()))
	}

	return nil
}
