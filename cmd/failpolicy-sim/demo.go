package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"failpolicy-sim/internal/fallible"
)

var demoWidth int

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through fail-fast versus graceful error handling",
	Long:  "demo contrasts panicking helpers with their error-returning counterparts on small examples before any simulation runs.",
	RunE: func(cmd *cobra.Command, args []string) error {
		runDemo(cmd.OutOrStdout(), demoWidth)
		return nil
	},
}

func init() {
	demoCmd.Flags().IntVar(&demoWidth, "width", 72, "Wrap width for explanatory text")
}

var (
	demoTitleStyle = lipgloss.NewStyle().Bold(true)
	demoOKStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	demoFailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func runDemo(out io.Writer, width int) {
	section(out, width, "Example 1: Basic Division",
		"A division helper can report the zero-divisor case instead of panicking. The caller decides what a missing result means.")
	if v, ok := fallible.Divide(10, 2); ok {
		fmt.Fprintln(out, demoOKStyle.Render(fmt.Sprintf("  ✓ 10 / 2 = %d", v)))
	}
	if _, err := fallible.DivideChecked(10, 0); err != nil {
		fmt.Fprintln(out, demoFailStyle.Render(fmt.Sprintf("  ✗ 10 / 0: %v", err)))
	}
	fmt.Fprintln(out, "  ⚠ MustDivide(10, 0) would panic here")

	section(out, width, "Example 2: Chained Operations",
		"Each panicking helper in a chain multiplies the ways the whole chain can crash. The checked variant surfaces the first failure as a value.")
	if v, err := fallible.ParseAndDouble("10"); err == nil {
		fmt.Fprintln(out, demoOKStyle.Render(fmt.Sprintf("  ✓ ParseAndDouble(\"10\") = %d", v)))
	}
	if _, err := fallible.ParseAndDouble("not a number"); err != nil {
		fmt.Fprintln(out, demoFailStyle.Render(fmt.Sprintf("  ✗ ParseAndDouble(\"not a number\"): %v", err)))
	}
	crashed := func() (v int, recovered any) {
		defer func() { recovered = recover() }()
		return fallible.MustParseAndDouble("not a number"), nil
	}
	if _, r := crashed(); r != nil {
		fmt.Fprintln(out, demoFailStyle.Render(fmt.Sprintf("  💀 MustParseAndDouble panicked: %v", r)))
	}

	section(out, width, "Example 3: File Operations",
		"Reading a config file that may not exist is an ordinary error, not a crash.")
	if _, err := fallible.ReadConfigFile("/nonexistent/config.yaml"); err != nil {
		fmt.Fprintln(out, demoFailStyle.Render(fmt.Sprintf("  ✗ read: %v", err)))
	}

	section(out, width, "Example 4: Nested Access",
		"Deeply nested optional values fail at any layer. The checked accessor names the failing depth.")
	v := 42
	p1 := &v
	p2 := &p1
	if got, err := fallible.NestedValue(&p2); err == nil {
		fmt.Fprintln(out, demoOKStyle.Render(fmt.Sprintf("  ✓ nested value = %d", got)))
	}
	var nilInner *int
	p2 = &nilInner
	if _, err := fallible.NestedValue(&p2); err != nil {
		fmt.Fprintln(out, demoFailStyle.Render(fmt.Sprintf("  ✗ %v", err)))
	}

	section(out, width, "Example 5: Indexing",
		"Out-of-range access is a predictable failure with a predictable answer.")
	values := []int{1, 2, 3}
	if got, err := fallible.ElementAt(values, 1); err == nil {
		fmt.Fprintln(out, demoOKStyle.Render(fmt.Sprintf("  ✓ element 1 = %d", got)))
	}
	if _, err := fallible.ElementAt(values, 10); err != nil {
		fmt.Fprintln(out, demoFailStyle.Render(fmt.Sprintf("  ✗ %v", err)))
	}

	section(out, width, "Next",
		"Run 'failpolicy-sim compare' to see the same trade-off play out across a full request sequence: one policy crashes the run, the others degrade.")
}

func section(out io.Writer, width int, title, text string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, demoTitleStyle.Render("=== "+title+" ==="))
	fmt.Fprintln(out, wordwrap.String(text, width))
}
