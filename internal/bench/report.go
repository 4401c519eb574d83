package bench

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Render writes results to w in the given format.
func Render(w io.Writer, format string, results []Result) error {
	switch format {
	case FormatTable:
		renderTable(w, results)
		return nil
	case FormatText:
		return renderText(w, results)
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, format)
	}
}

func renderTable(w io.Writer, results []Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"trial", "vertices", "edges", "density", "mst size", "connected", "seconds"})
	for _, r := range results {
		table.Append([]string{
			strconv.Itoa(r.Trial),
			strconv.Itoa(r.Vertices),
			strconv.Itoa(r.Edges),
			fmt.Sprintf("%dx", r.Multiplier),
			strconv.Itoa(r.TreeSize),
			strconv.FormatBool(r.Connected),
			fmt.Sprintf("%f", r.Elapsed.Seconds()),
		})
	}
	table.Render()
}

// renderText reproduces the line-oriented layout: one heading per trial
// followed by one indented line per density.
func renderText(w io.Writer, results []Result) error {
	for i, r := range results {
		if i == 0 || results[i-1].Trial != r.Trial {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "%d) Graph with %d vertices\n", r.Trial, r.Vertices); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "\tEdges: % 10d (%dx) - MST size: % 10d - Kruskal Time: % 14f s\n",
			r.Edges, r.Multiplier, r.TreeSize, r.Elapsed.Seconds())
		if err != nil {
			return err
		}
	}

	return nil
}
