package planner

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	json "github.com/goccy/go-json"
)

func writeJSON(out io.Writer, report Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	_, err = fmt.Fprintf(out, "%s\n", data)
	return err
}

func writeTable(out io.Writer, report Report, explain bool) error {
	w := report.Weather
	if w.Weather != nil {
		fmt.Fprintf(out, "Weather: %s %.0f°F %s. %s\n", w.Icon, w.Weather.Temperature, w.Weather.Condition, w.Advice)
	} else {
		fmt.Fprintf(out, "Weather: %s\n", w.Advice)
	}
	fmt.Fprintf(out, "Showing %d of %d events\n\n", len(report.Recommendations), report.Events)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	header := "#\tSCORE\tEVENT\tDATE\tCATEGORY\tPRICE\tREASONS"
	if explain {
		header += "\tINTEREST\tFAMILY\tBUDGET\tWEATHER"
	}
	fmt.Fprintln(tw, header)
	for i, r := range report.Recommendations {
		reasons := strings.Join(r.Reasons, "; ")
		if extra := r.ReasonCount - len(r.Reasons); extra > 0 {
			reasons += fmt.Sprintf(" (+%d more)", extra)
		}
		line := fmt.Sprintf("%d\t%d\t%s\t%s\t%s\t%s\t%s",
			i+1, r.Score, r.Event.Title, r.Event.Date,
			r.Event.Category.Label(), r.Event.PriceRange.Display(), reasons)
		if explain && r.Breakdown != nil {
			b := r.Breakdown
			line += fmt.Sprintf("\t%d\t%d\t%d\t%d", b.Interest, b.Family, b.Budget, b.Weather)
		}
		fmt.Fprintln(tw, line)
	}
	return tw.Flush()
}
