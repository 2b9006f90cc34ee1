package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/diwise/api-infraquality/internal/pkg/domain"
	"github.com/jedib0t/go-pretty/v6/table"
)

func qualityTable(indicator string, ranked []domain.RegionValue) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Region", indicator})

	for i, rv := range ranked {
		t.AppendRow(table.Row{i + 1, rv.Region, strconv.FormatFloat(rv.Value, 'f', 3, 64)})
	}

	t.SetStyle(table.StyleDefault)

	return t.Render()
}

func transportTable(regions []string, modes []domain.TransportMode, sums domain.TransportSums) string {
	t := table.NewWriter()

	header := table.Row{"Region"}
	for _, mode := range modes {
		header = append(header, mode.Name)
	}
	t.AppendHeader(header)

	for _, region := range regions {
		counts, ok := sums[region]
		if !ok {
			continue
		}

		row := table.Row{region}
		for _, mode := range modes {
			row = append(row, strconv.FormatFloat(counts[mode.Name], 'f', 0, 64))
		}
		t.AppendRow(row)
	}

	t.SetStyle(table.StyleDefault)

	return t.Render()
}

func serviceTable(kind string, stats []domain.ServiceStat) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Service", kind, "Count"})

	for _, s := range stats {
		t.AppendRow(table.Row{s.Service, fmt.Sprintf("%.1f%%", s.Percentage), s.Count})
	}

	t.SetStyle(table.StyleDefault)

	return t.Render()
}

func insightSummary(summary domain.InsightSummary) string {
	buf := &strings.Builder{}

	if summary.BestRegion != nil {
		fmt.Fprintf(buf, "Best region:        %s (%s)\n", summary.BestRegion.Region, strconv.FormatFloat(summary.BestRegion.Value, 'f', 3, 64))
	}
	if summary.WorstRegion != nil {
		fmt.Fprintf(buf, "Worst region:       %s (%s)\n", summary.WorstRegion.Region, strconv.FormatFloat(summary.WorstRegion.Value, 'f', 3, 64))
	}
	if summary.DominantTransport != "" {
		fmt.Fprintf(buf, "Dominant transport: %s\n", summary.DominantTransport)
	}

	if summary.Correlation != nil {
		c := summary.Correlation
		fmt.Fprintf(buf, "Correlation:        %s (r=%s) against %s\n", c.Strength, strconv.FormatFloat(c.Coefficient, 'f', 3, 64), c.Against)
	} else {
		fmt.Fprintln(buf, "Correlation:        undefined")
	}

	return buf.String()
}
