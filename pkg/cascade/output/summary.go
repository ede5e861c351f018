package output

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/ryan-ajility/excel-to-json/pkg/cascade/models"
)

// maxSummaryWarnings caps the warnings shown in the human report; the full
// list still ships in the serialized metadata.
const maxSummaryWarnings = 5

// Summary renders a human-readable report of a processing result.
func Summary(result *models.Result) string {
	var b strings.Builder

	if !result.Success {
		fmt.Fprintf(&b, "✗ Processing failed: %s\n", errorMessage(result))
		if result.Details != nil {
			fmt.Fprintf(&b, "  File: %s\n", result.Details.File)
			if len(result.Details.AvailableSheets) > 0 {
				fmt.Fprintf(&b, "  Available sheets: %s\n",
					strings.Join(result.Details.AvailableSheets, ", "))
			}
		}
		return b.String()
	}

	fmt.Fprintf(&b, "✓ Successfully processed %d records\n", result.Metadata.ValidRecords)
	if result.Metadata.InvalidRecords > 0 {
		fmt.Fprintf(&b, "⚠ %d invalid records were skipped\n", result.Metadata.InvalidRecords)
	}
	fmt.Fprintf(&b, "⏱ Processing time: %dms\n", result.Metadata.ProcessingTimeMS)

	if len(result.Sheets) > 0 {
		b.WriteString("\n")
		b.WriteString(sheetTable(result.Sheets))
		b.WriteString("\n")
	}

	if warnings := result.Metadata.Warnings; len(warnings) > 0 {
		b.WriteString("\nWarnings:\n")
		for i, w := range warnings {
			if i == maxSummaryWarnings {
				fmt.Fprintf(&b, "  ... and %d more warnings\n", len(warnings)-maxSummaryWarnings)
				break
			}
			fmt.Fprintf(&b, "  - %s\n", w)
		}
	}

	return b.String()
}

func sheetTable(sheets []models.SheetResult) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Sheet", "Records"})
	for _, s := range sheets {
		tw.AppendRow(table.Row{s.Sheet, len(s.Records)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
