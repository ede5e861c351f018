package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ryan-ajility/excel-to-json/pkg/cascade/models"
)

// csvHeader lists the flat column names in positional record order.
var csvHeader = []string{
	"main_label", "main_value", "main_description",
	"sub_label", "sub_value", "sub_description",
	"major_label", "major_value", "major_description",
	"minor_label", "minor_value", "minor_description",
}

// Render serializes a result in the given format.
func Render(result *models.Result, format Format) (string, error) {
	switch format {
	case FormatJSON:
		return renderJSON(result)
	case FormatCSV:
		return renderCSV(result)
	case FormatPHP:
		return renderPHP(result)
	default:
		return "", fmt.Errorf("unknown output format: %s", format)
	}
}

func renderJSON(result *models.Result) (string, error) {
	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}
	return string(b), nil
}

func renderCSV(result *models.Result) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if !result.Success {
		w.Write([]string{"status", "error"})
		w.Write([]string{"failed", errorMessage(result)})
		w.Flush()
		return buf.String(), w.Error()
	}

	w.Write(csvHeader)
	for _, rec := range result.AllRecords() {
		w.Write(rec.CSVRow())
	}
	w.Flush()
	return buf.String(), w.Error()
}

// renderPHP emits the flat snake_case structure the PHP caller consumes.
// Absent values become empty strings to match PHP's NULL handling.
func renderPHP(result *models.Result) (string, error) {
	if !result.Success {
		payload := map[string]any{
			"success": false,
			"error":   errorMessage(result),
			"data":    []any{},
		}
		b, err := json.MarshalIndent(payload, "", "  ")
		return string(b), err
	}

	var data any
	if result.Sheets != nil {
		sheets := make([]map[string]any, 0, len(result.Sheets))
		for _, s := range result.Sheets {
			sheets = append(sheets, map[string]any{
				"sheet": s.Sheet,
				"data":  phpRecords(s.Records),
			})
		}
		data = sheets
	} else {
		data = phpRecords(result.Records)
	}

	payload := map[string]any{
		"success":  true,
		"data":     data,
		"metadata": result.Metadata,
	}
	b, err := json.MarshalIndent(payload, "", "  ")
	return string(b), err
}

func phpRecords(records []models.Record) []map[string]string {
	out := make([]map[string]string, 0, len(records))
	for i := range records {
		out = append(out, records[i].PHPArray())
	}
	return out
}

func errorMessage(result *models.Result) string {
	if result.Error == "" {
		return "Unknown error"
	}
	return result.Error
}

// WriteFile writes rendered output to path.
func WriteFile(output, path string) error {
	if err := os.WriteFile(path, []byte(output), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
