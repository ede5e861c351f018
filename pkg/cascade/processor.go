package cascade

import (
	"fmt"
	"time"

	"github.com/ryan-ajility/excel-to-json/pkg/cascade/models"
	"go.uber.org/zap"
)

// headerOffset converts a zero-based data row index into the row number shown
// in diagnostics: one stripped header row plus one-based display.
const headerOffset = 2

// Processor drives cleaning and validation across the rows of a sheet.
type Processor struct {
	logger *zap.Logger
}

// NewProcessor creates a Processor. A nil logger disables diagnostics.
func NewProcessor(logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{logger: logger}
}

// Process classifies every normalized row as a valid record or an invalid
// row and returns the accepted records together with run statistics. No row
// aborts the batch: mapping failures and validation failures are counted and
// reported as warnings, never escalated.
func (p *Processor) Process(rows [][]*string) ([]models.Record, models.Metadata) {
	start := time.Now()
	p.logger.Info("processing rows", zap.Int("count", len(rows)))

	records := make([]models.Record, 0, len(rows))
	var warnings []string
	invalid := 0

	for idx, row := range rows {
		rowNum := idx + headerOffset

		record, ok := models.FromRow(row)
		if !ok {
			invalid++
			warnings = append(warnings, fmt.Sprintf("Row %d: Insufficient columns", rowNum))
			p.logger.Debug("row has too few columns",
				zap.Int("row", rowNum),
				zap.Int("columns", len(row)))
			continue
		}

		record.Clean()

		if !record.IsValid() {
			invalid++
			p.logger.Debug("record missing main value", zap.Int("row", rowNum))
			continue
		}

		// Accepted despite incomplete keys; the warning flags the gap for
		// the caller without rejecting the record.
		if !record.HasCompleteKeys() {
			warnings = append(warnings, fmt.Sprintf("Row %d: Incomplete composite keys", rowNum))
		}
		records = append(records, *record)
	}

	meta := models.Metadata{
		TotalRowsProcessed: len(rows),
		ValidRecords:       len(records),
		InvalidRecords:     invalid,
		ProcessingTimeMS:   time.Since(start).Milliseconds(),
		Warnings:           warnings,
	}

	p.logger.Info("processing complete",
		zap.Int("valid", meta.ValidRecords),
		zap.Int("invalid", meta.InvalidRecords),
		zap.Int64("elapsed_ms", meta.ProcessingTimeMS))
	if len(warnings) > 0 {
		p.logger.Warn("processing produced warnings", zap.Int("count", len(warnings)))
	}

	return records, meta
}
