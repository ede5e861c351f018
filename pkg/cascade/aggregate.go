package cascade

import (
	"github.com/ryan-ajility/excel-to-json/pkg/cascade/models"
	"go.uber.org/zap"
)

// SheetSource supplies raw sheet data to the pipeline. The excel package
// provides the workbook-backed implementation; tests use fakes.
type SheetSource interface {
	// SheetNames enumerates the sheets available in the source.
	SheetNames() []string
	// DataRows returns all rows of the named sheet as tagged cells, with the
	// header row already stripped. Unknown sheets return an error.
	DataRows(sheet string) ([][]Cell, error)
	// Formulas returns a formula lookup for the named sheet, or nil when the
	// source cannot provide one.
	Formulas(sheet string) FormulaSource
}

// ProcessSheet runs the full pipeline for one named sheet: normalization,
// mapping, cleaning, and validation.
func (p *Processor) ProcessSheet(src SheetSource, sheet string) ([]models.Record, models.Metadata, error) {
	raw, err := src.DataRows(sheet)
	if err != nil {
		return nil, models.Metadata{}, err
	}

	p.logger.Debug("read sheet", zap.String("sheet", sheet), zap.Int("rows", len(raw)))

	normalizer := NewNormalizer(src.Formulas(sheet), p.logger)
	records, meta := p.Process(normalizer.NormalizeRows(raw))
	return records, meta, nil
}

// Aggregate runs the batch processor once per requested sheet, in request
// order, and merges the per-sheet statistics into one summary. A sheet that
// cannot be read fails the whole aggregation: the caller asked for it by
// name, so it is not skipped the way a bad row is.
func (p *Processor) Aggregate(src SheetSource, sheets []string) ([]models.SheetResult, models.Metadata, error) {
	results := make([]models.SheetResult, 0, len(sheets))
	var merged models.Metadata

	for _, name := range sheets {
		records, meta, err := p.ProcessSheet(src, name)
		if err != nil {
			return nil, models.Metadata{}, err
		}
		results = append(results, models.SheetResult{Sheet: name, Records: records})
		merged.Merge(meta)
	}

	return results, merged, nil
}
