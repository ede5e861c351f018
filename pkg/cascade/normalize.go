package cascade

import (
	"math"
	"strconv"

	"go.uber.org/zap"
)

// FormulaSource resolves the formula text behind a cell, keyed by zero-based
// data row and column (row 0 is the first row after the header). It is
// consulted only for cells the spreadsheet reports as errors.
type FormulaSource interface {
	FormulaAt(row, col int) (string, bool)
}

// Normalizer converts tagged cells into optional canonical string values.
type Normalizer struct {
	formulas FormulaSource
	logger   *zap.Logger
}

// NewNormalizer creates a Normalizer. formulas may be nil, in which case
// error cells normalize to absent.
func NewNormalizer(formulas FormulaSource, logger *zap.Logger) *Normalizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Normalizer{formulas: formulas, logger: logger}
}

// NormalizeCell converts one cell into its canonical string form, or nil for
// cells with no usable value. Error cells degrade silently: the formula
// source is tried first, then the cell becomes absent.
func (n *Normalizer) NormalizeCell(cell Cell, row, col int) *string {
	switch cell.Kind {
	case CellText:
		return strptr(cell.Text)
	case CellInteger:
		return strptr(strconv.FormatInt(cell.Int, 10))
	case CellFloat:
		// Integral floats render without decimals: 5.0 becomes "5".
		if cell.Float == math.Trunc(cell.Float) {
			return strptr(strconv.FormatFloat(cell.Float, 'f', 0, 64))
		}
		return strptr(strconv.FormatFloat(cell.Float, 'f', -1, 64))
	case CellBool:
		return strptr(strconv.FormatBool(cell.Bool))
	case CellDateTime, CellDateTimeISO, CellDurationISO:
		return strptr(cell.Text)
	case CellError:
		if n.formulas != nil {
			if text, ok := n.formulas.FormulaAt(row, col); ok {
				return strptr(text)
			}
		}
		n.logger.Debug("error cell with no formula fallback",
			zap.Int("row", row+2),
			zap.Int("col", col+1),
			zap.String("code", cell.Text))
		return nil
	case CellEmpty:
		return nil
	}
	return nil
}

// NormalizeRows converts raw sheet rows into normalized rows, preserving
// column order. Rows whose cells are all absent are dropped.
func (n *Normalizer) NormalizeRows(rows [][]Cell) [][]*string {
	out := make([][]*string, 0, len(rows))
	for rowIdx, row := range rows {
		normalized := make([]*string, len(row))
		hasData := false
		for colIdx, cell := range row {
			v := n.NormalizeCell(cell, rowIdx, colIdx)
			normalized[colIdx] = v
			if v != nil {
				hasData = true
			}
		}
		if hasData {
			out = append(out, normalized)
		}
	}
	return out
}

func strptr(s string) *string { return &s }
