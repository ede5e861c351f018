// Package excel adapts an excelize workbook to the cascade.SheetSource
// interface.
package excel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ryan-ajility/excel-to-json/pkg/cascade"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Reader reads typed cell data from an xlsx workbook.
type Reader struct {
	f      *excelize.File
	path   string
	logger *zap.Logger
}

// Open opens the workbook at path. The caller must Close the reader.
func Open(path string, logger *zap.Logger) (*Reader, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("opened workbook", zap.String("file", path))
	return &Reader{f: f, path: path, logger: logger}, nil
}

// Close releases the underlying workbook.
func (r *Reader) Close() error {
	return r.f.Close()
}

// SheetNames enumerates the sheets in the workbook.
func (r *Reader) SheetNames() []string {
	return r.f.GetSheetList()
}

// DataRows returns the rows of the named sheet as tagged cells. The first
// row is treated as a header and stripped. Requesting a sheet the workbook
// does not contain returns a *cascade.SheetNotFoundError.
func (r *Reader) DataRows(sheet string) ([][]cascade.Cell, error) {
	names := r.SheetNames()
	found := false
	for _, name := range names {
		if name == sheet {
			found = true
			break
		}
	}
	if !found {
		return nil, &cascade.SheetNotFoundError{Sheet: sheet, Available: names}
	}

	rows, err := r.f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) <= 1 {
		r.logger.Debug("sheet has no data rows", zap.String("sheet", sheet))
		return nil, nil
	}

	// excelize truncates trailing empty cells per row; pad back to the
	// sheet width so positional column mapping sees a rectangular range.
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	out := make([][]cascade.Cell, 0, len(rows)-1)
	for rowIdx, row := range rows[1:] {
		cells := make([]cascade.Cell, width)
		for colIdx := range cells {
			cells[colIdx] = cascade.EmptyCell()
		}
		for colIdx, value := range row {
			// rowIdx is a zero-based data index; sheet coordinates are
			// one-based and include the header row.
			cells[colIdx] = r.cellAt(sheet, rowIdx+2, colIdx+1, value)
		}
		out = append(out, cells)
	}

	r.logger.Debug("extracted data rows",
		zap.String("sheet", sheet),
		zap.Int("rows", len(out)))
	return out, nil
}

// cellAt tags the formatted value excelize reports for a cell. Numbers keep
// their integer/decimal split so normalization can render integral floats
// without decimals.
func (r *Reader) cellAt(sheet string, rowNum, colNum int, value string) cascade.Cell {
	if value == "" {
		return cascade.EmptyCell()
	}

	name, err := excelize.CoordinatesToCellName(colNum, rowNum)
	if err != nil {
		return cascade.TextCell(value)
	}
	ctype, err := r.f.GetCellType(sheet, name)
	if err != nil {
		return cascade.TextCell(value)
	}

	switch ctype {
	case excelize.CellTypeBool:
		return cascade.BoolCell(strings.EqualFold(value, "true") || value == "1")
	case excelize.CellTypeError:
		return cascade.ErrorCell(value)
	case excelize.CellTypeDate:
		return cascade.DateTimeCell(value)
	case excelize.CellTypeNumber:
		return numberCell(value)
	case excelize.CellTypeUnset:
		// Numeric cells carry no explicit type attribute.
		return numberCell(value)
	default:
		return cascade.TextCell(value)
	}
}

func numberCell(value string) cascade.Cell {
	if i, err := strconv.ParseInt(value, 10, 64); err == nil {
		return cascade.IntCell(i)
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return cascade.FloatCell(f)
	}
	return cascade.TextCell(value)
}

// Formulas returns a lookup over the sheet's cell formulas, used to
// substitute formula text for cells the workbook reports as errors.
func (r *Reader) Formulas(sheet string) cascade.FormulaSource {
	return &formulaLookup{f: r.f, sheet: sheet}
}

type formulaLookup struct {
	f     *excelize.File
	sheet string
}

// FormulaAt resolves the formula text at a zero-based data row/column
// position (data row 0 is the first sheet row after the header).
func (l *formulaLookup) FormulaAt(row, col int) (string, bool) {
	name, err := excelize.CoordinatesToCellName(col+1, row+2)
	if err != nil {
		return "", false
	}
	formula, err := l.f.GetCellFormula(l.sheet, name)
	if err != nil || formula == "" {
		return "", false
	}
	return formula, true
}
