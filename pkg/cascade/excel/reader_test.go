package excel

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ryan-ajility/excel-to-json/pkg/cascade"
	"github.com/xuri/excelize/v2"
)

// writeFixture builds an xlsx workbook in a temp dir and returns its path.
func writeFixture(t *testing.T, build func(f *excelize.File)) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	build(f)

	path := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save fixture: %v", err)
	}
	return path
}

func TestDataRowsStripsHeaderAndTagsCells(t *testing.T) {
	path := writeFixture(t, func(f *excelize.File) {
		f.SetCellValue("Sheet1", "A1", "Header1")
		f.SetCellValue("Sheet1", "B1", "Header2")
		f.SetCellValue("Sheet1", "C1", "Header3")
		f.SetCellValue("Sheet1", "D1", "Header4")
		f.SetCellValue("Sheet1", "A2", "Text")
		f.SetCellValue("Sheet1", "B2", 100)
		f.SetCellValue("Sheet1", "C2", 200.5)
		f.SetCellBool("Sheet1", "D2", true)
	})

	r, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	rows, err := r.DataRows("Sheet1")
	if err != nil {
		t.Fatalf("DataRows failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 data row after header strip, got %d", len(rows))
	}

	row := rows[0]
	if row[0].Kind != cascade.CellText || row[0].Text != "Text" {
		t.Errorf("cell 0 = %+v, want text cell", row[0])
	}
	if row[1].Kind != cascade.CellInteger || row[1].Int != 100 {
		t.Errorf("cell 1 = %+v, want integer 100", row[1])
	}
	if row[2].Kind != cascade.CellFloat || row[2].Float != 200.5 {
		t.Errorf("cell 2 = %+v, want float 200.5", row[2])
	}
	if row[3].Kind != cascade.CellBool || !row[3].Bool {
		t.Errorf("cell 3 = %+v, want bool true", row[3])
	}
}

func TestDataRowsUnknownSheet(t *testing.T) {
	path := writeFixture(t, func(f *excelize.File) {
		f.SetCellValue("Sheet1", "A1", "Header")
	})

	r, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	_, err = r.DataRows("Missing")
	if err == nil {
		t.Fatal("expected error for unknown sheet")
	}
	var notFound *cascade.SheetNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected SheetNotFoundError, got %T", err)
	}
	if len(notFound.Available) != 1 || notFound.Available[0] != "Sheet1" {
		t.Errorf("available = %v, want [Sheet1]", notFound.Available)
	}
}

func TestSheetNames(t *testing.T) {
	path := writeFixture(t, func(f *excelize.File) {
		f.NewSheet("Cascade Fields")
		f.SetCellValue("Cascade Fields", "A1", "Header")
	})

	r, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	names := r.SheetNames()
	found := false
	for _, n := range names {
		if n == "Cascade Fields" {
			found = true
		}
	}
	if !found {
		t.Errorf("SheetNames() = %v, want Cascade Fields included", names)
	}
}

func TestFormulaAt(t *testing.T) {
	path := writeFixture(t, func(f *excelize.File) {
		f.SetCellValue("Sheet1", "A1", "Header")
		f.SetCellFormula("Sheet1", "C2", "VLOOKUP(A2,Lookups!A:B,2,FALSE)")
	})

	r, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	lookup := r.Formulas("Sheet1")
	formula, ok := lookup.FormulaAt(0, 2) // data row 0 = sheet row 2
	if !ok {
		t.Fatal("expected formula at data row 0, col 2")
	}
	if !strings.Contains(formula, "VLOOKUP") {
		t.Errorf("formula = %q, want VLOOKUP text", formula)
	}

	if _, ok := lookup.FormulaAt(5, 5); ok {
		t.Error("expected no formula at uncovered position")
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.xlsx"), nil); err == nil {
		t.Fatal("expected error opening missing file")
	}
}

// End-to-end: workbook rows through normalization and processing.
func TestReaderPipeline(t *testing.T) {
	path := writeFixture(t, func(f *excelize.File) {
		headers := []string{
			"Main Label", "Main Value", "Main Description",
			"Sub Label", "Sub Value", "Sub Description",
			"Major Label", "Major Value", "Major Description",
			"Minor Label", "Minor Value", "Minor Description",
		}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue("Sheet1", cell, h)
		}
		values := []any{
			"Main", "M1", "", "Sub", "S1", "", "Major", "MAJ1", "", "Minor", "MIN1", "",
		}
		for i, v := range values {
			if v == "" {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(i+1, 2)
			f.SetCellValue("Sheet1", cell, v)
		}
		// A numeric value in the key column stringifies cleanly.
		f.SetCellValue("Sheet1", "B3", 42)
	})

	r, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	records, meta, err := cascade.NewProcessor(nil).ProcessSheet(r, "Sheet1")
	if err != nil {
		t.Fatalf("ProcessSheet failed: %v", err)
	}

	if meta.TotalRowsProcessed != 2 {
		t.Fatalf("total rows = %d, want 2", meta.TotalRowsProcessed)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 valid records, got %d", len(records))
	}
	if got := *records[0].Main.Value; got != "M1" {
		t.Errorf("main value = %q, want M1", got)
	}
	if !records[0].HasCompleteKeys() {
		t.Error("expected complete keys on first record")
	}

	// Row 3 only carries a numeric main value; it is padded to the sheet
	// width, stringified, accepted, and flagged for incomplete keys.
	if got := *records[1].Main.Value; got != "42" {
		t.Errorf("second main value = %q, want 42", got)
	}
	if records[1].HasCompleteKeys() {
		t.Error("second record should have incomplete keys")
	}
	if len(meta.Warnings) != 1 || meta.Warnings[0] != "Row 3: Incomplete composite keys" {
		t.Errorf("warnings = %v", meta.Warnings)
	}
	if meta.InvalidRecords != 0 {
		t.Errorf("invalid = %d, want 0", meta.InvalidRecords)
	}
}
