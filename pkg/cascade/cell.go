// Package cascade implements the row-ingestion pipeline that turns
// spreadsheet rows into validated cascade field records.
package cascade

// CellKind identifies the variant carried by a Cell. The set is closed: the
// normalizer switches over every kind, and readers must map anything they
// encounter onto one of these.
type CellKind int

const (
	// CellEmpty is a cell with no content.
	CellEmpty CellKind = iota
	// CellText is a plain string cell. Formula-looking text passes through
	// unresolved.
	CellText
	// CellInteger is a whole-number cell.
	CellInteger
	// CellFloat is a decimal-number cell.
	CellFloat
	// CellBool is a boolean cell.
	CellBool
	// CellDateTime is a date-time cell already formatted for display.
	CellDateTime
	// CellDateTimeISO is a raw ISO 8601 date-time cell.
	CellDateTimeISO
	// CellDurationISO is a raw ISO 8601 duration cell.
	CellDurationISO
	// CellError is a cell the spreadsheet reports as an error value.
	CellError
)

// Cell is a single spreadsheet cell as supplied by the sheet source. Exactly
// one value field is meaningful, selected by Kind.
type Cell struct {
	Kind  CellKind
	Text  string  // CellText, CellDateTime, CellDateTimeISO, CellDurationISO; error code for CellError
	Int   int64   // CellInteger
	Float float64 // CellFloat
	Bool  bool    // CellBool
}

// EmptyCell returns a cell with no content.
func EmptyCell() Cell { return Cell{Kind: CellEmpty} }

// TextCell returns a plain text cell.
func TextCell(s string) Cell { return Cell{Kind: CellText, Text: s} }

// IntCell returns a whole-number cell.
func IntCell(i int64) Cell { return Cell{Kind: CellInteger, Int: i} }

// FloatCell returns a decimal-number cell.
func FloatCell(f float64) Cell { return Cell{Kind: CellFloat, Float: f} }

// BoolCell returns a boolean cell.
func BoolCell(b bool) Cell { return Cell{Kind: CellBool, Bool: b} }

// DateTimeCell returns a formatted date-time cell.
func DateTimeCell(s string) Cell { return Cell{Kind: CellDateTime, Text: s} }

// DateTimeISOCell returns a raw ISO date-time cell.
func DateTimeISOCell(s string) Cell { return Cell{Kind: CellDateTimeISO, Text: s} }

// DurationISOCell returns a raw ISO duration cell.
func DurationISOCell(s string) Cell { return Cell{Kind: CellDurationISO, Text: s} }

// ErrorCell returns an error cell carrying the spreadsheet's error code.
func ErrorCell(code string) Cell { return Cell{Kind: CellError, Text: code} }
