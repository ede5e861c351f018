package models

// Metadata carries statistics about one processing run.
type Metadata struct {
	TotalRowsProcessed int      `json:"total_rows_processed"`
	ValidRecords       int      `json:"valid_records"`
	InvalidRecords     int      `json:"invalid_records"`
	ProcessingTimeMS   int64    `json:"processing_time_ms"`
	Warnings           []string `json:"warnings,omitempty"`
}

// Merge folds other into m: counts and elapsed time are summed, warnings are
// appended in call order so each sheet's warnings stay contiguous.
func (m *Metadata) Merge(other Metadata) {
	m.TotalRowsProcessed += other.TotalRowsProcessed
	m.ValidRecords += other.ValidRecords
	m.InvalidRecords += other.InvalidRecords
	m.ProcessingTimeMS += other.ProcessingTimeMS
	m.Warnings = append(m.Warnings, other.Warnings...)
}

// SheetResult pairs a sheet name with the valid records extracted from it.
type SheetResult struct {
	Sheet   string   `json:"sheet"`
	Records []Record `json:"records"`
}

// ErrorDetails provides context for a failed run.
type ErrorDetails struct {
	File            string   `json:"file"`
	AvailableSheets []string `json:"available_sheets,omitempty"`
	RowNumber       *int     `json:"row_number,omitempty"`
	Column          *string  `json:"column,omitempty"`
}

// Result is the envelope handed to the output formatter. Exactly one of
// Records (single-sheet mode) or Sheets (multi-sheet mode) is set on success.
type Result struct {
	Success  bool          `json:"success"`
	Records  []Record      `json:"records,omitempty"`
	Sheets   []SheetResult `json:"sheets,omitempty"`
	Error    string        `json:"error,omitempty"`
	Details  *ErrorDetails `json:"details,omitempty"`
	Metadata Metadata      `json:"metadata"`
}

// Success builds a single-sheet success result.
func Success(records []Record, meta Metadata) Result {
	return Result{Success: true, Records: records, Metadata: meta}
}

// MultiSheetSuccess builds a success result grouping records per sheet.
func MultiSheetSuccess(sheets []SheetResult, meta Metadata) Result {
	return Result{Success: true, Sheets: sheets, Metadata: meta}
}

// Failure builds an error result.
func Failure(msg string, details *ErrorDetails, meta Metadata) Result {
	return Result{Success: false, Error: msg, Details: details, Metadata: meta}
}

// AllRecords returns every record in the result, flattening multi-sheet
// results in sheet order.
func (r *Result) AllRecords() []Record {
	if r.Sheets == nil {
		return r.Records
	}
	var all []Record
	for _, s := range r.Sheets {
		all = append(all, s.Records...)
	}
	return all
}
