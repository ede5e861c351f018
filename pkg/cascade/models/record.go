// Package models defines the record and result types produced by the cascade
// import pipeline.
package models

import "strings"

// RecordWidth is the number of columns a source row must provide to map onto
// a Record. Columns beyond this are ignored.
const RecordWidth = 12

// Tier holds one level of the cascade hierarchy. All fields are optional;
// nil means the source cell was empty or unreadable.
type Tier struct {
	Label       *string `json:"label"`
	Value       *string `json:"value"`
	Description *string `json:"description"`
}

// Record is a single cascade field entry: four tiers (main, sub, major,
// minor) of three fields each, in fixed positional column order.
type Record struct {
	Main  Tier `json:"main"`
	Sub   Tier `json:"sub"`
	Major Tier `json:"major"`
	Minor Tier `json:"minor"`
}

// FromRow maps a normalized row onto a Record. The mapping is strictly
// positional: columns 0-2 fill the main tier, 3-5 sub, 6-8 major, 9-11
// minor. It returns false when the row has fewer than RecordWidth columns.
func FromRow(row []*string) (*Record, bool) {
	if len(row) < RecordWidth {
		return nil, false
	}

	var r Record
	for i, t := range r.tiers() {
		t.Label = row[i*3]
		t.Value = row[i*3+1]
		t.Description = row[i*3+2]
	}
	return &r, true
}

func (r *Record) tiers() [4]*Tier {
	return [4]*Tier{&r.Main, &r.Sub, &r.Major, &r.Minor}
}

// Clean trims whitespace from every field and collapses blank results to
// absent. Cleaning an already clean record is a no-op.
func (r *Record) Clean() {
	for _, t := range r.tiers() {
		t.Label = cleanField(t.Label)
		t.Value = cleanField(t.Value)
		t.Description = cleanField(t.Description)
	}
}

func cleanField(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// IsValid reports whether the record meets the minimum bar for acceptance:
// a present main value.
func (r *Record) IsValid() bool {
	return r.Main.Value != nil
}

// HasCompleteKeys reports whether all four tier values forming the composite
// key are present.
func (r *Record) HasCompleteKeys() bool {
	return r.Main.Value != nil &&
		r.Sub.Value != nil &&
		r.Major.Value != nil &&
		r.Minor.Value != nil
}

// CSVRow returns the twelve fields in positional column order, with absent
// values as empty strings.
func (r *Record) CSVRow() []string {
	row := make([]string, 0, RecordWidth)
	for _, t := range r.tiers() {
		row = append(row, deref(t.Label), deref(t.Value), deref(t.Description))
	}
	return row
}

// PHPArray returns the record as a flat associative array with snake_case
// keys. Absent values become empty strings, matching how the PHP caller
// handles database NULLs.
func (r *Record) PHPArray() map[string]string {
	return map[string]string{
		"main_label":        deref(r.Main.Label),
		"main_value":        deref(r.Main.Value),
		"main_description":  deref(r.Main.Description),
		"sub_label":         deref(r.Sub.Label),
		"sub_value":         deref(r.Sub.Value),
		"sub_description":   deref(r.Sub.Description),
		"major_label":       deref(r.Major.Label),
		"major_value":       deref(r.Major.Value),
		"major_description": deref(r.Major.Description),
		"minor_label":       deref(r.Minor.Label),
		"minor_value":       deref(r.Minor.Value),
		"minor_description": deref(r.Minor.Description),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
