package models

import (
	"reflect"
	"testing"
)

func TestMetadataMerge(t *testing.T) {
	m := Metadata{
		TotalRowsProcessed: 3,
		ValidRecords:       2,
		InvalidRecords:     1,
		ProcessingTimeMS:   10,
		Warnings:           []string{"Row 2: Insufficient columns"},
	}
	m.Merge(Metadata{
		TotalRowsProcessed: 2,
		ValidRecords:       1,
		InvalidRecords:     1,
		ProcessingTimeMS:   5,
		Warnings:           []string{"Row 3: Incomplete composite keys"},
	})

	if m.TotalRowsProcessed != 5 || m.ValidRecords != 3 || m.InvalidRecords != 2 {
		t.Errorf("merged counts wrong: %+v", m)
	}
	if m.ProcessingTimeMS != 15 {
		t.Errorf("merged time = %d, want 15", m.ProcessingTimeMS)
	}
	want := []string{"Row 2: Insufficient columns", "Row 3: Incomplete composite keys"}
	if !reflect.DeepEqual(m.Warnings, want) {
		t.Errorf("merged warnings = %v, want %v", m.Warnings, want)
	}
}

func TestResultConstructors(t *testing.T) {
	record, _ := FromRow(fullRow())

	success := Success([]Record{*record}, Metadata{ValidRecords: 1, TotalRowsProcessed: 1})
	if !success.Success || len(success.Records) != 1 || success.Error != "" {
		t.Errorf("unexpected success result: %+v", success)
	}

	failure := Failure("Sheet not found", &ErrorDetails{File: "data.xlsx"}, Metadata{})
	if failure.Success || failure.Records != nil {
		t.Errorf("unexpected failure result: %+v", failure)
	}
	if failure.Error != "Sheet not found" || failure.Details.File != "data.xlsx" {
		t.Errorf("failure context wrong: %+v", failure)
	}
}

func TestAllRecordsFlattensInSheetOrder(t *testing.T) {
	first, _ := FromRow(fullRow())
	second, _ := FromRow(fullRow())
	second.Main.Value = sp("MAIN2")

	result := MultiSheetSuccess([]SheetResult{
		{Sheet: "A", Records: []Record{*first}},
		{Sheet: "B", Records: []Record{*second}},
	}, Metadata{})

	all := result.AllRecords()
	if len(all) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all))
	}
	if *all[0].Main.Value != "MAIN1" || *all[1].Main.Value != "MAIN2" {
		t.Errorf("records out of sheet order: %q, %q", *all[0].Main.Value, *all[1].Main.Value)
	}
}
