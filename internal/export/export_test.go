package export_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/micahco/dduwash/internal/descriptor"
	"github.com/micahco/dduwash/internal/export"
	"github.com/micahco/dduwash/lib-bay"
	"github.com/xuri/excelize/v2"
)

var testResults = []bay.Result{
	{BayID: "Washbay 1", Status: bay.StatusEmpty, Timestamp: 1700000000},
	{BayID: "Washbay 2", Status: bay.StatusOccupied, Timestamp: 1700000000},
	{BayID: "Washbay\t3", Status: bay.StatusMaintenance, Timestamp: 1700000060},
	{BayID: "Washbay 4", Status: 7, Timestamp: 1700000000},
}

func TestRows(t *testing.T) {
	rows := export.Rows(testResults, descriptor.Localized, "es")

	var labels []string
	for _, r := range rows {
		labels = append(labels, r.Label)
	}
	if diff := cmp.Diff([]string{"Vacío", "Ocupado", "Mantenimiento", ""}, labels); diff != "" {
		t.Errorf("unexpected labels (-want +got):\n%s", diff)
	}

	m := rows[2].Map()
	expect := map[string]any{
		"bay_id":      "Washbay\t3",
		"status":      2,
		"status_name": "MAINTENANCE",
		"label":       "Mantenimiento",
		"updated_at":  "2023-11-14T22:14:20Z",
		"timestamp":   1700000060,
	}
	if diff := cmp.Diff(expect, m); diff != "" {
		t.Errorf("unexpected map (-want +got):\n%s", diff)
	}

	if plain := export.Rows(testResults[:1], descriptor.Plain, "es"); plain[0].Label != "Empty" {
		t.Errorf("plain table should use the plain label: %q", plain[0].Label)
	}
}

func TestToCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := export.ToCSV(&buf, export.Rows(testResults, descriptor.Localized, "en")); err != nil {
		t.Fatalf("failed to convert: %s", err)
	}

	expect := strings.Join([]string{
		"bay_id,status,status_name,label,updated_at",
		"Washbay 1,0,EMPTY,Empty,2023-11-14T22:13:20Z",
		"Washbay 2,1,OCCUPIED,Occupied,2023-11-14T22:13:20Z",
		"Washbay\t3,2,MAINTENANCE,Maintenance,2023-11-14T22:14:20Z",
		"Washbay 4,7,UNKNOWN(7),,2023-11-14T22:13:20Z",
		"",
	}, "\n")
	if diff := cmp.Diff(expect, buf.String()); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestToLTSV(t *testing.T) {
	var buf bytes.Buffer
	if err := export.ToLTSV(&buf, export.Rows(testResults, descriptor.Localized, "en")); err != nil {
		t.Fatalf("failed to convert: %s", err)
	}

	expect := strings.Join([]string{
		"bay_id:Washbay 1\tstatus:0\tstatus_name:EMPTY\tupdated_at:2023-11-14T22:13:20Z\tlabel:Empty",
		"bay_id:Washbay 2\tstatus:1\tstatus_name:OCCUPIED\tupdated_at:2023-11-14T22:13:20Z\tlabel:Occupied",
		`bay_id:Washbay\t3` + "\tstatus:2\tstatus_name:MAINTENANCE\tupdated_at:2023-11-14T22:14:20Z\tlabel:Maintenance",
		"bay_id:Washbay 4\tstatus:7\tstatus_name:UNKNOWN(7)\tupdated_at:2023-11-14T22:13:20Z",
		"",
	}, "\n")
	if diff := cmp.Diff(expect, buf.String()); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestToJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := export.ToJSON(&buf, export.Rows(testResults[:2], descriptor.Localized, "en")); err != nil {
		t.Fatalf("failed to convert: %s", err)
	}

	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("failed to parse output: %s\n%s", err, buf.String())
	}

	expect := []map[string]any{
		{"bay_id": "Washbay 1", "status": float64(0), "status_name": "EMPTY", "label": "Empty", "updated_at": "2023-11-14T22:13:20Z"},
		{"bay_id": "Washbay 2", "status": float64(1), "status_name": "OCCUPIED", "label": "Occupied", "updated_at": "2023-11-14T22:13:20Z"},
	}
	if diff := cmp.Diff(expect, got); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := export.ToJSON(&buf, nil); err != nil {
		t.Fatalf("failed to convert: %s", err)
	}
	if buf.String() != "[]\n" {
		t.Errorf("empty list should be an empty array: %q", buf.String())
	}
}

func TestToXlsx(t *testing.T) {
	var buf bytes.Buffer
	createdAt := time.Date(2023, 11, 15, 0, 0, 0, 0, time.UTC)

	if err := export.ToXlsx(&buf, export.Rows(testResults, descriptor.Localized, "en"), createdAt); err != nil {
		t.Fatalf("failed to convert: %s", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("failed to open output: %s", err)
	}
	defer f.Close()

	if diff := cmp.Diff([]string{"bays"}, f.GetSheetList()); diff != "" {
		t.Errorf("unexpected sheets (-want +got):\n%s", diff)
	}

	rows, err := f.GetRows("bays")
	if err != nil {
		t.Fatalf("failed to read rows: %s", err)
	}

	var got [][]string
	for _, r := range rows {
		if len(r) > 4 {
			r = r[:4]
		}
		got = append(got, r)
	}

	expect := [][]string{
		{"bay", "status", "status name", "label"},
		{"Washbay 1", "0", "EMPTY", "Empty"},
		{"Washbay 2", "1", "OCCUPIED", "Occupied"},
		{"Washbay\t3", "2", "MAINTENANCE", "Maintenance"},
		{"Washbay 4", "7", "UNKNOWN(7)", ""},
	}
	if diff := cmp.Diff(expect, got); diff != "" {
		t.Errorf("unexpected cells (-want +got):\n%s", diff)
	}

	if v, _ := f.GetCellValue("bays", "E1"); v != "updated at (UTC)" {
		t.Errorf("unexpected header of time column: %q", v)
	}
}
