package main_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/micahco/dduwash/internal/testutil"
	"github.com/xuri/excelize/v2"
)

func TestExportCommand(t *testing.T) {
	api := testutil.StartDummyAPI(t)
	api.Set(200, `[{"bay_id": 1, "status": 0, "timestamp": 1700000000}, {"bay_id": 2, "status": 2, "timestamp": 1700000000}]`)

	tests := []struct {
		Args   []string
		Stdout string
	}{
		{
			[]string{},
			"bay_id,status,status_name,label,updated_at\n1,0,EMPTY,Empty,2023-11-14T22:13:20Z\n2,2,MAINTENANCE,Maintenance,2023-11-14T22:13:20Z\n",
		},
		{
			[]string{"--csv", "--lang", "es"},
			"bay_id,status,status_name,label,updated_at\n1,0,EMPTY,Vacío,2023-11-14T22:13:20Z\n2,2,MAINTENANCE,Mantenimiento,2023-11-14T22:13:20Z\n",
		},
		{
			[]string{"-l", "--jq", ".[1:]"},
			"bay_id:2\tstatus:2\tstatus_name:MAINTENANCE\tupdated_at:2023-11-14T22:13:20Z\tlabel:Maintenance\n",
		},
		{
			[]string{"-j", "--jq", ".[:1]"},
			"[\n  {\n    \"bay_id\": \"1\",\n    \"status\": 0,\n    \"status_name\": \"EMPTY\",\n    \"label\": \"Empty\",\n    \"updated_at\": \"2023-11-14T22:13:20Z\"\n  }\n]\n",
		},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.Args, " "), func(t *testing.T) {
			args := append([]string{"export", "--origin", api.URL}, tt.Args...)
			code, stdout, stderr := run(t, args...)
			if code != 0 {
				t.Fatalf("unexpected exit code %d\n%s", code, stderr)
			}
			if stdout != tt.Stdout {
				t.Errorf("unexpected output:\n%s", stdout)
			}
		})
	}
}

func TestExportCommand_xlsx(t *testing.T) {
	api := testutil.StartDummyAPI(t)
	path := filepath.Join(t.TempDir(), "bays.xlsx")

	code, _, stderr := run(t, "export", "--origin", api.URL, "-x", "-o", path)
	if code != 0 {
		t.Fatalf("unexpected exit code %d\n%s", code, stderr)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open output: %s", err)
	}
	defer f.Close()

	rows, err := f.GetRows("bays")
	if err != nil {
		t.Fatalf("failed to read rows: %s", err)
	}
	if len(rows) != len(testutil.DummyResults)+1 {
		t.Errorf("expected %d rows but got %d", len(testutil.DummyResults)+1, len(rows))
	}
}

func TestExportCommand_failure(t *testing.T) {
	api := testutil.StartDummyAPI(t)
	api.Set(200, `[]`)

	code, stdout, stderr := run(t, "export", "--origin", api.URL)
	if code != 1 {
		t.Errorf("expected exit code 1 but got %d", code)
	}
	if stdout != "" {
		t.Errorf("unexpected output:\n%s", stdout)
	}
	if stderr != "error: No results\n" {
		t.Errorf("unexpected error: %q", stderr)
	}
}
