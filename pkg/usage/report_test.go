package usage

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/eunmann/s3du/pkg/inventory"
)

func TestReport_RowOrderFollowsInput(t *testing.T) {
	lister := &fakeLister{pagers: map[string]inventory.Pager{
		"b2": inventory.NewSlicePager(inventory.NewPage("x", 10, 20)),
		"b1": inventory.NewSlicePager(inventory.NewPage("y", 5)),
	}}
	var out bytes.Buffer

	rows, err := NewReport(lister, &out, fixedWidth).Run(context.Background(), []string{"b2", "b1"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	wantRows := []Row{
		{Name: "b2", FileCount: 2, TotalBytes: 30},
		{Name: "b1", FileCount: 1, TotalBytes: 5},
	}
	if len(rows) != len(wantRows) {
		t.Fatalf("got %d rows, want %d", len(rows), len(wantRows))
	}
	for i := range wantRows {
		if rows[i] != wantRows[i] {
			t.Errorf("rows[%d] = %+v, want %+v", i, rows[i], wantRows[i])
		}
	}

	if !strings.HasSuffix(out.String(), "name,file count,size\nb2,2,30\nb1,1,5\n") {
		t.Errorf("table missing or out of order:\n%s", out.String())
	}
	if strings.Index(out.String(), "b2\n--\n") > strings.Index(out.String(), "b1\n--\n") {
		t.Errorf("bucket sections out of order:\n%s", out.String())
	}
}

func TestReport_LogsScenario(t *testing.T) {
	lister := &fakeLister{pagers: map[string]inventory.Pager{
		"logs": inventory.NewSlicePager(
			inventory.NewPage("logs", 500, 500),
			inventory.NewPage("logs", 2_000_000),
		),
	}}
	var out bytes.Buffer

	if _, err := NewReport(lister, &out, fixedWidth).Run(context.Background(), []string{"logs"}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := "logs\n----\n" +
		clearSeq + "1.00 kB (2 files)" +
		clearSeq + "2.00 MB (3 files)" +
		clearSeq + "2.00 MB (3 files)\n\n" +
		"name,file count,size\n" +
		"logs,3,2001000\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestReport_FaultAbortsBeforeTable(t *testing.T) {
	denied := errors.New("AccessDenied")
	lister := &fakeLister{pagers: map[string]inventory.Pager{
		"first":  inventory.NewSlicePager(inventory.NewPage("a", 1)),
		"second": inventory.NewSlicePager(inventory.NewPage("b", 1)).FailAt(1, denied),
		"third":  inventory.NewSlicePager(inventory.NewPage("c", 1)),
	}}
	var out bytes.Buffer

	rows, err := NewReport(lister, &out, fixedWidth).Run(context.Background(), []string{"first", "second", "third"})
	if !errors.Is(err, denied) {
		t.Fatalf("Run error = %v, want %v", err, denied)
	}
	if rows != nil {
		t.Errorf("rows = %+v, want nil", rows)
	}

	output := out.String()
	if strings.Contains(output, "name,file count,size") {
		t.Errorf("table written despite failure:\n%s", output)
	}
	if strings.Contains(output, "third") {
		t.Errorf("third bucket appears in output:\n%s", output)
	}
	if !strings.Contains(output, "first\n-----\n") {
		t.Errorf("completed bucket section missing:\n%s", output)
	}
	if len(lister.opened) != 2 {
		t.Errorf("opened %v, want only first and second", lister.opened)
	}
}

func TestReport_NoBuckets(t *testing.T) {
	var out bytes.Buffer

	rows, err := NewReport(&fakeLister{}, &out, fixedWidth).Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
	if out.String() != "name,file count,size\n" {
		t.Errorf("output = %q, want header only", out.String())
	}
}

func TestWriteTable_Quoting(t *testing.T) {
	var out bytes.Buffer
	rows := []Row{
		{Name: "plain", FileCount: 1, TotalBytes: 2},
		{Name: "with,comma", FileCount: 3, TotalBytes: 4},
		{Name: `with"quote`, FileCount: 5, TotalBytes: 6},
	}

	if err := WriteTable(&out, rows); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}

	want := "name,file count,size\n" +
		"plain,1,2\n" +
		"\"with,comma\",3,4\n" +
		"\"with\"\"quote\",5,6\n"
	if out.String() != want {
		t.Errorf("table = %q, want %q", out.String(), want)
	}
}

func TestWriteTable_LargeTotalsAreRaw(t *testing.T) {
	var out bytes.Buffer
	rows := []Row{{Name: "big", FileCount: 12_345_678, TotalBytes: 1_000_000_000_000_000}}

	if err := WriteTable(&out, rows); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}
	if !strings.Contains(out.String(), "big,12345678,1000000000000000\n") {
		t.Errorf("expected raw integers, got %q", out.String())
	}
}

func TestWriteTable_OutputFault(t *testing.T) {
	err := WriteTable(&failingWriter{}, []Row{{Name: "b"}})
	if err == nil {
		t.Fatal("expected error from broken writer")
	}
}
