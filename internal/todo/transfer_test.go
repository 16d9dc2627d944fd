package todo

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestExportEmptyList(t *testing.T) {
	doc, err := Export(nil)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !doc.Empty() {
		t.Fatal("expected empty document")
	}
	if string(doc.Data) != "[]" {
		t.Fatalf("Data = %s, want []", doc.Data)
	}
}

func TestExportIsIndented(t *testing.T) {
	doc, err := Export([]Task{{ID: "a", Title: "t", CreatedAt: 1}})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if doc.Empty() || doc.Count != 1 {
		t.Fatalf("Count = %d", doc.Count)
	}
	if !strings.Contains(string(doc.Data), "\n    \"id\": \"a\"") {
		t.Fatalf("expected two-space indentation, got:\n%s", doc.Data)
	}
}

func TestImportExportRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustCreate(t, s, "alpha")
	mustCreate(t, s, "beta")
	if _, err := s.Update(a.ID, "alpha", "with notes"); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if _, err := s.Toggle(a.ID); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	original := s.Tasks()

	doc, err := s.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	n, err := s.Import(doc.Data)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if n != len(original) {
		t.Fatalf("imported %d, want %d", n, len(original))
	}

	merged := s.Tasks()
	if len(merged) != 2*len(original) {
		t.Fatalf("merged len = %d, want %d", len(merged), 2*len(original))
	}
	// imported copies sit on top, existing tasks below, ids duplicated
	if !reflect.DeepEqual(merged[:len(original)], original) {
		t.Fatalf("imported block = %+v", merged[:len(original)])
	}
	if !reflect.DeepEqual(merged[len(original):], original) {
		t.Fatalf("existing block = %+v", merged[len(original):])
	}
}

func TestImportInvalidLeavesListUnchanged(t *testing.T) {
	s, _ := newTestStore(t)
	mustCreate(t, s, "existing")
	before := s.Tasks()

	for _, data := range []string{`{"a":1}`, `not json`, `[{"id":"x"}]`} {
		if _, err := s.Import([]byte(data)); !errors.Is(err, ErrInvalidFormat) {
			t.Fatalf("Import(%s) error = %v, want ErrInvalidFormat", data, err)
		}
		if !reflect.DeepEqual(s.Tasks(), before) {
			t.Fatalf("Import(%s) changed the list", data)
		}
	}
}

func TestImportEmptyArray(t *testing.T) {
	s, _ := newTestStore(t)
	mustCreate(t, s, "existing")

	n, err := s.Import([]byte(`[]`))
	if err != nil || n != 0 {
		t.Fatalf("Import([]) = %d, %v", n, err)
	}
	if len(s.Tasks()) != 1 {
		t.Fatal("list should be unchanged")
	}
}

func TestWriteAndReadFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	doc, err := Export([]Task{{ID: "a", Title: "t", CreatedAt: 1}})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	path, err := WriteFile(dir, "", doc)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if filepath.Base(path) != DefaultExportName {
		t.Fatalf("path = %s, want default name", path)
	}

	data, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != string(doc.Data) {
		t.Fatal("file content differs from document")
	}

	if _, err := ReadFile(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("ReadFile missing error = %v", err)
	}
}

func TestSampleTasksAreImportable(t *testing.T) {
	samples := SampleTasks(time.Now())
	doc, err := Export(samples)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	s, _ := newTestStore(t)
	n, err := s.Import(doc.Data)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if n != len(samples) {
		t.Fatalf("imported %d, want %d", n, len(samples))
	}
	if sum := s.Summary(); sum.Completed() == 0 || sum.Active == 0 {
		t.Fatalf("samples should mix active and done tasks: %+v", sum)
	}
}
