package logbook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sumwatshade/saltwater/cmd/sample"
	"github.com/sumwatshade/saltwater/internal/chem"
	"github.com/sumwatshade/saltwater/internal/salinity"
)

func testRecord(label string) sample.Record {
	return sample.Record{
		Label:  label,
		Inputs: chem.Sample{Na: 10780, Mg: 1290, Ca: 420},
		Result: salinity.Result{
			SP: 34.1854, SA: 34.3467, Density: 1024.137,
			SG2020: 1.02598, SG2525: 1.02576,
			Converged: true, Iterations: 4,
		},
		ChlorideEstimated: true,
		Comments:          "weekly check",
	}
}

func TestFileServiceCreateAndGet(t *testing.T) {
	svc, err := NewFileService(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileService: %v", err)
	}

	saved, err := svc.Create(testRecord("reef tank"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("Create did not assign an ID")
	}
	if saved.CreatedAt == "" {
		t.Fatal("Create did not stamp CreatedAt")
	}

	got, err := svc.Get(saved.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Label != "reef tank" || got.Result.SP != 34.1854 || !got.ChlorideEstimated {
		t.Errorf("Get = %+v, want saved record back", got)
	}
	if got.Inputs.Na != 10780 {
		t.Errorf("inputs na = %v, want 10780", got.Inputs.Na)
	}
}

func TestFileServiceCreateRequiresLabel(t *testing.T) {
	svc, err := NewFileService(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileService: %v", err)
	}
	if _, err := svc.Create(sample.Record{}); err == nil {
		t.Fatal("expected error for record without label")
	}
}

func TestFileServiceListSkipsCorruptFiles(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewFileService(dir)
	if err != nil {
		t.Fatalf("NewFileService: %v", err)
	}
	if _, err := svc.Create(testRecord("good")); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	records, err := svc.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 1 || records[0].Label != "good" {
		t.Errorf("List = %+v, want just the valid record", records)
	}
}

func TestFileServiceUpdateMutates(t *testing.T) {
	svc, err := NewFileService(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileService: %v", err)
	}
	saved, err := svc.Create(testRecord("before"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(saved.ID, func(r *sample.Record) error {
		r.Comments = "amended"
		return nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Comments != "amended" || updated.ID != saved.ID {
		t.Errorf("Update = %+v", updated)
	}

	got, err := svc.Get(saved.ID)
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if got.Comments != "amended" {
		t.Errorf("comments = %q, want %q", got.Comments, "amended")
	}
}

func TestNewLogbookFromService(t *testing.T) {
	svc, err := NewFileService(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileService: %v", err)
	}
	if _, err := svc.Create(testRecord("first")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	lb := NewLogbook(svc)
	if len(lb.Records) != 1 {
		t.Fatalf("records = %d, want 1", len(lb.Records))
	}
	latest := lb.Latest()
	if latest == nil || latest.Label != "first" {
		t.Errorf("Latest = %+v, want the saved record", latest)
	}
}

func TestNewLogbookNilService(t *testing.T) {
	lb := NewLogbook(nil)
	if len(lb.Records) != 0 {
		t.Fatalf("records = %d, want 0", len(lb.Records))
	}
	if lb.Latest() != nil {
		t.Error("Latest should be nil for empty logbook")
	}
}
