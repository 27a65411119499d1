package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/model"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	dir := filepath.Join(os.TempDir(), "regionmap-store-test-"+t.Name())
	os.RemoveAll(dir)
	t.Cleanup(func() { os.RemoveAll(dir) })

	s, err := New(dir)
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestDownloadedRoundTrip(t *testing.T) {
	s := testStore(t)

	if err := s.MarkDownloaded("moscow_city"); err != nil {
		t.Fatalf("marking downloaded: %v", err)
	}
	if err := s.MarkDownloaded("spb"); err != nil {
		t.Fatalf("marking downloaded: %v", err)
	}
	// Re-marking must be idempotent, not a duplicate row.
	if err := s.MarkDownloaded("moscow_city"); err != nil {
		t.Fatalf("re-marking downloaded: %v", err)
	}

	rows, err := s.ReadDownloaded()
	if err != nil {
		t.Fatalf("reading downloaded: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	for _, r := range rows {
		if r.DownloadedAt == "" {
			t.Errorf("%s has no timestamp", r.RegionID)
		}
	}
}

func TestDeleteDownloaded(t *testing.T) {
	s := testStore(t)

	if err := s.MarkDownloaded("karelia"); err != nil {
		t.Fatalf("marking downloaded: %v", err)
	}
	if err := s.DeleteDownloaded("karelia"); err != nil {
		t.Fatalf("deleting: %v", err)
	}
	// Deleting an absent row is not an error.
	if err := s.DeleteDownloaded("karelia"); err != nil {
		t.Fatalf("deleting absent row: %v", err)
	}

	rows, err := s.ReadDownloaded()
	if err != nil {
		t.Fatalf("reading downloaded: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty registry, got %d rows", len(rows))
	}
}

func TestPathsRoundTrip(t *testing.T) {
	s := testStore(t)

	p := model.BoundaryPath{RegionID: "tuva", D: "M 0,0 L 10,0 L 10,10 Z", CX: 5, CY: 5}
	if err := s.WritePath(p); err != nil {
		t.Fatalf("writing path: %v", err)
	}
	// Overwrite with a corrected path.
	p.D = "M 1,1 L 11,1 L 11,11 Z"
	if err := s.WritePath(p); err != nil {
		t.Fatalf("rewriting path: %v", err)
	}

	got, err := s.ReadPaths()
	if err != nil {
		t.Fatalf("reading paths: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 path, got %d", len(got))
	}
	if got["tuva"].D != p.D {
		t.Errorf("expected rewritten path, got %q", got["tuva"].D)
	}
	if got["tuva"].CX != 5 || got["tuva"].CY != 5 {
		t.Errorf("centroid mismatch: %+v", got["tuva"])
	}
}

func TestReopenPersists(t *testing.T) {
	dir := filepath.Join(os.TempDir(), "regionmap-store-test-reopen")
	os.RemoveAll(dir)
	t.Cleanup(func() { os.RemoveAll(dir) })

	s, err := New(dir)
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	if err := s.MarkDownloaded("yakutia"); err != nil {
		t.Fatalf("marking downloaded: %v", err)
	}
	s.Close()

	s2, err := New(dir)
	if err != nil {
		t.Fatalf("reopening store: %v", err)
	}
	defer s2.Close()

	rows, err := s2.ReadDownloaded()
	if err != nil {
		t.Fatalf("reading downloaded: %v", err)
	}
	if len(rows) != 1 || rows[0].RegionID != "yakutia" {
		t.Fatalf("expected yakutia to survive reopen, got %+v", rows)
	}
}
