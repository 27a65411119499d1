package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/marcboeker/go-duckdb/v2"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/model"
)

// Store is the persistent side of the offline map: which regions have their
// tiles cached, and optional precomputed boundary paths. The in-memory state
// core never touches this directly; the download orchestrator does.
type Store struct {
	DB      *sql.DB
	DataDir string
}

// New opens (or creates) a DuckDB database in the given data directory.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "regionmap.duckdb")
	db, err := sql.Open("duckdb", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening duckdb: %w", err)
	}

	s := &Store{DB: db, DataDir: dataDir}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.DB.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS downloaded_regions (
			region_id TEXT PRIMARY KEY,
			downloaded_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS region_paths (
			region_id TEXT PRIMARY KEY,
			d TEXT NOT NULL,
			cx DOUBLE NOT NULL,
			cy DOUBLE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := s.DB.Exec(stmt); err != nil {
			return fmt.Errorf("executing migration %q: %w", stmt[:40], err)
		}
	}

	return nil
}

// MarkDownloaded records a region's tiles as fully cached.
func (s *Store) MarkDownloaded(regionID string) error {
	_, err := s.DB.Exec(
		`INSERT OR REPLACE INTO downloaded_regions (region_id, downloaded_at) VALUES (?, ?)`,
		regionID, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("marking %s downloaded: %w", regionID, err)
	}
	return nil
}

// DeleteDownloaded removes a region from the registry.
func (s *Store) DeleteDownloaded(regionID string) error {
	_, err := s.DB.Exec(`DELETE FROM downloaded_regions WHERE region_id = ?`, regionID)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", regionID, err)
	}
	return nil
}

// ReadDownloaded returns all registry rows, oldest first.
func (s *Store) ReadDownloaded() ([]model.DownloadedRegion, error) {
	rows, err := s.DB.Query(
		`SELECT region_id, downloaded_at FROM downloaded_regions ORDER BY downloaded_at`)
	if err != nil {
		return nil, fmt.Errorf("reading downloaded regions: %w", err)
	}
	defer rows.Close()

	var out []model.DownloadedRegion
	for rows.Next() {
		var r model.DownloadedRegion
		if err := rows.Scan(&r.RegionID, &r.DownloadedAt); err != nil {
			return nil, fmt.Errorf("scanning downloaded region: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// WritePath stores a precomputed boundary path.
func (s *Store) WritePath(p model.BoundaryPath) error {
	_, err := s.DB.Exec(
		`INSERT OR REPLACE INTO region_paths (region_id, d, cx, cy) VALUES (?, ?, ?, ?)`,
		p.RegionID, p.D, p.CX, p.CY,
	)
	if err != nil {
		return fmt.Errorf("writing path for %s: %w", p.RegionID, err)
	}
	return nil
}

// ReadPaths returns all stored boundary paths keyed by region id.
func (s *Store) ReadPaths() (map[string]model.BoundaryPath, error) {
	rows, err := s.DB.Query(`SELECT region_id, d, cx, cy FROM region_paths`)
	if err != nil {
		return nil, fmt.Errorf("reading region paths: %w", err)
	}
	defer rows.Close()

	out := make(map[string]model.BoundaryPath)
	for rows.Next() {
		var p model.BoundaryPath
		if err := rows.Scan(&p.RegionID, &p.D, &p.CX, &p.CY); err != nil {
			return nil, fmt.Errorf("scanning region path: %w", err)
		}
		out[p.RegionID] = p
	}
	return out, rows.Err()
}
