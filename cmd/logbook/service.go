package logbook

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sumwatshade/saltwater/cmd/sample"
)

// Service defines persistence operations for logbook records.
type Service interface {
	List() ([]sample.Record, error)
	Get(id string) (sample.Record, error)
	Create(r sample.Record) (sample.Record, error)
	Update(id string, mutate func(*sample.Record) error) (sample.Record, error)
}

var _ Service = (*fileService)(nil)

// fileService stores each record as a JSON file under baseDir.
type fileService struct {
	baseDir string
}

// NewFileService creates a logbook service rooted at dir (created if missing).
func NewFileService(dir string) (Service, error) {
	if dir == "" {
		return nil, errors.New("empty logbook dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &fileService{baseDir: dir}, nil
}

func (s *fileService) recordPath(id string) string { return filepath.Join(s.baseDir, id+".json") }

// List loads all record JSON files (best-effort; skips corrupt ones) sorted by mtime desc.
func (s *fileService) List() ([]sample.Record, error) {
	var records []sample.Record
	// gather files
	var files []fs.FileInfo
	dir, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, err
	}
	for _, de := range dir {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".json") {
			continue
		}
		info, err := de.Info()
		if err != nil { // skip
			continue
		}
		files = append(files, info)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].ModTime().After(files[j].ModTime()) })
	for _, fi := range files {
		b, err := os.ReadFile(filepath.Join(s.baseDir, fi.Name()))
		if err != nil {
			continue
		}
		var r sample.Record
		if err := json.Unmarshal(b, &r); err != nil || r.ID == "" {
			continue
		}
		if strings.TrimSpace(r.CreatedAt) == "" { // backfill from file mtime
			r.CreatedAt = fi.ModTime().UTC().Format(time.RFC3339)
		}
		records = append(records, r)
	}
	return records, nil
}

func (s *fileService) Get(id string) (sample.Record, error) {
	if id == "" {
		return sample.Record{}, errors.New("empty id")
	}
	b, err := os.ReadFile(s.recordPath(id))
	if err != nil {
		return sample.Record{}, err
	}
	var r sample.Record
	if err := json.Unmarshal(b, &r); err != nil {
		return sample.Record{}, err
	}
	if r.ID == "" {
		return sample.Record{}, errors.New("record missing id")
	}
	return r, nil
}

func (s *fileService) Create(r sample.Record) (sample.Record, error) {
	r.ID = uuid.NewString()
	if strings.TrimSpace(r.Label) == "" {
		return sample.Record{}, errors.New("label required")
	}
	if strings.TrimSpace(r.CreatedAt) == "" {
		r.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return sample.Record{}, err
	}
	if err := os.WriteFile(s.recordPath(r.ID), data, 0o644); err != nil {
		return sample.Record{}, err
	}
	return r, nil
}

func (s *fileService) Update(id string, mutate func(*sample.Record) error) (sample.Record, error) {
	cur, err := s.Get(id)
	if err != nil {
		return sample.Record{}, err
	}
	if mutate != nil {
		if err := mutate(&cur); err != nil {
			return sample.Record{}, err
		}
	}
	cur.ID = id                                 // safety
	if strings.TrimSpace(cur.CreatedAt) == "" { // ensure not lost
		cur.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	data, err := json.MarshalIndent(cur, "", "  ")
	if err != nil {
		return sample.Record{}, err
	}
	tmp := s.recordPath(id) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return sample.Record{}, err
	}
	if err := os.Rename(tmp, s.recordPath(id)); err != nil {
		return sample.Record{}, err
	}
	return cur, nil
}
