// Package capture persists headless animation runs so frames can be
// listed and re-rendered later without a terminal session.
package capture

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/san-kum/matrixrain/internal/config"
	"github.com/san-kum/matrixrain/internal/rain"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type Meta struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Frames    int       `json:"frames"`
	Seed      int64     `json:"seed"`
	Depth     int       `json:"depth"`
	Length    int       `json:"length"`
	Air       int       `json:"air"`
	Theme     string    `json:"theme"`
	Charset   string    `json:"charset"`
}

// Save writes a capture's metadata and frames under a fresh run directory
// and returns the run id. Ids carry a nanosecond timestamp; if one still
// collides with an existing run a numeric suffix is appended, so a save
// never overwrites an earlier capture.
func (s *Store) Save(cfg *config.Config, width, height int, frames []rain.Frame) (string, error) {
	if err := s.Init(); err != nil {
		return "", err
	}

	id := fmt.Sprintf("rain_%d", time.Now().UnixNano())
	dir := filepath.Join(s.baseDir, id)
	for n := 1; ; n++ {
		err := os.Mkdir(dir, 0755)
		if err == nil {
			break
		}
		if !os.IsExist(err) {
			return "", err
		}
		id = fmt.Sprintf("rain_%d_%d", time.Now().UnixNano(), n)
		dir = filepath.Join(s.baseDir, id)
	}

	meta := Meta{
		ID:        id,
		Timestamp: time.Now(),
		Width:     width,
		Height:    height,
		Frames:    len(frames),
		Seed:      cfg.Seed,
		Depth:     cfg.Depth,
		Length:    cfg.Length,
		Air:       cfg.Air,
		Theme:     cfg.Theme,
		Charset:   cfg.Charset,
	}

	metaFile, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	framesFile, err := os.Create(filepath.Join(dir, "frames.json"))
	if err != nil {
		return "", err
	}
	defer framesFile.Close()

	if err := json.NewEncoder(framesFile).Encode(frames); err != nil {
		return "", err
	}

	return id, nil
}

func (s *Store) List() ([]Meta, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Meta{}, nil
		}
		return nil, err
	}

	runs := make([]Meta, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta Meta
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(id string) (*Meta, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta Meta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadFrames(id string) ([]rain.Frame, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "frames.json"))
	if err != nil {
		return nil, err
	}
	var frames []rain.Frame
	if err := json.Unmarshal(data, &frames); err != nil {
		return nil, err
	}
	return frames, nil
}
