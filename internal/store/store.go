package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"evalviz/internal/render"
)

// Store is the on-disk ledger of past renders. Each render gets a
// directory holding metadata.json and steps.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RenderMetadata struct {
	ID        string    `json:"id"`
	Scene     string    `json:"scene"`
	Timestamp time.Time `json:"timestamp"`
	FPS       int       `json:"fps"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Format    string    `json:"format"`
	Frames    int       `json:"frames"`
	Duration  float64   `json:"duration"`
	Steps     int       `json:"steps"`
	Output    string    `json:"output"`
}

// Save records one completed render and returns its id.
func (s *Store) Save(scene string, fps, width, height int, format, output string, result *render.Result) (string, error) {
	id := fmt.Sprintf("%s_%d", scene, time.Now().Unix())
	dir := filepath.Join(s.baseDir, id)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	meta := RenderMetadata{
		ID:        id,
		Scene:     scene,
		Timestamp: time.Now(),
		FPS:       fps,
		Width:     width,
		Height:    height,
		Format:    format,
		Frames:    len(result.Times),
		Duration:  result.Duration,
		Steps:     len(result.Steps),
		Output:    output,
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

	if err := s.saveSteps(dir, result); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) saveSteps(dir string, result *render.Result) error {
	f, err := os.Create(filepath.Join(dir, "steps.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"step", "start", "duration", "anims", "frames"}); err != nil {
		return err
	}
	for _, st := range result.Steps {
		row := []string{
			strconv.Itoa(st.Index),
			strconv.FormatFloat(st.Start, 'f', 4, 64),
			strconv.FormatFloat(st.Duration, 'f', 4, 64),
			strconv.Itoa(st.Anims),
			strconv.Itoa(st.Frames),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the metadata of one render.
func (s *Store) Load(id string) (*RenderMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		return nil, fmt.Errorf("render not found: %s", id)
	}
	var meta RenderMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// List returns metadata for all recorded renders, newest first.
func (s *Store) List() ([]*RenderMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []*RenderMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}
