// Package storage persists completed runs as per-run directories with
// JSON metadata and a CSV cell dump.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/crystalsim/internal/cts"
	"github.com/san-kum/crystalsim/internal/scenario"
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

type RunMetadata struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Rows      int            `json:"rows"`
	Cols      int            `json:"cols"`
	RuleSet   string         `json:"rule_set"`
	Duration  float64        `json:"duration"`
	Seed      int64          `json:"seed"`
	Events    uint64         `json:"events"`
	Census    []int          `json:"census"`
	ByLabel   map[string]int `json:"by_label"`
	Profile   []float64      `json:"profile"`
}

// Save writes metadata.json and cells.csv (one CSV row per grid row,
// bottom row first) and returns the generated run id.
func (s *Store) Save(rows, cols int, ruleSet string, seed int64, result *scenario.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", ruleSet, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Rows:      rows,
		Cols:      cols,
		RuleSet:   ruleSet,
		Duration:  result.FinalTime,
		Seed:      seed,
		Events:    result.Events,
		Census:    result.Census,
		ByLabel:   result.ByLabel,
		Profile:   result.Profile,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "cells.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	for r := 0; r < rows; r++ {
		record := make([]string, cols)
		for c := 0; c < cols; c++ {
			record[c] = strconv.Itoa(int(result.Cells[r*cols+c]))
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadCells reads back the cell dump of a stored run.
func (s *Store) LoadCells(runID string) ([]cts.State, int, int, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "cells.csv"))
	if err != nil {
		return nil, 0, 0, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, 0, 0, err
	}
	if len(records) == 0 {
		return nil, 0, 0, fmt.Errorf("run %s: empty cell dump", runID)
	}

	rows := len(records)
	cols := len(records[0])
	cells := make([]cts.State, 0, rows*cols)
	for _, record := range records {
		for _, field := range record {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, 0, 0, err
			}
			cells = append(cells, cts.State(v))
		}
	}

	return cells, rows, cols, nil
}
