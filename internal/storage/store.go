package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/ballpit/internal/arena"
	"github.com/san-kum/ballpit/internal/sim"
)

var ErrRunNotFound = errors.New("storage: run not found")

const (
	metadataFile = "metadata.json"
	timelineFile = "timeline.csv"
)

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Timestamp  time.Time          `json:"timestamp"`
	Seed       int64              `json:"seed"`
	Dt         float64            `json:"dt"`
	Duration   float64            `json:"duration"`
	Width      float64            `json:"width"`
	Height     float64            `json:"height"`
	BarHeight  float64            `json:"bar_height"`
	Scenario   string             `json:"scenario,omitempty"`
	Metrics    map[string]float64 `json:"metrics"`
	Totals     Totals             `json:"totals"`
	StepsTaken int                `json:"steps"`
}

// Totals are the arena counters at the end of a run.
type Totals struct {
	Balls      int     `json:"balls"`
	Rainbow    int     `json:"rainbow"`
	Evolutive  int     `json:"evolutive"`
	Events     int     `json:"events"`
	Explosions int     `json:"explosions"`
	Alive      int     `json:"alive"`
	Elapsed    float64 `json:"elapsed"`
}

func totalsOf(st arena.Stats) Totals {
	return Totals{
		Balls:      st.TotalBalls,
		Rainbow:    st.TotalRainbow,
		Evolutive:  st.TotalEvolutive,
		Events:     st.TotalEvents,
		Explosions: st.TotalExplosions,
		Alive:      st.Balls,
		Elapsed:    st.Elapsed,
	}
}

// newRunDir creates a fresh directory for base, adding _2, _3, ... when
// a run with the same id already exists.
func (s *Store) newRunDir(base string) (string, string, error) {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", "", err
	}
	runID := base
	for n := 2; ; n++ {
		dir := filepath.Join(s.baseDir, runID)
		err := os.Mkdir(dir, 0755)
		if err == nil {
			return runID, dir, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", "", err
		}
		runID = fmt.Sprintf("%s_%d", base, n)
	}
}

// Save writes a run directory holding metadata.json and timeline.csv and
// returns the run id. meta.ID, Timestamp, Metrics and Totals are filled in.
func (s *Store) Save(meta RunMetadata, result *sim.Result) (string, error) {
	ts := s.now()
	runID, runDir, err := s.newRunDir(fmt.Sprintf("run_%d_%d", ts.Unix(), meta.Seed))
	if err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = ts
	meta.Metrics = result.Metrics
	meta.Totals = totalsOf(result.Stats)
	meta.StepsTaken = result.StepsTaken

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, timelineFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write([]string{"time", "balls", "energy", "event"}); err != nil {
		return "", err
	}
	for _, smp := range result.Samples {
		row := []string{
			strconv.FormatFloat(smp.Time, 'f', 6, 64),
			strconv.Itoa(smp.Balls),
			strconv.FormatFloat(smp.Energy, 'f', 3, 64),
			smp.Event.String(),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns every stored run, newest first.
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

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadTimeline reads the samples written by Save.
func (s *Store) LoadTimeline(runID string) ([]sim.Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, timelineFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []sim.Sample{}, nil
	}

	samples := make([]sim.Sample, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 3 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		balls, err := strconv.Atoi(record[1])
		if err != nil {
			continue
		}
		energy, _ := strconv.ParseFloat(record[2], 64)

		smp := sim.Sample{Time: t, Balls: balls, Energy: energy}
		if len(record) > 3 && record[3] != "" {
			smp.Event, _ = arena.ParseEvent(record[3])
		}
		samples = append(samples, smp)
	}

	return samples, nil
}
