package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/ballpit/internal/sim"
)

type ExportData struct {
	Run     RunMetadata  `json:"run"`
	Samples []exportStep `json:"samples"`
}

type exportStep struct {
	Time   float64 `json:"time"`
	Balls  int     `json:"balls"`
	Energy float64 `json:"energy"`
	Event  string  `json:"event,omitempty"`
}

func newExportData(meta RunMetadata, samples []sim.Sample) ExportData {
	data := ExportData{Run: meta, Samples: make([]exportStep, len(samples))}
	for i, s := range samples {
		data.Samples[i] = exportStep{Time: s.Time, Balls: s.Balls, Energy: s.Energy, Event: s.Event.String()}
	}
	return data
}

// ExportJSON writes a stored run, metadata and timeline, to w.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	samples, err := s.LoadTimeline(runID)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newExportData(*meta, samples))
}

// ExportJSONFile is ExportJSON into a new file at path.
func (s *Store) ExportJSONFile(path, runID string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return s.ExportJSON(file, runID)
}
