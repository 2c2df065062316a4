package datasource

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// appliedSuffix marks spool files that have been consumed.
const appliedSuffix = ".applied"

type envelope struct {
	Type    DocumentType    `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// FileSource sweeps a spool directory for JSON document envelopes. Files
// that decode and validate are returned in a Batch and renamed with an
// .applied suffix; malformed files are logged and left in place so they
// can be inspected, without blocking the rest of the sweep.
type FileSource struct {
	dir      string
	validate *validator.Validate
	logger   *logrus.Logger
}

// NewFileSource creates a spool reader over the given directory.
func NewFileSource(dir string, logger *logrus.Logger) *FileSource {
	return &FileSource{
		dir:      dir,
		validate: validator.New(),
		logger:   logger,
	}
}

// Load performs one sweep. Documents are returned in file-name order so a
// collection job can sequence races with sortable names.
func (s *FileSource) Load() (*Batch, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading spool directory %s: %w", s.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || strings.HasSuffix(name, appliedSuffix) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	batch := &Batch{}
	for _, name := range names {
		path := filepath.Join(s.dir, name)
		if err := s.loadFile(path, batch); err != nil {
			s.logger.WithError(err).WithField("file", name).Warn("Skipping malformed spool file")
			continue
		}
		if err := os.Rename(path, path+appliedSuffix); err != nil {
			s.logger.WithError(err).WithField("file", name).Warn("Failed to mark spool file applied")
		}
	}
	return batch, nil
}

func (s *FileSource) loadFile(path string, batch *Batch) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return s.loadEnvelope(data, batch)
}

func (s *FileSource) loadEnvelope(data []byte, batch *Batch) error {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("decoding envelope: %w", err)
	}

	switch env.Type {
	case DocumentTypeRoster:
		var doc RosterDocument
		if err := s.decode(env.Payload, &doc); err != nil {
			return err
		}
		batch.Rosters = append(batch.Rosters, doc)
	case DocumentTypeOdds:
		var doc OddsDocument
		if err := s.decode(env.Payload, &doc); err != nil {
			return err
		}
		batch.Odds = append(batch.Odds, doc)
	case DocumentTypeResults:
		var doc ResultsDocument
		if err := s.decode(env.Payload, &doc); err != nil {
			return err
		}
		batch.Results = append(batch.Results, doc)
	default:
		return fmt.Errorf("unknown document type %q", env.Type)
	}
	return nil
}

func (s *FileSource) decode(payload json.RawMessage, doc any) error {
	if err := json.Unmarshal(payload, doc); err != nil {
		return fmt.Errorf("decoding payload: %w", err)
	}
	if err := s.validate.Struct(doc); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}
	return nil
}

// ReadBatchFile decodes a standalone batch file holding a JSON array of
// envelopes. Unlike a spool sweep the file is left untouched, so the CLI
// can replay the same snapshot repeatedly.
func ReadBatchFile(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file %s: %w", path, err)
	}

	var envs []envelope
	if err := json.Unmarshal(data, &envs); err != nil {
		return nil, fmt.Errorf("decoding batch file %s: %w", path, err)
	}

	s := &FileSource{validate: validator.New()}
	batch := &Batch{}
	for i, env := range envs {
		raw, err := json.Marshal(env)
		if err != nil {
			return nil, err
		}
		if err := s.loadEnvelope(raw, batch); err != nil {
			return nil, fmt.Errorf("batch file %s document %d: %w", path, i, err)
		}
	}
	return batch, nil
}
