package runner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/signalnine/codescore/internal/metric"
	"github.com/signalnine/codescore/internal/result"
	"go.uber.org/zap"
)

type BatchOpts struct {
	Metric   *metric.Metric
	Files    []string
	RunDir   string // when empty nothing is written
	Parallel int
	Logger   *zap.Logger
}

type loaded struct {
	path      string
	candidate *result.Candidate
}

// ScoreFiles scores every candidate file. Files that cannot be read are
// logged and skipped; scoring itself never fails. Records come back in file
// order.
func ScoreFiles(opts BatchOpts) ([]*result.ScoreRecord, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	m := opts.Metric
	if m == nil {
		m = metric.Default()
	}

	var items []loaded
	taken := make(map[string]bool)
	for _, path := range opts.Files {
		c, err := result.ReadCandidate(path)
		if err != nil {
			log.Warn("skipping candidate", zap.String("path", path), zap.Error(err))
			continue
		}
		c.ID = uniqueID(result.SanitizeID(c.ID), taken)
		items = append(items, loaded{path: path, candidate: c})
	}

	records, errs := Map(opts.Parallel, items, func(it loaded) (*result.ScoreRecord, error) {
		score := m.EvaluateCandidate(it.candidate)
		rec := &result.ScoreRecord{
			Candidate: it.candidate.ID,
			Source:    it.path,
			Score:     score,
		}
		log.Debug("scored candidate",
			zap.String("id", rec.Candidate),
			zap.Float64("score", score.Value))
		if opts.RunDir == "" {
			return rec, nil
		}
		dir := result.CandidateDir(opts.RunDir, rec.Candidate)
		if err := result.WriteCandidate(dir, it.candidate); err != nil {
			return nil, fmt.Errorf("storing %s: %w", rec.Candidate, err)
		}
		if err := result.WriteScore(dir, rec); err != nil {
			return nil, fmt.Errorf("storing %s: %w", rec.Candidate, err)
		}
		return rec, nil
	})
	if len(errs) > 0 {
		return nil, fmt.Errorf("writing %d of %d results: %w", len(errs), len(items), errs[0])
	}
	return records, nil
}

// uniqueID returns id, or id-N for the smallest N >= 2 not yet taken, and
// marks the result taken.
func uniqueID(id string, taken map[string]bool) string {
	unique := id
	for n := 2; taken[unique]; n++ {
		unique = fmt.Sprintf("%s-%d", id, n)
	}
	taken[unique] = true
	return unique
}

// Change records a stored score before and after rescoring.
type Change struct {
	Candidate string
	Old       float64
	New       float64
}

// Rescore re-evaluates every stored candidate under runDir with m and
// rewrites its score.json.
func Rescore(m *metric.Metric, runDir string, log *zap.Logger) ([]Change, error) {
	if log == nil {
		log = zap.NewNop()
	}
	var paths []string
	err := filepath.Walk(runDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.Name() == result.CandidateFile {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking run dir: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no %s files found in %s", result.CandidateFile, runDir)
	}

	var changes []Change
	for _, path := range paths {
		dir := filepath.Dir(path)
		c, err := result.ReadCandidate(path)
		if err != nil {
			log.Warn("skipping candidate", zap.String("path", path), zap.Error(err))
			continue
		}
		rec := &result.ScoreRecord{Candidate: c.ID}
		var old float64
		if prev, err := result.ReadScore(filepath.Join(dir, result.ScoreFile)); err == nil {
			old = prev.Score.Value
			rec.Source = prev.Source
		}
		rec.Score = m.EvaluateCandidate(c)
		if err := result.WriteScore(dir, rec); err != nil {
			log.Warn("failed to write score", zap.String("candidate", c.ID), zap.Error(err))
			continue
		}
		changes = append(changes, Change{Candidate: c.ID, Old: old, New: rec.Score.Value})
	}
	return changes, nil
}
