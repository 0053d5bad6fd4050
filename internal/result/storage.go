package result

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	CandidateFile = "candidate.json"
	ScoreFile     = "score.json"
)

func CreateRunDir(baseDir string) (string, error) {
	runsDir := filepath.Join(baseDir, "runs")
	stamp := time.Now().UTC().Format("2006-01-02T15-04-05")
	runDir := filepath.Join(runsDir, stamp)
	runDir, err := filepath.Abs(runDir)
	if err != nil {
		return "", fmt.Errorf("resolving run dir: %w", err)
	}
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return "", fmt.Errorf("creating run dir: %w", err)
	}
	latest := filepath.Join(baseDir, "latest")
	os.Remove(latest)
	if err := os.Symlink(runDir, latest); err != nil {
		return "", fmt.Errorf("creating latest symlink: %w", err)
	}
	return runDir, nil
}

var idSanitizer = strings.NewReplacer("/", "_", "\\", "_", "..", "_")

// SanitizeID maps an ID to the directory name it is stored under.
func SanitizeID(id string) string {
	return idSanitizer.Replace(id)
}

func CandidateDir(runDir, id string) string {
	return filepath.Join(runDir, "candidates", SanitizeID(id))
}

// CandidateID derives an ID from a candidate file name when the file does
// not carry one.
func CandidateID(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

func ReadCandidate(path string) (*Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading candidate: %w", err)
	}
	var c Candidate
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing candidate %s: %w", path, err)
	}
	if c.ID == "" {
		c.ID = CandidateID(path)
	}
	return &c, nil
}

func WriteCandidate(dir string, c *Candidate) error {
	return writeJSON(dir, CandidateFile, c)
}

func WriteScore(dir string, rec *ScoreRecord) error {
	return writeJSON(dir, ScoreFile, rec)
}

func ReadScore(path string) (*ScoreRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading score: %w", err)
	}
	var rec ScoreRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parsing score: %w", err)
	}
	return &rec, nil
}

// FindCandidateFiles lists the *.json files under dir, sorted by path.
func FindCandidateFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.EqualFold(filepath.Ext(path), ".json") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}
	return files, nil
}

func writeJSON(dir, name string, v any) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", name, err)
	}
	return os.WriteFile(filepath.Join(dir, name), data, 0o644)
}
