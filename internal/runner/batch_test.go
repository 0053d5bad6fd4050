package runner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/signalnine/codescore/internal/config"
	"github.com/signalnine/codescore/internal/metric"
	"github.com/signalnine/codescore/internal/result"
	"github.com/signalnine/codescore/internal/runner"
	"go.uber.org/zap/zaptest"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestScoreFiles(t *testing.T) {
	in := t.TempDir()
	runDir := t.TempDir()
	files := []string{
		writeFile(t, in, "good.json", `{"code": "export async function f() {}", "test_result": {"success": true}}`),
		writeFile(t, in, "empty.json", `{"code": "  "}`),
		writeFile(t, in, "broken.json", `{"code": `),
	}

	records, err := runner.ScoreFiles(runner.BatchOpts{
		Metric:   metric.Default(),
		Files:    files,
		RunDir:   runDir,
		Parallel: 2,
		Logger:   zaptest.NewLogger(t),
	})
	if err != nil {
		t.Fatalf("ScoreFiles: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records (broken file skipped), got %d", len(records))
	}
	if records[0].Candidate != "good" || records[1].Candidate != "empty" {
		t.Errorf("unexpected order: %q, %q", records[0].Candidate, records[1].Candidate)
	}
	if records[1].Score.Value != 0 {
		t.Errorf("empty candidate scored %f", records[1].Score.Value)
	}
	if records[0].Score.Value < 0.4 {
		t.Errorf("passing candidate scored %f", records[0].Score.Value)
	}

	stored, err := result.ReadScore(filepath.Join(result.CandidateDir(runDir, "good"), result.ScoreFile))
	if err != nil {
		t.Fatalf("reading stored score: %v", err)
	}
	if stored.Score.Value != records[0].Score.Value {
		t.Errorf("stored score %f, want %f", stored.Score.Value, records[0].Score.Value)
	}
	if _, err := os.Stat(filepath.Join(result.CandidateDir(runDir, "good"), result.CandidateFile)); err != nil {
		t.Errorf("candidate copy not stored: %v", err)
	}
}

func TestScoreFilesDuplicateIDs(t *testing.T) {
	in := t.TempDir()
	runDir := t.TempDir()
	files := []string{
		writeFile(t, in, "a.json", `{"id": "same", "code": "x"}`),
		writeFile(t, in, "b.json", `{"id": "same", "code": "y"}`),
		writeFile(t, in, "c.json", `{"id": "same-2", "code": "z"}`),
		writeFile(t, in, "d.json", `{"id": "same", "code": "w"}`),
		writeFile(t, in, "e.json", `{"id": "a/b", "code": "v"}`),
		writeFile(t, in, "f.json", `{"id": "a_b", "code": "u"}`),
	}
	records, err := runner.ScoreFiles(runner.BatchOpts{Files: files, RunDir: runDir, Parallel: 4})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"same", "same-2", "same-2-2", "same-3", "a_b", "a_b-2"}
	codes := []string{"x", "y", "z", "w", "v", "u"}
	if len(records) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(records))
	}
	for i, rec := range records {
		if rec.Candidate != want[i] {
			t.Errorf("record %d: got id %q, want %q", i, rec.Candidate, want[i])
		}
		stored, err := result.ReadCandidate(filepath.Join(result.CandidateDir(runDir, rec.Candidate), result.CandidateFile))
		if err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
		if stored.ID != rec.Candidate || stored.Code != codes[i] {
			t.Errorf("record %d: stored %q with code %q, want %q with code %q",
				i, stored.ID, stored.Code, rec.Candidate, codes[i])
		}
	}
}

func TestRescore(t *testing.T) {
	in := t.TempDir()
	runDir := t.TempDir()
	files := []string{
		writeFile(t, in, "plain.json", `{"code": "function f() { return 1; }", "test_result": "{\"success\": false}"}`),
	}
	if _, err := runner.ScoreFiles(runner.BatchOpts{Files: files, RunDir: runDir}); err != nil {
		t.Fatal(err)
	}

	m, err := metric.New(config.Scoring{Credits: map[string]float64{"client_error": 1.0}})
	if err != nil {
		t.Fatal(err)
	}
	changes, err := runner.Rescore(m, runDir, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Rescore: %v", err)
	}
	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %d", len(changes))
	}
	c := changes[0]
	// client_error absent credit 0.7 -> 1.0 lifts error handling by 0.075
	if diff := c.New - c.Old; diff < 0.011 || diff > 0.012 {
		t.Errorf("rescore delta %f, want 0.01125", diff)
	}
	stored, err := result.ReadScore(filepath.Join(result.CandidateDir(runDir, "plain"), result.ScoreFile))
	if err != nil {
		t.Fatal(err)
	}
	if stored.Score.Value != c.New {
		t.Errorf("stored %f, want %f", stored.Score.Value, c.New)
	}
	if stored.Source != files[0] {
		t.Errorf("source: got %q, want %q", stored.Source, files[0])
	}
}

func TestRescoreEmptyDir(t *testing.T) {
	if _, err := runner.Rescore(metric.Default(), t.TempDir(), nil); err == nil {
		t.Error("expected error for run dir without candidates")
	}
}
