package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/rdsim/internal/export"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "missing.env"), "--log-level", "ERROR"))
	err := cmd.Execute()
	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	out, err := execute(t, "run", "identity", "--steps", "3", "--x0", "0.2,0.7", "--seed", "5")
	if err != nil {
		t.Fatalf("run failed: %v\n%s", err, out)
	}
	for _, want := range []string{"run id:", "model: identity (quenched, uniform)", "seed: 5", "steps: 3", "x1", "0.700000", "synchrony"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunExportAndConvert(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "run.json")

	if out, err := execute(t, "run", "rotation", "--steps", "4", "--seed", "1", "--capture", "-o", jsonPath, "--format", "json"); err != nil {
		t.Fatalf("run failed: %v\n%s", err, out)
	}

	f, err := os.Open(jsonPath)
	if err != nil {
		t.Fatal(err)
	}
	rec, err := export.ReadJSON(f)
	f.Close()
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.States) != 5 || len(rec.Omegas) != 4 {
		t.Fatalf("got %d states and %d omegas, want 5 and 4", len(rec.States), len(rec.Omegas))
	}
	if rec.Seed != 1 || rec.Model != "rotation" {
		t.Errorf("unexpected record header: %+v", rec)
	}

	out, err := execute(t, "convert", jsonPath)
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != "step,x0,w0" || len(lines) != 6 {
		t.Errorf("unexpected csv:\n%s", out)
	}
}

func TestConfigPrecedence(t *testing.T) {
	t.Setenv("RDSIM_STEPS", "7")

	out, err := execute(t, "average", "identity")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "over 8 states") {
		t.Errorf("env override not applied:\n%s", out)
	}

	out, err = execute(t, "average", "identity", "--steps", "2", "--x0", "0.25")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "over 3 states") || !strings.Contains(out, "x0: 0.250000") {
		t.Errorf("flags should win over env:\n%s", out)
	}
}

func TestConfigFileAndPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	yaml := "model: identity\nsteps: 4\ninit_state: [0.4]\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "average", "--config", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "over 5 states") || !strings.Contains(out, "x0: 0.400000") {
		t.Errorf("config file not applied:\n%s", out)
	}

	if _, err := execute(t, "run", "logistic", "--preset", "missing"); err == nil {
		t.Error("expected unknown preset error")
	}
	if _, err := execute(t, "run", "logistic", "--preset", "chaotic", "--steps", "5", "--seed", "3"); err != nil {
		t.Errorf("preset run failed: %v", err)
	}
}

func TestInvalidInput(t *testing.T) {
	tests := [][]string{
		{"run", "nosuchmodel"},
		{"run", "--mode", "sideways"},
		{"run", "--x0", "1.5"},
		{"run", "--steps", "0"},
		{"run", "--param", "min=abc"},
		{"series", "--observable", "omega_shift"},
	}
	for _, args := range tests {
		if _, err := execute(t, args...); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestSeriesCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.csv")
	if _, err := execute(t, "series", "rotation", "--steps", "3", "--seed", "9", "--capture", "--observable", "omega_shift", "-o", path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "step,x0\n") {
		t.Errorf("unexpected series csv:\n%s", data)
	}
}

func TestPlotReturnMapSVG(t *testing.T) {
	svg := filepath.Join(t.TempDir(), "map.svg")
	out, err := execute(t, "plot", "doubling", "--steps", "50", "--seed", "4", "--return-map", "--svg", svg)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "return map x0 (lag 1)") {
		t.Errorf("missing title:\n%s", out)
	}
	data, err := os.ReadFile(svg)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Errorf("not an svg:\n%s", data)
	}
}

func TestSampleCommand(t *testing.T) {
	out, err := execute(t, "sample", "--dist", "uniform", "--count", "5", "--seed", "3", "--normalize")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if !strings.HasPrefix(lines[0], "# uniform, seed 3") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if len(lines) != 7 {
		t.Errorf("want header, 5 values and a sparkline, got:\n%s", out)
	}

	if _, err := execute(t, "sample", "--count", "0"); err == nil {
		t.Error("expected error for zero draws")
	}
}

func TestSampleFromCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traj.csv")
	if err := os.WriteFile(path, []byte("step,x0\n0,0.1\n1,0.2\n2,0.3\n3,0.4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "sample", "--from-csv", path, "--count", "3", "--seed", "2")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "# empirical") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestAnalysisCommands(t *testing.T) {
	out, err := execute(t, "lyapunov", "rotation", "--steps", "50", "--seed", "2")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "(derivative)") || !strings.Contains(out, "(separation)") {
		t.Errorf("unexpected lyapunov output:\n%s", out)
	}

	out, err = execute(t, "spectrum", "rotation", "--steps", "64", "--seed", "2")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "dominant frequency") {
		t.Errorf("unexpected spectrum output:\n%s", out)
	}

	out, err = execute(t, "bifurcation", "logistic", "--params", "10", "--transient", "20", "--record", "20")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "logistic") {
		t.Errorf("unexpected bifurcation output:\n%s", out)
	}
}

func TestListings(t *testing.T) {
	out, err := execute(t, "presets", "logistic")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "presets for logistic:") || !strings.Contains(out, "chaotic") {
		t.Errorf("unexpected presets output:\n%s", out)
	}

	out, err = execute(t, "models")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"circle", "sample dim 2", "normal", "omega_shift"} {
		if !strings.Contains(out, want) {
			t.Errorf("models output missing %q", want)
		}
	}
}

func TestParseGrid(t *testing.T) {
	name, values, err := parseGrid("max=0.2:0.6:3")
	if err != nil {
		t.Fatal(err)
	}
	if name != "max" || len(values) != 3 || values[0] != 0.2 || values[2] != 0.6 {
		t.Errorf("got %s %v", name, values)
	}

	_, values, err = parseGrid("mu=0.5:9:1")
	if err != nil || len(values) != 1 || values[0] != 0.5 {
		t.Errorf("single value: got %v, %v", values, err)
	}

	for _, bad := range []string{"max", "=1:2:3", "max=1:2", "max=a:2:3", "max=1:b:3", "max=1:2:c", "max=1:2:0"} {
		if _, _, err := parseGrid(bad); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}

func TestBatchCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	content := "name: pair\nsteps:\n  - name: a\n    model: identity\n    steps: 2\n  - name: b\n    model: doubling\n    steps: 3\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "scenario", path, "--seed", "4")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "scenario pair: 2/2 steps") || !strings.Contains(out, "doubling") {
		t.Errorf("unexpected scenario output:\n%s", out)
	}

	out, err = execute(t, "sweep", "rotation", "--from", "0.2", "--to", "0.4", "--count", "3", "--steps", "5", "--seed", "2")
	if err != nil {
		t.Fatal(err)
	}
	if lines := strings.Split(strings.TrimSpace(out), "\n"); len(lines) != 4 {
		t.Errorf("want header and 3 rows:\n%s", out)
	}

	out, err = execute(t, "search", "rotation", "--grid", "max=0.2:0.8:4", "--metric", "displacement", "--steps", "5")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "after 4 runs") || !strings.Contains(out, "max = ") {
		t.Errorf("unexpected search output:\n%s", out)
	}

	if _, err := execute(t, "search", "rotation"); err == nil {
		t.Error("expected error without --grid")
	}
}
