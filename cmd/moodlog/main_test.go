package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("NO_COLOR", "1")
	return dir
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestClassifyJSON(t *testing.T) {
	setupEnv(t)
	out, err := run(t, "", "classify", "--json", "I'm so excited and thrilled about my promotion!")
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	var got classifyJSON
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if got.Mood != "excited" || got.Confidence <= 0.5 || len(got.Signals) == 0 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestClassifyReadsStdin(t *testing.T) {
	setupEnv(t)
	out, err := run(t, "Feeling calm and relaxed by the lake.\n", "classify")
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if !strings.Contains(out, "Mood: calm") || !strings.Contains(out, "Explanation:") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestExplainUnknownMoodFails(t *testing.T) {
	setupEnv(t)
	if _, err := run(t, "", "explain", "--mood", "bored", "some journal text here"); err == nil {
		t.Fatalf("expected error for unknown mood")
	}
}

func TestAddListAndHourly(t *testing.T) {
	dir := setupEnv(t)
	if _, err := run(t, "", "add", "Feeling anxious about the presentation tomorrow."); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := run(t, "", "add", "ok"); err == nil {
		t.Fatalf("expected short entry to be rejected")
	}

	out, err := run(t, "", "list", "--mood", "anxious")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "anxious") || !strings.Contains(out, "Feeling anxious") {
		t.Fatalf("unexpected list output:\n%s", out)
	}

	out, err = run(t, "", "hourly", "--csv")
	if err != nil {
		t.Fatalf("hourly: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 25 || lines[0] != "Hour,Count,Dominant Mood" {
		t.Fatalf("unexpected csv:\n%s", out)
	}

	csvPath := filepath.Join(dir, "out", "hourly.csv")
	if _, err := run(t, "", "hourly", "--out", csvPath); err != nil {
		t.Fatalf("hourly --out: %v", err)
	}
	data, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if !strings.HasPrefix(string(data), "Hour,Count,Dominant Mood\n") {
		t.Fatalf("unexpected csv file: %s", data)
	}
}

func TestDemoThenPlainStats(t *testing.T) {
	setupEnv(t)
	out, err := run(t, "", "demo", "--entries", "12", "--days", "3", "--seed", "7")
	if err != nil {
		t.Fatalf("demo: %v", err)
	}
	if !strings.Contains(out, "Inserted 12 demo entries") {
		t.Fatalf("unexpected demo output: %s", out)
	}
	out, err = run(t, "", "stats", "--plain", "--top", "3")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	for _, want := range []string{"Entries: 12", "Mood Distribution", "Hourly Activity", "Recurring Themes"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestConfigOverridesAndFlags(t *testing.T) {
	dir := setupEnv(t)
	cfgDir := filepath.Join(dir, "config", "moodlog")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte("[classifier]\nmin-length = 40\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	out, err := run(t, "", "classify", "--json", "So happy with the day.")
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if !strings.Contains(out, `"insufficient": true`) {
		t.Fatalf("config min-length not applied:\n%s", out)
	}
	out, err = run(t, "", "classify", "--json", "--min-length", "5", "So happy with the day.")
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if !strings.Contains(out, `"mood": "happy"`) {
		t.Fatalf("flag should override config:\n%s", out)
	}
}

func TestLexiconCommand(t *testing.T) {
	dir := setupEnv(t)
	out, err := run(t, "", "lexicon", "--mood", "calm")
	if err != nil {
		t.Fatalf("lexicon: %v", err)
	}
	if !strings.Contains(out, "peaceful") || strings.Contains(out, "thrilled") {
		t.Fatalf("unexpected lexicon output:\n%s", out)
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[moods.bored]\n\"meh\" = 1.0\n"), 0o644); err != nil {
		t.Fatalf("write lexicon: %v", err)
	}
	if _, err := run(t, "", "lexicon", "--check", bad); err == nil {
		t.Fatalf("expected unknown mood to be rejected")
	}
}
