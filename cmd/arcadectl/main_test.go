package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/matheus3301/arcade/internal/paths"
	"github.com/matheus3301/arcade/internal/store"
)

func seededHome(t *testing.T) paths.Layout {
	t.Helper()
	l := paths.Layout{Home: t.TempDir()}
	db, err := store.Open(l.DBPath())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}
	base := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	for i, label := range []string{"tetris", "snake_eats_apples", "tetris"} {
		if _, err := db.RecordActivation(label, 0, base.Add(time.Duration(i)*time.Minute)); err != nil {
			t.Fatal(err)
		}
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}
	return l
}

func TestHistoryTable(t *testing.T) {
	l := seededHome(t)
	var out bytes.Buffer
	if err := cmdHistory(&out, l, options{limit: 2}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2:\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[1], "tetris") {
		t.Errorf("newest entry = %q, want tetris", lines[1])
	}
}

func TestHistoryJSON(t *testing.T) {
	l := seededHome(t)
	var out bytes.Buffer
	if err := cmdHistory(&out, l, options{json: true, limit: 10}); err != nil {
		t.Fatal(err)
	}
	var acts []store.Activation
	if err := json.Unmarshal(out.Bytes(), &acts); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(acts) != 3 {
		t.Errorf("got %d activations, want 3", len(acts))
	}
}

func TestHistoryMissingDB(t *testing.T) {
	var out bytes.Buffer
	err := cmdHistory(&out, paths.Layout{Home: t.TempDir()}, options{})
	if err == nil || !strings.Contains(err.Error(), "no history") {
		t.Errorf("cmdHistory() error = %v, want no history", err)
	}
}

func TestStats(t *testing.T) {
	l := seededHome(t)
	var out bytes.Buffer
	if err := cmdStats(&out, l, options{}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[1], "tetris") {
		t.Errorf("stats output:\n%s", out.String())
	}
}

func TestConfigInitAndShow(t *testing.T) {
	l := paths.Layout{Home: t.TempDir()}
	var out bytes.Buffer

	if err := cmdConfig(&out, l, "init", options{}); err != nil {
		t.Fatal(err)
	}
	if err := cmdConfig(&out, l, "init", options{}); err == nil {
		t.Error("second init should refuse to overwrite")
	}

	out.Reset()
	if err := cmdConfig(&out, l, "show", options{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), `navigation    = "up-next"`) {
		t.Errorf("show output:\n%s", out.String())
	}

	if err := cmdConfig(&out, l, "edit", options{}); err == nil {
		t.Error("unknown subcommand accepted")
	}
}

func TestRunFlagPlacement(t *testing.T) {
	l := seededHome(t)
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"flags after command", []string{"--home", l.Home, "history", "--json", "--limit", "2"}, 2},
		{"flags before command", []string{"--home", l.Home, "--json", "--limit", "1", "history"}, 1},
		{"default limit", []string{"--home", l.Home, "history", "--json"}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			if err := run(tt.args, &out, &errOut); err != nil {
				t.Fatalf("run() error = %v, stderr = %s", err, errOut.String())
			}
			var acts []store.Activation
			if err := json.Unmarshal(out.Bytes(), &acts); err != nil {
				t.Fatalf("output is not JSON: %v\n%s", err, out.String())
			}
			if len(acts) != tt.want {
				t.Errorf("got %d activations, want %d", len(acts), tt.want)
			}
		})
	}
}

func TestRunStatsJSONAfterCommand(t *testing.T) {
	l := seededHome(t)
	var out, errOut bytes.Buffer
	if err := run([]string{"--home", l.Home, "stats", "--json"}, &out, &errOut); err != nil {
		t.Fatal(err)
	}
	var stats []store.LabelStats
	if err := json.Unmarshal(out.Bytes(), &stats); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if len(stats) != 2 || stats[0].Label != "tetris" || stats[0].Count != 2 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestRunConfigShowJSON(t *testing.T) {
	var out, errOut bytes.Buffer
	if err := run([]string{"--home", t.TempDir(), "config", "show", "--json"}, &out, &errOut); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), `"Navigation": "up-next"`) {
		t.Errorf("config show --json:\n%s", out.String())
	}
}

func TestRunRejectsBadArgs(t *testing.T) {
	home := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"no command", nil},
		{"unknown command", []string{"--home", home, "launch"}},
		{"stray argument", []string{"--home", home, "stats", "extra"}},
		{"limit on stats", []string{"--home", home, "stats", "--limit", "5"}},
		{"unknown flag", []string{"--home", home, "history", "--verbose"}},
		{"config without subcommand", []string{"--home", home, "config"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			if err := run(tt.args, &out, &errOut); err == nil {
				t.Errorf("run(%q) succeeded, want error", tt.args)
			}
		})
	}
}
