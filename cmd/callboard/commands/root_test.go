package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/callboard/callboard/internal/config"
)

func TestInitCmd_WritesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "callboard.yaml")

	root := NewRoot()
	root.SetArgs([]string{"init", "--config", path})
	root.SetOut(new(bytes.Buffer))
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 8090 {
		t.Errorf("port = %d, want 8090", cfg.Server.Port)
	}
	if cfg.Queue.PollIntervalSeconds != 10 {
		t.Errorf("poll interval = %d, want 10", cfg.Queue.PollIntervalSeconds)
	}
}

func TestInitCmd_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "callboard.yaml")

	if err := os.WriteFile(path, []byte("version: \"1\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	root := NewRoot()
	root.SetArgs([]string{"init", "--config", path})
	err := root.Execute()
	if err == nil {
		t.Fatal("init over an existing file should fail without --force")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("error = %q, want mention of existing file", err)
	}
}

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	root := NewRoot()
	root.SetArgs([]string{"version"})
	root.SetOut(&out)

	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
}
