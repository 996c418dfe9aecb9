package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitWritesToFile(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	path := filepath.Join(t.TempDir(), "game.log")
	closer, err := Init(Config{Level: "debug", Format: "json", File: path})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if Log.GetLevel() != logrus.DebugLevel {
		t.Errorf("Log level = %v, want debug", Log.GetLevel())
	}

	WithComponent("test").WithField("rooms", 3).Info("generated")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	for _, want := range []string{`"component":"test"`, `"rooms":3`, `"msg":"generated"`} {
		if !strings.Contains(string(content), want) {
			t.Errorf("log output %q missing %s", content, want)
		}
	}
}

func TestInitInvalidLevelFallsBackToInfo(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	closer, err := Init(Config{Level: "loud", File: ""})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer closer.Close()

	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("Log level = %v, want info", Log.GetLevel())
	}
}

func TestInitBadFile(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	_, err := Init(Config{File: filepath.Join(t.TempDir(), "missing", "game.log")})
	if err == nil {
		t.Fatal("Init() with unwritable path should fail")
	}
	if Log != prev {
		t.Error("Log should not be replaced when Init fails")
	}
}
