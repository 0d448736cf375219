package logging

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestInitialize_DisabledIsNoop(t *testing.T) {
	t.Cleanup(CloseAll)

	dir := t.TempDir()
	if err := Initialize(dir, Options{DebugMode: false}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	API("should not be written")

	if _, err := os.Stat(filepath.Join(dir, "logs")); !os.IsNotExist(err) {
		t.Error("logs directory should not exist in production mode")
	}
}

func TestInitialize_EmptyDir(t *testing.T) {
	if err := Initialize("", Options{}); err == nil {
		t.Error("expected error for empty data dir")
	}
}

func TestLogging_WritesCategoryFile(t *testing.T) {
	t.Cleanup(CloseAll)

	dir := t.TempDir()
	if err := Initialize(dir, Options{DebugMode: true, Level: "debug"}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	Cart("added item %s", "prod-1")
	CloseAll()

	entries, err := os.ReadDir(filepath.Join(dir, "logs"))
	if err != nil {
		t.Fatalf("reading logs dir: %v", err)
	}

	var cartLog string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), "_cart.log") {
			cartLog = filepath.Join(dir, "logs", e.Name())
		}
	}
	if cartLog == "" {
		t.Fatal("no cart log file created")
	}

	data, err := os.ReadFile(cartLog)
	if err != nil {
		t.Fatalf("reading cart log: %v", err)
	}
	if !strings.Contains(string(data), "added item prod-1") {
		t.Errorf("cart log missing message, got: %s", data)
	}
}

func TestCategoryFilter(t *testing.T) {
	t.Cleanup(CloseAll)

	dir := t.TempDir()
	err := Initialize(dir, Options{
		DebugMode:  true,
		Level:      "info",
		Categories: map[string]bool{"api": false},
	})
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	if IsCategoryEnabled(CategoryAPI) {
		t.Error("api category should be disabled")
	}
	if !IsCategoryEnabled(CategoryOrder) {
		t.Error("order category should default to enabled")
	}
}

func TestLevelGating(t *testing.T) {
	t.Cleanup(CloseAll)

	dir := t.TempDir()
	if err := Initialize(dir, Options{DebugMode: true, Level: "warn"}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	l := Get(CategoryStore)
	l.Info("info should be suppressed")
	l.Warn("warn should be written")
	CloseAll()

	entries, _ := os.ReadDir(filepath.Join(dir, "logs"))
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), "_store.log") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, "logs", e.Name()))
		if err != nil {
			t.Fatalf("reading store log: %v", err)
		}
		if strings.Contains(string(data), "info should be suppressed") {
			t.Error("info line written despite warn level")
		}
		if !strings.Contains(string(data), "warn should be written") {
			t.Error("warn line missing")
		}
		return
	}
	t.Fatal("no store log file created")
}

// Exercised under the race detector: writers must not observe options
// while a re-Initialize is mutating them.
func TestConcurrentLogAndReinitialize(t *testing.T) {
	t.Cleanup(CloseAll)

	dir := t.TempDir()
	if err := Initialize(dir, Options{DebugMode: true, Level: "debug"}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			l := Get(CategoryAPI)
			for j := 0; j < 50; j++ {
				l.Info("request %d.%d", n, j)
				l.Debug("detail %d.%d", n, j)
			}
		}(i)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 10; j++ {
			opts := Options{DebugMode: true, Level: "info", JSONFormat: j%2 == 0}
			if err := Initialize(dir, opts); err != nil {
				t.Errorf("re-Initialize failed: %v", err)
				return
			}
		}
	}()
	wg.Wait()

	level, _ := logSettings()
	if level != LevelInfo {
		t.Errorf("expected final level %d, got %d", LevelInfo, level)
	}

	entries, err := os.ReadDir(filepath.Join(dir, "logs"))
	if err != nil {
		t.Fatalf("reading logs dir: %v", err)
	}
	if len(entries) == 0 {
		t.Errorf("no log files created in %s", dir)
	}
}
