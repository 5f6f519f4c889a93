package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Environment and fixtures
// ---------------------------------------------------------------------------

const enMessages = `{
  "aboutPage": {
    "biography": [
      {"text": "My story."},
      {"text": "Childhood"},
      {"text": "I was born in Kyiv.", "bold": true},
      {"text": "Path of Neptune"},
      {"text": "More on wnbfukraine.com.ua."}
    ]
  }
}`

const uaMessages = `aboutPage:
  biography:
    - text: Дитинство
    - text: Я народився в Києві.
`

// newTestEnv returns an Environment writing to buffers, with a fixed clock
// and only the given environment variables.
func newTestEnv(environ map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	if environ == nil {
		environ = map[string]string{}
	}
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &Environment{
		Now:     func() time.Time { return fixed },
		Stdout:  &stdout,
		Stderr:  &stderr,
		Environ: environ,
	}, &stdout, &stderr
}

// writeFile writes content under dir and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

// setupSite creates messages files and an image directory.
func setupSite(t *testing.T) (dir, en, ua, images string) {
	t.Helper()
	dir = t.TempDir()
	en = writeFile(t, dir, "messages/en.json", enMessages)
	ua = writeFile(t, dir, "messages/ua.yaml", uaMessages)
	images = filepath.Join(dir, "images")
	for _, name := range []string{"childhood-1.jpg", "childhood-2.jpg", "path-of-neptune-1.png", "logo.svg"} {
		writeFile(t, images, name, "")
	}
	return dir, en, ua, images
}
