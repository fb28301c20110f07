package testsupport

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// PageChunk is the shared loadPageChunk fixture used across package tests.
const PageChunk = "page_chunk.json"

// FixturePath resolves name inside the decoder testdata directory regardless
// of the calling package's working directory.
func FixturePath(name string) string {
	_, file, _, _ := runtime.Caller(0)
	root := filepath.Join(filepath.Dir(file), "..", "..")
	return filepath.Join(root, "internal", "decoder", "testdata", name)
}

// LoadFixture reads a testdata fixture or fails the test.
func LoadFixture(tb testing.TB, name string) []byte {
	tb.Helper()
	data, err := os.ReadFile(FixturePath(name))
	if err != nil {
		tb.Fatalf("read fixture %s: %v", name, err)
	}
	return data
}
