package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "boundsmith.dev/pkg/boundsmith/internal/model"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestWalkRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.go"), "package a")
	writeFile(t, filepath.Join(dir, "sub", "b.go"), "package b")

	a := NewLocalSourceFSAdapter()

	var seen []string

	err := a.Walk(m.Path(dir), true, func(path string, info os.FileInfo, err error) error {
		require.NoError(t, err)

		if !info.IsDir() {
			seen = append(seen, filepath.Base(path))
		}

		return nil
	})

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.go", "b.go"}, seen)
}

func TestWalkNonRecursiveSkipsSubdirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.go"), "package a")
	writeFile(t, filepath.Join(dir, "sub", "b.go"), "package b")

	a := NewLocalSourceFSAdapter()

	var seen []string

	err := a.Walk(m.Path(dir), false, func(path string, info os.FileInfo, err error) error {
		require.NoError(t, err)

		if !info.IsDir() {
			seen = append(seen, filepath.Base(path))
		}

		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"a.go"}, seen)
}

func TestDetectTestFile(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "svc.go")
	writeFile(t, source, "package svc")
	writeFile(t, filepath.Join(dir, "svc_test.go"), "package svc")

	a := NewLocalSourceFSAdapter()

	test, err := a.DetectTestFile(m.Path(source))
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join(dir, "svc_test.go")), test)
}

func TestDetectTestFileMissingCompanion(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "lonely.go")
	writeFile(t, source, "package lonely")

	a := NewLocalSourceFSAdapter()

	test, err := a.DetectTestFile(m.Path(source))
	require.NoError(t, err)
	assert.Empty(t, test)
}

func TestDetectTestFileIgnoresNonGoAndTests(t *testing.T) {
	a := NewLocalSourceFSAdapter()

	test, err := a.DetectTestFile("notes.txt")
	require.NoError(t, err)
	assert.Empty(t, test)

	test, err = a.DetectTestFile("svc_test.go")
	require.NoError(t, err)
	assert.Empty(t, test)
}

func TestReadWriteRoundTrip(t *testing.T) {
	a := NewLocalSourceFSAdapter()
	path := m.Path(filepath.Join(t.TempDir(), "out.txt"))

	require.NoError(t, a.WriteFile(path, []byte("payload"), 0o600))

	content, err := a.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(content))
}
