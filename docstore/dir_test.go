package docstore

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/mnoda"
)

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	loader := mnoda.DefaultRecordLoader()

	for i := 0; i < 5; i++ {
		doc := mnoda.NewDocument()
		doc.AddRecord(mnoda.NewBaseRecord(
			mnoda.NewID("R"+strconv.Itoa(i), mnoda.IDTypeGlobal), "task"))

		name := "doc" + strconv.Itoa(i) + ".json"
		if i%2 == 1 {
			name += ".zst"
		}
		require.NoError(t, Save(doc, filepath.Join(dir, name)))
	}
	// Non-document files are skipped.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("notes"), 0644))

	docs, err := LoadDir(context.Background(), dir, loader, WithConcurrency(2))
	require.NoError(t, err)
	require.Len(t, docs, 5)

	// Lexical filename order, regardless of decode concurrency.
	for i, doc := range docs {
		require.Len(t, doc.Records(), 1)
		assert.Equal(t, "R"+strconv.Itoa(i), doc.Records()[0].ID().Value())
	}
}

func TestLoadDirFailureAborts(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Save(mnoda.NewDocument(), filepath.Join(dir, "a.json")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"), []byte(`{"records":[{}]}`), 0644))

	_, err := LoadDir(context.Background(), dir, mnoda.NewRecordLoader())

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, filepath.Join(dir, "b.json"), decodeErr.Path)
}

func TestLoadDirMissing(t *testing.T) {
	_, err := LoadDir(context.Background(), filepath.Join(t.TempDir(), "nope"), mnoda.NewRecordLoader())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadDirEmpty(t *testing.T) {
	docs, err := LoadDir(context.Background(), t.TempDir(), mnoda.NewRecordLoader())
	require.NoError(t, err)
	assert.Empty(t, docs)
}
