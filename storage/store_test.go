package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	Name    string `json:"name"`
	Counter int    `json:"counter"`
}

func newTestStore(t *testing.T) (*Store[testDoc], string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.json")
	defaults := func() testDoc { return testDoc{Name: "default"} }
	return NewStore(path, defaults, zerolog.Nop()), path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	store, _ := newTestStore(t)

	doc := store.Load()
	assert.Equal(t, "default", doc.Name)
	assert.Equal(t, 0, doc.Counter)
}

func TestLoadCorruptFileReturnsDefaults(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, os.WriteFile(path, []byte("{esto no es json"), 0644))

	doc := store.Load()
	assert.Equal(t, "default", doc.Name)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Save(testDoc{Name: "guardado", Counter: 7}))

	doc := store.Load()
	assert.Equal(t, "guardado", doc.Name)
	assert.Equal(t, 7, doc.Counter)
}

func TestInitCreatesFileOnlyOnce(t *testing.T) {
	store, path := newTestStore(t)

	require.NoError(t, store.Init())
	_, err := os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, store.Save(testDoc{Name: "modificado"}))
	require.NoError(t, store.Init())

	doc := store.Load()
	assert.Equal(t, "modificado", doc.Name, "Init no debe pisar un archivo existente")
}

func TestUpdateReturnsResultingDocument(t *testing.T) {
	store, _ := newTestStore(t)

	doc, err := store.Update(func(d *testDoc) error {
		d.Counter = 3
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, doc.Counter)
	assert.Equal(t, 3, store.Load().Counter)
}

func TestUpdateAbortsWithoutWriting(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, store.Save(testDoc{Name: "original"}))

	errBoom := assert.AnError
	_, err := store.Update(func(d *testDoc) error {
		d.Name = "mutado"
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "original")
	assert.NotContains(t, string(data), "mutado")
}

func TestConcurrentUpdatesDoNotLoseWrites(t *testing.T) {
	store, _ := newTestStore(t)

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, _ = store.Update(func(d *testDoc) error {
				d.Counter++
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, n, store.Load().Counter)
}
