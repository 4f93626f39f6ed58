package content

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ip812/portfolio/logger"
)

func copyEmbedded(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{SiteFile, ProjectsFile, DetailsFile} {
		data, err := fs.ReadFile(Embedded(), name)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
	}
	return dir
}

func TestWatcherReloadKeepsPreviousContentOnError(t *testing.T) {
	dir := copyEmbedded(t)
	initial, err := Load(os.DirFS(dir))
	require.NoError(t, err)
	store := NewStore(initial)

	w, err := NewWatcher(dir, store, logger.NewNop())
	require.NoError(t, err)
	defer w.watcher.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, ProjectsFile), []byte("projects: [oops"), 0o644))
	require.Error(t, w.Reload())
	assert.Same(t, initial, store.Get())

	require.NoError(t, os.WriteFile(filepath.Join(dir, ProjectsFile), []byte(
		"projects:\n  - {id: only, title: Only, description: d, company: Acme, type: Company, category: Mobile}\n",
	), 0o644))
	require.NoError(t, os.Remove(filepath.Join(dir, DetailsFile)))
	require.NoError(t, w.Reload())
	assert.Equal(t, 1, store.Get().Catalog.Len())
}

func TestWatcherRunReloadsOnWrite(t *testing.T) {
	dir := copyEmbedded(t)
	initial, err := Load(os.DirFS(dir))
	require.NoError(t, err)
	store := NewStore(initial)

	w, err := NewWatcher(dir, store, logger.NewNop())
	require.NoError(t, err)
	w.debounce = 50 * time.Millisecond
	w.reloaded = make(chan error, 1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()
	defer func() {
		cancel()
		<-done
	}()

	require.NoError(t, os.Remove(filepath.Join(dir, DetailsFile)))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ProjectsFile), []byte(
		"projects:\n  - {id: only, title: Only, description: d, company: Acme, type: Company, category: Mobile}\n",
	), 0o644))

	deadline := time.After(5 * time.Second)
	for store.Get().Catalog.Len() != 1 {
		select {
		case <-w.reloaded:
		case <-deadline:
			t.Fatal("content was not reloaded")
		}
	}
}

func TestIsContentFile(t *testing.T) {
	assert.True(t, isContentFile("/tmp/site.yaml"))
	assert.True(t, isContentFile("projects.YML"))
	assert.False(t, isContentFile("projects.yaml.swp"))
	assert.False(t, isContentFile("README.md"))
}
