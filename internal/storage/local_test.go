package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ClaraVasseur/InstaLite-Back/internal/config"
)

func TestLocalStorageStoreAndDelete(t *testing.T) {
	dir := t.TempDir()
	local, err := NewLocalStorage(dir)
	assert.NoError(t, err)

	mediaRef, err := local.Store(strings.NewReader("fake image bytes"), "post_abc.jpg", "image/jpeg")
	assert.NoError(t, err)
	assert.Equal(t, "/uploads/post_abc.jpg", mediaRef)

	content, err := os.ReadFile(filepath.Join(dir, "post_abc.jpg"))
	assert.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(content))

	assert.NoError(t, local.Delete(mediaRef))
	_, err = os.Stat(filepath.Join(dir, "post_abc.jpg"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorageDeleteIgnoresTraversal(t *testing.T) {
	dir := t.TempDir()
	local, err := NewLocalStorage(dir)
	assert.NoError(t, err)

	// Une référence hors du répertoire d'upload est ignorée
	assert.NoError(t, local.Delete("/uploads/../etc/passwd"))
	assert.NoError(t, local.Delete(""))
}

func TestInitPicksLocalBackend(t *testing.T) {
	dir := t.TempDir()

	err := Init(&config.Config{UploadDir: dir})
	assert.NoError(t, err)

	mediaRef, err := Store(strings.NewReader("x"), "post_x.png", "image/png")
	assert.NoError(t, err)
	assert.Equal(t, "/uploads/post_x.png", mediaRef)
}
