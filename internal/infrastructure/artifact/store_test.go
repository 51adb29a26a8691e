package artifact

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"
	"time"

	"webui-e2e/internal/domain/entity"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jpegShot(t *testing.T) *entity.Screenshot {
	t.Helper()
	img := imaging.New(40, 20, color.NRGBA{R: 200, A: 255})
	buf := &bytes.Buffer{}
	require.NoError(t, jpeg.Encode(buf, img, nil))
	return &entity.Screenshot{Data: buf.Bytes(), Format: "jpeg", Width: 40, Height: 20}
}

func TestFileStore_SaveScreenshot(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "shots"))
	store.now = func() time.Time { return time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC) }

	path, err := store.SaveScreenshot("login failed", jpegShot(t))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "shots", "login_failed_20240309_140507.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 40, cfg.Width)
}

func TestFileStore_SameSecondDoesNotOverwrite(t *testing.T) {
	store := NewFileStore(t.TempDir())
	store.now = func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }

	first, err := store.SaveScreenshot("x", jpegShot(t))
	require.NoError(t, err)
	second, err := store.SaveScreenshot("x", jpegShot(t))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestFileStore_Rejects(t *testing.T) {
	store := NewFileStore(t.TempDir())

	_, err := store.SaveScreenshot("empty", nil)
	assert.ErrorIs(t, err, ErrEmptyScreenshot)

	_, err = store.SaveScreenshot("garbage", &entity.Screenshot{Data: []byte("not an image")})
	assert.Error(t, err)
}
