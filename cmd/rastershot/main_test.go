package main

import (
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"softcube/internal/config"
)

func TestRender(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height = 96, 54
	path := filepath.Join(t.TempDir(), "cube.png")

	err := render(cfg, shot{out: path, pos: "0,0,5"}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 96, img.Bounds().Dx())
	assert.Equal(t, 54, img.Bounds().Dy())

	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, [3]uint32{0x1A, 0x1A, 0x2E}, [3]uint32{r >> 8, g >> 8, b >> 8})
	r, g, b, _ = img.At(48, 27).RGBA()
	assert.NotEqual(t, [3]uint32{0x1A, 0x1A, 0x2E}, [3]uint32{r >> 8, g >> 8, b >> 8}, "cube at the center")
}

func TestRenderBadInput(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	dir := t.TempDir()

	err := render(config.Default(), shot{out: filepath.Join(dir, "x.png"), pos: "0,0"}, log)
	assert.ErrorIs(t, err, config.ErrInvalid)

	cfg := config.Default()
	cfg.Width, cfg.Height = 8, 8
	err = render(cfg, shot{out: filepath.Join(dir, "x.jpg"), pos: "0,0,5"}, log)
	assert.Error(t, err)
}
