package importer

import (
	"context"
	"errors"
	"image"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAsync_Wait(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), 16, 8)

	p := LoadAsync(context.Background(), path)
	img, info, err := p.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 8, info.Height)
	assert.True(t, p.IsLoaded())
}

func TestLoadAsync_Error(t *testing.T) {
	p := LoadAsync(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	_, _, err := p.Wait(context.Background())
	assert.Error(t, err)
	assert.True(t, p.IsLoaded())
}

func TestOnLoad_AlreadyLoadedRunsImmediately(t *testing.T) {
	p := Loaded(image.NewRGBA(image.Rect(0, 0, 2, 2)), ImageInfo{Width: 2, Height: 2})

	called := 0
	p.OnLoad(func(img image.Image, info ImageInfo, err error) {
		called++
		assert.NoError(t, err)
		assert.Equal(t, 2, info.Width)
	})
	assert.Equal(t, 1, called, "continuation must run before OnLoad returns")
}

func TestOnLoad_StillLoadingRunsOnceOnCompletion(t *testing.T) {
	p := newPending()
	assert.False(t, p.IsLoaded())

	called := 0
	p.OnLoad(func(image.Image, ImageInfo, error) { called++ })
	assert.Equal(t, 0, called)

	p.complete(image.NewRGBA(image.Rect(0, 0, 1, 1)), ImageInfo{}, nil)
	assert.Equal(t, 1, called)

	// Later registrations still fire exactly once each.
	p.OnLoad(func(image.Image, ImageInfo, error) { called++ })
	assert.Equal(t, 2, called)
}

func TestWait_ContextCancelled(t *testing.T) {
	p := newPending()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, _, err := p.Wait(ctx)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.False(t, p.IsLoaded())
}

func TestBoth_WaitsForBoth(t *testing.T) {
	a, b := newPending(), newPending()

	called := 0
	Both(a, b, func(imgA, imgB image.Image, infoA, infoB ImageInfo, err error) {
		called++
		assert.NoError(t, err)
		assert.Equal(t, "ref", infoA.Path)
		assert.Equal(t, "src", infoB.Path)
	})

	b.complete(image.NewRGBA(image.Rect(0, 0, 1, 1)), ImageInfo{Path: "src"}, nil)
	assert.Equal(t, 0, called, "reference image still loading")

	a.complete(image.NewRGBA(image.Rect(0, 0, 1, 1)), ImageInfo{Path: "ref"}, nil)
	assert.Equal(t, 1, called)
}

func TestBoth_PropagatesFirstError(t *testing.T) {
	boom := errors.New("boom")
	a := newPending()
	a.complete(nil, ImageInfo{}, boom)
	b := Loaded(image.NewRGBA(image.Rect(0, 0, 1, 1)), ImageInfo{})

	var got error
	Both(a, b, func(_, _ image.Image, _, _ ImageInfo, err error) { got = err })
	assert.Equal(t, boom, got)
}
