package importer

import (
	"context"
	"image"
	"sync"
)

// Pending is an image load in progress. It completes exactly once, either
// with an image or with an error.
type Pending struct {
	done chan struct{}

	mu      sync.Mutex
	img     image.Image
	info    ImageInfo
	err     error
	waiters []func(image.Image, ImageInfo, error)
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

// Loaded returns a Pending that has already completed with img.
func Loaded(img image.Image, info ImageInfo) *Pending {
	p := newPending()
	p.complete(img, info, nil)
	return p
}

// LoadAsync starts decoding path on a new goroutine. The load is abandoned
// with ctx.Err() if ctx is cancelled first.
func LoadAsync(ctx context.Context, path string) *Pending {
	p := newPending()
	go func() {
		type loaded struct {
			img  image.Image
			info ImageInfo
			err  error
		}
		ch := make(chan loaded, 1)
		go func() {
			img, info, err := LoadImage(path)
			ch <- loaded{img, info, err}
		}()

		select {
		case l := <-ch:
			p.complete(l.img, l.info, l.err)
		case <-ctx.Done():
			p.complete(nil, ImageInfo{Path: path}, ctx.Err())
		}
	}()
	return p
}

func (p *Pending) complete(img image.Image, info ImageInfo, err error) {
	p.mu.Lock()
	p.img, p.info, p.err = img, info, err
	waiters := p.waiters
	p.waiters = nil
	close(p.done)
	p.mu.Unlock()

	for _, fn := range waiters {
		fn(img, info, err)
	}
}

// Done is closed when the load has finished.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// IsLoaded reports whether the load has finished, successfully or not.
func (p *Pending) IsLoaded() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the load finishes or ctx is cancelled.
func (p *Pending) Wait(ctx context.Context) (image.Image, ImageInfo, error) {
	select {
	case <-p.done:
		p.mu.Lock()
		defer p.mu.Unlock()
		return p.img, p.info, p.err
	case <-ctx.Done():
		return nil, ImageInfo{}, ctx.Err()
	}
}

// OnLoad registers a one-time continuation. If the load has already
// finished, fn runs immediately on the calling goroutine; otherwise it runs
// once on the loading goroutine when the load completes.
func (p *Pending) OnLoad(fn func(image.Image, ImageInfo, error)) {
	p.mu.Lock()
	select {
	case <-p.done:
		img, info, err := p.img, p.info, p.err
		p.mu.Unlock()
		fn(img, info, err)
	default:
		p.waiters = append(p.waiters, fn)
		p.mu.Unlock()
	}
}

// Both runs fn once after a and b have both finished. The first error wins.
func Both(a, b *Pending, fn func(imgA, imgB image.Image, infoA, infoB ImageInfo, err error)) {
	a.OnLoad(func(imgA image.Image, infoA ImageInfo, errA error) {
		b.OnLoad(func(imgB image.Image, infoB ImageInfo, errB error) {
			err := errA
			if err == nil {
				err = errB
			}
			fn(imgA, imgB, infoA, infoB, err)
		})
	})
}
