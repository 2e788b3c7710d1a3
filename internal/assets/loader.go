package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"sync"

	_ "golang.org/x/image/webp"
)

type Request struct {
	Key  string
	Path string
}

type Result struct {
	Key   string
	Image image.Image
	Err   error
}

// Loader decodes images off the main thread. Results carry the request key
// so callers can match them up; decode errors come back in the Result, not
// through a separate channel.
type Loader struct {
	Req  chan Request
	Res  chan Result
	quit chan struct{}

	closeOnce sync.Once
}

func NewLoader() *Loader {
	l := &Loader{
		Req:  make(chan Request, 16),
		Res:  make(chan Result, 16),
		quit: make(chan struct{}),
	}

	go l.loop()

	return l
}

func (l *Loader) Close() {
	l.closeOnce.Do(func() { close(l.quit) })
}

func (l *Loader) loop() {
	for {
		select {
		case <-l.quit:
			return
		case req := <-l.Req:
			img, err := loadImage(req.Path)

			// Never block shutdown on a full result queue.
			select {
			case <-l.quit:
				return
			case l.Res <- Result{Key: req.Key, Image: img, Err: err}:
			}
		}
	}
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", path, err)
	}
	return img, nil
}
