package game

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/webp"

	"github.com/iburimskiy/senk-showcase/internal/logger"
)

// imageCache decodes slide images on first use. Failures are remembered so
// a missing file is reported once and then drawn as a placeholder.
type imageCache struct {
	items  map[string]*ebiten.Image
	failed map[string]bool
	load   func(path string) (image.Image, error)
}

func newImageCache() *imageCache {
	return &imageCache{
		items:  map[string]*ebiten.Image{},
		failed: map[string]bool{},
		load:   decodeFile,
	}
}

func decodeFile(path string) (image.Image, error) {
	if strings.Contains(path, "://") {
		return nil, fmt.Errorf("remote image %s is not fetched", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func (c *imageCache) get(path string) *ebiten.Image {
	if img, ok := c.items[path]; ok {
		return img
	}
	if c.failed[path] {
		return nil
	}
	src, err := c.load(path)
	if err != nil {
		logger.Warn("image: %v", err)
		c.failed[path] = true
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	c.items[path] = img
	return img
}

// reset drops everything, e.g. after a new manifest is loaded.
func (c *imageCache) reset() {
	for _, img := range c.items {
		img.Deallocate()
	}
	c.items = map[string]*ebiten.Image{}
	c.failed = map[string]bool{}
}
