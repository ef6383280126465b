package material

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"sync"

	// decoders for texture assets
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Texture asset file names looked up in the library directory
const (
	HullNormalTexture     = "hull_normal.png"
	LightsDiffuseTexture  = "hull_lights_diffuse.png"
	LightsEmissionTexture = "hull_lights_emit.png"
)

// ErrAssetLoad is returned when a texture asset cannot be read or decoded
var ErrAssetLoad = errors.New("cannot load texture asset")

// Texture is a decoded image asset
type Texture struct {
	Path     string
	UseAlpha bool
	Image    image.Image
}

type cacheKey struct {
	path     string
	useAlpha bool
}

// Library loads texture assets from a directory and keeps every decoded
// image for reuse. It is safe for concurrent use and may be shared across
// generations.
type Library struct {
	dir   string
	mu    sync.Mutex
	cache map[cacheKey]*Texture
}

// NewLibrary creates a library rooted at dir. An empty dir disables textures.
func NewLibrary(dir string) *Library {
	return &Library{
		dir:   dir,
		cache: make(map[cacheKey]*Texture),
	}
}

// Enabled reports whether the library has a directory to load from
func (l *Library) Enabled() bool {
	return l != nil && l.dir != ""
}

// Load returns the texture with the given file name, decoding it on first use.
// When useAlpha is false the alpha channel is dropped.
func (l *Library) Load(name string, useAlpha bool) (*Texture, error) {
	path := filepath.Join(l.dir, name)
	key := cacheKey{path: path, useAlpha: useAlpha}

	l.mu.Lock()
	defer l.mu.Unlock()
	if tex, ok := l.cache[key]; ok {
		return tex, nil
	}

	img, err := decodeImage(path)
	if err != nil {
		return nil, err
	}
	if !useAlpha {
		img = opaque(img)
	}

	tex := &Texture{Path: path, UseAlpha: useAlpha, Image: img}
	l.cache[key] = tex
	return tex, nil
}

// Cached returns the number of decoded textures held by the library
func (l *Library) Cached() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.cache)
}

func decodeImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrAssetLoad, path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrAssetLoad, path, err)
	}
	return img, nil
}

func opaque(img image.Image) image.Image {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			c.A = 255
			out.SetNRGBA(x, y, c)
		}
	}
	return out
}
