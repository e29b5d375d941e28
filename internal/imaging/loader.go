package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"
)

// SourceStore provides thread-safe caching of decoded tileset images so a
// host can re-run generation passes without redundant disk reads.
//
// Decoded image.Image objects are keyed by their file path. Once an image
// is loaded, subsequent Load() calls for the same path return the cached
// copy without disk I/O.
//
// SourceStore is safe for concurrent use by multiple goroutines.
//
// # Memory Management
//
// Cached images remain in memory until explicitly removed via Evict() or
// Clear(). Evict a tileset when the host removes it from the source list.
type SourceStore struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewSourceStore creates and initializes a new empty store.
func NewSourceStore() *SourceStore {
	return &SourceStore{
		images: make(map[string]image.Image),
	}
}

// Load retrieves an image from the store or decodes it from disk if not
// cached.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats
//     are PNG, JPEG, and GIF.
//
// Returns:
//   - image.Image: The decoded image. The concrete type depends on the
//     format and color model (e.g., *image.RGBA, *image.NRGBA, *image.YCbCr).
//   - error: Non-nil if the file cannot be opened or decoded.
//
// The image is cached using the exact path string provided. Different
// paths to the same file result in separate cache entries.
func (s *SourceStore) Load(path string) (image.Image, error) {
	s.mu.RLock()
	if img, ok := s.images[path]; ok {
		s.mu.RUnlock()
		return img, nil
	}
	s.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	s.mu.Lock()
	s.images[path] = img
	s.mu.Unlock()

	return img, nil
}

// Clear removes all images from the store, freeing the associated memory.
func (s *SourceStore) Clear() {
	s.mu.Lock()
	s.images = make(map[string]image.Image)
	s.mu.Unlock()
}

// Evict removes a specific image from the store by its path.
//
// If the path is not in the store, this method does nothing. After
// eviction, the next Load() call for this path will read from disk.
func (s *SourceStore) Evict(path string) {
	s.mu.Lock()
	delete(s.images, path)
	s.mu.Unlock()
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`
}

// GetDimensions returns the dimensions of an image, loading it into the
// store if not already present.
//
// A tileset narrower or shorter than one tile still loads fine; it simply
// contributes no tiles to the catalog.
func GetDimensions(store *SourceStore, path string) (*DimensionsResult, error) {
	img, err := store.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &DimensionsResult{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
