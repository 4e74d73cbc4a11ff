package asset

import (
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// ErrNotFound is returned when an asset file does not exist
var ErrNotFound = errors.New("asset not found")

// ErrRegion is returned when a frame region falls outside its image
var ErrRegion = errors.New("region outside image bounds")

// Store loads images from a root directory and caches decoded results
type Store struct {
	root string

	mu    sync.Mutex
	cache map[string]image.Image
}

// NewStore creates a store rooted at dir
func NewStore(dir string) *Store {
	return &Store{
		root:  dir,
		cache: make(map[string]image.Image),
	}
}

// Root returns the asset directory
func (s *Store) Root() string {
	return s.root
}

// Load returns the decoded image for name
func (s *Store) Load(name string) (image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if img, ok := s.cache[name]; ok {
		return img, nil
	}

	if !filepath.IsLocal(name) {
		return nil, errors.Errorf("asset %q: path escapes asset root", name)
	}

	f, err := os.Open(filepath.Join(s.root, filepath.FromSlash(name)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNotFound, "asset %q", name)
		}
		return nil, errors.Wrapf(err, "open asset %q", name)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode asset %q", name)
	}

	s.cache[name] = img
	return img, nil
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Region returns the part of name inside src, or the whole image for a nil src
func (s *Store) Region(name string, src *image.Rectangle) (image.Image, error) {
	img, err := s.Load(name)
	if err != nil {
		return nil, err
	}
	if src == nil {
		return img, nil
	}

	if !src.In(img.Bounds()) {
		return nil, errors.Wrapf(ErrRegion, "asset %q region %v in %v", name, *src, img.Bounds())
	}
	sub, ok := img.(subImager)
	if !ok {
		return nil, errors.Errorf("asset %q: image type %T cannot be cropped", name, img)
	}
	return sub.SubImage(*src), nil
}

// Cached returns the number of decoded images held
func (s *Store) Cached() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cache)
}
