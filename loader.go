package iconrez

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// SourceImage is one decoded raster tagged with the role it was
// supplied for. Immutable after load.
type SourceImage struct {
	Role  Role
	Path  string
	Image image.Image
}

func load(role Role, path string) (*SourceImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileNotFoundError{Path: path, Err: err}
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, &ImageFormatError{Path: path, Err: err}
	}

	if want, got := role.Size(), m.Bounds().Size(); got != want {
		return nil, &DimensionMismatchError{Path: path, Role: role, Want: want, Got: got}
	}

	return &SourceImage{Role: role, Path: path, Image: m}, nil
}
