package iconrez

import (
	"fmt"
	"image"
)

// FileNotFoundError reports a source image that could not be opened.
type FileNotFoundError struct {
	Path string
	Err  error
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("load: %s: %v", e.Path, e.Err)
}

func (e *FileNotFoundError) Unwrap() error { return e.Err }

// ImageFormatError reports a source image in an unsupported encoding.
type ImageFormatError struct {
	Path string
	Err  error
}

func (e *ImageFormatError) Error() string {
	return fmt.Sprintf("decode: %s: %v", e.Path, e.Err)
}

func (e *ImageFormatError) Unwrap() error { return e.Err }

// DimensionMismatchError reports a source image whose size does not
// match the size its role requires.
type DimensionMismatchError struct {
	Path string
	Role Role
	Want image.Point
	Got  image.Point
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("load: %s: %s must be %dx%d, got %dx%d", e.Path, e.Role, e.Want.X, e.Want.Y, e.Got.X, e.Got.Y)
}

// UnsupportedPixelFormatError reports a source image whose color model
// carries no alpha channel, so the transparency rule cannot apply.
type UnsupportedPixelFormatError struct {
	Path string
	Role Role
}

func (e *UnsupportedPixelFormatError) Error() string {
	return fmt.Sprintf("quantize: %s: %s source has no alpha channel", e.Path, e.Role)
}

// EmissionError reports a quantized icon whose grid does not match the
// size declared by its role.
type EmissionError struct {
	Role Role
	Want image.Point
	Got  image.Point
}

func (e *EmissionError) Error() string {
	return fmt.Sprintf("emit: %s payload must be %dx%d, got %dx%d", e.Role, e.Want.X, e.Want.Y, e.Got.X, e.Got.Y)
}
