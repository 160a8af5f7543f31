package iconrez

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIconRez() *IconRez {
	return New(log.New(io.Discard, "", 0))
}

func writePNG(t *testing.T, path string, m image.Image) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, m))
}

func solidImage(size image.Point, c color.NRGBA) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			m.SetNRGBA(x, y, c)
		}
	}
	return m
}

func familyInputs(t *testing.T, dir string, c color.NRGBA) map[Role]string {
	t.Helper()

	inputs := make(map[Role]string, numRoles)
	for _, role := range Roles() {
		path := filepath.Join(dir, strings.ReplaceAll(role.Type(), "#", "_")+".png")
		writePNG(t, path, solidImage(role.Size(), c))
		inputs[role] = path
	}
	return inputs
}

func TestEmitDeterministic(t *testing.T) {
	inputs := familyInputs(t, t.TempDir(), color.NRGBA{0xdb, 0x11, 0x22, 0xff})

	m := testIconRez()
	opts := EmitOptions{ID: DefaultID, Name: "Newton"}

	b1, err := m.Emit(inputs, opts)
	require.NoError(t, err)
	b2, err := m.Emit(inputs, opts)
	require.NoError(t, err)

	assert.Equal(t, b1, b2)
}

func TestEmitBlockOrder(t *testing.T) {
	inputs := familyInputs(t, t.TempDir(), color.NRGBA{0x66, 0x99, 0xcc, 0xff})

	b, err := testIconRez().Emit(inputs, EmitOptions{ID: DefaultID})
	require.NoError(t, err)

	doc := string(b)
	last := -1
	for _, role := range Roles() {
		i := strings.Index(doc, "data '"+role.Type()+"' (128)")
		require.NotEqual(t, -1, i, "missing block for %s", role)
		assert.Greater(t, i, last, "%s out of order", role)
		last = i
	}
}

func TestEmitMissingRole(t *testing.T) {
	// Deliberately nonexistent paths: validation must reject the set
	// before anything is opened or matched
	inputs := map[Role]string{
		LargeMono: "nope.png",
		Large4:    "nope.png",
		Large8:    "nope.png",
		SmallMono: "nope.png",
		Small4:    "nope.png",
	}

	_, err := testIconRez().Emit(inputs, EmitOptions{ID: DefaultID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 6 images")
}

func TestEmitFileNotFound(t *testing.T) {
	inputs := familyInputs(t, t.TempDir(), color.NRGBA{A: 0xff})
	inputs[Small8] = filepath.Join(t.TempDir(), "missing.png")

	_, err := testIconRez().Emit(inputs, EmitOptions{ID: DefaultID})
	var fnf *FileNotFoundError
	require.True(t, errors.As(err, &fnf))
	assert.Equal(t, inputs[Small8], fnf.Path)
}

func TestEmitImageFormatError(t *testing.T) {
	dir := t.TempDir()
	inputs := familyInputs(t, dir, color.NRGBA{A: 0xff})

	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0644))
	inputs[Large4] = bad

	_, err := testIconRez().Emit(inputs, EmitOptions{ID: DefaultID})
	var ife *ImageFormatError
	require.True(t, errors.As(err, &ife))
	assert.Equal(t, bad, ife.Path)
}

func TestEmitFileDimensionMismatch(t *testing.T) {
	dir := t.TempDir()
	inputs := familyInputs(t, dir, color.NRGBA{0xff, 0x00, 0x00, 0xff})

	// Small icon supplied for the large 8-bit slot
	writePNG(t, inputs[Large8], solidImage(image.Pt(16, 16), color.NRGBA{A: 0xff}))

	out := filepath.Join(dir, "icons.r")
	err := testIconRez().EmitFile(out, inputs, EmitOptions{ID: DefaultID})

	var dme *DimensionMismatchError
	require.True(t, errors.As(err, &dme))
	assert.Equal(t, Large8, dme.Role)
	assert.Equal(t, image.Pt(32, 32), dme.Want)
	assert.Equal(t, image.Pt(16, 16), dme.Got)

	// No partial output may exist
	_, serr := os.Stat(out)
	assert.True(t, os.IsNotExist(serr))
}

func TestEmitUnsupportedPixelFormat(t *testing.T) {
	dir := t.TempDir()
	inputs := familyInputs(t, dir, color.NRGBA{A: 0xff})

	// Grayscale carries no alpha channel so the mask rule cannot apply
	gray := filepath.Join(dir, "gray.png")
	writePNG(t, gray, image.NewGray(image.Rect(0, 0, 16, 16)))
	inputs[Small4] = gray

	_, err := testIconRez().Emit(inputs, EmitOptions{ID: DefaultID})
	var upf *UnsupportedPixelFormatError
	require.True(t, errors.As(err, &upf))
	assert.Equal(t, Small4, upf.Role)
}

func TestEmitFile(t *testing.T) {
	dir := t.TempDir()
	inputs := familyInputs(t, dir, color.NRGBA{0xff, 0x00, 0x00, 0xff})

	m := testIconRez()
	opts := EmitOptions{ID: DefaultID}

	out := filepath.Join(dir, "icons.r")
	require.NoError(t, m.EmitFile(out, inputs, opts))

	b, err := os.ReadFile(out)
	require.NoError(t, err)

	expected, err := m.Emit(inputs, opts)
	require.NoError(t, err)
	assert.Equal(t, expected, b)
}

func TestPreview(t *testing.T) {
	inputs := familyInputs(t, t.TempDir(), color.NRGBA{0x00, 0x66, 0x00, 0xff})

	b, err := testIconRez().Preview(inputs, 4, Options{})
	require.NoError(t, err)

	// Must be a decodable PNG wide enough for all six members
	m, err := png.Decode(strings.NewReader(string(b)))
	require.NoError(t, err)
	assert.Greater(t, m.Bounds().Dx(), (32+16)*3*4)
}
