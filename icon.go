package iconrez

import "github.com/bodgit/iconrez/rez"

// payload packs the icon into the byte stream expected by its resource
// type: row-major palette indices at the role depth, with mono roles
// carrying the icon bits followed by the mask bits.
func (q *QuantizedIcon) payload() ([]byte, error) {
	if want := q.Role.Size(); q.Bounds != want {
		return nil, &EmissionError{Role: q.Role, Want: want, Got: q.Bounds}
	}

	switch q.Role.Depth() {
	case 1:
		mask := make([]uint8, len(q.Mask))
		for i, opaque := range q.Mask {
			if opaque {
				mask[i] = 1
			}
		}
		return append(packBits(q.Indices), packBits(mask)...), nil
	case 4:
		b := make([]byte, 0, len(q.Indices)>>1)
		for i := 0; i < len(q.Indices); i += 2 {
			b = append(b, q.Indices[i]&0x0f<<4|q.Indices[i+1]&0x0f)
		}
		return b, nil
	default:
		return append([]byte(nil), q.Indices...), nil
	}
}

func (q *QuantizedIcon) block(id int16, name string) (rez.Block, error) {
	data, err := q.payload()
	if err != nil {
		return rez.Block{}, err
	}
	return rez.Block{Type: q.Role.Type(), ID: id, Name: name, Data: data}, nil
}

// packBits packs one value per pixel into bytes, most significant bit
// first; any non-zero value sets the bit. Rows are assumed to be a
// multiple of eight pixels wide so they always land on byte boundaries.
func packBits(v []uint8) []byte {
	b := make([]byte, 0, (len(v)+7)>>3)
	var cur byte
	for i, p := range v {
		cur <<= 1
		if p != 0 {
			cur |= 1
		}
		if i%8 == 7 {
			b = append(b, cur)
			cur = 0
		}
	}
	return b
}
