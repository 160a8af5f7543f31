package iconrez

import "image"

// Role identifies one member of the classic icon family.
type Role int

const (
	LargeMono Role = iota // 'ICN#' 32x32 1-bit icon and mask
	Large4                // 'icl4' 32x32 4-bit
	Large8                // 'icl8' 32x32 8-bit
	SmallMono             // 'ics#' 16x16 1-bit icon and mask
	Small4                // 'ics4' 16x16 4-bit
	Small8                // 'ics8' 16x16 8-bit

	numRoles
)

const (
	largeSize = 32
	smallSize = 16
)

var roleTypes = [numRoles]string{"ICN#", "icl4", "icl8", "ics#", "ics4", "ics8"}

// Roles lists every role in emission order. Output blocks always
// follow this order, never the order input files were supplied in.
func Roles() []Role {
	r := make([]Role, numRoles)
	for i := range r {
		r[i] = Role(i)
	}
	return r
}

// Type returns the four character resource type for the role.
func (r Role) Type() string {
	return roleTypes[r]
}

// Size returns the dimensions a source image for the role must have.
func (r Role) Size() image.Point {
	switch r {
	case LargeMono, Large4, Large8:
		return image.Pt(largeSize, largeSize)
	default:
		return image.Pt(smallSize, smallSize)
	}
}

// Depth returns the bits per pixel the role is emitted at.
func (r Role) Depth() int {
	switch r {
	case LargeMono, SmallMono:
		return 1
	case Large4, Small4:
		return 4
	default:
		return 8
	}
}

func (r Role) String() string {
	return r.Type()
}

// RoleForType maps a four character resource type to its role.
func RoleForType(t string) (Role, bool) {
	for i, rt := range roleTypes {
		if rt == t {
			return Role(i), true
		}
	}
	return 0, false
}
