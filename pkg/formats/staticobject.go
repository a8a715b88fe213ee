package formats

import "github.com/leaguetools/uvee/pkg/geom"

// SCB flag bits. The text variant has no flag word on disk, so its decoder
// leaves the origin/pivot bit set, matching the writer-side default.
const (
	SCBFlagVertexColor uint32 = 1
	SCBFlagOriginPivot uint32 = 2
)

// StaticObject is the decode result shared by both static-object variants.
//
// UVs and Vertices/Indices use two separate indexing schemes that must not
// be conflated: UV is a face-corner attribute, one Vec2 per retained index
// in face emission order, while Indices[i] addresses Vertices for the
// corner's position. The same position referenced by two faces can carry
// two different UVs.
type StaticObject struct {
	Name     string // text variant key; empty for binary input
	Central  geom.Vec3
	Pivot    geom.Vec3 // text variant only
	HasPivot bool
	Material string // single slot; each retained face overwrites it
	Indices  []uint32
	UVs      []geom.Vec2
	Vertices []geom.Vec3
	Flags    uint32 // read from disk by the binary variant
}

// FaceCount returns the number of retained triangles.
func (o *StaticObject) FaceCount() int {
	return len(o.UVs) / 3
}

// UVTriangle returns the three corner UVs of retained face i.
func (o *StaticObject) UVTriangle(i int) [3]geom.Vec2 {
	return [3]geom.Vec2{o.UVs[3*i], o.UVs[3*i+1], o.UVs[3*i+2]}
}

// HasVertexColors reports whether the flag word records per-vertex colors.
func (o *StaticObject) HasVertexColors() bool {
	return o.Flags&SCBFlagVertexColor != 0
}
