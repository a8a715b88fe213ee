package formats

import "fmt"

// layoutField names one fixed-width region of an on-disk record. Decoders
// never skip a bare byte count: every pad comes from one of the fields below,
// so the width lives in exactly one place and the field name reaches error
// messages. The tables also make record strides checkable in isolation.
type layoutField struct {
	name  string
	width int
}

// skip consumes the field without decoding it.
func (f layoutField) skip(c *ByteCursor) error {
	if err := c.Skip(f.width); err != nil {
		return fmt.Errorf("skipping %s: %w", f.name, err)
	}
	return nil
}

// skipN consumes count consecutive records of the field.
func (f layoutField) skipN(c *ByteCursor, count int) error {
	if err := c.Skip(f.width * count); err != nil {
		return fmt.Errorf("skipping %s x%d: %w", f.name, count, err)
	}
	return nil
}

// Skinned-mesh regions that are skipped, not decoded.
var (
	sknSubmeshFlags   = layoutField{"submesh flags", 4}
	sknVertexSize     = layoutField{"vertex size", 4}
	sknBoundingBox    = layoutField{"bounding box", 24}
	sknBoundingSphere = layoutField{"bounding sphere", 16}
	sknVertexNormal   = layoutField{"vertex normal", 12}
	sknVertexColor    = layoutField{"vertex color", 4}
	sknVertexTangent  = layoutField{"vertex tangent", 16}
)

// Static-object (binary) regions that are skipped, not decoded.
var (
	scbReserved    = layoutField{"reserved header", 128}
	scbBoundingBox = layoutField{"bounding box", 24}
	scbVertexColor = layoutField{"vertex color", 4}
)

// sknSubmeshLayout is one submesh table entry. Major version 4 appends the
// flags field after the whole table, not per entry.
var sknSubmeshLayout = []layoutField{
	{"name", 64},
	{"vertex start", 4},
	{"vertex count", 4},
	{"index start", 4},
	{"index count", 4},
}

// sknHeaderTailLayout is the extra header block present only in major
// version 4, between the global counts and the index data.
var sknHeaderTailLayout = []layoutField{
	sknVertexSize,
	{"vertex type", 4},
	sknBoundingBox,
	sknBoundingSphere,
}

// sknVertexLayout returns the ordered field list of one vertex record for
// the given vertex type. Every nonzero type appends a color; type 2 also
// appends a tangent. Unknown types are not validated, so a type like 7
// reads as color-but-no-tangent rather than failing.
func sknVertexLayout(vertexType uint32) []layoutField {
	fields := []layoutField{
		{"position", 12},
		{"bone influences", 4},
		{"bone weights", 16},
		sknVertexNormal,
		{"uv", 8},
	}
	if vertexType >= 1 {
		fields = append(fields, sknVertexColor)
	}
	if vertexType == 2 {
		fields = append(fields, sknVertexTangent)
	}
	return fields
}

// scbFaceLayout is one retained face record of the binary static-object
// format. A face dropped as degenerate consumes only the indices field: the
// record is abandoned there and the next face begins immediately, so the
// material and UV widths below apply to retained faces only.
var scbFaceLayout = []layoutField{
	{"indices", 12},
	{"material name", 64},
	{"uv block", 24},
}

// stride sums the widths of an ordered field list.
func stride(fields []layoutField) int {
	n := 0
	for _, f := range fields {
		n += f.width
	}
	return n
}
