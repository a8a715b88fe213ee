package formats

import (
	"fmt"
	"os"

	"github.com/leaguetools/uvee/pkg/geom"
)

// sknMagic is the 4-byte header signature of the skinned-mesh format.
const sknMagic uint32 = 0x00112233

// sknMajors lists the major versions the decoder accepts.
var sknMajors = map[uint16]bool{0: true, 2: true, 4: true}

// SKNSubmesh is a named contiguous slice of the mesh's shared vertex and
// index arrays. One submesh renders one material group independently.
// Submeshes are immutable after decode.
type SKNSubmesh struct {
	Name        string
	VertexStart uint32
	VertexCount uint32
	IndexStart  uint32
	IndexCount  uint32
}

// VertexEnd returns the index one past the last vertex of the submesh.
func (s SKNSubmesh) VertexEnd() uint32 {
	return s.VertexStart + s.VertexCount
}

// IndexEnd returns the index one past the last triangle index of the submesh.
func (s SKNSubmesh) IndexEnd() uint32 {
	return s.IndexStart + s.IndexCount
}

// SKNVertex is one skinned vertex record. The on-disk normal is a named pad
// in the layout and is not decoded: nothing downstream consumes it. Bone
// weights are stored as read; the format does not promise they sum to 1.
type SKNVertex struct {
	Position   geom.Vec3
	Influences [4]uint8
	Weights    [4]float32
	UV         geom.Vec2
}

// SKN is a parsed skinned mesh. Submeshes address the shared Vertices and
// Indices arrays by range, never by copy. Indices holds only retained faces:
// degenerate faces are dropped while decoding, so its length is a multiple
// of three with all three corners of every face pairwise distinct.
type SKN struct {
	Version    Version
	VertexType uint32
	Submeshes  []SKNSubmesh
	Indices    []uint16
	Vertices   []SKNVertex
}

// FaceCount returns the number of retained triangles.
func (s *SKN) FaceCount() int {
	return len(s.Indices) / 3
}

// SubmeshByName returns the submesh with the given name, or nil.
func (s *SKN) SubmeshByName(name string) *SKNSubmesh {
	for i := range s.Submeshes {
		if s.Submeshes[i].Name == name {
			return &s.Submeshes[i]
		}
	}
	return nil
}

// ParseSKN parses a skinned mesh from raw bytes.
func ParseSKN(data []byte) (*SKN, error) {
	c := NewByteCursor(data)

	magic, err := c.ReadU32()
	if err != nil {
		return nil, fmt.Errorf("reading magic: %w", err)
	}
	if magic != sknMagic {
		return nil, fmt.Errorf("%w: got 0x%08X, want 0x%08X", ErrBadMagic, magic, sknMagic)
	}

	ver, err := readVersion(c)
	if err != nil {
		return nil, err
	}
	if versionRejected(sknMajors, ver) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedVersion, ver)
	}

	skn := &SKN{Version: ver}

	var indexCount, vertexCount uint32
	if ver.Major == 0 {
		// Version 0 carries no submesh table; the whole mesh is one
		// synthesized submesh named "Base".
		counts, err := c.ReadU32s(2)
		if err != nil {
			return nil, fmt.Errorf("reading counts: %w", err)
		}
		indexCount, vertexCount = counts[0], counts[1]
		skn.Submeshes = []SKNSubmesh{{
			Name:        "Base",
			VertexStart: 0,
			VertexCount: vertexCount,
			IndexStart:  0,
			IndexCount:  indexCount,
		}}
	} else {
		submeshCount, err := c.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("reading submesh count: %w", err)
		}
		if int64(submeshCount)*int64(stride(sknSubmeshLayout)) > int64(c.Remaining()) {
			return nil, fmt.Errorf("%w: submesh table of %d entries exceeds remaining input",
				ErrTruncatedInput, submeshCount)
		}
		skn.Submeshes = make([]SKNSubmesh, submeshCount)
		for i := range skn.Submeshes {
			sub, err := parseSKNSubmesh(c)
			if err != nil {
				return nil, fmt.Errorf("parsing submesh %d: %w", i, err)
			}
			skn.Submeshes[i] = sub
		}

		if ver.Major == 4 {
			if err := sknSubmeshFlags.skip(c); err != nil {
				return nil, err
			}
		}

		counts, err := c.ReadU32s(2)
		if err != nil {
			return nil, fmt.Errorf("reading counts: %w", err)
		}
		indexCount, vertexCount = counts[0], counts[1]

		if ver.Major == 4 {
			if err := sknVertexSize.skip(c); err != nil {
				return nil, err
			}
			if skn.VertexType, err = c.ReadU32(); err != nil {
				return nil, fmt.Errorf("reading vertex type: %w", err)
			}
			if err := sknBoundingBox.skip(c); err != nil {
				return nil, err
			}
			if err := sknBoundingSphere.skip(c); err != nil {
				return nil, err
			}
		}
	}

	if indexCount%3 != 0 {
		return nil, fmt.Errorf("%w: index count %d", ErrMisalignedIndex, indexCount)
	}
	if int64(indexCount)*2 > int64(c.Remaining()) {
		return nil, fmt.Errorf("%w: %d indices exceed remaining input", ErrTruncatedInput, indexCount)
	}

	faceCount := int(indexCount) / 3
	skn.Indices = make([]uint16, 0, indexCount)
	for i := 0; i < faceCount; i++ {
		face, err := c.ReadU16s(3)
		if err != nil {
			return nil, fmt.Errorf("reading face %d: %w", i, err)
		}
		if IsDegenerateFace(uint32(face[0]), uint32(face[1]), uint32(face[2])) {
			continue
		}
		skn.Indices = append(skn.Indices, face...)
	}

	if int64(vertexCount)*int64(stride(sknVertexLayout(skn.VertexType))) > int64(c.Remaining()) {
		return nil, fmt.Errorf("%w: %d vertices exceed remaining input", ErrTruncatedInput, vertexCount)
	}
	skn.Vertices = make([]SKNVertex, vertexCount)
	for i := range skn.Vertices {
		v, err := parseSKNVertex(c, skn.VertexType)
		if err != nil {
			return nil, fmt.Errorf("parsing vertex %d: %w", i, err)
		}
		skn.Vertices[i] = v
	}

	return skn, nil
}

// readVersion reads the (major, minor) pair shared by the binary headers.
func readVersion(c *ByteCursor) (Version, error) {
	pair, err := c.ReadU16s(2)
	if err != nil {
		return Version{}, fmt.Errorf("reading version: %w", err)
	}
	return Version{Major: pair[0], Minor: pair[1]}, nil
}

// parseSKNSubmesh reads one submesh table entry.
func parseSKNSubmesh(c *ByteCursor) (SKNSubmesh, error) {
	var sub SKNSubmesh
	var err error
	if sub.Name, err = c.ReadFixedASCII(64); err != nil {
		return sub, fmt.Errorf("reading name: %w", err)
	}
	ranges, err := c.ReadU32s(4)
	if err != nil {
		return sub, fmt.Errorf("reading ranges: %w", err)
	}
	sub.VertexStart, sub.VertexCount = ranges[0], ranges[1]
	sub.IndexStart, sub.IndexCount = ranges[2], ranges[3]
	return sub, nil
}

// parseSKNVertex reads one vertex record, skipping the attributes selected
// by the vertex type via the layout table.
func parseSKNVertex(c *ByteCursor, vertexType uint32) (SKNVertex, error) {
	var v SKNVertex
	var err error
	if v.Position, err = c.ReadVec3(); err != nil {
		return v, fmt.Errorf("reading position: %w", err)
	}
	raw, err := c.ReadBytes(4)
	if err != nil {
		return v, fmt.Errorf("reading bone influences: %w", err)
	}
	copy(v.Influences[:], raw)
	weights, err := c.ReadF32s(4)
	if err != nil {
		return v, fmt.Errorf("reading bone weights: %w", err)
	}
	copy(v.Weights[:], weights)
	if err := sknVertexNormal.skip(c); err != nil {
		return v, err
	}
	if v.UV, err = c.ReadVec2(); err != nil {
		return v, fmt.Errorf("reading uv: %w", err)
	}
	if vertexType >= 1 {
		if err := sknVertexColor.skip(c); err != nil {
			return v, err
		}
	}
	if vertexType == 2 {
		if err := sknVertexTangent.skip(c); err != nil {
			return v, err
		}
	}
	return v, nil
}

// ParseSKNFile parses a skinned mesh from disk.
func ParseSKNFile(path string) (*SKN, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading skn file: %w", err)
	}
	return ParseSKN(data)
}
