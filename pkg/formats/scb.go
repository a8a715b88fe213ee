package formats

import (
	"fmt"
	"os"

	"github.com/leaguetools/uvee/pkg/geom"
)

// scbMagic is the 8-byte ASCII signature of the binary static-object format.
const scbMagic = "r3d2Mesh"

// scbMajors lists the major versions the decoder accepts.
var scbMajors = map[uint16]bool{2: true, 3: true}

// ParseSCB parses the binary variant of the static-object format.
func ParseSCB(data []byte) (*StaticObject, error) {
	c := NewByteCursor(data)

	magic, err := c.ReadBytes(len(scbMagic))
	if err != nil {
		return nil, fmt.Errorf("reading magic: %w", err)
	}
	if string(magic) != scbMagic {
		return nil, fmt.Errorf("%w: got %q, want %q", ErrBadMagic, magic, scbMagic)
	}

	ver, err := readVersion(c)
	if err != nil {
		return nil, err
	}
	if versionRejected(scbMajors, ver) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedVersion, ver)
	}

	if err := scbReserved.skip(c); err != nil {
		return nil, err
	}

	counts, err := c.ReadU32s(3)
	if err != nil {
		return nil, fmt.Errorf("reading counts: %w", err)
	}
	vertexCount, faceCount, flags := counts[0], counts[1], counts[2]

	if err := scbBoundingBox.skip(c); err != nil {
		return nil, err
	}

	// Only the 3.2 header carries a vertex type word.
	var vertexType uint32
	if ver.Major == 3 && ver.Minor == 2 {
		if vertexType, err = c.ReadU32(); err != nil {
			return nil, fmt.Errorf("reading vertex type: %w", err)
		}
	}

	if int64(vertexCount)*12 > int64(c.Remaining()) {
		return nil, fmt.Errorf("%w: %d vertices exceed remaining input", ErrTruncatedInput, vertexCount)
	}
	obj := &StaticObject{Flags: flags}
	if obj.Vertices, err = c.ReadVec3s(int(vertexCount)); err != nil {
		return nil, fmt.Errorf("reading vertices: %w", err)
	}

	if vertexType == 1 {
		if err := scbVertexColor.skipN(c, int(vertexCount)); err != nil {
			return nil, err
		}
	}

	// This variant stores only the central point; there is no pivot.
	if obj.Central, err = c.ReadVec3(); err != nil {
		return nil, fmt.Errorf("reading central point: %w", err)
	}

	if int64(faceCount)*int64(scbFaceLayout[0].width) > int64(c.Remaining()) {
		return nil, fmt.Errorf("%w: %d faces exceed remaining input", ErrTruncatedInput, faceCount)
	}
	for i := 0; i < int(faceCount); i++ {
		face, err := c.ReadU32s(3)
		if err != nil {
			return nil, fmt.Errorf("reading face %d: %w", i, err)
		}
		if IsDegenerateFace(face[0], face[1], face[2]) {
			// A dropped face's record ends here: the material and UV
			// fields are not consumed for it.
			continue
		}
		obj.Indices = append(obj.Indices, face...)

		if obj.Material, err = c.ReadFixedASCII(64); err != nil {
			return nil, fmt.Errorf("reading face %d material: %w", i, err)
		}

		// The per-face UV block is planar: three U values, then the
		// three matching V values.
		uv, err := c.ReadF32s(6)
		if err != nil {
			return nil, fmt.Errorf("reading face %d uv block: %w", i, err)
		}
		obj.UVs = append(obj.UVs,
			geom.Vec2{X: uv[0], Y: uv[3]},
			geom.Vec2{X: uv[1], Y: uv[4]},
			geom.Vec2{X: uv[2], Y: uv[5]},
		)
	}

	return obj, nil
}

// ParseSCBFile parses a binary static object from disk.
func ParseSCBFile(path string) (*StaticObject, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scb file: %w", err)
	}
	return ParseSCB(data)
}
