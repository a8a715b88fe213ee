package formats

import (
	"fmt"
	"os"
	"strings"

	"github.com/leaguetools/uvee/pkg/geom"
)

// scoMagic is the literal first line of the text static-object format.
const scoMagic = "[ObjectBegin]"

// ParseSCO parses the text variant of the static-object format. After the
// magic line, labeled keys may appear in any order; blank lines and unknown
// keys are ignored. The Verts= and Faces= keys declare counted blocks that
// consume the following lines.
func ParseSCO(data []byte) (*StaticObject, error) {
	c := NewTextCursor(data)

	first, ok := c.NextLine()
	if !ok || first != scoMagic {
		return nil, fmt.Errorf("%w: first line %q, want %q", ErrBadMagic, first, scoMagic)
	}

	obj := &StaticObject{Flags: SCBFlagOriginPivot}
	for {
		line, ok := c.NextLine()
		if !ok {
			break
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "Name=":
			if len(fields) > 1 {
				obj.Name = strings.Join(fields[1:], " ")
			}

		case "CentralPoint=":
			v, err := parseVec3Fields(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: CentralPoint: %w", c.LineNo(), err)
			}
			obj.Central = v

		case "PivotPoint=":
			v, err := parseVec3Fields(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: PivotPoint: %w", c.LineNo(), err)
			}
			obj.Pivot = v
			obj.HasPivot = true

		case "Verts=":
			if len(fields) < 2 {
				return nil, fmt.Errorf("line %d: %w: Verts= missing count", c.LineNo(), ErrMalformedBlock)
			}
			count, err := parseCountToken(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: Verts=: %w", c.LineNo(), err)
			}
			blockStart := c.LineNo() + 1
			block, err := c.ReadBlock(count)
			if err != nil {
				return nil, fmt.Errorf("Verts= block: %w", err)
			}
			obj.Vertices = make([]geom.Vec3, count)
			for i, row := range block {
				v, err := parseVec3Fields(row)
				if err != nil {
					return nil, fmt.Errorf("line %d: vertex %d: %w", blockStart+i, i, err)
				}
				obj.Vertices[i] = v
			}

		case "Faces=":
			if len(fields) < 2 {
				return nil, fmt.Errorf("line %d: %w: Faces= missing count", c.LineNo(), ErrMalformedBlock)
			}
			count, err := parseCountToken(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: Faces=: %w", c.LineNo(), err)
			}
			blockStart := c.LineNo() + 1
			block, err := c.ReadBlock(count)
			if err != nil {
				return nil, fmt.Errorf("Faces= block: %w", err)
			}
			for i, row := range block {
				if err := parseSCOFace(obj, row); err != nil {
					return nil, fmt.Errorf("line %d: face %d: %w", blockStart+i, i, err)
				}
			}
		}
	}

	return obj, nil
}

// parseSCOFace decodes one face row: a leading face number (ignored), three
// vertex indices, the material name, and six floats interleaved per corner
// as u0 v0 u1 v1 u2 v2. A degenerate face is dropped whole: no indices, no
// material update, no UV triple. Only the index fields of a dropped row are
// ever parsed, mirroring the binary variant's abandoned face records.
func parseSCOFace(obj *StaticObject, row []string) error {
	if len(row) < 4 {
		return fmt.Errorf("%w: face row has %d fields, want 11", ErrMalformedBlock, len(row))
	}
	var face [3]uint32
	for k := 0; k < 3; k++ {
		idx, err := parseUintToken(row[1+k])
		if err != nil {
			return err
		}
		face[k] = idx
	}
	if IsDegenerateFace(face[0], face[1], face[2]) {
		return nil
	}
	if len(row) < 11 {
		return fmt.Errorf("%w: face row has %d fields, want 11", ErrMalformedBlock, len(row))
	}
	var uv [6]float32
	for k := 0; k < 6; k++ {
		f, err := parseFloatToken(row[5+k])
		if err != nil {
			return err
		}
		uv[k] = f
	}

	obj.Indices = append(obj.Indices, face[0], face[1], face[2])
	obj.Material = row[4]
	obj.UVs = append(obj.UVs,
		geom.Vec2{X: uv[0], Y: uv[1]},
		geom.Vec2{X: uv[2], Y: uv[3]},
		geom.Vec2{X: uv[4], Y: uv[5]},
	)
	return nil
}

// parseVec3Fields parses three float tokens as a vector.
func parseVec3Fields(fields []string) (geom.Vec3, error) {
	if len(fields) < 3 {
		return geom.Vec3{}, fmt.Errorf("%w: %d float fields, want 3", ErrMalformedBlock, len(fields))
	}
	var out [3]float32
	for i := 0; i < 3; i++ {
		f, err := parseFloatToken(fields[i])
		if err != nil {
			return geom.Vec3{}, err
		}
		out[i] = f
	}
	return geom.Vec3{X: out[0], Y: out[1], Z: out[2]}, nil
}

// ParseSCOFile parses a text static object from disk.
func ParseSCOFile(path string) (*StaticObject, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sco file: %w", err)
	}
	return ParseSCO(data)
}
