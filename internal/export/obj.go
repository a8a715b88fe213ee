package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/leaguetools/uvee/internal/wireframe"
	"github.com/leaguetools/uvee/pkg/formats"
)

// WriteSkinnedOBJ writes a skinned mesh as Wavefront OBJ, one group per
// submesh. Each group carries its own vertex and UV run; faces reference them
// through the file-global 1-based numbering OBJ requires.
func WriteSkinnedOBJ(w io.Writer, skn *formats.SKN) error {
	bw := bufio.NewWriter(w)

	offset := 1
	for _, sub := range skn.Submeshes {
		sl, err := wireframe.SliceSubmesh(skn, sub)
		if err != nil {
			return fmt.Errorf("submesh %q: %w", sub.Name, err)
		}

		fmt.Fprintf(bw, "g %s\n", sub.Name)
		for _, v := range sl.Vertices {
			fmt.Fprintf(bw, "v %g %g %g\n", v.Position.X, v.Position.Y, v.Position.Z)
		}
		for _, v := range sl.Vertices {
			fmt.Fprintf(bw, "vt %g %g\n", v.UV.X, v.UV.Y)
		}
		for i := 0; i+3 <= len(sl.Indices); i += 3 {
			a := offset + int(sl.Indices[i])
			b := offset + int(sl.Indices[i+1])
			c := offset + int(sl.Indices[i+2])
			fmt.Fprintf(bw, "f %d/%d %d/%d %d/%d\n", a, a, b, b, c, c)
		}
		offset += len(sl.Vertices)
	}

	return bw.Flush()
}

// WriteStaticOBJ writes a static object as Wavefront OBJ. Positions stay
// shared while UVs are emitted per face corner, so a face line pairs a vertex
// index with its corner's own texture index.
func WriteStaticOBJ(w io.Writer, obj *formats.StaticObject, name string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "o %s\n", name)
	if obj.Material != "" {
		fmt.Fprintf(bw, "usemtl %s\n", obj.Material)
	}
	for _, v := range obj.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
	}
	for _, uv := range obj.UVs {
		fmt.Fprintf(bw, "vt %g %g\n", uv.X, uv.Y)
	}
	for i := 0; i < obj.FaceCount()*3; i += 3 {
		var vi [3]uint32
		for k := 0; k < 3; k++ {
			vi[k] = obj.Indices[i+k]
			if int(vi[k]) >= len(obj.Vertices) {
				return fmt.Errorf("face %d corner %d: %w: vertex %d, %d vertices",
					i/3, k, wireframe.ErrVertexOutOfRange, vi[k], len(obj.Vertices))
			}
		}
		fmt.Fprintf(bw, "f %d/%d %d/%d %d/%d\n",
			vi[0]+1, i+1, vi[1]+1, i+2, vi[2]+1, i+3)
	}

	return bw.Flush()
}
