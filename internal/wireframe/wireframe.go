// Package wireframe turns decoded meshes into UV-space line segments.
//
// Projection works purely in texture space: each triangle contributes its
// three closing edges, with corners scaled from unit UV coordinates to canvas
// pixels. UVs are not clamped; segments from out-of-range UVs land outside
// the canvas and the rasterizer drops the pixels it cannot address.
package wireframe

import (
	"errors"
	"fmt"

	"github.com/leaguetools/uvee/pkg/formats"
	"github.com/leaguetools/uvee/pkg/geom"
)

var (
	// ErrEmptySubmesh is returned when a submesh's index range selects
	// nothing, leaving no minimum index to rebase against.
	ErrEmptySubmesh = errors.New("submesh selects no indices")

	// ErrVertexOutOfRange is returned when a rebased index falls outside
	// the submesh's vertex slice.
	ErrVertexOutOfRange = errors.New("vertex index outside submesh range")
)

// Triangle holds the three corner UVs of one face in unit texture space.
type Triangle [3]geom.Vec2

// Segment is one projected line in canvas pixel coordinates.
type Segment struct {
	From geom.Vec2
	To   geom.Vec2
}

// SubmeshSlice is one submesh's window of the shared mesh arrays. Indices
// are rebased to address Vertices directly and trimmed to whole faces.
type SubmeshSlice struct {
	Vertices []formats.SKNVertex
	Indices  []uint32
}

// SliceSubmesh cuts a submesh's windows out of the shared vertex and index
// arrays. The on-disk ranges are clamped to the array bounds; the sliced
// indices still address the full vertex array, so they are rebased by
// subtracting the smallest index in the slice. A trailing group of fewer
// than three indices is dropped.
func SliceSubmesh(skn *formats.SKN, sub formats.SKNSubmesh) (SubmeshSlice, error) {
	vLo, vHi := clampRange(sub.VertexStart, sub.VertexCount, len(skn.Vertices))
	iLo, iHi := clampRange(sub.IndexStart, sub.IndexCount, len(skn.Indices))
	vertices := skn.Vertices[vLo:vHi]
	indices := skn.Indices[iLo:iHi]

	if len(indices) == 0 {
		return SubmeshSlice{}, fmt.Errorf("%w: %q", ErrEmptySubmesh, sub.Name)
	}
	minIdx := indices[0]
	for _, idx := range indices[1:] {
		if idx < minIdx {
			minIdx = idx
		}
	}

	rebased := make([]uint32, len(indices)/3*3)
	for i := range rebased {
		idx := uint32(indices[i] - minIdx)
		if int(idx) >= len(vertices) {
			return SubmeshSlice{}, fmt.Errorf("%w: %q rebased index %d, %d vertices",
				ErrVertexOutOfRange, sub.Name, idx, len(vertices))
		}
		rebased[i] = idx
	}
	return SubmeshSlice{Vertices: vertices, Indices: rebased}, nil
}

// SubmeshTriangles extracts the UV triangles of one submesh.
func SubmeshTriangles(skn *formats.SKN, sub formats.SKNSubmesh) ([]Triangle, error) {
	sl, err := SliceSubmesh(skn, sub)
	if err != nil {
		return nil, err
	}
	tris := make([]Triangle, 0, len(sl.Indices)/3)
	for i := 0; i+3 <= len(sl.Indices); i += 3 {
		tris = append(tris, Triangle{
			sl.Vertices[sl.Indices[i]].UV,
			sl.Vertices[sl.Indices[i+1]].UV,
			sl.Vertices[sl.Indices[i+2]].UV,
		})
	}
	return tris, nil
}

// ObjectTriangles extracts the UV triangles of a static object. Static UVs
// are stored per retained face corner in emission order, so no index
// indirection is involved.
func ObjectTriangles(obj *formats.StaticObject) []Triangle {
	tris := make([]Triangle, 0, obj.FaceCount())
	for i := 0; i < obj.FaceCount(); i++ {
		tris = append(tris, Triangle(obj.UVTriangle(i)))
	}
	return tris
}

// Project scales every triangle's corners by the canvas size and emits its
// three edges corner to corner, closing the loop.
func Project(tris []Triangle, size int) []Segment {
	s := float32(size)
	segs := make([]Segment, 0, len(tris)*3)
	for _, t := range tris {
		a, b, c := t[0].Scale(s), t[1].Scale(s), t[2].Scale(s)
		segs = append(segs,
			Segment{From: a, To: b},
			Segment{From: b, To: c},
			Segment{From: c, To: a},
		)
	}
	return segs
}

// clampRange clamps [start, start+count) to [0, n). Out-of-range starts and
// overlong counts shrink the window instead of failing.
func clampRange(start, count uint32, n int) (int, int) {
	lo := int64(start)
	if lo > int64(n) {
		lo = int64(n)
	}
	hi := int64(start) + int64(count)
	if hi > int64(n) {
		hi = int64(n)
	}
	if hi < lo {
		hi = lo
	}
	return int(lo), int(hi)
}
