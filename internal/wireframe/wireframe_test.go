package wireframe

import (
	"errors"
	"testing"

	"github.com/leaguetools/uvee/pkg/formats"
	"github.com/leaguetools/uvee/pkg/geom"
)

// uvMesh builds a mesh whose vertex i carries UV (i, -i), making corner
// lookups recognizable in assertions.
func uvMesh(vertexCount int, indices []uint16, subs ...formats.SKNSubmesh) *formats.SKN {
	skn := &formats.SKN{Indices: indices, Submeshes: subs}
	skn.Vertices = make([]formats.SKNVertex, vertexCount)
	for i := range skn.Vertices {
		skn.Vertices[i].UV = geom.Vec2{X: float32(i), Y: -float32(i)}
	}
	return skn
}

func TestSliceSubmesh(t *testing.T) {
	skn := uvMesh(8, []uint16{0, 1, 2, 2, 1, 3, 4, 5, 6, 6, 5, 7, 7, 4})
	sub := formats.SKNSubmesh{Name: "Head", VertexStart: 4, VertexCount: 4, IndexStart: 6, IndexCount: 8}

	sl, err := SliceSubmesh(skn, sub)
	if err != nil {
		t.Fatalf("SliceSubmesh: %v", err)
	}
	if len(sl.Vertices) != 4 {
		t.Fatalf("len(Vertices) = %d, want 4", len(sl.Vertices))
	}
	// 8 sliced indices trim to 6; values rebase from 4..7 to 0..3.
	want := []uint32{0, 1, 2, 2, 1, 3}
	if len(sl.Indices) != len(want) {
		t.Fatalf("Indices = %v, want %v", sl.Indices, want)
	}
	for i, w := range want {
		if sl.Indices[i] != w {
			t.Errorf("Indices[%d] = %d, want %d", i, sl.Indices[i], w)
		}
	}
}

func TestSubmeshTriangles(t *testing.T) {
	skn := uvMesh(4, []uint16{0, 1, 2, 2, 1, 3})
	sub := formats.SKNSubmesh{Name: "Body", VertexCount: 4, IndexCount: 6}

	tris, err := SubmeshTriangles(skn, sub)
	if err != nil {
		t.Fatalf("SubmeshTriangles: %v", err)
	}
	if len(tris) != 2 {
		t.Fatalf("len(tris) = %d, want 2", len(tris))
	}
	if tris[1][2].X != 3 {
		t.Errorf("tris[1][2] = %v, want UV of vertex 3", tris[1][2])
	}
}

func TestSubmeshTriangles_RebasesIndices(t *testing.T) {
	// The second submesh's indices address vertices 4..7 of the shared
	// array; after rebasing they must address its own 4-vertex slice.
	skn := uvMesh(8, []uint16{0, 1, 2, 2, 1, 3, 4, 5, 6, 6, 5, 7})
	sub := formats.SKNSubmesh{Name: "Head", VertexStart: 4, VertexCount: 4, IndexStart: 6, IndexCount: 6}

	tris, err := SubmeshTriangles(skn, sub)
	if err != nil {
		t.Fatalf("SubmeshTriangles: %v", err)
	}
	if len(tris) != 2 {
		t.Fatalf("len(tris) = %d, want 2", len(tris))
	}
	if tris[0][0].X != 4 || tris[1][2].X != 7 {
		t.Errorf("corner UVs = %v / %v, want vertices 4 and 7", tris[0][0], tris[1][2])
	}
}

func TestSubmeshTriangles_ClampsRanges(t *testing.T) {
	skn := uvMesh(3, []uint16{0, 1, 2})
	// Counts far past the arrays shrink to what exists.
	sub := formats.SKNSubmesh{Name: "Big", VertexCount: 99, IndexCount: 99}

	tris, err := SubmeshTriangles(skn, sub)
	if err != nil {
		t.Fatalf("SubmeshTriangles: %v", err)
	}
	if len(tris) != 1 {
		t.Errorf("len(tris) = %d, want 1", len(tris))
	}
}

func TestSubmeshTriangles_EmptyIndexRange(t *testing.T) {
	skn := uvMesh(3, []uint16{0, 1, 2})
	for _, sub := range []formats.SKNSubmesh{
		{Name: "None", VertexCount: 3, IndexStart: 0, IndexCount: 0},
		{Name: "Past", VertexCount: 3, IndexStart: 50, IndexCount: 6},
	} {
		if _, err := SubmeshTriangles(skn, sub); !errors.Is(err, ErrEmptySubmesh) {
			t.Errorf("%s: err = %v, want ErrEmptySubmesh", sub.Name, err)
		}
	}
}

func TestSubmeshTriangles_VertexOutOfRange(t *testing.T) {
	// Index 5 rebases to 5, past the 3-vertex slice.
	skn := uvMesh(3, []uint16{0, 1, 5})
	sub := formats.SKNSubmesh{Name: "Bad", VertexCount: 3, IndexCount: 3}
	if _, err := SubmeshTriangles(skn, sub); !errors.Is(err, ErrVertexOutOfRange) {
		t.Errorf("err = %v, want ErrVertexOutOfRange", err)
	}
}

func TestSubmeshTriangles_PartialFaceIgnored(t *testing.T) {
	skn := uvMesh(4, []uint16{0, 1, 2, 2, 1, 3, 3, 0})
	sub := formats.SKNSubmesh{Name: "Tail", VertexCount: 4, IndexCount: 8}

	tris, err := SubmeshTriangles(skn, sub)
	if err != nil {
		t.Fatalf("SubmeshTriangles: %v", err)
	}
	if len(tris) != 2 {
		t.Errorf("len(tris) = %d, want 2", len(tris))
	}
}

func TestObjectTriangles(t *testing.T) {
	obj := &formats.StaticObject{
		UVs: []geom.Vec2{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1},
			{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
		},
	}
	tris := ObjectTriangles(obj)
	if len(tris) != 2 {
		t.Fatalf("len(tris) = %d, want 2", len(tris))
	}
	if tris[1][1] != (geom.Vec2{X: 1, Y: 1}) {
		t.Errorf("tris[1][1] = %v, want (1 1)", tris[1][1])
	}
}

func TestProject(t *testing.T) {
	tris := []Triangle{{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}}

	segs := Project(tris, 1024)
	want := []Segment{
		{From: geom.Vec2{X: 0, Y: 0}, To: geom.Vec2{X: 1024, Y: 0}},
		{From: geom.Vec2{X: 1024, Y: 0}, To: geom.Vec2{X: 0, Y: 1024}},
		{From: geom.Vec2{X: 0, Y: 1024}, To: geom.Vec2{X: 0, Y: 0}},
	}
	if len(segs) != len(want) {
		t.Fatalf("len(segs) = %d, want %d", len(segs), len(want))
	}
	for i := range want {
		if segs[i] != want[i] {
			t.Errorf("segs[%d] = %v, want %v", i, segs[i], want[i])
		}
	}
}

func TestProject_DoesNotClampUVs(t *testing.T) {
	tris := []Triangle{{{X: -0.5, Y: 0}, {X: 1.5, Y: 0}, {X: 0, Y: 2}}}

	segs := Project(tris, 100)
	if segs[0].From.X != -50 {
		t.Errorf("From.X = %v, want -50", segs[0].From.X)
	}
	if segs[0].To.X != 150 {
		t.Errorf("To.X = %v, want 150", segs[0].To.X)
	}
	if segs[1].To.Y != 200 {
		t.Errorf("To.Y = %v, want 200", segs[1].To.Y)
	}
}

func TestProject_MinimalMeshRoundTrip(t *testing.T) {
	// A one-triangle legacy mesh decodes to the synthesized "Base" submesh
	// and projects to the canvas-edge segments.
	w := formats.NewByteWriter()
	w.WriteU32(0x00112233)
	w.WriteU16(0, 1)
	w.WriteU32(3, 3)
	w.WriteU16(0, 1, 2)
	uvs := []geom.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	for _, uv := range uvs {
		w.WriteVec3(geom.Vec3{})
		w.WriteBytes([]byte{0, 0, 0, 0})
		w.WriteF32(1, 0, 0, 0)
		w.Pad(12)
		w.WriteVec2(uv)
	}

	skn, err := formats.ParseSKN(w.Bytes())
	if err != nil {
		t.Fatalf("ParseSKN: %v", err)
	}
	if len(skn.Submeshes) != 1 || skn.Submeshes[0].Name != "Base" {
		t.Fatalf("Submeshes = %+v, want one named \"Base\"", skn.Submeshes)
	}
	if len(skn.Indices) != 3 || len(skn.Vertices) != 3 {
		t.Fatalf("decoded %d indices, %d vertices, want 3 and 3", len(skn.Indices), len(skn.Vertices))
	}

	tris, err := SubmeshTriangles(skn, skn.Submeshes[0])
	if err != nil {
		t.Fatalf("SubmeshTriangles: %v", err)
	}
	segs := Project(tris, 1024)
	want := []Segment{
		{From: geom.Vec2{X: 0, Y: 0}, To: geom.Vec2{X: 1024, Y: 0}},
		{From: geom.Vec2{X: 1024, Y: 0}, To: geom.Vec2{X: 0, Y: 1024}},
		{From: geom.Vec2{X: 0, Y: 1024}, To: geom.Vec2{X: 0, Y: 0}},
	}
	if len(segs) != 3 {
		t.Fatalf("len(segs) = %d, want 3", len(segs))
	}
	for i := range want {
		if segs[i] != want[i] {
			t.Errorf("segs[%d] = %v, want %v", i, segs[i], want[i])
		}
	}
}
