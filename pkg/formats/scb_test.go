package formats

import (
	"errors"
	"testing"

	"github.com/leaguetools/uvee/pkg/geom"
)

// writeSCBHeader appends magic, version, reserved pad, counts, and the
// bounding box placeholder.
func writeSCBHeader(w *ByteWriter, major, minor uint16, vertexCount, faceCount, flags uint32) {
	w.WriteASCII(scbMagic)
	w.WriteU16(major, minor)
	w.Pad(128)
	w.WriteU32(vertexCount, faceCount, flags)
	w.Pad(24)
}

// writeSCBFace appends one retained face record.
func writeSCBFace(w *ByteWriter, i0, i1, i2 uint32, material string, u [3]float32, v [3]float32) {
	w.WriteU32(i0, i1, i2)
	w.WritePaddedASCII(64, material)
	w.WriteF32(u[0], u[1], u[2], v[0], v[1], v[2])
}

func TestParseSCB(t *testing.T) {
	w := NewByteWriter()
	writeSCBHeader(w, 3, 1, 3, 1, SCBFlagOriginPivot)
	w.WriteVec3(geom.Vec3{}, geom.Vec3{X: 1}, geom.Vec3{Y: 1})
	w.WriteVec3(geom.Vec3{X: 4, Y: 5, Z: 6})
	writeSCBFace(w, 0, 1, 2, "stone", [3]float32{0, 1, 1}, [3]float32{0, 0, 1})

	obj, err := ParseSCB(w.Bytes())
	if err != nil {
		t.Fatalf("ParseSCB: %v", err)
	}
	if len(obj.Vertices) != 3 {
		t.Fatalf("len(Vertices) = %d, want 3", len(obj.Vertices))
	}
	if obj.Vertices[1] != (geom.Vec3{X: 1}) {
		t.Errorf("Vertices[1] = %v", obj.Vertices[1])
	}
	if obj.Central != (geom.Vec3{X: 4, Y: 5, Z: 6}) {
		t.Errorf("Central = %v", obj.Central)
	}
	if obj.HasPivot {
		t.Error("HasPivot = true for binary input")
	}
	if obj.Material != "stone" {
		t.Errorf("Material = %q, want \"stone\"", obj.Material)
	}
	if obj.FaceCount() != 1 {
		t.Fatalf("FaceCount() = %d, want 1", obj.FaceCount())
	}
	// The planar block (u0 u1 u2 v0 v1 v2) pairs up by position.
	uv := obj.UVTriangle(0)
	want := [3]geom.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	if uv != want {
		t.Errorf("UVTriangle(0) = %v, want %v", uv, want)
	}
	if obj.Flags != SCBFlagOriginPivot || obj.HasVertexColors() {
		t.Errorf("Flags = %d, HasVertexColors = %v", obj.Flags, obj.HasVertexColors())
	}
}

func TestParseSCB_BadMagic(t *testing.T) {
	w := NewByteWriter()
	w.WriteASCII("r3d2Sqel")
	w.WriteU16(3, 1)
	if _, err := ParseSCB(w.Bytes()); !errors.Is(err, ErrBadMagic) {
		t.Errorf("err = %v, want ErrBadMagic", err)
	}
	if _, err := ParseSCB([]byte("r3d2")); !errors.Is(err, ErrTruncatedInput) {
		t.Errorf("short magic: err = %v, want ErrTruncatedInput", err)
	}
}

func TestParseSCB_VersionGuard(t *testing.T) {
	tests := []struct {
		major, minor uint16
		rejected     bool
	}{
		{2, 2, false},
		{3, 1, false},
		{3, 2, false},
		{4, 4, true},
		{1, 0, true},
		// An unknown major slips past the guard when the minor is 1.
		{1, 1, false},
	}
	for _, tt := range tests {
		w := NewByteWriter()
		w.WriteASCII(scbMagic)
		w.WriteU16(tt.major, tt.minor)
		_, err := ParseSCB(w.Bytes())
		if err == nil {
			t.Errorf("%d.%d: headerless stream parsed without error", tt.major, tt.minor)
			continue
		}
		if got := errors.Is(err, ErrUnsupportedVersion); got != tt.rejected {
			t.Errorf("%d.%d: rejected = %v, want %v (err %v)", tt.major, tt.minor, got, tt.rejected, err)
		}
	}
}

func TestParseSCB_VertexTypeColorBlock(t *testing.T) {
	// Only the 3.2 header carries a vertex type; type 1 inserts a color
	// byte per vertex channel between positions and the central point.
	w := NewByteWriter()
	writeSCBHeader(w, 3, 2, 2, 0, SCBFlagOriginPivot|SCBFlagVertexColor)
	w.WriteU32(1)
	w.WriteVec3(geom.Vec3{X: 1}, geom.Vec3{X: 2})
	w.WriteBytes([]byte{0xAA, 0xBB, 0xCC, 0xDD, 0x11, 0x22, 0x33, 0x44})
	w.WriteVec3(geom.Vec3{Z: 7})

	obj, err := ParseSCB(w.Bytes())
	if err != nil {
		t.Fatalf("ParseSCB: %v", err)
	}
	if obj.Central != (geom.Vec3{Z: 7}) {
		t.Errorf("Central = %v, want z=7", obj.Central)
	}
	if !obj.HasVertexColors() {
		t.Error("HasVertexColors() = false")
	}

	// Type 0 carries no color block.
	w = NewByteWriter()
	writeSCBHeader(w, 3, 2, 1, 0, SCBFlagOriginPivot)
	w.WriteU32(0)
	w.WriteVec3(geom.Vec3{X: 3})
	w.WriteVec3(geom.Vec3{Z: 8})

	obj, err = ParseSCB(w.Bytes())
	if err != nil {
		t.Fatalf("ParseSCB (type 0): %v", err)
	}
	if obj.Central != (geom.Vec3{Z: 8}) {
		t.Errorf("Central = %v, want z=8", obj.Central)
	}
}

func TestParseSCB_DegenerateFaceRecordEndsAtIndices(t *testing.T) {
	// A degenerate face's record holds only its three indices. The decoder
	// must resume at the next record without consuming material or UVs.
	w := NewByteWriter()
	writeSCBHeader(w, 3, 1, 3, 2, SCBFlagOriginPivot)
	w.WriteVec3(geom.Vec3{}, geom.Vec3{X: 1}, geom.Vec3{Y: 1})
	w.WriteVec3(geom.Vec3{})
	w.WriteU32(1, 1, 2)
	writeSCBFace(w, 0, 1, 2, "keep", [3]float32{0, 1, 1}, [3]float32{0, 0, 1})

	obj, err := ParseSCB(w.Bytes())
	if err != nil {
		t.Fatalf("ParseSCB: %v", err)
	}
	if obj.FaceCount() != 1 {
		t.Errorf("FaceCount() = %d, want 1", obj.FaceCount())
	}
	if obj.Material != "keep" {
		t.Errorf("Material = %q, want \"keep\"", obj.Material)
	}
	wantIdx := []uint32{0, 1, 2}
	for i, want := range wantIdx {
		if obj.Indices[i] != want {
			t.Errorf("Indices[%d] = %d, want %d", i, obj.Indices[i], want)
		}
	}
}

func TestParseSCB_UVsMatchTextVariant(t *testing.T) {
	// The same face decodes to identical corner UVs whether it came from
	// the planar binary block or the interleaved text row.
	w := NewByteWriter()
	writeSCBHeader(w, 3, 1, 3, 1, SCBFlagOriginPivot)
	w.WriteVec3(geom.Vec3{}, geom.Vec3{X: 1}, geom.Vec3{Y: 1})
	w.WriteVec3(geom.Vec3{})
	writeSCBFace(w, 0, 1, 2, "mat", [3]float32{0.1, 0.3, 0.5}, [3]float32{0.2, 0.4, 0.6})

	bin, err := ParseSCB(w.Bytes())
	if err != nil {
		t.Fatalf("ParseSCB: %v", err)
	}

	text, err := ParseSCO(scoLines(
		"[ObjectBegin]",
		"Verts= 3",
		"0 0 0",
		"1 0 0",
		"0 1 0",
		"Faces= 1",
		"0 0 1 2 mat 0.1 0.2 0.3 0.4 0.5 0.6",
	))
	if err != nil {
		t.Fatalf("ParseSCO: %v", err)
	}

	if bin.UVTriangle(0) != text.UVTriangle(0) {
		t.Errorf("binary UVs %v != text UVs %v", bin.UVTriangle(0), text.UVTriangle(0))
	}
}

func TestParseSCB_Truncated(t *testing.T) {
	w := NewByteWriter()
	writeSCBHeader(w, 3, 1, 3, 1, SCBFlagOriginPivot)
	w.WriteVec3(geom.Vec3{}, geom.Vec3{X: 1}, geom.Vec3{Y: 1})
	w.WriteVec3(geom.Vec3{})
	writeSCBFace(w, 0, 1, 2, "mat", [3]float32{0, 1, 1}, [3]float32{0, 0, 1})
	full := w.Bytes()

	for _, n := range []int{4, 170, 220, 300} {
		if _, err := ParseSCB(full[:n]); !errors.Is(err, ErrTruncatedInput) {
			t.Errorf("truncated at %d: err = %v, want ErrTruncatedInput", n, err)
		}
	}
}

func TestParseSCB_CountGuards(t *testing.T) {
	w := NewByteWriter()
	writeSCBHeader(w, 3, 1, 0x10000000, 0, 0)
	if _, err := ParseSCB(w.Bytes()); !errors.Is(err, ErrTruncatedInput) {
		t.Errorf("vertex bomb: err = %v, want ErrTruncatedInput", err)
	}

	w = NewByteWriter()
	writeSCBHeader(w, 3, 1, 1, 0x10000000, 0)
	w.WriteVec3(geom.Vec3{})
	w.WriteVec3(geom.Vec3{})
	if _, err := ParseSCB(w.Bytes()); !errors.Is(err, ErrTruncatedInput) {
		t.Errorf("face bomb: err = %v, want ErrTruncatedInput", err)
	}
}
