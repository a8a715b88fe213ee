//go:build ignore

// This program generates small sample model files for manual runs of the
// uvee command. Run with: go run generate.go
package main

import (
	"os"
	"strings"

	"github.com/leaguetools/uvee/pkg/formats"
	"github.com/leaguetools/uvee/pkg/geom"
)

func main() {
	writeSampleSKN("sample.skn")
	writeSampleSCO("sample.sco")
	writeSampleSCB("sample.scb")
	println("Generated sample.skn, sample.sco, sample.scb")
}

// writeSampleSKN emits a 4.1 skinned mesh with two submeshes, each a quad
// occupying half of the UV square.
func writeSampleSKN(path string) {
	w := formats.NewByteWriter()
	w.WriteU32(0x00112233)
	w.WriteU16(4, 1)

	w.WriteU32(2)
	w.WritePaddedASCII(64, "Body")
	w.WriteU32(0, 4, 0, 6)
	w.WritePaddedASCII(64, "Head")
	w.WriteU32(4, 4, 6, 6)
	w.Pad(4) // flags

	w.WriteU32(12, 8)
	w.Pad(4)      // vertex size
	w.WriteU32(0) // vertex type
	w.Pad(24)     // bounding box
	w.Pad(16)     // bounding sphere

	w.WriteU16(0, 1, 2, 0, 2, 3)
	w.WriteU16(4, 5, 6, 4, 6, 7)

	quads := [][4]geom.Vec2{
		{{X: 0.05, Y: 0.05}, {X: 0.45, Y: 0.05}, {X: 0.45, Y: 0.45}, {X: 0.05, Y: 0.45}},
		{{X: 0.55, Y: 0.55}, {X: 0.95, Y: 0.55}, {X: 0.95, Y: 0.95}, {X: 0.55, Y: 0.95}},
	}
	for qi, quad := range quads {
		for ci, uv := range quad {
			w.WriteVec3(geom.Vec3{X: float32(ci), Y: float32(qi), Z: 0})
			w.WriteBytes([]byte{0, 0, 0, 0})
			w.WriteF32(1, 0, 0, 0)
			w.Pad(12) // normal
			w.WriteVec2(uv)
		}
	}

	mustWrite(path, w.Bytes())
}

// writeSampleSCO emits a text static object holding one quad.
func writeSampleSCO(path string) {
	lines := []string{
		"[ObjectBegin]",
		"Name= sample",
		"CentralPoint= 0.5 0.5 0.0",
		"Verts= 4",
		"0 0 0",
		"1 0 0",
		"1 1 0",
		"0 1 0",
		"Faces= 2",
		"0\t0 1 2\tsample_mat\t0.1 0.1 0.9 0.1 0.9 0.9",
		"1\t0 2 3\tsample_mat\t0.1 0.1 0.9 0.9 0.1 0.9",
		"[ObjectEnd]",
	}
	mustWrite(path, []byte(strings.Join(lines, "\r\n")+"\r\n"))
}

// writeSampleSCB emits a 3.2 binary static object holding one triangle.
func writeSampleSCB(path string) {
	w := formats.NewByteWriter()
	w.WriteASCII("r3d2Mesh")
	w.WriteU16(3, 2)
	w.Pad(128)
	w.WriteU32(3, 1, 2)
	w.Pad(24)     // bounding box
	w.WriteU32(0) // vertex type
	w.WriteVec3(geom.Vec3{}, geom.Vec3{X: 1}, geom.Vec3{Y: 1})
	w.WriteVec3(geom.Vec3{X: 0.5, Y: 0.5})
	w.WriteU32(0, 1, 2)
	w.WritePaddedASCII(64, "sample_mat")
	w.WriteF32(0.1, 0.9, 0.5, 0.1, 0.1, 0.9)
	mustWrite(path, w.Bytes())
}

func mustWrite(path string, data []byte) {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		panic(err)
	}
}
