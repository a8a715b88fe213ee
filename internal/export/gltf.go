// Package export writes decoded geometry to interchange formats: glTF 2.0
// (JSON or binary) and Wavefront OBJ. Exports carry positions and UVs only;
// bone influences and weights stay behind because the consumers of these
// files want the shape and its texture mapping, not the rig.
package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/leaguetools/uvee/internal/wireframe"
	"github.com/leaguetools/uvee/pkg/formats"
)

// SkinnedDocument builds a glTF document with one mesh and one node per
// submesh. Submesh windows are sliced and rebased exactly as for wireframe
// projection, so each primitive's indices address its own accessors.
func SkinnedDocument(skn *formats.SKN) (*gltf.Document, error) {
	doc := gltf.NewDocument()
	doc.Materials = append(doc.Materials, &gltf.Material{
		Name:        "default",
		DoubleSided: true,
	})

	for _, sub := range skn.Submeshes {
		sl, err := wireframe.SliceSubmesh(skn, sub)
		if err != nil {
			return nil, fmt.Errorf("submesh %q: %w", sub.Name, err)
		}

		positions := make([][3]float32, len(sl.Vertices))
		uvs := make([][2]float32, len(sl.Vertices))
		for i, v := range sl.Vertices {
			positions[i] = [3]float32{v.Position.X, v.Position.Y, v.Position.Z}
			uvs[i] = [2]float32{v.UV.X, v.UV.Y}
		}

		attributes := map[string]uint32{
			"POSITION":   modeler.WritePosition(doc, positions),
			"TEXCOORD_0": modeler.WriteTextureCoord(doc, uvs),
		}
		indices := modeler.WriteIndices(doc, sl.Indices)

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: sub.Name,
			Primitives: []*gltf.Primitive{{
				Indices:    gltf.Index(indices),
				Attributes: attributes,
				Material:   gltf.Index(0),
			}},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: sub.Name,
			Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
	}

	return doc, nil
}

// StaticDocument builds a glTF document for a static object. Static UVs are
// face-corner attributes while glTF attributes are per vertex, so the mesh is
// expanded to unshared corners: three vertices per retained face, indexed
// sequentially.
func StaticDocument(obj *formats.StaticObject, name string) (*gltf.Document, error) {
	doc := gltf.NewDocument()
	material := "default"
	if obj.Material != "" {
		material = obj.Material
	}
	doc.Materials = append(doc.Materials, &gltf.Material{
		Name:        material,
		DoubleSided: true,
	})

	corners := obj.FaceCount() * 3
	if corners == 0 {
		// Every face was dropped; an empty scene is still a valid document.
		return doc, nil
	}

	positions := make([][3]float32, corners)
	uvs := make([][2]float32, corners)
	indices := make([]uint32, corners)
	for i := 0; i < corners; i++ {
		vi := obj.Indices[i]
		if int(vi) >= len(obj.Vertices) {
			return nil, fmt.Errorf("face %d corner %d: %w: vertex %d, %d vertices",
				i/3, i%3, wireframe.ErrVertexOutOfRange, vi, len(obj.Vertices))
		}
		p := obj.Vertices[vi]
		positions[i] = [3]float32{p.X, p.Y, p.Z}
		uvs[i] = [2]float32{obj.UVs[i].X, obj.UVs[i].Y}
		indices[i] = uint32(i)
	}

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: name,
		Primitives: []*gltf.Primitive{{
			Indices: gltf.Index(modeler.WriteIndices(doc, indices)),
			Attributes: map[string]uint32{
				"POSITION":   modeler.WritePosition(doc, positions),
				"TEXCOORD_0": modeler.WriteTextureCoord(doc, uvs),
			},
			Material: gltf.Index(0),
		}},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: name, Mesh: gltf.Index(0)})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	return doc, nil
}

// WriteGLTF saves a document to path, choosing the binary container when the
// extension is .glb and JSON otherwise. JSON output embeds buffer data as
// data URIs so the result stays a single file.
func WriteGLTF(doc *gltf.Document, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".glb") {
		return gltf.SaveBinary(doc, path)
	}
	for _, b := range doc.Buffers {
		if b.URI == "" && len(b.Data) > 0 {
			b.EmbeddedResource()
		}
	}
	return gltf.Save(doc, path)
}
