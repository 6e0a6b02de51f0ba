package geometry

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// LoadOBJ reads a Wavefront OBJ model from disk.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model file: %v", err)
	}
	defer f.Close()

	m, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v", path, err)
	}
	return m, nil
}

// ParseOBJ parses the v/vt/vn/f subset of the Wavefront OBJ format.
// Faces with more than three corners are fan-triangulated. OBJ fronts wind
// counter-clockwise in a y-up plane, the opposite of this renderer's screen
// convention, so every face is emitted with its last two corners swapped.
// Models without normals get smooth vertex normals accumulated from face
// normals.
func ParseOBJ(r io.Reader) (*Mesh, error) {
	var (
		positions []mgl32.Vec4
		uvs       []mgl32.Vec2
		normals   []mgl32.Vec3
	)

	seen := make(map[objCorner]int)
	mesh := &Mesh{}

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex position: %v", line, err)
			}
			positions = append(positions, mgl32.Vec4{v[0], v[1], v[2], 1})

		case "vt":
			v, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: texture coordinate: %v", line, err)
			}
			uvs = append(uvs, mgl32.Vec2{v[0], v[1]})

		case "vn":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex normal: %v", line, err)
			}
			normals = append(normals, mgl32.Vec3{v[0], v[1], v[2]})

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 corners, got %d", line, len(fields)-1)
			}
			face := make([]int, 0, len(fields)-1)
			for _, spec := range fields[1:] {
				c, err := parseCorner(spec, len(positions), len(uvs), len(normals))
				if err != nil {
					return nil, fmt.Errorf("line %d: %v", line, err)
				}
				idx, ok := seen[c]
				if !ok {
					idx = len(mesh.Vertices)
					seen[c] = idx
					vtx := Vertex{
						Position: positions[c.v],
						Color:    mgl32.Vec4{1, 1, 1, 1},
					}
					if c.vt >= 0 {
						vtx.UV = uvs[c.vt]
					}
					if c.vn >= 0 {
						vtx.Normal = normals[c.vn]
					}
					mesh.Vertices = append(mesh.Vertices, vtx)
				}
				face = append(face, idx)
			}
			for i := 1; i+1 < len(face); i++ {
				mesh.Indices = append(mesh.Indices, face[0], face[i+1], face[i])
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read: %v", err)
	}
	if len(mesh.Indices) == 0 {
		return nil, fmt.Errorf("no faces found")
	}

	if len(normals) == 0 {
		accumulateNormals(mesh)
	}
	return mesh, nil
}

// objCorner identifies one face corner by its position/uv/normal indices;
// -1 marks a missing component.
type objCorner struct{ v, vt, vn int }

// parseCorner resolves one face corner of the form v, v/vt, v//vn or
// v/vt/vn. OBJ indices are 1-based; negative indices count back from the end
// of the respective list.
func parseCorner(spec string, nv, nvt, nvn int) (objCorner, error) {
	c := objCorner{-1, -1, -1}
	parts := strings.Split(spec, "/")
	if len(parts) > 3 {
		return c, fmt.Errorf("malformed face corner %q", spec)
	}

	resolve := func(s string, n int) (int, error) {
		i, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("malformed index %q", s)
		}
		if i < 0 {
			i += n
		} else {
			i--
		}
		if i < 0 || i >= n {
			return 0, fmt.Errorf("index %q out of range (%d entries)", s, n)
		}
		return i, nil
	}

	var err error
	if c.v, err = resolve(parts[0], nv); err != nil {
		return c, err
	}
	if len(parts) > 1 && parts[1] != "" {
		if c.vt, err = resolve(parts[1], nvt); err != nil {
			return c, err
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if c.vn, err = resolve(parts[2], nvn); err != nil {
			return c, err
		}
	}
	return c, nil
}

func parseFloats(fields []string, min int) ([]float32, error) {
	if len(fields) < min {
		return nil, fmt.Errorf("want %d components, got %d", min, len(fields))
	}
	out := make([]float32, min)
	for i := 0; i < min; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, fmt.Errorf("unable to parse float %q", fields[i])
		}
		out[i] = float32(f)
	}
	return out, nil
}

// accumulateNormals derives smooth vertex normals from face geometry. Faces
// were emitted with reversed winding, so the cross order below restores the
// file's outward orientation.
func accumulateNormals(m *Mesh) {
	for n := 0; n < m.TriangleCount(); n++ {
		v0, v1, v2 := m.Triangle(n)
		p0 := v0.Position.Vec3()
		face := v2.Position.Vec3().Sub(p0).Cross(v1.Position.Vec3().Sub(p0))
		v0.Normal = v0.Normal.Add(face)
		v1.Normal = v1.Normal.Add(face)
		v2.Normal = v2.Normal.Add(face)
	}
	for i := range m.Vertices {
		if n := m.Vertices[i].Normal; n.Len() > 0 {
			m.Vertices[i].Normal = n.Normalize()
		}
	}
}
