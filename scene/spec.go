package scene

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/wherewasi/ecs/component"
)

// Spec is a yaml scene file: the entities to spawn and their starting poses.
type Spec struct {
	Entities []EntitySpec `yaml:"entities"`
}

type EntitySpec struct {
	Name string `yaml:"name"`
	// Persist names the entity's save file; empty means the entity's
	// transform is not persisted.
	Persist   string        `yaml:"persist"`
	Transform TransformSpec `yaml:"transform"`
}

type TransformSpec struct {
	Translation [3]float32 `yaml:"translation"`
	Rotation    [4]float32 `yaml:"rotation"`
	Scale       [3]float32 `yaml:"scale"`
}

// Transform converts the spec to a component. An omitted rotation (all
// zeros) becomes the identity quaternion, and an omitted scale becomes unit
// scale, so minimal scene files spawn sane poses.
func (ts TransformSpec) Transform() component.Transform {
	t := component.IdentityTransform()
	t.Translation = mgl32.Vec3{ts.Translation[0], ts.Translation[1], ts.Translation[2]}
	if ts.Rotation != [4]float32{} {
		t.Rotation = mgl32.Quat{
			W: ts.Rotation[3],
			V: mgl32.Vec3{ts.Rotation[0], ts.Rotation[1], ts.Rotation[2]},
		}
	}
	if ts.Scale != [3]float32{} {
		t.Scale = mgl32.Vec3{ts.Scale[0], ts.Scale[1], ts.Scale[2]}
	}
	return t
}

// LoadSpec reads and unmarshals a yaml spec file.
func LoadSpec[T any](path string) (T, error) {
	var zero T
	data, err := os.ReadFile(path)
	if err != nil {
		return zero, fmt.Errorf("scene: load %s: %w", path, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("scene: unmarshal %s: %w", path, err)
	}

	return spec, nil
}

// Load reads a scene file.
func Load(path string) (*Spec, error) {
	spec, err := LoadSpec[Spec](path)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
