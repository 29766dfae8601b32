package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/milk9111/wherewasi/ecs"
	"github.com/milk9111/wherewasi/ecs/component"
)

const sceneYAML = `entities:
  - name: camera
    persist: camera
    transform:
      translation: [10, 10, 10]
      rotation: [-0.27984813, 0.36470526, 0.11591691, 0.88047624]
  - name: crate
    transform:
      translation: [-4, 2, 0]
      scale: [2, 2, 2]
  - name: origin-marker
`

func writeScene(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(sceneYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadScene(t *testing.T) {
	spec, err := Load(writeScene(t))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if len(spec.Entities) != 3 {
		t.Fatalf("expected 3 entities, got %d", len(spec.Entities))
	}
	if spec.Entities[0].Persist != "camera" {
		t.Fatalf("expected camera persist tag, got %q", spec.Entities[0].Persist)
	}
	if spec.Entities[1].Persist != "" {
		t.Fatalf("crate should not be persisted")
	}
}

func TestTransformSpecDefaults(t *testing.T) {
	cases := []struct {
		name string
		spec TransformSpec
		want component.Transform
	}{
		{
			name: "empty_is_identity",
			spec: TransformSpec{},
			want: component.IdentityTransform(),
		},
		{
			name: "translation_only",
			spec: TransformSpec{Translation: [3]float32{1, 2, 3}},
			want: component.Transform{
				Translation: mgl32.Vec3{1, 2, 3},
				Rotation:    mgl32.QuatIdent(),
				Scale:       mgl32.Vec3{1, 1, 1},
			},
		},
		{
			name: "full",
			spec: TransformSpec{
				Translation: [3]float32{1, 2, 3},
				Rotation:    [4]float32{0, 1, 0, 0},
				Scale:       [3]float32{2, -1, 0.5},
			},
			want: component.Transform{
				Translation: mgl32.Vec3{1, 2, 3},
				Rotation:    mgl32.Quat{W: 0, V: mgl32.Vec3{0, 1, 0}},
				Scale:       mgl32.Vec3{2, -1, 0.5},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.spec.Transform(); got != c.want {
				t.Fatalf("got %+v, want %+v", got, c.want)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	spec, err := Load(writeScene(t))
	if err != nil {
		t.Fatal(err)
	}

	w := ecs.NewWorld()
	ents, err := Build(w, spec)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if len(ents) != 3 {
		t.Fatalf("expected 3 entities, got %d", len(ents))
	}

	tf, ok := ecs.Get(w, ents[0], component.TransformComponent.Kind())
	if !ok {
		t.Fatal("camera transform missing")
	}
	if tf.Translation != (mgl32.Vec3{10, 10, 10}) {
		t.Fatalf("unexpected camera translation %v", tf.Translation)
	}
	if tf.Rotation.W != 0.88047624 {
		t.Fatalf("unexpected camera rotation w %v", tf.Rotation.W)
	}

	if !ecs.Has(w, ents[0], component.WhereWasIComponent.Kind()) {
		t.Fatal("camera should carry the save tag")
	}
	if ecs.Has(w, ents[1], component.WhereWasIComponent.Kind()) {
		t.Fatal("crate should not carry the save tag")
	}

	// The bare entity still gets a sane identity pose.
	tf3, ok := ecs.Get(w, ents[2], component.TransformComponent.Kind())
	if !ok {
		t.Fatal("origin-marker transform missing")
	}
	if *tf3 != component.IdentityTransform() {
		t.Fatalf("expected identity pose, got %+v", *tf3)
	}
}
