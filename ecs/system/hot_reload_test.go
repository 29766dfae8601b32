package system

import (
	"testing"
	"time"

	"github.com/milk9111/wherewasi/ecs"
	"github.com/milk9111/wherewasi/ecs/component"
	"github.com/milk9111/wherewasi/state"
)

func TestHotReloadAppliesChangedFile(t *testing.T) {
	dir := t.TempDir()

	hr, err := NewHotReloadSystem(dir)
	if err != nil {
		t.Fatalf("new hot reload system failed: %v", err)
	}
	defer hr.Close()

	w := ecs.NewWorld()
	w.AddSystem(hr)
	camera := spawnTagged(t, w, "camera", component.IdentityTransform())
	crate := spawnTagged(t, w, "crate", component.IdentityTransform())

	// Edit the camera's save file on disk while the world is running.
	if err := state.Save(dir, "camera", testTransform); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		w.Update()
		got, ok := ecs.Get(w, camera, component.TransformComponent.Kind())
		if !ok {
			t.Fatal("camera transform missing")
		}
		if *got == testTransform {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("transform never re-applied, still %+v", *got)
		}
		time.Sleep(10 * time.Millisecond)
	}

	// Only the edited entity's pose changes.
	other, _ := ecs.Get(w, crate, component.TransformComponent.Kind())
	if *other != component.IdentityTransform() {
		t.Fatalf("crate should be untouched, got %+v", *other)
	}
}

func TestHotReloadSurvivesClose(t *testing.T) {
	hr, err := NewHotReloadSystem(t.TempDir())
	if err != nil {
		t.Fatalf("new hot reload system failed: %v", err)
	}

	if err := hr.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	// Updates after Close are no-ops, not panics.
	w := ecs.NewWorld()
	w.AddSystem(hr)
	w.Update()
	w.Update()
}
