package system

import (
	"log"

	"github.com/milk9111/wherewasi/ecs"
	"github.com/milk9111/wherewasi/ecs/component"
	"github.com/milk9111/wherewasi/state"
)

// SaveSystem writes every tagged transform to disk when the window is
// closing. It watches the world event queue for EventWindowClosing and does
// nothing on ordinary frames.
type SaveSystem struct {
	dir string
}

func NewSaveSystem(dir string) *SaveSystem {
	return &SaveSystem{dir: dir}
}

func (s *SaveSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	closing := false
	for _, evt := range w.Events().Peek() {
		if evt.Type == ecs.EventWindowClosing {
			closing = true
			break
		}
	}
	if !closing {
		return
	}

	saved := 0
	ecs.ForEach2(w, component.WhereWasIComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, tag *component.WhereWasI, tf *component.Transform) {
			if err := state.Save(s.dir, tag.Name, *tf); err != nil {
				log.Printf("Could not save transform %q: %v", tag.Name, err)
				return
			}
			saved++
		})
	log.Printf("Saved %d transform(s) to: %s", saved, s.dir)
}
