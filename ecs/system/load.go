package system

import (
	"errors"
	"io/fs"
	"log"

	"github.com/milk9111/wherewasi/ecs"
	"github.com/milk9111/wherewasi/ecs/component"
	"github.com/milk9111/wherewasi/state"
)

// LoadSystem restores tagged transforms from disk on its first Update and is
// inert afterwards. An entity with no save file keeps whatever transform it
// already has; a file that fails to decode is logged and skipped.
type LoadSystem struct {
	dir         string
	initialized bool
}

func NewLoadSystem(dir string) *LoadSystem {
	return &LoadSystem{dir: dir}
}

func (s *LoadSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.initialized {
		return
	}
	s.initialized = true

	restored := 0
	ecs.ForEach2(w, component.WhereWasIComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, tag *component.WhereWasI, tf *component.Transform) {
			loaded, err := state.Load(s.dir, tag.Name)
			if err != nil {
				if !errors.Is(err, fs.ErrNotExist) {
					log.Printf("Could not deserialize transform: %v", err)
				}
				return
			}
			*tf = loaded
			restored++
		})
	log.Printf("Initialized %d transform(s)", restored)
}
