package system

import (
	"errors"
	"io/fs"
	"log"

	"github.com/milk9111/wherewasi/ecs"
	"github.com/milk9111/wherewasi/ecs/component"
	"github.com/milk9111/wherewasi/state"
)

// HotReloadSystem re-applies a save file to its entity when the file changes
// on disk, so poses can be tweaked in a text editor while the world runs.
type HotReloadSystem struct {
	dir     string
	watcher *state.Watcher
}

func NewHotReloadSystem(dir string) (*HotReloadSystem, error) {
	watcher, err := state.NewWatcher(dir)
	if err != nil {
		return nil, err
	}
	return &HotReloadSystem{dir: dir, watcher: watcher}, nil
}

func (s *HotReloadSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.watcher == nil {
		return
	}

	for {
		select {
		case name, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			s.reload(w, name)
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("state watcher: %v", err)
		default:
			return
		}
	}
}

func (s *HotReloadSystem) reload(w *ecs.World, name string) {
	loaded, err := state.Load(s.dir, name)
	if err != nil {
		// A save mid-write or a deleted file; the next event catches up.
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Could not deserialize transform: %v", err)
		}
		return
	}

	ecs.ForEach2(w, component.WhereWasIComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, tag *component.WhereWasI, tf *component.Transform) {
			if tag.Name == name {
				*tf = loaded
			}
		})
}

func (s *HotReloadSystem) Close() error {
	if s == nil || s.watcher == nil {
		return nil
	}
	return s.watcher.Close()
}
