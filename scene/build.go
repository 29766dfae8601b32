package scene

import (
	"fmt"

	"github.com/milk9111/wherewasi/ecs"
	"github.com/milk9111/wherewasi/ecs/component"
)

// Build spawns every entity in spec into w and returns the created handles
// in spec order.
func Build(w *ecs.World, spec *Spec) ([]ecs.Entity, error) {
	if w == nil || spec == nil {
		return nil, fmt.Errorf("scene: nil world or spec")
	}

	ents := make([]ecs.Entity, 0, len(spec.Entities))
	for _, es := range spec.Entities {
		e := ecs.CreateEntity(w)

		tf := es.Transform.Transform()
		if err := ecs.Add(w, e, component.TransformComponent.Kind(), &tf); err != nil {
			return nil, fmt.Errorf("scene: entity %q: %w", es.Name, err)
		}

		if es.Persist != "" {
			tag := component.WhereWasI{Name: es.Persist}
			if err := ecs.Add(w, e, component.WhereWasIComponent.Kind(), &tag); err != nil {
				return nil, fmt.Errorf("scene: entity %q: %w", es.Name, err)
			}
		}

		ents = append(ents, e)
	}
	return ents, nil
}
