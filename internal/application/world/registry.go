// Package world owns the per-tick entity lifecycle: the three entity
// collections, the fixed update/collide/prune ordering, the camera and
// the session stats.
package world

import "github.com/younwookim/plumber/internal/domain/entity"

// Registry owns the three ordered entity collections. Insertion order
// defines update and draw order within a collection; an entity belongs
// to exactly one collection.
type Registry struct {
	props   []entity.Entity // interactive props: platforms, blocks
	hazards []entity.Entity // enemies and other lethal contacts
	effects []entity.Entity // transient visual entities
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// AddProp appends an interactive prop
func (r *Registry) AddProp(e entity.Entity) {
	r.props = append(r.props, e)
}

// AddHazard appends a hazard
func (r *Registry) AddHazard(e entity.Entity) {
	r.hazards = append(r.hazards, e)
}

// SpawnEffect appends a transient effect. Registry implements
// entity.Spawner so entities can request effects without owning the
// collections.
func (r *Registry) SpawnEffect(e entity.Entity) {
	r.effects = append(r.effects, e)
}

// Props returns the prop collection for rendering
func (r *Registry) Props() []entity.Entity { return r.props }

// Hazards returns the hazard collection for rendering
func (r *Registry) Hazards() []entity.Entity { return r.hazards }

// Effects returns the effect collection for rendering
func (r *Registry) Effects() []entity.Entity { return r.effects }

// Tick runs one fixed-order world step: props update and resolve
// against the player, then hazards, then effects, then the player
// integrates its own state (consuming any corrections the pushback
// passes left behind), then the camera re-centers. Effects run the
// collide pass too: most have no-op hooks, but the debris of a
// collapsed platform is still lethal while it falls. Pruning is
// deferred to the end so no collection is mutated mid-iteration. This
// ordering is load-bearing: platform riding depends on prop resolution
// running before player integration.
func (r *Registry) Tick(player *entity.Player, cam *Camera) {
	for _, p := range r.props {
		p.Update()
		entity.Collide(p, player)
	}
	for _, h := range r.hazards {
		h.Update()
		entity.Collide(h, player)
	}
	for _, fx := range r.effects {
		fx.Update()
		entity.Collide(fx, player)
	}
	player.Update()
	cam.Update()

	r.props = prune(r.props)
	r.hazards = prune(r.hazards)
	r.effects = prune(r.effects)
}

// prune filters dead entities in place, keeping the backing array and
// clearing the abandoned tail slots.
func prune(list []entity.Entity) []entity.Entity {
	kept := list[:0]
	for _, e := range list {
		if e.Body().Alive {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(list); i++ {
		list[i] = nil
	}
	return kept
}
