package ecs

import "github.com/mirrorhall/mirrorhall/ecs/component"

// System updates a world once per logic tick.
type System interface {
	Update(w *World)
}

// World owns entities, component storage, and system order. It is not
// goroutine-safe; everything runs on the game loop.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*sparseSet
	systems  []System
}

func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*sparseSet)}
}

func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity marks an entity dead and drops its components. Returns false
// for stale handles.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	return true
}

func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// Entities returns all live entities.
func (w *World) Entities() []Entity {
	return w.entities.alive()
}

func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once in registration order.
func (w *World) Update() {
	for _, s := range w.systems {
		s.Update(w)
	}
}

func (w *World) store(id component.ComponentID) *sparseSet {
	s, ok := w.stores[id]
	if !ok {
		s = &sparseSet{}
		w.stores[id] = s
	}
	return s
}

func (w *World) storeIfPresent(id component.ComponentID) *sparseSet {
	return w.stores[id]
}
