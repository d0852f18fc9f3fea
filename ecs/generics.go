package ecs

import "github.com/mirrorhall/mirrorhall/ecs/component"

// Add attaches a component to an entity, replacing any existing value of the
// same kind.
func Add[T any](w *World, e Entity, kind component.Kind[T], v *T) error {
	if v == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(kind.ID()).set(e.id(), v)
	return nil
}

// Get returns the entity's component of the given kind, if present. The
// returned pointer aliases storage; mutations stick without a re-Add.
func Get[T any](w *World, e Entity, kind component.Kind[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	s := w.storeIfPresent(kind.ID())
	if s == nil {
		return nil, false
	}
	v, ok := s.get(e.id()).(*T)
	if !ok {
		return nil, false
	}
	return v, true
}

func Has[T any](w *World, e Entity, kind component.Kind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

func Remove[T any](w *World, e Entity, kind component.Kind[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	s := w.storeIfPresent(kind.ID())
	if s == nil {
		return false
	}
	return s.remove(e.id())
}

// First returns any one entity carrying the given kind. Useful for
// singleton components (input state, control lock, transition runtime).
func First[T any](w *World, kind component.Kind[T]) (Entity, bool) {
	s := w.storeIfPresent(kind.ID())
	if s == nil {
		return 0, false
	}
	for _, id := range s.ids() {
		e := makeEntity(id, w.entities.gens[id-1])
		if w.IsAlive(e) {
			return e, true
		}
	}
	return 0, false
}

// ForEach visits every live entity carrying the given kind.
func ForEach[T any](w *World, kind component.Kind[T], fn func(Entity, *T)) {
	s := w.storeIfPresent(kind.ID())
	if s == nil {
		return
	}
	ids := append([]entityID(nil), s.ids()...)
	for _, id := range ids {
		e := makeEntity(id, w.entities.gens[id-1])
		if !w.IsAlive(e) {
			continue
		}
		if v, ok := s.get(id).(*T); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits entities carrying both kinds.
func ForEach2[A, B any](w *World, ka component.Kind[A], kb component.Kind[B], fn func(Entity, *A, *B)) {
	ForEach(w, ka, func(e Entity, a *A) {
		if b, ok := Get(w, e, kb); ok {
			fn(e, a, b)
		}
	})
}

// ForEach3 visits entities carrying all three kinds.
func ForEach3[A, B, C any](w *World, ka component.Kind[A], kb component.Kind[B], kc component.Kind[C], fn func(Entity, *A, *B, *C)) {
	ForEach2(w, ka, kb, func(e Entity, a *A, b *B) {
		if c, ok := Get(w, e, kc); ok {
			fn(e, a, b, c)
		}
	})
}
