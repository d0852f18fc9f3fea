package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive = errors.New("ecs: entity not alive")
	ErrNilComponent   = errors.New("ecs: component is nil")
)

// ComponentID identifies a component type at runtime. IDs are handed out
// once per Kind at package init and are never reused.
type ComponentID uint32

var nextComponentID atomic.Uint32

// Kind is a typed component identifier. Declaring one per component type
// (package-level var) gives compile-time pairing between a component struct
// and its storage.
type Kind[T any] struct {
	id ComponentID
}

func NewKind[T any]() Kind[T] {
	return Kind[T]{id: ComponentID(nextComponentID.Add(1))}
}

func (k Kind[T]) ID() ComponentID {
	return k.id
}

func (k Kind[T]) Valid() bool {
	return k.id != 0
}
