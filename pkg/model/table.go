package model

import (
	"slices"

	"github.com/mash-protocol/lwm2m-go/pkg/wire"
)

// ObjectTable holds objects keyed by id. It is not safe for concurrent use;
// the owner serializes access.
type ObjectTable struct {
	objects map[uint16]*Object
}

// NewObjectTable creates an empty table.
func NewObjectTable() *ObjectTable {
	return &ObjectTable{objects: make(map[uint16]*Object)}
}

// Add inserts an object. An existing object with the same id is kept and
// StatusForbidden is returned.
func (t *ObjectTable) Add(o *Object) error {
	if _, exists := t.objects[o.ID]; exists {
		return wire.Errorf(wire.StatusForbidden, "object %d already exists", o.ID)
	}
	t.objects[o.ID] = o
	return nil
}

// Remove deletes an object by id.
func (t *ObjectTable) Remove(id uint16) error {
	if _, exists := t.objects[id]; !exists {
		return wire.Errorf(wire.StatusNotFound, "object %d not found", id)
	}
	delete(t.objects, id)
	return nil
}

// Get returns the object with the given id, or nil.
func (t *ObjectTable) Get(id uint16) *Object {
	return t.objects[id]
}

// IDs returns the object ids in ascending order.
func (t *ObjectTable) IDs() []uint16 {
	ids := make([]uint16, 0, len(t.objects))
	for id := range t.objects {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Len returns the number of objects.
func (t *ObjectTable) Len() int {
	return len(t.objects)
}
