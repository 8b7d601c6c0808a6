package model

import (
	"slices"
)

// InstanceKind tells whether an object has exactly one instance or many.
type InstanceKind uint8

const (
	// InstanceSingle objects have one implicit instance 0.
	InstanceSingle InstanceKind = iota

	// InstanceMultiple objects manage a set of instance ids.
	InstanceMultiple
)

// String returns the kind name.
func (k InstanceKind) String() string {
	switch k {
	case InstanceSingle:
		return "single"
	case InstanceMultiple:
		return "multiple"
	default:
		return "unknown"
	}
}

// DataOperation identifies the data callback request.
type DataOperation uint8

const (
	DataRead DataOperation = iota
	DataWrite
	DataExecute
	DataWriteReplace
)

// String returns the operation name.
func (o DataOperation) String() string {
	switch o {
	case DataRead:
		return "read"
	case DataWrite:
		return "write"
	case DataExecute:
		return "execute"
	case DataWriteReplace:
		return "write-replace"
	default:
		return "unknown"
	}
}

// InstanceOperation identifies an instance lifecycle change.
type InstanceOperation uint8

const (
	InstanceCreate InstanceOperation = iota + 1
	InstanceDelete
)

// String returns the operation name.
func (o InstanceOperation) String() string {
	switch o {
	case InstanceCreate:
		return "create"
	case InstanceDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Value carries one resource value exchanged with a DataHandler.
type Value struct {
	ResourceID         uint16
	ResourceInstanceID uint16
	Type               ValueType
	Data               any
}

// DataHandler serves read, write and execute requests on an object.
type DataHandler interface {
	HandleData(op DataOperation, instanceID uint16, values []Value) ([]Value, error)
}

// InstanceHandler is told when an instance is created or deleted.
type InstanceHandler interface {
	HandleInstance(op InstanceOperation, instanceID uint16) error
}

// ResourceInstanceHandler enumerates the instances of a multiple resource.
type ResourceInstanceHandler interface {
	ResourceInstances(instanceID, resourceID uint16) ([]uint16, error)
}

// DataHandlerFunc adapts a function to DataHandler.
type DataHandlerFunc func(op DataOperation, instanceID uint16, values []Value) ([]Value, error)

// HandleData calls f.
func (f DataHandlerFunc) HandleData(op DataOperation, instanceID uint16, values []Value) ([]Value, error) {
	return f(op, instanceID, values)
}

// InstanceHandlerFunc adapts a function to InstanceHandler.
type InstanceHandlerFunc func(op InstanceOperation, instanceID uint16) error

// HandleInstance calls f.
func (f InstanceHandlerFunc) HandleInstance(op InstanceOperation, instanceID uint16) error {
	return f(op, instanceID)
}

// ResourceInstanceHandlerFunc adapts a function to ResourceInstanceHandler.
type ResourceInstanceHandlerFunc func(instanceID, resourceID uint16) ([]uint16, error)

// ResourceInstances calls f.
func (f ResourceInstanceHandlerFunc) ResourceInstances(instanceID, resourceID uint16) ([]uint16, error) {
	return f(instanceID, resourceID)
}

// Handlers groups the callbacks bound to a custom object. Data is mandatory.
type Handlers struct {
	Data              DataHandler
	Instances         InstanceHandler
	ResourceInstances ResourceInstanceHandler
}

// Object is a registered object schema with its live instances.
type Object struct {
	ID        uint16
	Kind      InstanceKind
	Resources []ResourceDescriptor
	Handlers  Handlers

	instances map[uint16]struct{}
}

// NewObject creates an object. Descriptors and instance ids are copied.
func NewObject(id uint16, kind InstanceKind, resources []ResourceDescriptor, instanceIDs []uint16, handlers Handlers) *Object {
	o := &Object{
		ID:        id,
		Kind:      kind,
		Resources: slices.Clone(resources),
		Handlers:  handlers,
		instances: make(map[uint16]struct{}, len(instanceIDs)),
	}
	if kind == InstanceSingle {
		o.instances[0] = struct{}{}
	}
	for _, iid := range instanceIDs {
		o.instances[iid] = struct{}{}
	}
	return o
}

// Resource returns the descriptor for a resource id.
func (o *Object) Resource(id uint16) (ResourceDescriptor, bool) {
	for _, r := range o.Resources {
		if r.ID == id {
			return r, true
		}
	}
	return ResourceDescriptor{}, false
}

// HasInstance returns true if the instance exists.
func (o *Object) HasInstance(id uint16) bool {
	_, ok := o.instances[id]
	return ok
}

// InstanceIDs returns the instance ids in ascending order.
func (o *Object) InstanceIDs() []uint16 {
	ids := make([]uint16, 0, len(o.instances))
	for id := range o.instances {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (o *Object) addInstance(id uint16) {
	if o.instances == nil {
		o.instances = make(map[uint16]struct{})
	}
	o.instances[id] = struct{}{}
}

func (o *Object) removeInstance(id uint16) {
	delete(o.instances, id)
}
