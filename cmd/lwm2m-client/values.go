package main

import (
	"fmt"
	"sync"

	"github.com/mash-protocol/lwm2m-go/pkg/model"
	"github.com/mash-protocol/lwm2m-go/pkg/wire"
)

type valueKey struct {
	objectID, instanceID, resourceID uint16
}

// memoryValues backs the configured custom objects with in-memory values.
type memoryValues struct {
	mu     sync.Mutex
	values map[valueKey]string
}

func newMemoryValues() *memoryValues {
	return &memoryValues{values: make(map[valueKey]string)}
}

// Set stores a value.
func (m *memoryValues) Set(objectID, instanceID, resourceID uint16, value string) {
	m.mu.Lock()
	m.values[valueKey{objectID, instanceID, resourceID}] = value
	m.mu.Unlock()
}

// Get returns a stored value.
func (m *memoryValues) Get(objectID, instanceID, resourceID uint16) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[valueKey{objectID, instanceID, resourceID}]
	return v, ok
}

// handlers returns the object callbacks serving objectID from memory.
func (m *memoryValues) handlers(obj ObjectEntry) model.Handlers {
	h := model.Handlers{
		Data: model.DataHandlerFunc(func(op model.DataOperation, instanceID uint16, in []model.Value) ([]model.Value, error) {
			return m.handleData(obj.ID, op, instanceID, in)
		}),
	}
	for _, r := range obj.Resources {
		if r.Multiple {
			h.ResourceInstances = model.ResourceInstanceHandlerFunc(func(uint16, uint16) ([]uint16, error) {
				return []uint16{0}, nil
			})
			break
		}
	}
	if len(obj.Instances) > 0 {
		h.Instances = model.InstanceHandlerFunc(func(op model.InstanceOperation, instanceID uint16) error {
			if op == model.InstanceDelete {
				m.dropInstance(obj.ID, instanceID)
			}
			return nil
		})
	}
	return h
}

func (m *memoryValues) handleData(objectID uint16, op model.DataOperation, instanceID uint16, in []model.Value) ([]model.Value, error) {
	switch op {
	case model.DataRead:
		out := make([]model.Value, 0, len(in))
		for _, v := range in {
			s, ok := m.Get(objectID, instanceID, v.ResourceID)
			if !ok {
				return nil, wire.Errorf(wire.StatusNotFound, "/%d/%d/%d has no value", objectID, instanceID, v.ResourceID)
			}
			out = append(out, model.Value{ResourceID: v.ResourceID, Type: model.TypeString, Data: s})
		}
		return out, nil
	case model.DataWrite, model.DataWriteReplace:
		for _, v := range in {
			m.Set(objectID, instanceID, v.ResourceID, fmt.Sprint(v.Data))
		}
		return nil, nil
	case model.DataExecute:
		return nil, nil
	default:
		return nil, wire.Errorf(wire.StatusMethodNotAllowed, "operation %s", op)
	}
}

func (m *memoryValues) dropInstance(objectID, instanceID uint16) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.values {
		if k.objectID == objectID && k.instanceID == instanceID {
			delete(m.values, k)
		}
	}
}
