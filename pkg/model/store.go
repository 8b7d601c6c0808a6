package model

import (
	"slices"

	"github.com/mash-protocol/lwm2m-go/pkg/wire"
)

// SecurityInstance is one instance of the Security object.
type SecurityInstance struct {
	InstanceID uint16
	ShortID    uint16
	URI        string
}

// ServerInstance is one instance of the Server object.
type ServerInstance struct {
	InstanceID uint16
	ShortID    uint16
	Lifetime   int32
}

// Store is the in-memory object layer. It keeps the Security, Server and
// Device objects itself and manages custom object instances held in an
// ObjectTable. Like the table it is not locked; callers serialize access.
type Store struct {
	table    *ObjectTable
	device   *DeviceInfo
	security map[uint16]SecurityInstance
	servers  map[uint16]ServerInstance
}

// NewStore creates a store over the given table.
func NewStore(table *ObjectTable) *Store {
	if table == nil {
		table = NewObjectTable()
	}
	return &Store{
		table:    table,
		security: make(map[uint16]SecurityInstance),
		servers:  make(map[uint16]ServerInstance),
	}
}

// Init prepares the built-in objects. A second Init without Close reports
// StatusPreconditionFailed and keeps the current state.
func (s *Store) Init(info *DeviceInfo) error {
	if s.device != nil {
		return wire.Errorf(wire.StatusPreconditionFailed, "object layer already initialized")
	}
	if info != nil {
		d := *info
		s.device = &d
	} else {
		s.device = &DeviceInfo{}
	}
	return nil
}

// Close releases the built-in objects.
func (s *Store) Close() {
	s.device = nil
	clear(s.security)
	clear(s.servers)
}

// Device returns the device info set by Init, or nil before Init.
func (s *Store) Device() *DeviceInfo {
	return s.device
}

// CreateSecurityInstance adds a Security object instance.
func (s *Store) CreateSecurityInstance(instanceID, shortID uint16, uri string) error {
	if instanceID == IDAll {
		return wire.Errorf(wire.StatusNotAcceptable, "security instance id %d", instanceID)
	}
	if _, exists := s.security[instanceID]; exists {
		return wire.Errorf(wire.StatusBadRequest, "security instance %d already exists", instanceID)
	}
	s.security[instanceID] = SecurityInstance{InstanceID: instanceID, ShortID: shortID, URI: uri}
	return nil
}

// RemoveSecurityInstance deletes a Security object instance.
func (s *Store) RemoveSecurityInstance(instanceID uint16) error {
	if _, exists := s.security[instanceID]; !exists {
		return wire.Errorf(wire.StatusNotFound, "security instance %d not found", instanceID)
	}
	delete(s.security, instanceID)
	return nil
}

// CreateServerInstance adds a Server object instance.
func (s *Store) CreateServerInstance(instanceID, shortID uint16, lifetime int32) error {
	if instanceID == IDAll {
		return wire.Errorf(wire.StatusNotAcceptable, "server instance id %d", instanceID)
	}
	if _, exists := s.servers[instanceID]; exists {
		return wire.Errorf(wire.StatusBadRequest, "server instance %d already exists", instanceID)
	}
	s.servers[instanceID] = ServerInstance{InstanceID: instanceID, ShortID: shortID, Lifetime: lifetime}
	return nil
}

// RemoveServerInstance deletes a Server object instance. Removing the last
// instance succeeds but reports StatusPreconditionFailed.
func (s *Store) RemoveServerInstance(instanceID uint16) error {
	if _, exists := s.servers[instanceID]; !exists {
		return wire.Errorf(wire.StatusNotFound, "server instance %d not found", instanceID)
	}
	delete(s.servers, instanceID)
	if len(s.servers) == 0 {
		return wire.Errorf(wire.StatusPreconditionFailed, "last server instance %d removed", instanceID)
	}
	return nil
}

// SecurityInstances returns the Security instances ordered by instance id.
func (s *Store) SecurityInstances() []SecurityInstance {
	out := make([]SecurityInstance, 0, len(s.security))
	for _, inst := range s.security {
		out = append(out, inst)
	}
	slices.SortFunc(out, func(a, b SecurityInstance) int { return int(a.InstanceID) - int(b.InstanceID) })
	return out
}

// ServerInstances returns the Server instances ordered by instance id.
func (s *Store) ServerInstances() []ServerInstance {
	out := make([]ServerInstance, 0, len(s.servers))
	for _, inst := range s.servers {
		out = append(out, inst)
	}
	slices.SortFunc(out, func(a, b ServerInstance) int { return int(a.InstanceID) - int(b.InstanceID) })
	return out
}

// AddInstance creates an instance of a custom object. The object's
// InstanceHandler, if any, is consulted first.
func (s *Store) AddInstance(objectID, instanceID uint16) error {
	o, err := s.multipleObject(objectID)
	if err != nil {
		return err
	}
	if instanceID == IDAll {
		return wire.Errorf(wire.StatusNotAcceptable, "instance id %d on object %d", instanceID, objectID)
	}
	if o.HasInstance(instanceID) {
		return wire.Errorf(wire.StatusBadRequest, "instance /%d/%d already exists", objectID, instanceID)
	}
	if h := o.Handlers.Instances; h != nil {
		if err := h.HandleInstance(InstanceCreate, instanceID); err != nil {
			return err
		}
	}
	o.addInstance(instanceID)
	return nil
}

// RemoveInstance deletes an instance of a custom object.
func (s *Store) RemoveInstance(objectID, instanceID uint16) error {
	o, err := s.multipleObject(objectID)
	if err != nil {
		return err
	}
	if !o.HasInstance(instanceID) {
		return wire.Errorf(wire.StatusNotFound, "instance /%d/%d not found", objectID, instanceID)
	}
	if h := o.Handlers.Instances; h != nil {
		if err := h.HandleInstance(InstanceDelete, instanceID); err != nil {
			return err
		}
	}
	o.removeInstance(instanceID)
	return nil
}

func (s *Store) multipleObject(objectID uint16) (*Object, error) {
	if IsReservedObjectID(objectID) {
		return nil, wire.Errorf(wire.StatusForbidden, "object %d is reserved", objectID)
	}
	o := s.table.Get(objectID)
	if o == nil {
		return nil, wire.Errorf(wire.StatusNotFound, "object %d not found", objectID)
	}
	if o.Kind == InstanceSingle {
		return nil, wire.Errorf(wire.StatusMethodNotAllowed, "object %d has a single instance", objectID)
	}
	return o, nil
}
