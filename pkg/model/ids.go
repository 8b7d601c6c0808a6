package model

import "fmt"

// IDAll is the wildcard identifier (65535) used for short ids, objects,
// instances and resources.
const IDAll uint16 = 0xFFFF

// ReservedShortID is the server short id that is never assigned.
const ReservedShortID uint16 = 0

// Built-in object IDs.
const (
	// SecurityObjectID is the LwM2M Security object.
	SecurityObjectID uint16 = 0

	// ServerObjectID is the LwM2M Server object.
	ServerObjectID uint16 = 1

	// DeviceObjectID is the LwM2M Device object.
	DeviceObjectID uint16 = 3
)

// IsReservedObjectID returns true for objects managed by the client core.
func IsReservedObjectID(id uint16) bool {
	switch id {
	case SecurityObjectID, ServerObjectID, DeviceObjectID:
		return true
	default:
		return false
	}
}

// Path addresses an object, an instance or a resource.
type Path struct {
	ObjectID   uint16 `json:"object_id" yaml:"object"`
	InstanceID uint16 `json:"instance_id" yaml:"instance"`
	ResourceID uint16 `json:"resource_id" yaml:"resource"`
}

// ObjectPath returns the path of a whole object.
func ObjectPath(objectID uint16) Path {
	return Path{ObjectID: objectID, InstanceID: IDAll, ResourceID: IDAll}
}

// InstancePath returns the path of an object instance.
func InstancePath(objectID, instanceID uint16) Path {
	return Path{ObjectID: objectID, InstanceID: instanceID, ResourceID: IDAll}
}

// ResourcePath returns the path of a single resource.
func ResourcePath(objectID, instanceID, resourceID uint16) Path {
	return Path{ObjectID: objectID, InstanceID: instanceID, ResourceID: resourceID}
}

// String returns the URI form of the path, e.g. "/3303/0/5700".
func (p Path) String() string {
	switch {
	case p.InstanceID == IDAll:
		return fmt.Sprintf("/%d", p.ObjectID)
	case p.ResourceID == IDAll:
		return fmt.Sprintf("/%d/%d", p.ObjectID, p.InstanceID)
	default:
		return fmt.Sprintf("/%d/%d/%d", p.ObjectID, p.InstanceID, p.ResourceID)
	}
}
