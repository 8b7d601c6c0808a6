package model

import (
	"github.com/mash-protocol/lwm2m-go/pkg/wire"
)

// Operation flags for resources.
type Operation uint8

const (
	// OpRead allows reading the resource.
	OpRead Operation = 1 << iota

	// OpWrite allows writing the resource.
	OpWrite

	// OpExecute allows executing the resource.
	OpExecute

	// OpReadWrite is read and write.
	OpReadWrite = OpRead | OpWrite

	// OpMask covers every operation a resource can declare.
	OpMask = OpRead | OpWrite | OpExecute
)

// CanRead returns true if reading is allowed.
func (o Operation) CanRead() bool { return o&OpRead != 0 }

// CanWrite returns true if writing is allowed.
func (o Operation) CanWrite() bool { return o&OpWrite != 0 }

// CanExecute returns true if executing is allowed.
func (o Operation) CanExecute() bool { return o&OpExecute != 0 }

// String returns the operation flags as a string.
func (o Operation) String() string {
	var s string
	if o.CanRead() {
		s += "R"
	}
	if o.CanWrite() {
		s += "W"
	}
	if o.CanExecute() {
		s += "E"
	}
	if s == "" {
		return "-"
	}
	return s
}

// ValueType represents the declared type of a resource value.
type ValueType uint8

const (
	TypeUndefined ValueType = iota
	TypeString
	TypeOpaque
	TypeInteger
	TypeUnsignedInteger
	TypeFloat
	TypeBoolean
	TypeTime
	TypeObjectLink
	TypeCoreLink
)

// String returns the value type name.
func (v ValueType) String() string {
	names := []string{
		"undefined", "string", "opaque", "integer", "unsigned", "float",
		"boolean", "time", "objlnk", "corelnk",
	}
	if int(v) < len(names) {
		return names[v]
	}
	return "unknown"
}

// ParseValueType returns the type for a name produced by String.
func ParseValueType(name string) (ValueType, bool) {
	for v := TypeUndefined; v <= TypeCoreLink; v++ {
		if v.String() == name {
			return v, true
		}
	}
	return TypeUndefined, false
}

// ResourceFlag holds the behavioral flags of a resource.
type ResourceFlag uint8

const (
	// FlagAsynchronous marks a resource whose operations complete later.
	FlagAsynchronous ResourceFlag = 1 << iota

	// FlagStreamable marks a resource whose value is served in blocks.
	FlagStreamable

	// FlagMultiple marks a multiple-instance resource.
	FlagMultiple
)

// IsAsynchronous returns true if the asynchronous flag is set.
func (f ResourceFlag) IsAsynchronous() bool { return f&FlagAsynchronous != 0 }

// IsStreamable returns true if the streamable flag is set.
func (f ResourceFlag) IsStreamable() bool { return f&FlagStreamable != 0 }

// IsMultiple returns true if the multiple-instance flag is set.
func (f ResourceFlag) IsMultiple() bool { return f&FlagMultiple != 0 }

// ResourceDescriptor describes a resource declared by a custom object.
type ResourceDescriptor struct {
	// ID is the resource identifier within the object.
	ID uint16

	// Type is the declared value type.
	Type ValueType

	// Operations defines the allowed operations.
	Operations Operation

	// Flags holds asynchronous / streamable / multiple.
	Flags ResourceFlag
}

// Validate checks the descriptor rules that do not depend on sibling
// resources. hasResourceInstances reports whether the owning object supplies
// a ResourceInstanceHandler.
func (d ResourceDescriptor) Validate(hasResourceInstances bool) error {
	if d.ID == IDAll {
		return wire.Errorf(wire.StatusNotAcceptable, "resource id %d is not acceptable", d.ID)
	}
	if d.Operations&OpMask == 0 {
		return wire.Errorf(wire.StatusNotAcceptable, "resource %d has no operation defined", d.ID)
	}
	if d.Flags.IsStreamable() {
		if d.Flags.IsAsynchronous() {
			return wire.Errorf(wire.StatusNotAcceptable, "resource %d cannot be both asynchronous and streamable", d.ID)
		}
		if d.Type != TypeString && d.Type != TypeOpaque {
			return wire.Errorf(wire.StatusNotAcceptable, "streamable resource %d must be string or opaque, not %s", d.ID, d.Type)
		}
	}
	if d.Type == TypeUndefined && d.Operations&OpMask != OpExecute {
		return wire.Errorf(wire.StatusNotAcceptable, "resource %d requires a type or only the execute operation", d.ID)
	}
	if d.Flags.IsMultiple() && !hasResourceInstances {
		return wire.Errorf(wire.StatusNotAcceptable, "resource %d is multiple but no resource instance handler is set", d.ID)
	}
	return nil
}

// ValidateResources checks every descriptor and the uniqueness of their IDs.
func ValidateResources(resources []ResourceDescriptor, hasResourceInstances bool) error {
	if len(resources) == 0 {
		return wire.Errorf(wire.StatusNotAcceptable, "object requires at least one resource")
	}

	seen := make(map[uint16]struct{}, len(resources))
	for _, d := range resources {
		if err := d.Validate(hasResourceInstances); err != nil {
			return err
		}
		if _, dup := seen[d.ID]; dup {
			return wire.Errorf(wire.StatusNotAcceptable, "resource %d is not unique", d.ID)
		}
		seen[d.ID] = struct{}{}
	}
	return nil
}
