// Package model implements the LwM2M client data model.
//
// # Object Model Hierarchy
//
// LwM2M exposes data as a 3-level hierarchy:
//
//	Object > Instance > Resource
//
// An Object describes a schema (e.g. Temperature, 3303). Each Object has
// zero or more Instances, and every Instance carries the Resources declared
// by the schema. A Resource declared as multiple holds Resource Instances.
//
// # Reserved Objects
//
// Security (0), Server (1) and Device (3) are built-in and managed by the
// client core. Applications register everything else as custom objects.
//
// # Resource Descriptors
//
// Each custom object declares its resources with a [ResourceDescriptor]:
//   - Type: value type, or TypeUndefined for execute-only resources
//   - Operations: any non-empty subset of read, write, execute
//   - Flags: asynchronous, streamable, multiple
//
// Descriptors are validated once when the object is registered.
//
// # Handlers
//
// Applications serve data through capability interfaces instead of raw
// callbacks with an opaque user pointer:
//   - [DataHandler]: read, write and execute (mandatory)
//   - [InstanceHandler]: instance create and delete
//   - [ResourceInstanceHandler]: enumeration of resource instances
//
// State shared by the handlers is carried by the implementing type or by
// the closures wrapped in the Func adapters.
//
// # Addressing
//
// Data is addressed by [Path], the tuple (ObjectID, InstanceID, ResourceID),
// where [IDAll] in a trailing position addresses the whole level.
package model
