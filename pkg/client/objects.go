package client

import (
	"slices"

	"github.com/mash-protocol/lwm2m-go/pkg/log"
	"github.com/mash-protocol/lwm2m-go/pkg/model"
	"github.com/mash-protocol/lwm2m-go/pkg/wire"
)

// checkObjectID rejects the built-in objects and the wildcard.
func checkObjectID(objectID uint16) error {
	if model.IsReservedObjectID(objectID) {
		return wire.Errorf(wire.StatusForbidden, "object %d is reserved", objectID)
	}
	if objectID == model.IDAll {
		return wire.Errorf(wire.StatusNotAcceptable, "object id %d is not acceptable", objectID)
	}
	return nil
}

// AddCustomObject validates and registers an application object. The
// object has a single instance when no instance ids and no instance handler
// are given. Descriptors and instance ids are copied.
func (c *Client) AddCustomObject(objectID uint16, instanceIDs []uint16, resources []model.ResourceDescriptor, handlers model.Handlers) error {
	c.logger.Info("adding custom object", "object_id", objectID,
		"instances", len(instanceIDs), "resources", len(resources))

	if err := c.validateObject(objectID, instanceIDs, resources, handlers); err != nil {
		c.logger.Warn("custom object rejected", "object_id", objectID, "error", err)
		c.traceOp(log.CategoryObject, "AddCustomObject", nil, ptr(objectID), err)
		return err
	}

	kind := model.InstanceSingle
	if len(instanceIDs) > 0 || handlers.Instances != nil {
		kind = model.InstanceMultiple
	}
	obj := model.NewObject(objectID, kind, resources, instanceIDs, handlers)

	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.table.Add(obj)
	c.traceOp(log.CategoryObject, "AddCustomObject", nil, ptr(objectID), err)
	if err != nil {
		c.logger.Warn("custom object rejected", "object_id", objectID, "error", err)
		return err
	}
	c.metrics.ObjectCount(c.table.Len())
	return nil
}

func (c *Client) validateObject(objectID uint16, instanceIDs []uint16, resources []model.ResourceDescriptor, handlers model.Handlers) error {
	if c.features.SkipArgumentChecks {
		if handlers.Data == nil {
			return wire.Errorf(wire.StatusNotAcceptable, "object %d has no data handler", objectID)
		}
		return nil
	}

	if err := checkObjectID(objectID); err != nil {
		return err
	}
	if len(resources) == 0 {
		return wire.Errorf(wire.StatusNotAcceptable, "object %d has no resources", objectID)
	}
	if handlers.Data == nil {
		return wire.Errorf(wire.StatusNotAcceptable, "object %d has no data handler", objectID)
	}
	if slices.Contains(instanceIDs, model.IDAll) {
		return wire.Errorf(wire.StatusNotAcceptable, "object %d declares instance id %d", objectID, model.IDAll)
	}
	return model.ValidateResources(resources, handlers.ResourceInstances != nil)
}

// RemoveCustomObject unregisters an application object. Queued change marks
// for it are dropped.
func (c *Client) RemoveCustomObject(objectID uint16) error {
	if err := checkObjectID(objectID); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.table.Remove(objectID)
	c.traceOp(log.CategoryObject, "RemoveCustomObject", nil, ptr(objectID), err)
	if err != nil {
		return err
	}
	c.pending = slices.DeleteFunc(c.pending, func(p model.Path) bool { return p.ObjectID == objectID })
	c.metrics.ObjectCount(c.table.Len())
	c.logger.Info("custom object removed", "object_id", objectID)
	return nil
}

// NotifyResourceChanged marks a resource as changed for the notification
// engine. The mark is queued while notifications are locked.
func (c *Client) NotifyResourceChanged(objectID, instanceID, resourceID uint16) error {
	if !c.features.SkipArgumentChecks {
		if err := checkObjectID(objectID); err != nil {
			return err
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.table.Get(objectID) == nil {
		err := wire.Errorf(wire.StatusNotFound, "object %d not found", objectID)
		c.traceOp(log.CategoryObject, "NotifyResourceChanged", nil, ptr(objectID), err)
		return err
	}

	path := model.ResourcePath(objectID, instanceID, resourceID)
	if c.notificationsLocked {
		if !slices.Contains(c.pending, path) {
			c.pending = append(c.pending, path)
		}
	} else {
		c.engine.ResourceChanged(path)
	}
	c.traceOp(log.CategoryObject, "NotifyResourceChanged", nil, ptr(objectID), nil)
	return nil
}

// NotifyInstanceChanged reports that the application created or deleted an
// instance of one of its objects.
func (c *Client) NotifyInstanceChanged(objectID, instanceID uint16, op model.InstanceOperation) error {
	if !c.features.SkipArgumentChecks {
		if err := checkObjectID(objectID); err != nil {
			return err
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var err error
	switch op {
	case model.InstanceCreate:
		err = c.objects.AddInstance(objectID, instanceID)
	case model.InstanceDelete:
		err = c.objects.RemoveInstance(objectID, instanceID)
	default:
		err = wire.Errorf(wire.StatusMethodNotAllowed, "instance operation %d", op)
	}

	c.traceOp(log.CategoryObject, "NotifyInstanceChanged", nil, ptr(objectID), err)
	if err != nil {
		c.logger.Warn("instance change rejected", "object_id", objectID, "instance_id", instanceID, "op", op, "error", err)
		return err
	}
	if op == model.InstanceDelete {
		c.pending = slices.DeleteFunc(c.pending, func(p model.Path) bool {
			return p.ObjectID == objectID && p.InstanceID == instanceID
		})
	}
	c.engine.InstanceChanged(objectID, instanceID, op)
	return nil
}

// Objects returns the registered custom object ids in ascending order.
func (c *Client) Objects() []uint16 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.table.IDs()
}

// ObjectInstances returns the instance ids of a registered object.
func (c *Client) ObjectInstances(objectID uint16) ([]uint16, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	obj := c.table.Get(objectID)
	if obj == nil {
		return nil, false
	}
	return obj.InstanceIDs(), true
}
