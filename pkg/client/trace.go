package client

import (
	"time"

	"github.com/mash-protocol/lwm2m-go/pkg/log"
	"github.com/mash-protocol/lwm2m-go/pkg/wire"
)

func ptr[T any](v T) *T { return &v }

func (c *Client) traceEvent(cat log.Category, op string) log.Event {
	return log.Event{
		Timestamp: time.Now(),
		ClientID:  c.id,
		Category:  cat,
		Operation: op,
	}
}

// traceOp records the outcome of an operation.
func (c *Client) traceOp(cat log.Category, op string, shortID, objectID *uint16, err error) {
	ev := c.traceEvent(cat, op)
	ev.ServerShortID = shortID
	ev.ObjectID = objectID
	ev.Status = ptr(wire.StatusOf(err))
	if err != nil {
		ev.Error = &log.ErrorEventData{Message: err.Error()}
	}
	c.trace.Log(ev)
}
