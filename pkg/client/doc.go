// Package client implements the core of an LwM2M client.
//
// A Client owns the configured management servers, the custom objects the
// application exposes, and the single event callback. All state lives behind
// one mutex. Public operations lock it, mutate the registry or the object
// table, optionally deliver an event, and then signal a wake so that the
// application's poll loop asks NextWakeDelay again.
//
// # Events and reentrancy
//
// Events are delivered synchronously on the goroutine that caused them. The
// mutex is released for the duration of the callback, so the handler may call
// any public method:
//
//	c.Configure("urn:dev:42", nil, func(ev client.Event, c *client.Client) {
//	    if ev.Type == client.EventRegistered {
//	        _ = c.SendHeartbeat(ev.ServerShortID)
//	    }
//	})
//
// LockNotifications marks that application code is running. While it is set,
// resource change marks are queued and handed to the notification engine when
// the lock is released.
//
// # Collaborators
//
// The transport, the registration exchange and payload encoding are outside
// this package. They plug in through ObjectLayer, URIParser,
// RegistrationUpdater, NotificationEngine and TransportPeer, and drive the
// server lifecycle through the hooks in engine.go.
package client
