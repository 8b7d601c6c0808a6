// Package wire defines the response-code taxonomy shared by the LwM2M client core.
//
// Status values are CoAP response codes packed as class<<5 | detail, so
// 4.04 Not Found is 0x84. The zero value is NoError.
//
// # Errors
//
// Status implements the error interface. Public operations of the client
// return nil on success and a Status, possibly wrapped, on failure:
//
//	if err := c.AddServer(...); errors.Is(err, wire.StatusForbidden) {
//	    // short id reserved or already in use
//	}
//
// StatusOf recovers the Status from any error returned by the core.
package wire
