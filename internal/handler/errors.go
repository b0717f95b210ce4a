package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when neither an HTTP
// nor a gRPC address is configured, leaving no transport to initialize.
var errNoHandlersAreCreated = errors.New("no handlers are created")
