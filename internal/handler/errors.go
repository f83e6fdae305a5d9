package handler

import "errors"

var errNoHandlersAreCreated = errors.New("no handlers are created: HTTP address is empty")
