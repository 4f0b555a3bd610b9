package http

import (
	"github.com/focus-functions/internal/application/email"
	"github.com/focus-functions/internal/application/sweep"
)

// Deps holds the handler services the router exposes.
type Deps struct {
	Email   email.Service
	Sweeper sweep.Service
}
