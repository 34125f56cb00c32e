// Package buildctx carries the identity of a single build run: a unique
// ID plus a display name, passed to the build- and target-level formatter
// events (Begin, Success, Failure, BeginTarget, FinishTarget). The ID
// is generated with google/uuid so log lines from concurrent or repeated
// runs against the same output directory can be told apart.
package buildctx

import (
	"github.com/google/uuid"

	"github.com/vk/buildexec/internal/formatter"
)

// Context identifies one build run.
type Context struct {
	ID   uuid.UUID
	Name string
}

// New generates a fresh run identity for name.
func New(name string) Context {
	return Context{ID: uuid.New(), Name: name}
}

// Formatter converts this run identity into the formatter package's
// BuildContext, the value the build- and target-level event methods take.
func (c Context) Formatter() formatter.BuildContext {
	return formatter.BuildContext{ID: c.ID.String(), Name: c.Name}
}
