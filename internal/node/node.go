// Package node implements polymorphic Relay node lookup: a registry mapping
// node type names to fetch functions, dispatched on the type name decoded
// from a global id. The registry is a closed set built at startup; it never
// assumes a single node type.
package node

import (
	"context"
	"fmt"

	"github.com/relaykit/todos/internal/globalid"
)

// FetchFunc loads the entity with the given local id. Returning (nil, nil)
// means the id is unknown; Resolve turns that into a NotFoundError.
type FetchFunc func(ctx context.Context, localID string) (interface{}, error)

// UnknownTypeError reports a global id whose type has no registered fetcher.
type UnknownTypeError struct {
	TypeName string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown node type %q", e.TypeName)
}

func (e *UnknownTypeError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": "UNKNOWN_NODE_TYPE"}
}

// NotFoundError reports a well-formed global id whose entity does not exist.
type NotFoundError struct {
	TypeName string
	LocalID  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s node with id %q", e.TypeName, e.LocalID)
}

func (e *NotFoundError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": "NODE_NOT_FOUND"}
}

// Registry dispatches node lookups by decoded type name.
// Register all types before serving; the registry is not safe for
// concurrent registration.
type Registry struct {
	fetchers map[string]FetchFunc
}

func NewRegistry() *Registry {
	return &Registry{fetchers: make(map[string]FetchFunc)}
}

// Register binds typeName to fetch. The cursor namespace is reserved and
// duplicate registrations are programming errors, so both panic.
func (r *Registry) Register(typeName string, fetch FetchFunc) {
	if globalid.IsCursorNamespace(typeName) {
		panic(fmt.Sprintf("node: type name %q is reserved for cursors", typeName))
	}
	if _, dup := r.fetchers[typeName]; dup {
		panic(fmt.Sprintf("node: type %q registered twice", typeName))
	}
	r.fetchers[typeName] = fetch
}

// Resolve decodes id and invokes the fetcher registered for its type.
func (r *Registry) Resolve(ctx context.Context, id string) (interface{}, error) {
	typeName, localID, err := globalid.Decode(id)
	if err != nil {
		return nil, err
	}
	fetch, ok := r.fetchers[typeName]
	if !ok {
		return nil, &UnknownTypeError{TypeName: typeName}
	}
	entity, err := fetch(ctx, localID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, &NotFoundError{TypeName: typeName, LocalID: localID}
	}
	return entity, nil
}
