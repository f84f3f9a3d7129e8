// Package graph wires the todo domain into a graph-gophers resolver tree:
// Relay global object identification through the node registry, cursor
// connections over the user's todo sequence, and relay classic mutations.
package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/relaykit/todos/internal/globalid"
	"github.com/relaykit/todos/internal/node"
	"github.com/relaykit/todos/internal/store"
)

// GraphQL type names used in global ids. These are part of the wire
// contract: changing them invalidates every id a client holds.
const (
	userTypeName = "User"
	todoTypeName = "Todo"
)

// Resolver is the root of the resolver tree. It owns the injected store
// and the node registry; every other resolver hangs off it.
type Resolver struct {
	store *store.Store
	nodes *node.Registry
}

// NewResolver builds the root resolver around s and registers the node
// types fetchable through Query.node.
func NewResolver(s *store.Store) *Resolver {
	r := &Resolver{store: s, nodes: node.NewRegistry()}
	r.nodes.Register(userTypeName, func(ctx context.Context, localID string) (interface{}, error) {
		u, ok := s.User(localID)
		if !ok {
			return nil, nil
		}
		return &userResolver{root: r, user: u}, nil
	})
	r.nodes.Register(todoTypeName, func(ctx context.Context, localID string) (interface{}, error) {
		t, ok := s.Todo(localID)
		if !ok {
			return nil, nil
		}
		return &todoResolver{todo: t}, nil
	})
	return r
}

// Query returns the resolver for the Query root type.
func (r *Resolver) Query() *queryResolver { return &queryResolver{root: r} }

// Mutation returns the resolver for the Mutation root type.
func (r *Resolver) Mutation() *mutationResolver { return &mutationResolver{root: r} }

type queryResolver struct {
	root *Resolver
}

// gqlnode is the closed set of resolvers reachable through Query.node.
type gqlnode interface {
	ID() graphql.ID
}

type nodeResolver struct {
	gqlnode
}

func (r *nodeResolver) ToUser() (*userResolver, bool) {
	u, ok := r.gqlnode.(*userResolver)
	return u, ok
}

func (r *nodeResolver) ToTodo() (*todoResolver, bool) {
	t, ok := r.gqlnode.(*todoResolver)
	return t, ok
}

func (q *queryResolver) Node(ctx context.Context, args struct{ ID graphql.ID }) (*nodeResolver, error) {
	entity, err := q.root.nodes.Resolve(ctx, string(args.ID))
	if err != nil {
		return nil, err
	}
	return &nodeResolver{gqlnode: entity.(gqlnode)}, nil
}

func (q *queryResolver) User(ctx context.Context, args struct{ ID *string }) (*userResolver, error) {
	if args.ID == nil {
		return &userResolver{root: q.root, user: q.root.store.CurrentUser()}, nil
	}
	u, ok := q.root.store.User(*args.ID)
	if !ok {
		return nil, nil
	}
	return &userResolver{root: q.root, user: u}, nil
}

type userResolver struct {
	root *Resolver
	user store.User
}

func (r *userResolver) ID() graphql.ID {
	return graphql.ID(globalid.Encode(userTypeName, r.user.ID))
}

func (r *userResolver) UserID() string { return r.user.ID }

func (r *userResolver) TotalCount() int32 { return int32(r.root.store.TotalCount()) }

func (r *userResolver) CompletedCount() int32 { return int32(r.root.store.CompletedCount()) }

type todosArgs struct {
	// Status is accepted for wire compatibility but applies no filtering.
	// The schema default ("any") guarantees it is always present.
	Status string
	First  *int32
	After  *string
	Last   *int32
	Before *string
}

func (r *userResolver) Todos(ctx context.Context, args todosArgs) (*todoConnectionResolver, error) {
	return newTodoConnection(r.root.store.Todos(), args)
}

type todoResolver struct {
	todo store.Todo
}

func (r *todoResolver) ID() graphql.ID {
	return graphql.ID(globalid.Encode(todoTypeName, r.todo.ID))
}

func (r *todoResolver) Text() string { return r.todo.Text }

func (r *todoResolver) Complete() bool { return r.todo.Complete }
