package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/relaykit/todos/internal/connection"
	"github.com/relaykit/todos/internal/eventbus"
	"github.com/relaykit/todos/internal/events"
	"github.com/relaykit/todos/internal/globalid"
	"github.com/relaykit/todos/internal/store"
)

// mutationResolver implements the Mutation root. Every field follows the
// relay classic envelope: one input object in, one payload out, with the
// clientMutationId echoed back verbatim.
type mutationResolver struct {
	root *Resolver
}

// decodeTodoID unwraps a Todo global id. Ids of any other node type are a
// type error, never a lookup miss.
func decodeTodoID(id graphql.ID) (string, error) {
	typeName, localID, err := globalid.Decode(string(id))
	if err != nil {
		return "", err
	}
	if typeName != todoTypeName {
		return "", &globalid.DecodeError{Value: string(id), Reason: "expected a Todo id"}
	}
	return localID, nil
}

type addTodoInput struct {
	Text             string
	ClientMutationID *string
}

type addTodoPayloadResolver struct {
	root             *Resolver
	edge             connection.Edge[store.Todo]
	clientMutationID *string
}

func (r *addTodoPayloadResolver) TodoEdge() *todoEdgeResolver {
	return &todoEdgeResolver{edge: r.edge}
}
func (r *addTodoPayloadResolver) User() *userResolver {
	return &userResolver{root: r.root, user: r.root.store.CurrentUser()}
}

func (r *addTodoPayloadResolver) ClientMutationID() *string { return r.clientMutationID }

func (m *mutationResolver) AddTodo(ctx context.Context, args struct{ Input addTodoInput }) (*addTodoPayloadResolver, error) {
	t, pos := m.root.store.AddTodo(args.Input.Text)
	eventbus.Publish(ctx, events.StoreMutation{Op: "addTodo", TodoIDs: []string{t.ID}})
	return &addTodoPayloadResolver{
		root:             m.root,
		edge:             connection.Edge[store.Todo]{Node: t, Cursor: globalid.EncodeCursor(pos)},
		clientMutationID: args.Input.ClientMutationID,
	}, nil
}

type changeTodoStatusInput struct {
	ID               graphql.ID
	Complete         bool
	ClientMutationID *string
}

// todoPayloadResolver backs the payloads whose shape is {todo, user,
// clientMutationId}. A store-level failure is deferred to the todo field so
// the payload itself still resolves (partial-result semantics).
type todoPayloadResolver struct {
	root             *Resolver
	todo             store.Todo
	err              error
	clientMutationID *string
}

func (r *todoPayloadResolver) Todo() (*todoResolver, error) {
	if r.err != nil {
		return nil, r.err
	}
	return &todoResolver{todo: r.todo}, nil
}
func (r *todoPayloadResolver) User() *userResolver {
	return &userResolver{root: r.root, user: r.root.store.CurrentUser()}
}

func (r *todoPayloadResolver) ClientMutationID() *string { return r.clientMutationID }

func (m *mutationResolver) ChangeTodoStatus(ctx context.Context, args struct{ Input changeTodoStatusInput }) (*todoPayloadResolver, error) {
	localID, err := decodeTodoID(args.Input.ID)
	if err != nil {
		return nil, err
	}
	t, serr := m.root.store.ChangeTodoStatus(localID, args.Input.Complete)
	if serr == nil {
		eventbus.Publish(ctx, events.StoreMutation{Op: "changeTodoStatus", TodoIDs: []string{t.ID}})
	}
	return &todoPayloadResolver{
		root:             m.root,
		todo:             t,
		err:              serr,
		clientMutationID: args.Input.ClientMutationID,
	}, nil
}

type renameTodoInput struct {
	ID               graphql.ID
	Text             string
	ClientMutationID *string
}

func (m *mutationResolver) RenameTodo(ctx context.Context, args struct{ Input renameTodoInput }) (*todoPayloadResolver, error) {
	localID, err := decodeTodoID(args.Input.ID)
	if err != nil {
		return nil, err
	}
	t, serr := m.root.store.RenameTodo(localID, args.Input.Text)
	if serr == nil {
		eventbus.Publish(ctx, events.StoreMutation{Op: "renameTodo", TodoIDs: []string{t.ID}})
	}
	return &todoPayloadResolver{
		root:             m.root,
		todo:             t,
		err:              serr,
		clientMutationID: args.Input.ClientMutationID,
	}, nil
}

type markAllTodosInput struct {
	Complete         bool
	ClientMutationID *string
}

type markAllTodosPayloadResolver struct {
	root             *Resolver
	changed          []store.Todo
	clientMutationID *string
}

func (r *markAllTodosPayloadResolver) ChangedTodos() []*todoResolver {
	out := make([]*todoResolver, len(r.changed))
	for i, t := range r.changed {
		out[i] = &todoResolver{todo: t}
	}
	return out
}
func (r *markAllTodosPayloadResolver) User() *userResolver {
	return &userResolver{root: r.root, user: r.root.store.CurrentUser()}
}

func (r *markAllTodosPayloadResolver) ClientMutationID() *string { return r.clientMutationID }

func (m *mutationResolver) MarkAllTodos(ctx context.Context, args struct{ Input markAllTodosInput }) (*markAllTodosPayloadResolver, error) {
	changed := m.root.store.MarkAllTodos(args.Input.Complete)
	ids := make([]string, len(changed))
	for i, t := range changed {
		ids[i] = t.ID
	}
	eventbus.Publish(ctx, events.StoreMutation{Op: "markAllTodos", TodoIDs: ids})
	return &markAllTodosPayloadResolver{
		root:             m.root,
		changed:          changed,
		clientMutationID: args.Input.ClientMutationID,
	}, nil
}

type removeCompletedTodosInput struct {
	ClientMutationID *string
}

type removeCompletedTodosPayloadResolver struct {
	root             *Resolver
	deletedIDs       []string
	clientMutationID *string
}

func (r *removeCompletedTodosPayloadResolver) DeletedTodoIds() []string {
	out := make([]string, len(r.deletedIDs))
	for i, id := range r.deletedIDs {
		out[i] = globalid.Encode(todoTypeName, id)
	}
	return out
}

func (r *removeCompletedTodosPayloadResolver) User() *userResolver {
	return &userResolver{root: r.root, user: r.root.store.CurrentUser()}
}

func (r *removeCompletedTodosPayloadResolver) ClientMutationID() *string {
	return r.clientMutationID
}

func (m *mutationResolver) RemoveCompletedTodos(ctx context.Context, args struct{ Input removeCompletedTodosInput }) (*removeCompletedTodosPayloadResolver, error) {
	removed := m.root.store.RemoveCompletedTodos()
	eventbus.Publish(ctx, events.StoreMutation{Op: "removeCompletedTodos", TodoIDs: removed})
	return &removeCompletedTodosPayloadResolver{
		root:             m.root,
		deletedIDs:       removed,
		clientMutationID: args.Input.ClientMutationID,
	}, nil
}

type removeTodoInput struct {
	ID               graphql.ID
	ClientMutationID *string
}

type removeTodoPayloadResolver struct {
	root             *Resolver
	deletedID        graphql.ID
	err              error
	clientMutationID *string
}

func (r *removeTodoPayloadResolver) DeletedTodoID() (*graphql.ID, error) {
	if r.err != nil {
		return nil, r.err
	}
	id := r.deletedID
	return &id, nil
}
func (r *removeTodoPayloadResolver) User() *userResolver {
	return &userResolver{root: r.root, user: r.root.store.CurrentUser()}
}

func (r *removeTodoPayloadResolver) ClientMutationID() *string { return r.clientMutationID }

func (m *mutationResolver) RemoveTodo(ctx context.Context, args struct{ Input removeTodoInput }) (*removeTodoPayloadResolver, error) {
	localID, err := decodeTodoID(args.Input.ID)
	if err != nil {
		return nil, err
	}
	serr := m.root.store.RemoveTodo(localID)
	if serr == nil {
		eventbus.Publish(ctx, events.StoreMutation{Op: "removeTodo", TodoIDs: []string{localID}})
	}
	return &removeTodoPayloadResolver{
		root:             m.root,
		deletedID:        args.Input.ID,
		err:              serr,
		clientMutationID: args.Input.ClientMutationID,
	}, nil
}
