package graph

import (
	"github.com/relaykit/todos/internal/connection"
	"github.com/relaykit/todos/internal/store"
)

type todoConnectionResolver struct {
	page connection.Page[store.Todo]
}

func newTodoConnection(todos []store.Todo, args todosArgs) (*todoConnectionResolver, error) {
	page, err := connection.Apply(todos, connection.Args{
		First:  args.First,
		After:  args.After,
		Last:   args.Last,
		Before: args.Before,
	})
	if err != nil {
		return nil, err
	}
	return &todoConnectionResolver{page: page}, nil
}

func (r *todoConnectionResolver) Edges() []*todoEdgeResolver {
	edges := make([]*todoEdgeResolver, len(r.page.Edges))
	for i, e := range r.page.Edges {
		edges[i] = &todoEdgeResolver{edge: e}
	}
	return edges
}

func (r *todoConnectionResolver) PageInfo() *pageInfoResolver {
	return &pageInfoResolver{info: r.page.PageInfo}
}

func (r *todoConnectionResolver) TotalCount() int32 { return r.page.TotalCount }

type todoEdgeResolver struct {
	edge connection.Edge[store.Todo]
}

func (r *todoEdgeResolver) Node() *todoResolver { return &todoResolver{todo: r.edge.Node} }

func (r *todoEdgeResolver) Cursor() string { return r.edge.Cursor }

type pageInfoResolver struct {
	info connection.PageInfo
}

func (r *pageInfoResolver) HasNextPage() bool { return r.info.HasNextPage }

func (r *pageInfoResolver) HasPreviousPage() bool { return r.info.HasPreviousPage }

func (r *pageInfoResolver) StartCursor() *string { return r.info.StartCursor }

func (r *pageInfoResolver) EndCursor() *string { return r.info.EndCursor }
