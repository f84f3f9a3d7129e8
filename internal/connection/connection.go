// Package connection implements the Relay cursor-connections pagination
// algorithm over an in-memory ordered sequence. Cursors are positional and
// opaque (see the globalid package); edges keep their absolute position in
// the input so a page can be resumed from any of its cursors.
package connection

import (
	"fmt"

	"github.com/relaykit/todos/internal/globalid"
)

// Args are the four standard Relay pagination arguments. Nil means absent.
type Args struct {
	First  *int32
	After  *string
	Last   *int32
	Before *string
}

// Edge pairs an item with the opaque cursor of its position.
type Edge[T any] struct {
	Node   T
	Cursor string
}

// PageInfo describes the returned slice relative to the full sequence.
type PageInfo struct {
	HasNextPage     bool
	HasPreviousPage bool
	StartCursor     *string
	EndCursor       *string
}

// Page is a built connection: the sliced edges plus page metadata.
// TotalCount is always the size of the full input sequence.
type Page[T any] struct {
	Edges      []Edge[T]
	PageInfo   PageInfo
	TotalCount int32
}

// InvalidArgumentError reports a pagination argument outside its domain.
type InvalidArgumentError struct {
	Name  string
	Value int32
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("argument %q must not be negative, got %d", e.Name, e.Value)
}

func (e *InvalidArgumentError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": "INVALID_ARGUMENT"}
}

// Apply slices items per the Relay connection algorithm: after drops
// everything up to and including the cursor's position, before keeps only
// strictly earlier elements, then first trims from the front and last from
// the back (last after first). Undecodable cursors fail with
// globalid.DecodeError, negative counts with InvalidArgumentError.
func Apply[T any](items []T, args Args) (Page[T], error) {
	lo, hi := 0, len(items)

	if args.After != nil {
		pos, err := globalid.DecodeCursor(*args.After)
		if err != nil {
			return Page[T]{}, err
		}
		if pos+1 > lo {
			lo = pos + 1
		}
	}
	if args.Before != nil {
		pos, err := globalid.DecodeCursor(*args.Before)
		if err != nil {
			return Page[T]{}, err
		}
		if pos < hi {
			hi = pos
		}
	}
	if lo > hi {
		lo = hi
	}
	if lo > len(items) {
		lo = len(items)
	}
	if hi > len(items) {
		hi = len(items)
	}

	if args.First != nil {
		n := *args.First
		if n < 0 {
			return Page[T]{}, &InvalidArgumentError{Name: "first", Value: n}
		}
		if int32(hi-lo) > n {
			hi = lo + int(n)
		}
	}
	if args.Last != nil {
		n := *args.Last
		if n < 0 {
			return Page[T]{}, &InvalidArgumentError{Name: "last", Value: n}
		}
		if int32(hi-lo) > n {
			lo = hi - int(n)
		}
	}

	page := Page[T]{
		Edges:      make([]Edge[T], 0, hi-lo),
		TotalCount: int32(len(items)),
	}
	for i := lo; i < hi; i++ {
		page.Edges = append(page.Edges, Edge[T]{Node: items[i], Cursor: globalid.EncodeCursor(i)})
	}
	page.PageInfo.HasNextPage = hi < len(items)
	page.PageInfo.HasPreviousPage = lo > 0
	if len(page.Edges) > 0 {
		start := page.Edges[0].Cursor
		end := page.Edges[len(page.Edges)-1].Cursor
		page.PageInfo.StartCursor = &start
		page.PageInfo.EndCursor = &end
	}
	return page, nil
}
