package connection

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/relaykit/todos/internal/globalid"
)

func i32(v int32) *int32   { return &v }
func str(v string) *string { return &v }
func cur(pos int) *string  { c := globalid.EncodeCursor(pos); return &c }

func nodes[T any](p Page[T]) []T {
	if len(p.Edges) == 0 {
		return nil
	}
	out := make([]T, len(p.Edges))
	for i, e := range p.Edges {
		out[i] = e.Node
	}
	return out
}

func TestApplySlicing(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	cases := []struct {
		name    string
		args    Args
		want    []string
		hasNext bool
		hasPrev bool
	}{
		{"no args", Args{}, []string{"a", "b", "c", "d", "e"}, false, false},
		{"first 2", Args{First: i32(2)}, []string{"a", "b"}, true, false},
		{"first 0", Args{First: i32(0)}, nil, true, false},
		{"first over length", Args{First: i32(10)}, []string{"a", "b", "c", "d", "e"}, false, false},
		{"last 2", Args{Last: i32(2)}, []string{"d", "e"}, false, true},
		{"after second", Args{After: cur(1)}, []string{"c", "d", "e"}, false, true},
		{"before fourth", Args{Before: cur(3)}, []string{"a", "b", "c"}, true, false},
		{"after+before window", Args{After: cur(0), Before: cur(4)}, []string{"b", "c", "d"}, true, true},
		{"first within window", Args{After: cur(0), First: i32(2)}, []string{"b", "c"}, true, true},
		{"last after first", Args{First: i32(4), Last: i32(2)}, []string{"c", "d"}, true, true},
		{"after last element", Args{After: cur(4)}, nil, false, true},
		{"crossed cursors", Args{After: cur(3), Before: cur(1)}, nil, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, err := Apply(items, tc.args)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, nodes(page)); diff != "" {
				t.Errorf("nodes mismatch (-want +got):\n%s", diff)
			}
			require.Equal(t, tc.hasNext, page.PageInfo.HasNextPage, "hasNextPage")
			require.Equal(t, tc.hasPrev, page.PageInfo.HasPreviousPage, "hasPreviousPage")
			require.Equal(t, int32(len(items)), page.TotalCount)
		})
	}
}

func TestApplyPagingIsDisjointAndComplete(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	first, err := Apply(items, Args{First: i32(2)})
	require.NoError(t, err)
	require.Len(t, first.Edges, 2)
	require.True(t, first.PageInfo.HasNextPage)
	require.False(t, first.PageInfo.HasPreviousPage)
	require.NotNil(t, first.PageInfo.EndCursor)

	second, err := Apply(items, Args{First: i32(2), After: first.PageInfo.EndCursor})
	require.NoError(t, err)
	require.Equal(t, []string{"c", "d"}, nodes(second))
	for _, e := range second.Edges {
		require.NotContains(t, nodes(first), e.Node)
	}
}

func TestApplyEmptyInput(t *testing.T) {
	page, err := Apply([]string(nil), Args{})
	require.NoError(t, err)
	require.Empty(t, page.Edges)
	require.False(t, page.PageInfo.HasNextPage)
	require.False(t, page.PageInfo.HasPreviousPage)
	require.Nil(t, page.PageInfo.StartCursor)
	require.Nil(t, page.PageInfo.EndCursor)
	require.Equal(t, int32(0), page.TotalCount)
}

func TestApplyCursorsResumeAtAbsolutePositions(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	page, err := Apply(items, Args{After: cur(1), First: i32(2)})
	require.NoError(t, err)
	require.Equal(t, []string{"c", "d"}, nodes(page))

	// The edge cursors point at positions 2 and 3 of the full sequence.
	pos, err := globalid.DecodeCursor(page.Edges[0].Cursor)
	require.NoError(t, err)
	require.Equal(t, 2, pos)
	pos, err = globalid.DecodeCursor(page.Edges[1].Cursor)
	require.NoError(t, err)
	require.Equal(t, 3, pos)
}

func TestApplyErrors(t *testing.T) {
	items := []string{"a", "b"}

	_, err := Apply(items, Args{First: i32(-1)})
	var inv *InvalidArgumentError
	require.ErrorAs(t, err, &inv)
	require.Equal(t, "first", inv.Name)

	_, err = Apply(items, Args{Last: i32(-3)})
	require.ErrorAs(t, err, &inv)
	require.Equal(t, "last", inv.Name)

	var derr *globalid.DecodeError
	_, err = Apply(items, Args{After: str("not-a-cursor")})
	require.ErrorAs(t, err, &derr)

	// A node global id is not a valid cursor.
	_, err = Apply(items, Args{Before: str(globalid.Encode("Todo", "1"))})
	require.ErrorAs(t, err, &derr)
}
