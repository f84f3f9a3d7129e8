package eventbus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type ping struct{ N int }
type pong struct{ N int }

func TestPublishDispatchesByDynamicType(t *testing.T) {
	Use(New())
	defer Use(nil)

	var pings, pongs []int
	Subscribe(func(ctx context.Context, e ping) { pings = append(pings, e.N) })
	Subscribe(func(ctx context.Context, e pong) { pongs = append(pongs, e.N) })

	ctx := context.Background()
	Publish(ctx, ping{N: 1})
	Publish(ctx, ping{N: 2})
	Publish(ctx, pong{N: 3})

	require.Equal(t, []int{1, 2}, pings)
	require.Equal(t, []int{3}, pongs)
}

func TestPublishWithoutBusIsNoop(t *testing.T) {
	Use(nil)
	Subscribe(func(ctx context.Context, e ping) { t.Fatal("must not be called") })
	Publish(context.Background(), ping{N: 1})
}

func TestEmitUsesHandlerSnapshot(t *testing.T) {
	Use(New())
	defer Use(nil)

	calls := 0
	Subscribe(func(ctx context.Context, e ping) {
		calls++
		if calls == 1 {
			Subscribe(func(ctx context.Context, e ping) { calls += 100 })
		}
	})

	// The handler list is snapshotted under the lock before dispatch, so a
	// subscription made mid-publish only sees later events.
	Publish(context.Background(), ping{})
	require.Equal(t, 1, calls)
	Publish(context.Background(), ping{})
	require.Equal(t, 102, calls)
}

func TestMultipleSubscribersSameType(t *testing.T) {
	Use(New())
	defer Use(nil)

	calls := 0
	Subscribe(func(ctx context.Context, e ping) { calls++ })
	Subscribe(func(ctx context.Context, e ping) { calls++ })
	Publish(context.Background(), ping{})
	require.Equal(t, 2, calls)
}
