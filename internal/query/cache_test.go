package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func fixedFetcher(data interface{}, err error, calls *int) Fetcher {
	return func(ctx context.Context) (interface{}, error) {
		*calls++
		return data, err
	}
}

func TestFetchSharesOneRequest(t *testing.T) {
	c := NewCache()
	key := Key{Resource: "/api/metrics", UserID: "7"}
	calls := 0
	fetcher := fixedFetcher([]int{1, 2}, nil, &calls)

	cmd := c.Fetch(key, fetcher)
	require.NotNil(t, cmd)

	// A second observer while the fetch is in flight gets no command.
	require.Nil(t, c.Fetch(key, fetcher))

	msg, ok := cmd().(ResultMsg)
	require.True(t, ok)
	c.Apply(msg)
	require.Equal(t, 1, calls)

	// Fresh entries do not refetch.
	require.Nil(t, c.Fetch(key, fetcher))
	require.Equal(t, 1, calls)

	res := c.Get(key)
	require.True(t, res.Loaded)
	require.False(t, res.Loading)
	require.NoError(t, res.Err)
	require.Equal(t, []int{1, 2}, res.Data)
}

func TestGetUnknownKeyIsLoading(t *testing.T) {
	c := NewCache()
	res := c.Get(Key{Resource: "/api/metrics", UserID: "7"})
	require.True(t, res.Loading)
	require.False(t, res.Loaded)
	require.Nil(t, res.Data)
}

func TestInvalidateKeepsValueVisible(t *testing.T) {
	c := NewCache()
	key := Key{Resource: "/api/finances", UserID: "7"}
	calls := 0

	cmd := c.Fetch(key, fixedFetcher("v1", nil, &calls))
	c.Apply(cmd().(ResultMsg))

	c.InvalidateKey(key)

	// Stale data stays on screen while the refetch runs.
	res := c.Get(key)
	require.True(t, res.Loaded)
	require.Equal(t, "v1", res.Data)

	cmd = c.Fetch(key, fixedFetcher("v2", nil, &calls))
	require.NotNil(t, cmd)
	c.Apply(cmd().(ResultMsg))
	require.Equal(t, "v2", c.Get(key).Data)
	require.Equal(t, 2, calls)
}

func TestInvalidateCoversAllUsersOfResource(t *testing.T) {
	c := NewCache()
	a := Key{Resource: "/api/injuries", UserID: "1"}
	b := Key{Resource: "/api/injuries", UserID: "2"}
	other := Key{Resource: "/api/metrics", UserID: "1"}
	calls := 0
	for _, k := range []Key{a, b, other} {
		c.Apply(c.Fetch(k, fixedFetcher("x", nil, &calls))().(ResultMsg))
	}

	c.Invalidate("/api/injuries")

	require.NotNil(t, c.Fetch(a, fixedFetcher("y", nil, &calls)))
	require.NotNil(t, c.Fetch(b, fixedFetcher("y", nil, &calls)))
	require.Nil(t, c.Fetch(other, fixedFetcher("y", nil, &calls)))
}

func TestInvalidationDropsInFlightResult(t *testing.T) {
	c := NewCache()
	key := Key{Resource: "/api/nutrition", UserID: "7"}
	calls := 0

	c.Apply(c.Fetch(key, fixedFetcher("old", nil, &calls))().(ResultMsg))
	c.InvalidateKey(key)

	// Refetch starts, then the key is invalidated again before it lands.
	cmd := c.Fetch(key, fixedFetcher("mid", nil, &calls))
	require.NotNil(t, cmd)
	msg := cmd().(ResultMsg)
	c.InvalidateKey(key)

	c.Apply(msg)
	require.Equal(t, "old", c.Get(key).Data)

	// The next fetch wins the key.
	cmd = c.Fetch(key, fixedFetcher("new", nil, &calls))
	require.NotNil(t, cmd)
	c.Apply(cmd().(ResultMsg))
	require.Equal(t, "new", c.Get(key).Data)
}

func TestStaleSeqDiscarded(t *testing.T) {
	c := NewCache()
	key := Key{Resource: "/api/metrics", UserID: "7"}
	calls := 0

	cmd := c.Fetch(key, fixedFetcher("current", nil, &calls))
	require.NotNil(t, cmd)

	// A leftover result from an older fetch generation changes nothing.
	c.Apply(ResultMsg{Key: key, Seq: 0, Data: "ancient"})
	res := c.Get(key)
	require.False(t, res.Loaded)
	require.Nil(t, res.Data)
	require.True(t, res.Fetching)

	c.Apply(cmd().(ResultMsg))
	require.Equal(t, "current", c.Get(key).Data)
}

func TestFetchErrorKeepsPreviousValue(t *testing.T) {
	c := NewCache()
	key := Key{Resource: "/api/finances", UserID: "7"}
	calls := 0

	c.Apply(c.Fetch(key, fixedFetcher("good", nil, &calls))().(ResultMsg))
	c.InvalidateKey(key)

	boom := errors.New("server unreachable")
	cmd := c.Fetch(key, fixedFetcher(nil, boom, &calls))
	require.NotNil(t, cmd)
	c.Apply(cmd().(ResultMsg))

	res := c.Get(key)
	require.True(t, res.Loaded)
	require.Equal(t, "good", res.Data)
	require.ErrorIs(t, res.Err, boom)
}

func TestEvictAllDropsInFlightResults(t *testing.T) {
	c := NewCache()
	key := Key{Resource: "/api/metrics", UserID: "7"}
	calls := 0

	cmd := c.Fetch(key, fixedFetcher("leaked", nil, &calls))
	require.NotNil(t, cmd)
	msg := cmd().(ResultMsg)

	c.EvictAll()
	c.Apply(msg)

	res := c.Get(key)
	require.True(t, res.Loading)
	require.Nil(t, res.Data)
}

func TestRecordsTypedConversion(t *testing.T) {
	require.Nil(t, Records[int](Result{}))
	require.Equal(t, []int{1, 2}, Records[int](Result{Data: []int{1, 2}}))
	// A mismatched payload type degrades to empty rather than panicking.
	require.Nil(t, Records[string](Result{Data: []int{1}}))
}

func TestMutateCmdInvalidatesOnlySuccess(t *testing.T) {
	key := Key{Resource: "/api/metrics", UserID: "7"}

	okCmd := MutateCmd("metric", func(ctx context.Context) (interface{}, error) {
		return "created", nil
	}, key)
	msg := okCmd().(MutationMsg)
	require.Equal(t, "metric", msg.Tag)
	require.NoError(t, msg.Err)
	require.Equal(t, []Key{key}, msg.Invalidates)

	boom := errors.New("validation failed")
	failCmd := MutateCmd("metric", func(ctx context.Context) (interface{}, error) {
		return nil, boom
	}, key)
	msg = failCmd().(MutationMsg)
	require.ErrorIs(t, msg.Err, boom)
	require.Empty(t, msg.Invalidates)
}
