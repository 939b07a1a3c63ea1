package router_test

import (
	"context"
	"errors"
	"testing"

	"github.com/adrianliechti/toolify/pkg/provider"
	"github.com/adrianliechti/toolify/pkg/router"
	"github.com/adrianliechti/toolify/pkg/router/fallback"
	"github.com/adrianliechti/toolify/pkg/router/roundrobin"

	"github.com/stretchr/testify/require"
)

type namedCompleter struct {
	name string
	err  error

	calls int
}

func (c *namedCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	c.calls++

	if c.err != nil {
		return nil, c.err
	}

	return &provider.Completion{
		Model: c.name,
	}, nil
}

func TestRoundRobin(t *testing.T) {
	a := &namedCompleter{name: "a"}
	b := &namedCompleter{name: "b"}

	c, err := roundrobin.NewCompleter(router.Route{Name: "a", Completer: a}, router.Route{Name: "b", Completer: b})
	require.NoError(t, err)

	var models []string

	for i := 0; i < 4; i++ {
		result, err := c.Complete(context.Background(), nil, nil)
		require.NoError(t, err)

		models = append(models, result.Model)
	}

	require.Equal(t, []string{"a", "b", "a", "b"}, models)

	_, err = roundrobin.NewCompleter()
	require.Error(t, err)
}

func TestFallback(t *testing.T) {
	a := &namedCompleter{name: "a", err: errors.New("rate limited")}
	b := &namedCompleter{name: "b"}

	c, err := fallback.NewCompleter(router.Route{Name: "a", Completer: a}, router.Route{Name: "b", Completer: b})
	require.NoError(t, err)

	result, err := c.Complete(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Equal(t, "b", result.Model)
	require.Equal(t, 1, a.calls)

	b.err = errors.New("down")

	_, err = c.Complete(context.Background(), nil, nil)
	require.ErrorContains(t, err, "a: rate limited")
	require.ErrorContains(t, err, "b: down")
}
