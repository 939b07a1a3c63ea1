package roundrobin

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/adrianliechti/toolify/pkg/provider"
	"github.com/adrianliechti/toolify/pkg/router"
)

var _ provider.Completer = (*Completer)(nil)

// Completer spreads requests evenly across its routes.
type Completer struct {
	completers []provider.Completer

	next atomic.Uint64
}

func NewCompleter(routes ...router.Route) (*Completer, error) {
	completers := []provider.Completer{}

	for _, r := range routes {
		if r.Completer == nil {
			continue
		}

		completers = append(completers, r.Completer)
	}

	if len(completers) == 0 {
		return nil, errors.New("no routes configured")
	}

	c := &Completer{
		completers: completers,
	}

	return c, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	index := (c.next.Add(1) - 1) % uint64(len(c.completers))
	provider := c.completers[index]

	return provider.Complete(ctx, messages, options)
}
