package fallback

import (
	"context"
	"errors"
	"fmt"

	"github.com/adrianliechti/toolify/pkg/provider"
	"github.com/adrianliechti/toolify/pkg/router"
)

var _ provider.Completer = (*Completer)(nil)

// Completer tries its routes in order and returns the first successful
// completion.
type Completer struct {
	routes []router.Route
}

func NewCompleter(routes ...router.Route) (*Completer, error) {
	c := &Completer{}

	for _, r := range routes {
		if r.Completer == nil {
			continue
		}

		c.routes = append(c.routes, r)
	}

	if len(c.routes) == 0 {
		return nil, errors.New("no routes configured")
	}

	return c, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	var errs []error

	for _, r := range c.routes {
		result, err := r.Completer.Complete(ctx, messages, options)

		if err == nil {
			return result, nil
		}

		errs = append(errs, fmt.Errorf("%s: %w", r.Name, err))

		if ctx.Err() != nil {
			break
		}
	}

	return nil, errors.Join(errs...)
}
