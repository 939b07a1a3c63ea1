package router

import (
	"github.com/adrianliechti/toolify/pkg/provider"
)

type Route struct {
	Name string

	Completer provider.Completer
}
