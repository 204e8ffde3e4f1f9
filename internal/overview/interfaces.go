package overview

import (
	"context"
)

type PropertiesGetter interface {
	Properties(ctx context.Context) (string, error)
}

type Dispatcher interface {
	Post(fn func()) error
}
