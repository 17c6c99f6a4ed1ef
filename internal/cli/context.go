package cli

import (
	"context"

	"github.com/thenoetrevino/lista/internal/app"
	"github.com/thenoetrevino/lista/internal/config"
)

type contextKey string

const appKey contextKey = "app"

// WithApp returns a context carrying an existing app. Commands run with
// it use that app instead of opening the database themselves.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns a CLI around the app stored in ctx, or a new
// one backed by the configured database.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a, Config: config.Default()}, nil
	}
	return NewCLI(ctx)
}
