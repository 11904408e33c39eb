package modules

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Background модуль для компонентов, которые сами блокируются до отмены ctx:
// служебные HTTP-серверы, long polling бота.
type Background struct {
	Name string
}

func (b Background) Run(ctx context.Context, g *errgroup.Group, run func(context.Context) error) {
	g.Go(func() error {
		if err := run(ctx); err != nil {
			return fmt.Errorf("%s.Run: %w", b.Name, err)
		}

		return nil
	})
}
