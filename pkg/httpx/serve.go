package httpx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"re_deals/pkg/logx"
)

const serveReadHeaderTimeout = 5 * time.Second

// Serve запускает служебный HTTP-сервер и блокируется до отмены ctx.
// Остановка без таймаута: служебные обработчики отвечают мгновенно.
func Serve(ctx context.Context, name, listenAddress string, handler http.Handler) error {
	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              listenAddress,
		Handler:           handler,
		ReadHeaderTimeout: serveReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()

		if err := httpServer.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger(ctx).Error("httpServer.Shutdown", slog.String("server", name), logx.Error(err))
		}
	}()

	logger(ctx).Info(name+" server started", slog.String(logx.FieldAddress, listenAddress))

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s: httpServer.ListenAndServe: %w", name, err)
	}

	logger(ctx).Info(name+" server stopped", slog.String(logx.FieldAddress, listenAddress))

	return nil
}
