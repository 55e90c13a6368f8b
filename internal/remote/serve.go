package remote

import (
	"context"

	"github.com/vk/phisynth/internal/ctxlog"
	"github.com/vk/phisynth/internal/studio"
	"github.com/zishang520/engine.io/v2/types"
)

// Serve connects to the hub and answers editor events until ctx is done or
// the hub disconnects for good.
func Serve(ctx context.Context, st *studio.Studio, o Options) error {
	io, err := Dial(ctx, o)
	if err != nil {
		return err
	}
	defer io.Disconnect()

	session := NewSession(ctx, st, io)
	if err := session.Attach(); err != nil {
		return err
	}
	logger := ctxlog.FromContext(ctx).With("session", session.ID())
	logger.Info("Editor session started.", "sid", io.Id())

	closed := make(chan string, 1)
	io.On(types.EventName("disconnect"), func(args ...any) {
		reason := ""
		if len(args) > 0 {
			reason, _ = args[0].(string)
		}
		logger.Warn("Editor hub disconnected.", "reason", reason)
		// Server-initiated disconnects are not retried by the client.
		if reason == "io server disconnect" {
			select {
			case closed <- reason:
			default:
			}
		}
	})

	select {
	case <-ctx.Done():
		logger.Info("Editor session stopping.", "reason", ctx.Err())
		return nil
	case reason := <-closed:
		logger.Info("Editor session ended by hub.", "reason", reason)
		return nil
	}
}
