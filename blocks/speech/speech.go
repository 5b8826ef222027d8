package speech

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vk/blockforge/internal/handlers"
)

// Pack implements the handlers.Pack interface for this package.
type Pack struct{}

// SayHello is the handler behind the zero-argument greeting block.
func SayHello(ctx context.Context) (any, error) {
	slog.Info("say_hello invoked")
	return nil, nil
}

// Greet builds a greeting for the given name.
func Greet(ctx context.Context, name string) (any, error) {
	return fmt.Sprintf("Hello, %s!", name), nil
}

// Shout repeats the phrase with emphasis; the runtime renders the result
// in the reporter bubble.
func Shout(ctx context.Context, phrase string, times float64) (any, error) {
	out := ""
	for i := 0; i < int(times); i++ {
		out += phrase + "! "
	}
	return out, nil
}

// Register registers the handlers with the engine.
func (p *Pack) Register(h *handlers.Handlers) {
	h.Register("say_hello", SayHello)
	h.Register("greet", Greet)
	h.Register("shout", Shout)
}
