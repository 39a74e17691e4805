package chat

import (
	"context"
	"log"
	"time"

	"github.com/Yao1yuan/Tastegent/internal/menu"
)

// FallbackMessage is returned when no provider is configured or every
// configured provider failed.
const FallbackMessage = "I'm not connected to an AI service right now. " +
	"Please ask the operator to set GEMINI_API_KEY or LLAMA_API_KEY."

// MenuLister is the read-only slice of the menu store the dispatcher
// needs for its system prompt.
type MenuLister interface {
	ListAll(ctx context.Context) ([]menu.Item, error)
}

// Dispatcher produces exactly one assistant reply by trying providers
// in priority order. Provider failures are logged and absorbed, never
// surfaced to the caller. It keeps no state between calls.
type Dispatcher struct {
	providers []Provider
	menu      MenuLister
	timeout   time.Duration
}

func NewDispatcher(menuStore MenuLister, timeout time.Duration, providers ...Provider) *Dispatcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Dispatcher{
		providers: providers,
		menu:      menuStore,
		timeout:   timeout,
	}
}

// Dispatch returns the first successful provider reply, or the static
// fallback message when none succeeds.
func (d *Dispatcher) Dispatch(ctx context.Context, messages []Message) Message {
	items, err := d.menu.ListAll(ctx)
	if err != nil {
		items = nil
	}
	system := BuildSystemPrompt(items)

	for _, p := range d.providers {
		if !p.Configured() {
			continue
		}

		reply, err := d.tryProvider(ctx, p, system, messages)
		if err != nil {
			log.Printf("chat provider %s failed: %v", p.Name(), err)
			continue
		}

		return Message{Role: "assistant", Content: reply}
	}

	return Message{Role: "assistant", Content: FallbackMessage}
}

// tryProvider bounds one provider call with the dispatcher timeout so
// an unresponsive backend cannot stall the whole chat request.
func (d *Dispatcher) tryProvider(ctx context.Context, p Provider, system string, messages []Message) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	return p.Complete(callCtx, system, messages)
}
