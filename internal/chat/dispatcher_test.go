package chat

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Yao1yuan/Tastegent/internal/menu"
)

type stubMenu struct {
	items []menu.Item
}

func (s *stubMenu) ListAll(ctx context.Context) ([]menu.Item, error) {
	return s.items, nil
}

type stubProvider struct {
	name       string
	configured bool
	reply      string
	err        error
	calls      int
	gotSystem  string
}

func (p *stubProvider) Name() string     { return p.name }
func (p *stubProvider) Configured() bool { return p.configured }

func (p *stubProvider) Complete(ctx context.Context, system string, messages []Message) (string, error) {
	p.calls++
	p.gotSystem = system
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

func TestDispatchNoProvidersConfigured(t *testing.T) {
	d := NewDispatcher(&stubMenu{}, time.Second,
		&stubProvider{name: "gemini"},
		&stubProvider{name: "llama"},
	)

	reply := d.Dispatch(context.Background(), []Message{{Role: "user", Content: "hi"}})

	if reply.Role != "assistant" {
		t.Fatalf("expected assistant role, got %q", reply.Role)
	}
	if reply.Content != FallbackMessage {
		t.Fatalf("expected fallback message, got %q", reply.Content)
	}
}

func TestDispatchAllProvidersFail(t *testing.T) {
	failing := &stubProvider{name: "gemini", configured: true, err: errors.New("boom")}

	d := NewDispatcher(&stubMenu{}, time.Second, failing)

	reply := d.Dispatch(context.Background(), []Message{{Role: "user", Content: "hi"}})

	if reply.Content != FallbackMessage {
		t.Fatalf("expected fallback message, got %q", reply.Content)
	}
	if failing.calls != 1 {
		t.Fatalf("expected exactly one call (no retry), got %d", failing.calls)
	}
}

func TestDispatchFallsThroughToNextProvider(t *testing.T) {
	first := &stubProvider{name: "gemini", configured: true, err: errors.New("auth")}
	second := &stubProvider{name: "llama", configured: true, reply: "Try the pizza!"}

	d := NewDispatcher(&stubMenu{}, time.Second, first, second)

	reply := d.Dispatch(context.Background(), []Message{{Role: "user", Content: "hi"}})

	if reply.Content != "Try the pizza!" {
		t.Fatalf("expected second provider's reply, got %q", reply.Content)
	}
	if first.calls != 1 || second.calls != 1 {
		t.Fatalf("expected one call each, got %d and %d", first.calls, second.calls)
	}
}

func TestDispatchStopsAtFirstSuccess(t *testing.T) {
	first := &stubProvider{name: "gemini", configured: true, reply: "Hello!"}
	second := &stubProvider{name: "llama", configured: true, reply: "unused"}

	d := NewDispatcher(&stubMenu{}, time.Second, first, second)

	reply := d.Dispatch(context.Background(), []Message{{Role: "user", Content: "hi"}})

	if reply.Content != "Hello!" {
		t.Fatalf("expected first provider's reply, got %q", reply.Content)
	}
	if second.calls != 0 {
		t.Fatalf("second provider should not be called after a success")
	}
}

func TestDispatchSkipsUnconfiguredProviders(t *testing.T) {
	skipped := &stubProvider{name: "gemini", configured: false, reply: "unused"}
	active := &stubProvider{name: "llama", configured: true, reply: "Hi!"}

	d := NewDispatcher(&stubMenu{}, time.Second, skipped, active)

	reply := d.Dispatch(context.Background(), []Message{{Role: "user", Content: "hi"}})

	if skipped.calls != 0 {
		t.Fatalf("unconfigured provider must not be called")
	}
	if reply.Content != "Hi!" {
		t.Fatalf("expected active provider's reply, got %q", reply.Content)
	}
}

func TestSystemPromptContainsMenu(t *testing.T) {
	store := &stubMenu{items: []menu.Item{
		{ID: 1, Name: "Margherita", Description: "Classic pizza", Price: 11.5, Tags: []string{"pizza", "vegetarian"}},
	}}
	p := &stubProvider{name: "gemini", configured: true, reply: "ok"}

	d := NewDispatcher(store, time.Second, p)
	d.Dispatch(context.Background(), []Message{{Role: "user", Content: "what do you have?"}})

	if !strings.Contains(p.gotSystem, "Margherita") {
		t.Fatalf("system prompt missing menu item: %q", p.gotSystem)
	}
	if !strings.Contains(p.gotSystem, "$11.50") {
		t.Fatalf("system prompt missing price: %q", p.gotSystem)
	}
	if !strings.Contains(p.gotSystem, "pizza, vegetarian") {
		t.Fatalf("system prompt missing tags: %q", p.gotSystem)
	}
}

func TestSystemPromptEmptyMenu(t *testing.T) {
	got := BuildSystemPrompt(nil)
	if !strings.Contains(got, "menu is currently empty") {
		t.Fatalf("expected empty-menu marker, got %q", got)
	}
}
