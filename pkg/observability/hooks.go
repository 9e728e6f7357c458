// Package observability provides hooks for metrics and tracing.
//
// Libraries emit events through the hooks returned by [Script], [Render],
// [Cache] and [HTTP]. Until a program registers its own implementation at
// startup, every hook is a no-op, so packages can call them unconditionally:
//
//	func main() {
//	    observability.SetScriptHooks(&myScriptHooks{})
//	    // ... run application
//	}
//
// Inside a library:
//
//	observability.Script().OnRunStart(ctx, runID, "stack", len(ops))
//	// ... execute ...
//	observability.Script().OnRunComplete(ctx, runID, "stack", steps, time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Script Hooks
// =============================================================================

// ScriptHooks receives events from operation script execution.
type ScriptHooks interface {
	// OnRunStart is called before the first operation of a run.
	OnRunStart(ctx context.Context, runID, structure string, ops int)
	// OnRunComplete is called once a run stops, with the number of steps
	// executed and the error that stopped it, if any.
	OnRunComplete(ctx context.Context, runID, structure string, steps int, duration time.Duration, err error)
	// OnDivergence is called when a differential run finds implementations
	// disagreeing at step.
	OnDivergence(ctx context.Context, runID string, step int, op string)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from diagram rendering.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, kind, format string)
	OnRenderComplete(ctx context.Context, kind, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP API server.
type HTTPHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records the status written for a request.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopScriptHooks is a no-op implementation of ScriptHooks.
type NoopScriptHooks struct{}

func (NoopScriptHooks) OnRunStart(context.Context, string, string, int) {}
func (NoopScriptHooks) OnRunComplete(context.Context, string, string, int, time.Duration, error) {
}
func (NoopScriptHooks) OnDivergence(context.Context, string, int, string) {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string, string) {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, string, int, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	scriptHooks ScriptHooks = NoopScriptHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	httpHooks   HTTPHooks   = NoopHTTPHooks{}
	hooksMu     sync.RWMutex
)

// SetScriptHooks registers custom script hooks.
func SetScriptHooks(h ScriptHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		scriptHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Script returns the registered script hooks.
func Script() ScriptHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return scriptHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	scriptHooks = NoopScriptHooks{}
	renderHooks = NoopRenderHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
