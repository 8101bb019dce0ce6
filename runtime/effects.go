package runtime

import (
	"context"
	"time"
)

// After posts msg once delay has elapsed. A non-positive delay posts at once.
func After(delay time.Duration, msg Message) Effect {
	return Effect{
		Name: "after",
		Run: func(ctx context.Context, post PostFunc) {
			if msg == nil || post == nil {
				return
			}
			if delay <= 0 {
				post(msg)
				return
			}
			timer := time.NewTimer(delay)
			defer timer.Stop()
			select {
			case <-ctx.Done():
			case <-timer.C:
				post(msg)
			}
		},
	}
}

// Every posts the result of fn on a fixed interval.
// Returning nil from fn skips that tick.
func Every(interval time.Duration, fn func(time.Time) Message) Effect {
	return Effect{
		Name: "every",
		Run: func(ctx context.Context, post PostFunc) {
			if interval <= 0 || fn == nil || post == nil {
				return
			}
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case now := <-ticker.C:
					if msg := fn(now); msg != nil {
						post(msg)
					}
				}
			}
		},
	}
}

// Load runs fetch in the background and posts its result as a CustomMsg of
// the given kind. It models an I/O completion arriving at the loop.
func Load(kind string, delay time.Duration, fetch func(ctx context.Context) any) Effect {
	return Effect{
		Name: "load:" + kind,
		Run: func(ctx context.Context, post PostFunc) {
			if fetch == nil || post == nil {
				return
			}
			if delay > 0 {
				timer := time.NewTimer(delay)
				defer timer.Stop()
				select {
				case <-ctx.Done():
					return
				case <-timer.C:
				}
			}
			payload := fetch(ctx)
			if ctx.Err() != nil {
				return
			}
			post(CustomMsg{Kind: kind, Payload: payload})
		},
	}
}
