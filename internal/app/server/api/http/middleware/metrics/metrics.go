package metrics

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
)

type Observer interface {
	ObserveHTTP(method, operation string, status int, d time.Duration)
}

type Metrics struct {
	observer Observer
}

func New(observer Observer) *Metrics {
	return &Metrics{observer: observer}
}

// Middleware reports every request labelled with its route pattern.
func (m *Metrics) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()
		next(ctx)

		operation := ctx.URL().Path
		if op := ctx.Operation(); op != nil {
			operation = op.Path
		}
		m.observer.ObserveHTTP(ctx.Method(), operation, ctx.Status(), time.Since(start))
	}
}
