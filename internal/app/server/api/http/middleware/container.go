package middleware

import (
	"github.com/danielgtaylor/huma/v2"
)

// Container collects huma middlewares for the operations of one handler.
type Container struct {
	huma.Middlewares
}

func NewContainer(base ...func(huma.Context, func(huma.Context))) *Container {
	mc := &Container{Middlewares: make(huma.Middlewares, 0, len(base))}
	for _, mw := range base {
		mc.Add(mw)
	}
	return mc
}

// Add appends mw; nil is ignored so optional middlewares can be passed as is.
func (mc *Container) Add(mw func(ctx huma.Context, next func(huma.Context))) {
	if mw == nil {
		return
	}
	mc.Middlewares = append(mc.Middlewares, mw)
}

// Snapshot returns a copy that later Add calls do not affect.
func (mc *Container) Snapshot() huma.Middlewares {
	out := make(huma.Middlewares, len(mc.Middlewares))
	copy(out, mc.Middlewares)
	return out
}

// GetAllAndClear возвращает все мидлвари и очищает внутренний список
func (mc *Container) GetAllAndClear() huma.Middlewares {
	result := mc.Middlewares
	mc.Middlewares = nil
	return result
}
