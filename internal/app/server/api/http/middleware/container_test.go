package middleware

import (
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
)

func noop(ctx huma.Context, next func(huma.Context)) { next(ctx) }

func TestContainer(t *testing.T) {
	mc := NewContainer(noop, nil)
	assert.Len(t, mc.Middlewares, 1)

	snap := mc.Snapshot()
	mc.Add(noop)
	mc.Add(nil)
	assert.Len(t, snap, 1)
	assert.Len(t, mc.Middlewares, 2)

	all := mc.GetAllAndClear()
	assert.Len(t, all, 2)
	assert.Empty(t, mc.Middlewares)
}
