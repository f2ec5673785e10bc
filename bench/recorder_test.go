package bench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		assert.True(t, IsDisabled(nil))
		assert.True(t, IsDisabled(Disabled))
		assert.Equal(t, Disabled, OrDisabled(nil))
		assert.NotPanics(t, func() { Start(nil, "draw")() })
	})

	t.Run("start records elapsed time", func(t *testing.T) {
		names := []string{}
		r := Func(func(name string, d time.Duration) {
			names = append(names, name)
			assert.GreaterOrEqual(t, d, time.Duration(0))
		})
		assert.False(t, IsDisabled(r))

		done := Start(r, "layout")
		done()

		assert.Equal(t, []string{"layout"}, names)
	})
}
