package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	t.Cleanup(func() { Init(nil, TRACE) })

	t.Run("filters below level", func(t *testing.T) {
		var buf bytes.Buffer
		Init(&buf, INFO)

		l := NewLogger("axis", 2)
		l.Debugf("hidden %d", 1)
		l.Infof("shown %d", 2)

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "INFO  ")
		assert.Contains(t, buf.String(), "[axis] shown 2")
	})

	t.Run("nil writer is silent", func(t *testing.T) {
		Init(nil, TRACE)
		assert.NotPanics(t, func() { Errorf("nowhere") })
	})

	t.Run("parse level", func(t *testing.T) {
		for in, want := range map[string]LogLevel{
			"trace":   TRACE,
			"DEBUG":   DEBUG,
			" info ":  INFO,
			"warning": WARN,
			"err":     ERROR,
		} {
			got, err := ParseLevel(in)
			assert.NoError(t, err)
			assert.Equal(t, want, got, in)
		}

		_, err := ParseLevel("loud")
		assert.EqualError(t, err, "loud: invalid log level")
	})
}
