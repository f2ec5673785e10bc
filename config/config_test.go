package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnatoleLucet/chartbits"
	"github.com/AnatoleLucet/chartbits/log"
)

func TestParse(t *testing.T) {
	t.Run("defaults without section", func(t *testing.T) {
		d, err := Parse([]byte("[other]\nkey = value\n"))
		require.NoError(t, err)

		assert.Equal(t, log.INFO, d.LogLevel)
		assert.Equal(t, TraceNone, d.Trace)
		assert.Zero(t, d.MaxDispatchDepth)
		assert.False(t, d.CheckGoroutine)
	})

	t.Run("full section", func(t *testing.T) {
		d, err := Parse([]byte(`
[diagnostics]
log-level = debug
trace = stack
max-dispatch-depth = 16
check-goroutine = true
`))
		require.NoError(t, err)

		assert.Equal(t, &Diagnostics{
			LogLevel:         log.DEBUG,
			Trace:            TraceStack,
			MaxDispatchDepth: 16,
			CheckGoroutine:   true,
			levelSet:         true,
		}, d)
	})

	t.Run("tracing lowers the default level", func(t *testing.T) {
		d, err := Parse([]byte("[diagnostics]\ntrace = plain\n"))
		require.NoError(t, err)
		assert.Equal(t, log.DEBUG, d.LogLevel)
	})

	t.Run("explicit level wins over tracing", func(t *testing.T) {
		d, err := Parse([]byte("[diagnostics]\ntrace = plain\nlog-level = warn\n"))
		require.NoError(t, err)
		assert.Equal(t, log.WARN, d.LogLevel)
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := Parse([]byte("[diagnostics]\nlog-level = loud\n"))
		assert.EqualError(t, err, "log-level: loud: invalid log level")
	})

	t.Run("bad trace mode", func(t *testing.T) {
		_, err := Parse([]byte("[diagnostics]\ntrace = verbose\n"))
		assert.EqualError(t, err, `trace must be one of none, plain or stack, got "verbose"`)
	})

	t.Run("negative depth", func(t *testing.T) {
		_, err := Parse([]byte("[diagnostics]\nmax-dispatch-depth = -1\n"))
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "chartbits.conf")
		require.NoError(t, os.WriteFile(path, []byte("[diagnostics]\ntrace = plain\n"), 0o600))

		d, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, TracePlain, d.Trace)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.conf"))
		assert.ErrorContains(t, err, "ini.Load")
	})
}

func TestDiagnostics(t *testing.T) {
	t.Run("tracer per mode", func(t *testing.T) {
		for mode, wantNil := range map[TraceMode]bool{
			TraceNone:  true,
			TracePlain: false,
			TraceStack: false,
		} {
			d := &Diagnostics{Trace: mode}
			assert.Equal(t, wantNil, d.Tracer(chartbits.ChartFlags, nil) == nil, string(mode))
		}
	})

	t.Run("set trace", func(t *testing.T) {
		d := &Diagnostics{Trace: TracePlain}

		assert.NoError(t, d.SetTrace("stack"))
		assert.Equal(t, TraceStack, d.Trace)

		assert.Error(t, d.SetTrace("loud"))
		assert.Equal(t, TraceStack, d.Trace)
	})

	t.Run("set trace lowers the default level", func(t *testing.T) {
		d, err := Parse(nil)
		require.NoError(t, err)
		assert.Equal(t, log.INFO, d.LogLevel)

		require.NoError(t, d.SetTrace("stack"))
		assert.Equal(t, log.DEBUG, d.LogLevel)
	})

	t.Run("default tracing reaches the log", func(t *testing.T) {
		t.Cleanup(func() {
			log.Init(nil, log.TRACE)
			chartbits.SetMaxDispatchDepth(0)
		})

		d, err := Parse([]byte("[diagnostics]\ntrace = plain\n"))
		require.NoError(t, err)

		var buf bytes.Buffer
		d.Apply(&buf)
		buf.Reset()

		s := chartbits.NewBitState("x-axis", chartbits.ChartFlags, d.Options(d.Tracer(chartbits.ChartFlags, nil))...)
		s.SetFlags(chartbits.AxisRange)

		assert.Contains(t, buf.String(), "x-axis")
		assert.Contains(t, buf.String(), "(+AxisRange)")
	})

	t.Run("apply", func(t *testing.T) {
		t.Cleanup(func() {
			log.Init(nil, log.TRACE)
			chartbits.SetMaxDispatchDepth(0)
		})

		var buf bytes.Buffer
		d := &Diagnostics{LogLevel: log.DEBUG, MaxDispatchDepth: 3}
		d.Apply(&buf)

		assert.Equal(t, 3, chartbits.MaxDispatchDepth())
		assert.Equal(t, log.DEBUG, log.Level())
		assert.Contains(t, buf.String(), "diagnostics:")
	})

	t.Run("options trace a state", func(t *testing.T) {
		t.Cleanup(func() { log.Init(nil, log.TRACE) })

		var buf bytes.Buffer
		log.Init(&buf, log.DEBUG)

		d := &Diagnostics{Trace: TracePlain, CheckGoroutine: true}
		opts := d.Options(d.Tracer(chartbits.ChartFlags, nil))
		assert.Len(t, opts, 2)

		s := chartbits.NewBitState("x-axis", chartbits.ChartFlags, opts...)
		s.SetFlags(chartbits.AxisRange)

		assert.Contains(t, buf.String(), "[bits] x-axis")
		assert.Contains(t, buf.String(), "(+AxisRange)")
	})
}
