package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromString(t *testing.T) {
	cases := map[string]Level{
		"debug":    LevelDebug,
		"INFO":     LevelInfo,
		" warn ":   LevelWarn,
		"error":    LevelError,
		"disabled": LevelNone,
		"bogus":    LevelDebug,
	}
	for in, want := range cases {
		assert.Equal(t, want, LevelFromString(in), in)
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelInfo)
	l.Debugf("[TEST] hidden %d", 1)
	l.Infof("[TEST] shown %d", 2)
	l.Errorf("[TEST] failed %s", "x")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"message":"[TEST] shown 2"`)
	assert.Contains(t, out, `"level":"error"`)
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelError)
	l.Infof("quiet")
	assert.Empty(t, buf.String())

	l.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, l.Level())
	l.Debugf("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	var l *Logger
	l.Infof("nothing")
	Nop().Errorf("nothing")
}
