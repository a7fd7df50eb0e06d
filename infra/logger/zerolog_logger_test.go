package logger

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZerologLoggerMethods(t *testing.T) {
	assert.NoError(t, os.Setenv("FC_ENV", "dev"))
	defer func() { assert.NoError(t, os.Unsetenv("FC_ENV")) }()
	l := NewZerologLogger("test")
	if l == nil {
		t.Fatalf("nil logger")
	}
	l.Debugf("debug %d", 1)
	l.Debugw("debug", map[string]any{"k": 1})
	l.Infof("info %s", "test")
	l.Warnf("warn")
	l.Errorf("error")
}

func TestConfigure(t *testing.T) {
	defer func() { assert.NoError(t, Configure("debug", "")) }()

	assert.NoError(t, Configure("warn", "console"))
	l := NewZerologLogger("test")
	l.Warnf("warn")

	assert.NoError(t, Configure("info", "json"))
	l = NewZerologLogger("test")
	l.Infof("info")

	assert.Error(t, Configure("loud", ""))
}
