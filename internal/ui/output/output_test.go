package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/graphcache/internal/ui/output"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile(&bytes.Buffer{}))
}

func TestColorProfile_NotATerminal(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.Equal(t, termenv.Ascii, output.ColorProfile(&bytes.Buffer{}))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, output.IsTerminal(&bytes.Buffer{}))
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	out := output.New(&buf)
	assert.NotNil(t, out)

	_, _ = out.WriteString("test")
	assert.Equal(t, "test", buf.String())
}

func TestNew_Nil(t *testing.T) {
	out := output.New(nil)
	assert.NotNil(t, out)
}

func TestNewWithProfile(t *testing.T) {
	var buf bytes.Buffer
	out := output.NewWithProfile(&buf, termenv.ANSI)

	_, _ = out.WriteString(out.String("x").Foreground(termenv.ANSIRed).String())
	assert.Contains(t, buf.String(), "\x1b[")
}
