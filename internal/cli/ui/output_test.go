package ui

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatError(t *testing.T) {
	got := FormatError(ErrorOptions{
		Context:      "unsupported platform",
		Problem:      "vue",
		Suggestions:  []string{"Supported platforms: nextjs, gatsby, react"},
		HelpCommands: []string{"weft create --help"},
		NoColor:      true,
	})

	assert.Contains(t, got, "UNSUPPORTED PLATFORM: vue")
	assert.Contains(t, got, "Supported platforms")
	assert.Contains(t, got, "→ weft create --help")
}

func TestFormatErrorWithoutContext(t *testing.T) {
	got := FormatError(ErrorOptions{Problem: "something broke", NoColor: true})
	assert.Contains(t, got, "✗ something broke")
	assert.NotContains(t, got, ":")
}

func TestFormatSuccess(t *testing.T) {
	assert.Equal(t, "✓ synced", FormatSuccess("synced", true))
}

func TestSpinnerLifecycle(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "working", true)

	s.Start()
	time.Sleep(250 * time.Millisecond)
	s.SetMessage("still working")
	time.Sleep(150 * time.Millisecond)
	s.Success("done")

	out := buf.String()
	assert.Contains(t, out, "working")
	assert.Contains(t, out, "✓ done")
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "idle", true)
	s.Stop()
	assert.Empty(t, buf.String())
}
