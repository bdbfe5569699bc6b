//go:build integration

package clipboard_test

import (
	"testing"

	"github.com/fwojciec/textconv/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests touch the real OS clipboard and require a platform
// clipboard service (pbcopy/pbpaste, xclip/xsel, or the Windows
// clipboard). Run with: go test -tags integration ./clipboard
func TestClipboard_RoundTrip(t *testing.T) {
	w := clipboard.NewWriter()
	r := clipboard.NewReader()

	require.NoError(t, w.WriteText("textconv integration test"))

	got, err := r.ReadText()

	require.NoError(t, err)
	assert.Equal(t, "textconv integration test", got)
}
