package textconv_test

import (
	"testing"

	"github.com/fwojciec/textconv"
	"github.com/fwojciec/textconv/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Get(t *testing.T) {
	t.Parallel()

	t.Run("returns the registered converter", func(t *testing.T) {
		t.Parallel()

		conv := &mock.Converter{}
		r := textconv.NewRegistry()
		r.Register("reverse", conv)

		got, err := r.Get("reverse")

		require.NoError(t, err)
		assert.Same(t, conv, got)
	})

	t.Run("unknown name returns not found", func(t *testing.T) {
		t.Parallel()

		r := textconv.NewRegistry()

		_, err := r.Get("missing")

		require.Error(t, err)
		assert.Equal(t, textconv.ENOTFOUND, textconv.ErrorCode(err))
	})

	t.Run("re-registering replaces the converter", func(t *testing.T) {
		t.Parallel()

		first := &mock.Converter{}
		second := &mock.Converter{}
		r := textconv.NewRegistry()
		r.Register("reverse", first)
		r.Register("reverse", second)

		got, err := r.Get("reverse")

		require.NoError(t, err)
		assert.Same(t, second, got)
	})
}

func TestRegistry_List(t *testing.T) {
	t.Parallel()

	t.Run("returns names in sorted order", func(t *testing.T) {
		t.Parallel()

		r := textconv.NewRegistry()
		r.Register("upper", &mock.Converter{})
		r.Register("lower", &mock.Converter{})
		r.Register("reverse", &mock.Converter{})

		assert.Equal(t, []string{"lower", "reverse", "upper"}, r.List())
	})

	t.Run("empty registry lists nothing", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, textconv.NewRegistry().List())
	})
}
