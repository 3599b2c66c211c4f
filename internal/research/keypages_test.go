package research

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuessKeyPages(t *testing.T) {
	t.Run("bare domain upgraded to https", func(t *testing.T) {
		pages := GuessKeyPages("acme.com")
		require.NotEmpty(t, pages)
		assert.Equal(t, "https://acme.com", pages[0])
		assert.Contains(t, pages, "https://acme.com/about")
		assert.Contains(t, pages, "https://acme.com/sponsorship")
		assert.Contains(t, pages, "https://acme.com/contact")
	})

	t.Run("trailing slash normalized", func(t *testing.T) {
		a := GuessKeyPages("https://acme.com/")
		b := GuessKeyPages("https://acme.com")
		assert.Equal(t, b, a)
	})

	t.Run("order preserved", func(t *testing.T) {
		pages := GuessKeyPages("https://acme.com")
		require.Greater(t, len(pages), 2)
		assert.Equal(t, "https://acme.com", pages[0])
		assert.Equal(t, "https://acme.com/about", pages[1])
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, GuessKeyPages(""))
		assert.Nil(t, GuessKeyPages("   "))
	})

	t.Run("unparseable input", func(t *testing.T) {
		assert.Nil(t, GuessKeyPages("http://"))
	})
}
