package interp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cropguru/pkg/interp"
)

func TestApply(t *testing.T) {
	t.Run("substitutes all occurrences", func(t *testing.T) {
		got := interp.Apply("{n} of {n} in {place}", map[string]any{"n": 3, "place": "field-2"})
		assert.Equal(t, "3 of 3 in field-2", got)
	})

	t.Run("leaves unmatched placeholders literal", func(t *testing.T) {
		got := interp.Apply("hello {name}", map[string]any{"other": "x"})
		assert.Equal(t, "hello {name}", got)
	})

	t.Run("nil params returns template unchanged", func(t *testing.T) {
		got := interp.Apply("hello {name}", nil)
		assert.Equal(t, "hello {name}", got)
	})
}
