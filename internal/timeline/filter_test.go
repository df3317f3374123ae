package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterByCategory(t *testing.T) {
	events := []Event{
		{ID: "1", Category: Career},
		{ID: "2", Category: Travel},
		{ID: "3", Category: Career},
		{ID: "4", Category: Health},
	}

	t.Run("empty set is identity", func(t *testing.T) {
		got := FilterByCategory(events, nil)
		assert.Equal(t, events, got)

		got[0].Title = "changed"
		assert.Empty(t, events[0].Title, "result must not alias the input")
	})

	t.Run("keeps matching in order", func(t *testing.T) {
		got := FilterByCategory(events, []Category{Health, Career})
		assert.Equal(t, []string{"1", "3", "4"}, ids(got))
	})

	t.Run("idempotent", func(t *testing.T) {
		active := []Category{Travel}
		once := FilterByCategory(events, active)
		assert.Equal(t, once, FilterByCategory(once, active))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, FilterByCategory(events, []Category{Family}))
	})
}
