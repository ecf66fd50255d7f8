package resource_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kbukum/fidor/resource"
)

func TestCollection(t *testing.T) {
	c := resource.NewCollection([]string{"a", "b", "c"}, resource.Page{CurrentPage: 1, PerPage: 3, TotalEntries: 7, TotalPages: 3})

	first, ok := c.First()
	assert.True(t, ok)
	assert.Equal(t, "a", first)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, "c", c.At(2))
	assert.True(t, c.Page().HasNext())

	var seen []string
	for i, s := range c.All() {
		seen = append(seen, s)
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)

	items := c.Items()
	items[0] = "z"
	assert.Equal(t, "a", c.At(0))
}

func TestCollection_Empty(t *testing.T) {
	c := resource.NewCollection[*note](nil, resource.Page{})
	first, ok := c.First()
	assert.False(t, ok)
	assert.Nil(t, first)
	assert.Equal(t, 0, c.Len())
	assert.False(t, c.Page().HasNext())
}
