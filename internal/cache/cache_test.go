package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPutGet(t *testing.T) {
	c := New()

	_, ok := c.Get("a@x.com")
	assert.False(t, ok)

	c.Put("a@x.com", "secret")
	got, ok := c.Get("a@x.com")
	assert.True(t, ok)
	assert.Equal(t, "secret", got)
	assert.Equal(t, 1, c.Len())
}

func TestPutOverwrites(t *testing.T) {
	c := New()
	c.Put("a@x.com", "first")
	c.Put("a@x.com", "second")

	got, ok := c.Get("a@x.com")
	assert.True(t, ok)
	assert.Equal(t, "second", got)
	assert.Equal(t, 1, c.Len())
}

func TestConcurrentAccess(t *testing.T) {
	c := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			email := fmt.Sprintf("user%d@x.com", i%10)
			c.Put(email, "pw")
			c.Get(email)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, c.Len())
}
