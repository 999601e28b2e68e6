package bloom_test

import (
	"testing"

	"github.com/fwojciec/pageask/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(100, bloom.DefaultFalsePositiveRate)

	assert.False(t, f.Test("https://help.example.com/docs/intro"))

	f.Add("https://help.example.com/docs/intro")

	assert.True(t, f.Test("https://help.example.com/docs/intro"))
}

func TestFilter_TestAndAdd(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(100, bloom.DefaultFalsePositiveRate)

	assert.False(t, f.TestAndAdd("https://help.example.com/docs/routing"))
	assert.True(t, f.TestAndAdd("https://help.example.com/docs/routing"))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(100, bloom.DefaultFalsePositiveRate)
	f.Add("https://help.example.com/a")
	f.Add("https://help.example.com/b")

	assert.Equal(t, uint(2), f.EstimatedCount())
}
