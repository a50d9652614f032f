package rankedcache

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranklab/rankcore/pkg/rankcore"
)

func TestGetOrBuildBuildsOnce(t *testing.T) {
	c := New(4)
	builds := 0

	build := func() (*rankcore.RankedMap, error) {
		builds++
		m := rankcore.NewRankedMap()
		m.Insert(1, 0, 42)
		return m, nil
	}

	first, err := c.GetOrBuild("gen-1", build)
	require.NoError(t, err)
	second, err := c.GetOrBuild("gen-1", build)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, builds)
}

func TestGetOrBuildPropagatesError(t *testing.T) {
	c := New(4)
	wantErr := errors.New("index unavailable")

	_, err := c.GetOrBuild("gen-1", func() (*rankcore.RankedMap, error) {
		return nil, wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	if _, ok := c.Get("gen-1"); ok {
		t.Fatal("expected a failed build not to populate the cache")
	}
}

func TestInvalidateDropsEntry(t *testing.T) {
	c := New(4)
	_, _ = c.GetOrBuild("gen-1", func() (*rankcore.RankedMap, error) {
		return rankcore.NewRankedMap(), nil
	})

	c.Invalidate("gen-1")

	if _, ok := c.Get("gen-1"); ok {
		t.Fatal("expected generation to be evicted after Invalidate")
	}
}

func TestDefaultSizeUsedWhenNonPositive(t *testing.T) {
	c := New(0)
	require.NotNil(t, c.entries)

	for i := 0; i <= DefaultSize; i++ {
		_, _ = c.GetOrBuild("gen-"+strconv.Itoa(i), func() (*rankcore.RankedMap, error) {
			return rankcore.NewRankedMap(), nil
		})
	}
	assert.Equal(t, DefaultSize, c.entries.Len())
}
