package typemeta

import (
	"fmt"
	"sync"
	"testing"

	"schema-inflect/internal/inflect"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeDerivation(t *testing.T) {
	store := New(nil, nil, nil)

	meta := store.Type("BlogPost")
	assert.Equal(t, "BlogPost", meta.Name)
	assert.Equal(t, "blog post", meta.Singular)
	assert.Equal(t, "blog posts", meta.Plural)
	assert.Equal(t, "blog-post", meta.Slug)
	assert.Equal(t, "blog-posts", meta.SlugPlural)
	assert.Equal(t, "creator", meta.Creator)
	assert.Equal(t, "createdAt", meta.CreatedAt)
	assert.Equal(t, "createdBy", meta.CreatedBy)
	assert.Equal(t, "updatedAt", meta.UpdatedAt)
	assert.Equal(t, "updatedBy", meta.UpdatedBy)
	assert.Equal(t, "BlogPost.created", meta.Created)
	assert.Equal(t, "BlogPost.updated", meta.Updated)
	assert.Equal(t, "BlogPost.deleted", meta.Deleted)
}

func TestTypeCaching(t *testing.T) {
	store := New(nil, nil, nil)

	first := store.Type("BlogPost")
	second := store.Type("BlogPost")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.Len())

	other := store.Type("Category")
	assert.Equal(t, 2, store.Len())
	assert.NotEqual(t, first, other)

	// The first record is unchanged by later lookups.
	assert.Equal(t, first, store.Type("BlogPost"))
}

func TestStoresAreIsolated(t *testing.T) {
	a := New(nil, nil, nil)
	b := New(nil, nil, nil)

	a.Type("BlogPost")
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 0, b.Len())
}

func TestTypeUsesEngineOverrides(t *testing.T) {
	cfg := inflect.DefaultConfig()
	cfg.PluralOverrides = map[string]string{"staff": "staff"}
	store := New(inflect.New(cfg, nil), nil, nil)

	meta := store.Type("SupportStaff")
	assert.Equal(t, "support staff", meta.Singular)
	assert.Equal(t, "support staff", meta.Plural)
	assert.Equal(t, "support-staff", meta.SlugPlural)
}

func TestVerbFields(t *testing.T) {
	store := New(nil, nil, nil)

	fields := store.VerbFields("publish")
	require.Equal(t, "publishedAt", fields.At)
	require.Equal(t, "publishedBy", fields.By)

	// Unknown actions are not derived.
	assert.Equal(t, inflect.ReverseFields{}, store.VerbFields("archive"))
}

func TestConcurrentFirstLookups(t *testing.T) {
	store := New(nil, nil, nil)

	var wg sync.WaitGroup
	results := make([]TypeMeta, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = store.Type(fmt.Sprintf("Type%d", i%4))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 4, store.Len())
	for i, meta := range results {
		assert.Equal(t, fmt.Sprintf("Type%d", i%4), meta.Name)
	}
}
