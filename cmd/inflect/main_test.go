package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"schema-inflect/internal/config"
	"schema-inflect/internal/inflect"
	"schema-inflect/internal/typemeta"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitText(t *testing.T) {
	engine := inflect.Default()
	store := typemeta.New(engine, nil, nil)

	tests := []struct {
		name     string
		mode     string
		token    string
		contains []string
	}{
		{
			name:     "type mode",
			mode:     "type",
			token:    "BlogPost",
			contains: []string{"BlogPost", `singular="blog post"`, `plural="blog posts"`, "slug=blog-post", "created=BlogPost.created"},
		},
		{
			name:     "verb mode",
			mode:     "verb",
			token:    "publish",
			contains: []string{"publish", "actor=publisher", "result=publication", "at=publishedAt"},
		},
		{
			name:     "plural mode",
			mode:     "plural",
			token:    "category",
			contains: []string{"category\tcategories"},
		},
		{
			name:     "singular mode",
			mode:     "singular",
			token:    "categories",
			contains: []string{"categories\tcategory"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := emit(&buf, config.OutputConfig{Mode: tt.mode}, engine, store, tt.token)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestEmitJSON(t *testing.T) {
	engine := inflect.Default()
	store := typemeta.New(engine, nil, nil)

	var buf bytes.Buffer
	err := emit(&buf, config.OutputConfig{Mode: "type", JSON: true}, engine, store, "BlogPost")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "BlogPost", decoded["name"])
	assert.Equal(t, "blog-post", decoded["slug"])
	assert.Equal(t, "blog posts", decoded["plural"])
	assert.Equal(t, "createdAt", decoded["createdAt"])
}
