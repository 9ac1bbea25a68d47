package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaRegistry(t *testing.T) {
	t.Run("AllKindsRegistered", func(t *testing.T) {
		kinds := Kinds()
		require.Len(t, kinds, 4)

		names := make([]string, 0, len(kinds))
		for _, s := range kinds {
			names = append(names, s.Kind)
		}
		assert.Equal(t, []string{"news", "books", "maps", "videos"}, names)
	})

	t.Run("KindByName", func(t *testing.T) {
		s, ok := KindByName("books")
		require.True(t, ok)
		assert.Equal(t, "books", s.Table)

		_, ok = KindByName("podcasts")
		assert.False(t, ok)
	})

	t.Run("EveryKindHasATitle", func(t *testing.T) {
		for _, s := range Kinds() {
			assert.True(t, s.Has("title"), s.Kind)
			assert.Contains(t, s.RequiredFields(), "title", s.Kind)
		}
	})

	t.Run("MediaFields", func(t *testing.T) {
		assert.Equal(t, []string{"coverUrl", "pdfUrl"}, BookSchema.MediaFields())
		assert.True(t, VideoSchema.IsMedia("thumbnailUrl"))
		assert.False(t, VideoSchema.IsMedia("duration"))
		assert.False(t, VideoSchema.IsMedia("nonexistent"))
	})
}

func TestDocumentJSON(t *testing.T) {
	t.Run("FlattensFieldBag", func(t *testing.T) {
		doc := &Document{
			ID:        uuid.MustParse("6b1e3e0a-2f3b-4c76-9c68-5dd6b2a3f111"),
			Fields:    map[string]string{"title": "T", "mapUrl": "http://x/y.png"},
			CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC),
		}

		data, err := json.Marshal(doc)
		require.NoError(t, err)

		var out map[string]string
		require.NoError(t, json.Unmarshal(data, &out))

		assert.Equal(t, "6b1e3e0a-2f3b-4c76-9c68-5dd6b2a3f111", out["id"])
		assert.Equal(t, "T", out["title"])
		assert.Equal(t, "http://x/y.png", out["mapUrl"])
		assert.Equal(t, "2025-03-01T12:00:00Z", out["createdAt"])

		// No nested "fields" object on the wire
		assert.NotContains(t, string(data), `"Fields"`)
		assert.NotContains(t, string(data), `"fields"`)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		original := &Document{
			ID:        uuid.New(),
			Fields:    map[string]string{"title": "T", "body": "B", "imageUrl": "http://x/a.png"},
			CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
			UpdatedAt: time.Now().UTC().Truncate(time.Millisecond),
		}

		data, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded Document
		require.NoError(t, json.Unmarshal(data, &decoded))

		assert.Equal(t, original.ID, decoded.ID)
		assert.Equal(t, original.Fields, decoded.Fields)
		assert.True(t, original.CreatedAt.Equal(decoded.CreatedAt))
		assert.True(t, original.UpdatedAt.Equal(decoded.UpdatedAt))
	})
}
