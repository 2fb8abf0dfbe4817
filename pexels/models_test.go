package pexels

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaItemUnmarshal(t *testing.T) {
	t.Run("photo", func(t *testing.T) {
		data := []byte(`{
			"type": "Photo", "id": 12, "width": 640, "height": 480,
			"photographer": "Ada", "avg_color": "#ffffff",
			"src": {"tiny": "https://images.pexels.com/12-tiny.jpg"}
		}`)

		var item MediaItem
		require.NoError(t, json.Unmarshal(data, &item))

		assert.True(t, item.IsPhoto())
		assert.False(t, item.IsVideo())
		assert.Equal(t, "Photo", item.Type)
		require.NotNil(t, item.Photo)
		assert.Equal(t, uint64(12), item.Photo.ID)
		assert.Equal(t, "https://images.pexels.com/12-tiny.jpg", item.Photo.Src.Tiny)
		assert.Nil(t, item.Video)
	})

	t.Run("video", func(t *testing.T) {
		data := []byte(`{
			"type": "Video", "id": 34, "width": 1280, "height": 720, "duration": 9,
			"tags": ["sea", "waves"],
			"user": {"id": 2, "name": "Grace", "url": ""}
		}`)

		var item MediaItem
		require.NoError(t, json.Unmarshal(data, &item))

		assert.True(t, item.IsVideo())
		require.NotNil(t, item.Video)
		assert.Equal(t, uint64(34), item.Video.ID)
		assert.Equal(t, []string{"sea", "waves"}, item.Video.Tags)
		assert.Nil(t, item.Photo)
	})

	t.Run("lowercase discriminator", func(t *testing.T) {
		var item MediaItem
		require.NoError(t, json.Unmarshal([]byte(`{"type": "photo", "id": 1}`), &item))
		assert.True(t, item.IsPhoto())
	})

	t.Run("unknown type", func(t *testing.T) {
		var item MediaItem
		err := json.Unmarshal([]byte(`{"type": "audio", "id": 1}`), &item)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "audio")
	})
}

func TestMediaItemMarshal(t *testing.T) {
	item := MediaItem{
		Type:  "Photo",
		Photo: &MediaPhoto{Type: "Photo", ID: 5, Width: 100, Height: 50},
	}

	data, err := json.Marshal(item)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"Photo"`)
	assert.Contains(t, string(data), `"id":5`)
}

func TestCollectionDecoding(t *testing.T) {
	data := []byte(`{
		"collections": [
			{"id": "9mp14cx", "title": "Cool Cats", "description": null, "private": false,
			 "media_count": 12, "photos_count": 10, "videos_count": 2}
		],
		"page": 1, "per_page": 15, "total_results": 1,
		"next_page": null, "prev_page": null
	}`)

	var page CollectionsPage
	require.NoError(t, json.Unmarshal(data, &page))

	require.Len(t, page.Collections, 1)
	col := page.Collections[0]
	assert.Equal(t, "9mp14cx", col.ID)
	assert.Equal(t, "Cool Cats", col.Title)
	assert.Empty(t, col.Description)
	assert.False(t, col.Private)
	assert.Equal(t, 12, col.MediaCount)
	assert.Equal(t, 10, col.PhotosCount)
	assert.Equal(t, 2, col.VideosCount)
	assert.Empty(t, page.NextPage)
}
