package pexels

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPhotos(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/v1/photos/")
		fmt.Fprintf(w, `{"id": %s, "width": 800, "height": 600, "src": {}}`, id)
	})

	photos, err := client.GetPhotos(context.Background(), []uint64{11, 22, 33})
	require.NoError(t, err)

	require.Len(t, photos, 3)
	assert.Equal(t, uint64(11), photos[0].ID)
	assert.Equal(t, uint64(22), photos[1].ID)
	assert.Equal(t, uint64(33), photos[2].ID)
}

func TestGetPhotosEmpty(t *testing.T) {
	client, err := NewClient("test-key", zerolog.Nop())
	require.NoError(t, err)

	photos, err := client.GetPhotos(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, photos)
}

func TestGetVideosPropagatesFirstError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/7") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"id": 1, "width": 1, "height": 1, "duration": 1, "user": {}}`))
	})

	_, err := client.GetVideos(context.Background(), []uint64{1, 7})
	require.Error(t, err)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "7", notFound.ID)
}
