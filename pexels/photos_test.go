package pexels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhotoSearchCreateURI(t *testing.T) {
	t.Run("query only", func(t *testing.T) {
		uri, err := NewPhotoSearchBuilder().Query("mountains").Build().CreateURI()
		require.NoError(t, err)
		assert.Equal(t, "https://api.pexels.com/v1/search?query=mountains", uri)
	})

	t.Run("query is escaped", func(t *testing.T) {
		uri, err := NewPhotoSearchBuilder().Query("green trees").Build().CreateURI()
		require.NoError(t, err)
		assert.Equal(t, "https://api.pexels.com/v1/search?query=green+trees", uri)
	})

	t.Run("all parameters in order", func(t *testing.T) {
		uri, err := NewPhotoSearchBuilder().
			Query("nature").
			Page(2).
			PerPage(15).
			Orientation(Landscape).
			Size(SizeLarge).
			Color(ColorRed).
			Locale(LocaleEnUS).
			Build().
			CreateURI()
		require.NoError(t, err)
		assert.Equal(t,
			"https://api.pexels.com/v1/search?query=nature&page=2&per_page=15&orientation=landscape&size=large&color=red&locale=en-US",
			uri)
	})

	t.Run("unset fields contribute no key", func(t *testing.T) {
		uri, err := NewPhotoSearchBuilder().Query("sky").PerPage(5).Build().CreateURI()
		require.NoError(t, err)
		assert.Equal(t, "https://api.pexels.com/v1/search?query=sky&per_page=5", uri)
		assert.NotContains(t, uri, "page=0")
		assert.NotContains(t, uri, "orientation")
		assert.NotContains(t, uri, "color")
	})

	t.Run("rendering is deterministic", func(t *testing.T) {
		build := func() string {
			uri, err := NewPhotoSearchBuilder().
				Query("ocean").
				Orientation(Portrait).
				Locale(LocaleDeDE).
				Build().
				CreateURI()
			require.NoError(t, err)
			return uri
		}
		assert.Equal(t, build(), build())
	})

	t.Run("hex color", func(t *testing.T) {
		uri, err := NewPhotoSearchBuilder().Query("sea").Hex("0000FF").Build().CreateURI()
		require.NoError(t, err)
		assert.Equal(t, "https://api.pexels.com/v1/search?query=sea&color=%230000ff", uri)
	})

	t.Run("invalid hex color", func(t *testing.T) {
		_, err := NewPhotoSearchBuilder().Query("sea").Hex("#12").Build().CreateURI()
		require.Error(t, err)
		assert.ErrorIs(t, err, &HexColorError{Value: "#12"})
	})

	t.Run("hex takes precedence over named color", func(t *testing.T) {
		uri, err := NewPhotoSearchBuilder().
			Color(ColorRed).
			Hex("#00ff00").
			Build().
			CreateURI()
		require.NoError(t, err)
		assert.Equal(t, "https://api.pexels.com/v1/search?color=%2300ff00", uri)
	})
}

func TestCuratedCreateURI(t *testing.T) {
	t.Run("no parameters", func(t *testing.T) {
		uri, err := NewCuratedBuilder().Build().CreateURI()
		require.NoError(t, err)
		assert.Equal(t, "https://api.pexels.com/v1/curated", uri)
	})

	t.Run("page and per_page", func(t *testing.T) {
		uri, err := NewCuratedBuilder().Page(3).PerPage(20).Build().CreateURI()
		require.NoError(t, err)
		assert.Equal(t, "https://api.pexels.com/v1/curated?page=3&per_page=20", uri)
	})
}

func TestFetchPhotoCreateURI(t *testing.T) {
	t.Run("with id", func(t *testing.T) {
		uri, err := NewFetchPhotoBuilder().ID(123).Build().CreateURI()
		require.NoError(t, err)
		assert.Equal(t, "https://api.pexels.com/v1/photos/123", uri)
	})

	t.Run("default id still renders", func(t *testing.T) {
		uri, err := NewFetchPhotoBuilder().Build().CreateURI()
		require.NoError(t, err)
		assert.Equal(t, "https://api.pexels.com/v1/photos/0", uri)
	})
}
