package pexels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoSearchCreateURI(t *testing.T) {
	t.Run("query only", func(t *testing.T) {
		uri, err := NewVideoSearchBuilder().Query("nature").Build().CreateURI()
		require.NoError(t, err)
		assert.Equal(t, "https://api.pexels.com/videos/search?query=nature", uri)
	})

	t.Run("all parameters in order", func(t *testing.T) {
		uri, err := NewVideoSearchBuilder().
			Query("surf").
			Page(2).
			PerPage(10).
			Orientation(Square).
			Size(SizeSmall).
			Locale(LocaleFrFR).
			Build().
			CreateURI()
		require.NoError(t, err)
		assert.Equal(t,
			"https://api.pexels.com/videos/search?query=surf&page=2&per_page=10&orientation=square&size=small&locale=fr-FR",
			uri)
	})

	t.Run("unset fields contribute no key", func(t *testing.T) {
		uri, err := NewVideoSearchBuilder().Query("city").Build().CreateURI()
		require.NoError(t, err)
		assert.Equal(t, "https://api.pexels.com/videos/search?query=city", uri)
	})
}

func TestPopularCreateURI(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Popular
		want  string
	}{
		{
			name:  "min_width",
			build: func() *Popular { return NewPopularBuilder().MinWidth(1).Build() },
			want:  "https://api.pexels.com/videos/popular?min_width=1",
		},
		{
			name:  "min_height",
			build: func() *Popular { return NewPopularBuilder().MinHeight(1).Build() },
			want:  "https://api.pexels.com/videos/popular?min_height=1",
		},
		{
			name:  "min_duration",
			build: func() *Popular { return NewPopularBuilder().MinDuration(10).Build() },
			want:  "https://api.pexels.com/videos/popular?min_duration=10",
		},
		{
			name:  "max_duration",
			build: func() *Popular { return NewPopularBuilder().MaxDuration(100).Build() },
			want:  "https://api.pexels.com/videos/popular?max_duration=100",
		},
		{
			name:  "page",
			build: func() *Popular { return NewPopularBuilder().Page(1).Build() },
			want:  "https://api.pexels.com/videos/popular?page=1",
		},
		{
			name:  "per_page",
			build: func() *Popular { return NewPopularBuilder().PerPage(1).Build() },
			want:  "https://api.pexels.com/videos/popular?per_page=1",
		},
		{
			name:  "no parameters",
			build: func() *Popular { return NewPopularBuilder().Build() },
			want:  "https://api.pexels.com/videos/popular",
		},
		{
			name: "all parameters in order",
			build: func() *Popular {
				return NewPopularBuilder().
					MinWidth(1920).
					MinHeight(1080).
					MinDuration(5).
					MaxDuration(60).
					Page(2).
					PerPage(25).
					Build()
			},
			want: "https://api.pexels.com/videos/popular?min_width=1920&min_height=1080&min_duration=5&max_duration=60&page=2&per_page=25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uri, err := tt.build().CreateURI()
			require.NoError(t, err)
			assert.Equal(t, tt.want, uri)
		})
	}
}

func TestFetchVideoCreateURI(t *testing.T) {
	t.Run("with id", func(t *testing.T) {
		uri, err := NewFetchVideoBuilder().ID(123).Build().CreateURI()
		require.NoError(t, err)
		assert.Equal(t, "https://api.pexels.com/videos/videos/123", uri)
	})

	t.Run("default id still renders", func(t *testing.T) {
		uri, err := NewFetchVideoBuilder().Build().CreateURI()
		require.NoError(t, err)
		assert.Equal(t, "https://api.pexels.com/videos/videos/0", uri)
	})
}
