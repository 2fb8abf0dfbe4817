package pexels

import (
	"context"
	"fmt"
)

// VideoSearch is an immutable video search request. Build one with
// VideoSearchBuilder.
type VideoSearch struct {
	query       string
	page        int
	perPage     int
	orientation Orientation
	size        Size
	locale      Locale
}

// CreateURI renders the request to a fully qualified URL.
func (r *VideoSearch) CreateURI() (string, error) {
	q := &queryPairs{}
	if r.query != "" {
		q.add("query", r.query)
	}
	if r.page > 0 {
		q.addInt("page", r.page)
	}
	if r.perPage > 0 {
		q.addInt("per_page", r.perPage)
	}
	if r.orientation != "" {
		q.add("orientation", r.orientation.String())
	}
	if r.size != "" {
		q.add("size", r.size.String())
	}
	if r.locale != "" {
		q.add("locale", r.locale.String())
	}

	return buildURI(fmt.Sprintf("%s/%s/search", defaultBaseURL, videoPath), q)
}

// Fetch executes the search against the Pexels API.
func (r *VideoSearch) Fetch(ctx context.Context, c *Client) (*VideosPage, error) {
	uri, err := r.CreateURI()
	if err != nil {
		return nil, err
	}

	var page VideosPage
	if err := c.getJSON(ctx, c.resolve(uri), "", "", &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// VideoSearchBuilder accumulates optional parameters for the video search
// endpoint.
type VideoSearchBuilder struct {
	search VideoSearch
}

// NewVideoSearchBuilder creates an empty VideoSearchBuilder.
func NewVideoSearchBuilder() *VideoSearchBuilder {
	return &VideoSearchBuilder{}
}

// Query sets the search query.
func (b *VideoSearchBuilder) Query(query string) *VideoSearchBuilder {
	b.search.query = query
	return b
}

// Page sets the page number you are requesting.
func (b *VideoSearchBuilder) Page(page int) *VideoSearchBuilder {
	b.search.page = page
	return b
}

// PerPage sets the number of results per page.
func (b *VideoSearchBuilder) PerPage(perPage int) *VideoSearchBuilder {
	b.search.perPage = perPage
	return b
}

// Orientation restricts results to the given orientation.
func (b *VideoSearchBuilder) Orientation(o Orientation) *VideoSearchBuilder {
	b.search.orientation = o
	return b
}

// Size restricts results to a minimum video size.
func (b *VideoSearchBuilder) Size(s Size) *VideoSearchBuilder {
	b.search.size = s
	return b
}

// Locale sets the locale of the search.
func (b *VideoSearchBuilder) Locale(l Locale) *VideoSearchBuilder {
	b.search.locale = l
	return b
}

// Build creates the immutable VideoSearch request.
func (b *VideoSearchBuilder) Build() *VideoSearch {
	search := b.search
	return &search
}

// Popular is a request for the popular videos feed.
type Popular struct {
	minWidth    int
	minHeight   int
	minDuration int
	maxDuration int
	page        int
	perPage     int
}

// CreateURI renders the request to a fully qualified URL.
func (r *Popular) CreateURI() (string, error) {
	q := &queryPairs{}
	if r.minWidth > 0 {
		q.addInt("min_width", r.minWidth)
	}
	if r.minHeight > 0 {
		q.addInt("min_height", r.minHeight)
	}
	if r.minDuration > 0 {
		q.addInt("min_duration", r.minDuration)
	}
	if r.maxDuration > 0 {
		q.addInt("max_duration", r.maxDuration)
	}
	if r.page > 0 {
		q.addInt("page", r.page)
	}
	if r.perPage > 0 {
		q.addInt("per_page", r.perPage)
	}

	return buildURI(fmt.Sprintf("%s/%s/popular", defaultBaseURL, videoPath), q)
}

// Fetch retrieves the popular videos feed.
func (r *Popular) Fetch(ctx context.Context, c *Client) (*VideosPage, error) {
	uri, err := r.CreateURI()
	if err != nil {
		return nil, err
	}

	var page VideosPage
	if err := c.getJSON(ctx, c.resolve(uri), "", "", &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// PopularBuilder accumulates optional parameters for the popular videos
// feed.
type PopularBuilder struct {
	popular Popular
}

// NewPopularBuilder creates an empty PopularBuilder.
func NewPopularBuilder() *PopularBuilder {
	return &PopularBuilder{}
}

// MinWidth sets the minimum width in pixels of the returned videos.
func (b *PopularBuilder) MinWidth(w int) *PopularBuilder {
	b.popular.minWidth = w
	return b
}

// MinHeight sets the minimum height in pixels of the returned videos.
func (b *PopularBuilder) MinHeight(h int) *PopularBuilder {
	b.popular.minHeight = h
	return b
}

// MinDuration sets the minimum duration in seconds of the returned videos.
func (b *PopularBuilder) MinDuration(d int) *PopularBuilder {
	b.popular.minDuration = d
	return b
}

// MaxDuration sets the maximum duration in seconds of the returned videos.
func (b *PopularBuilder) MaxDuration(d int) *PopularBuilder {
	b.popular.maxDuration = d
	return b
}

// Page sets the page number you are requesting.
func (b *PopularBuilder) Page(page int) *PopularBuilder {
	b.popular.page = page
	return b
}

// PerPage sets the number of results per page.
func (b *PopularBuilder) PerPage(perPage int) *PopularBuilder {
	b.popular.perPage = perPage
	return b
}

// Build creates the immutable Popular request.
func (b *PopularBuilder) Build() *Popular {
	popular := b.popular
	return &popular
}

// FetchVideo is a request for a single video by id.
type FetchVideo struct {
	id uint64
}

// CreateURI renders the request to a fully qualified URL.
func (r *FetchVideo) CreateURI() (string, error) {
	return buildURI(fmt.Sprintf("%s/%s/videos/%d", defaultBaseURL, videoPath, r.id), nil)
}

// Fetch retrieves the video from the Pexels API.
func (r *FetchVideo) Fetch(ctx context.Context, c *Client) (*Video, error) {
	uri, err := r.CreateURI()
	if err != nil {
		return nil, err
	}

	var video Video
	if err := c.getJSON(ctx, c.resolve(uri), "video", fmt.Sprintf("%d", r.id), &video); err != nil {
		return nil, err
	}
	return &video, nil
}

// FetchVideoBuilder builds a FetchVideo request.
type FetchVideoBuilder struct {
	id uint64
}

// NewFetchVideoBuilder creates an empty FetchVideoBuilder.
func NewFetchVideoBuilder() *FetchVideoBuilder {
	return &FetchVideoBuilder{}
}

// ID sets the id of the video you are requesting.
func (b *FetchVideoBuilder) ID(id uint64) *FetchVideoBuilder {
	b.id = id
	return b
}

// Build creates the immutable FetchVideo request.
func (b *FetchVideoBuilder) Build() *FetchVideo {
	return &FetchVideo{id: b.id}
}

// SearchVideos retrieves a page of videos matching the builder's criteria.
func (c *Client) SearchVideos(ctx context.Context, builder *VideoSearchBuilder) (*VideosPage, error) {
	return builder.Build().Fetch(ctx, c)
}

// PopularVideos retrieves the popular videos feed.
func (c *Client) PopularVideos(ctx context.Context, builder *PopularBuilder) (*VideosPage, error) {
	return builder.Build().Fetch(ctx, c)
}

// GetVideo retrieves a video by its id.
func (c *Client) GetVideo(ctx context.Context, id uint64) (*Video, error) {
	return NewFetchVideoBuilder().ID(id).Build().Fetch(ctx, c)
}
