package pexels

import (
	"context"
	"fmt"
)

// PhotoSearch is an immutable photo search request. Build one with
// PhotoSearchBuilder.
type PhotoSearch struct {
	query       string
	page        int
	perPage     int
	orientation Orientation
	size        Size
	color       Color
	hex         string
	locale      Locale
}

// CreateURI renders the request to a fully qualified URL.
func (r *PhotoSearch) CreateURI() (string, error) {
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
	if r.hex != "" {
		hex, err := ParseHexColor(r.hex)
		if err != nil {
			return "", err
		}
		q.add("color", hex)
	} else if r.color != "" {
		q.add("color", r.color.String())
	}
	if r.locale != "" {
		q.add("locale", r.locale.String())
	}

	return buildURI(fmt.Sprintf("%s/%s/search", defaultBaseURL, apiVersion), q)
}

// Fetch executes the search against the Pexels API.
func (r *PhotoSearch) Fetch(ctx context.Context, c *Client) (*PhotosPage, error) {
	uri, err := r.CreateURI()
	if err != nil {
		return nil, err
	}

	var page PhotosPage
	if err := c.getJSON(ctx, c.resolve(uri), "", "", &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// PhotoSearchBuilder accumulates optional parameters for the photo search
// endpoint.
type PhotoSearchBuilder struct {
	search PhotoSearch
}

// NewPhotoSearchBuilder creates an empty PhotoSearchBuilder.
func NewPhotoSearchBuilder() *PhotoSearchBuilder {
	return &PhotoSearchBuilder{}
}

// Query sets the search query.
func (b *PhotoSearchBuilder) Query(query string) *PhotoSearchBuilder {
	b.search.query = query
	return b
}

// Page sets the page number you are requesting.
func (b *PhotoSearchBuilder) Page(page int) *PhotoSearchBuilder {
	b.search.page = page
	return b
}

// PerPage sets the number of results per page.
func (b *PhotoSearchBuilder) PerPage(perPage int) *PhotoSearchBuilder {
	b.search.perPage = perPage
	return b
}

// Orientation restricts results to the given orientation.
func (b *PhotoSearchBuilder) Orientation(o Orientation) *PhotoSearchBuilder {
	b.search.orientation = o
	return b
}

// Size restricts results to a minimum photo size.
func (b *PhotoSearchBuilder) Size(s Size) *PhotoSearchBuilder {
	b.search.size = s
	return b
}

// Color restricts results to a named color.
func (b *PhotoSearchBuilder) Color(c Color) *PhotoSearchBuilder {
	b.search.color = c
	return b
}

// Hex restricts results to a hex color code. The value is validated when
// the URL is rendered; an invalid code surfaces as a HexColorError. Takes
// precedence over Color when both are set.
func (b *PhotoSearchBuilder) Hex(hex string) *PhotoSearchBuilder {
	b.search.hex = hex
	return b
}

// Locale sets the locale of the search.
func (b *PhotoSearchBuilder) Locale(l Locale) *PhotoSearchBuilder {
	b.search.locale = l
	return b
}

// Build creates the immutable PhotoSearch request.
func (b *PhotoSearchBuilder) Build() *PhotoSearch {
	search := b.search
	return &search
}

// Curated is a request for the curated photos feed.
type Curated struct {
	page    int
	perPage int
}

// CreateURI renders the request to a fully qualified URL.
func (r *Curated) CreateURI() (string, error) {
	q := &queryPairs{}
	if r.page > 0 {
		q.addInt("page", r.page)
	}
	if r.perPage > 0 {
		q.addInt("per_page", r.perPage)
	}

	return buildURI(fmt.Sprintf("%s/%s/curated", defaultBaseURL, apiVersion), q)
}

// Fetch retrieves the curated photos feed.
func (r *Curated) Fetch(ctx context.Context, c *Client) (*PhotosPage, error) {
	uri, err := r.CreateURI()
	if err != nil {
		return nil, err
	}

	var page PhotosPage
	if err := c.getJSON(ctx, c.resolve(uri), "", "", &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CuratedBuilder accumulates pagination parameters for the curated feed.
type CuratedBuilder struct {
	curated Curated
}

// NewCuratedBuilder creates an empty CuratedBuilder.
func NewCuratedBuilder() *CuratedBuilder {
	return &CuratedBuilder{}
}

// Page sets the page number you are requesting.
func (b *CuratedBuilder) Page(page int) *CuratedBuilder {
	b.curated.page = page
	return b
}

// PerPage sets the number of results per page.
func (b *CuratedBuilder) PerPage(perPage int) *CuratedBuilder {
	b.curated.perPage = perPage
	return b
}

// Build creates the immutable Curated request.
func (b *CuratedBuilder) Build() *Curated {
	curated := b.curated
	return &curated
}

// FetchPhoto is a request for a single photo by id. An id left at zero
// renders a well-formed URL that the API rejects; the error comes back from
// upstream, not from local validation.
type FetchPhoto struct {
	id uint64
}

// CreateURI renders the request to a fully qualified URL.
func (r *FetchPhoto) CreateURI() (string, error) {
	return buildURI(fmt.Sprintf("%s/%s/photos/%d", defaultBaseURL, apiVersion, r.id), nil)
}

// Fetch retrieves the photo from the Pexels API.
func (r *FetchPhoto) Fetch(ctx context.Context, c *Client) (*Photo, error) {
	uri, err := r.CreateURI()
	if err != nil {
		return nil, err
	}

	var photo Photo
	if err := c.getJSON(ctx, c.resolve(uri), "photo", fmt.Sprintf("%d", r.id), &photo); err != nil {
		return nil, err
	}
	return &photo, nil
}

// FetchPhotoBuilder builds a FetchPhoto request.
type FetchPhotoBuilder struct {
	id uint64
}

// NewFetchPhotoBuilder creates an empty FetchPhotoBuilder.
func NewFetchPhotoBuilder() *FetchPhotoBuilder {
	return &FetchPhotoBuilder{}
}

// ID sets the id of the photo you are requesting.
func (b *FetchPhotoBuilder) ID(id uint64) *FetchPhotoBuilder {
	b.id = id
	return b
}

// Build creates the immutable FetchPhoto request.
func (b *FetchPhotoBuilder) Build() *FetchPhoto {
	return &FetchPhoto{id: b.id}
}

// SearchPhotos retrieves a page of photos matching the builder's criteria.
func (c *Client) SearchPhotos(ctx context.Context, builder *PhotoSearchBuilder) (*PhotosPage, error) {
	return builder.Build().Fetch(ctx, c)
}

// CuratedPhotos retrieves the curated photos feed.
func (c *Client) CuratedPhotos(ctx context.Context, builder *CuratedBuilder) (*PhotosPage, error) {
	return builder.Build().Fetch(ctx, c)
}

// GetPhoto retrieves a photo by its id.
func (c *Client) GetPhoto(ctx context.Context, id uint64) (*Photo, error) {
	return NewFetchPhotoBuilder().ID(id).Build().Fetch(ctx, c)
}
