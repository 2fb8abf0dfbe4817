package pexels

import (
	"context"
	"fmt"
)

// Collections is a request for the caller's collections list.
type Collections struct {
	page    int
	perPage int
}

// CreateURI renders the request to a fully qualified URL.
func (r *Collections) CreateURI() (string, error) {
	q := &queryPairs{}
	if r.page > 0 {
		q.addInt("page", r.page)
	}
	if r.perPage > 0 {
		q.addInt("per_page", r.perPage)
	}

	return buildURI(fmt.Sprintf("%s/%s/%s", defaultBaseURL, apiVersion, collectionsPath), q)
}

// Fetch retrieves the collections list.
func (r *Collections) Fetch(ctx context.Context, c *Client) (*CollectionsPage, error) {
	uri, err := r.CreateURI()
	if err != nil {
		return nil, err
	}

	var page CollectionsPage
	if err := c.getJSON(ctx, c.resolve(uri), "", "", &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CollectionsBuilder accumulates pagination parameters for the collections
// list.
type CollectionsBuilder struct {
	collections Collections
}

// NewCollectionsBuilder creates an empty CollectionsBuilder.
func NewCollectionsBuilder() *CollectionsBuilder {
	return &CollectionsBuilder{}
}

// Page sets the page number you are requesting.
func (b *CollectionsBuilder) Page(page int) *CollectionsBuilder {
	b.collections.page = page
	return b
}

// PerPage sets the number of results per page.
func (b *CollectionsBuilder) PerPage(perPage int) *CollectionsBuilder {
	b.collections.perPage = perPage
	return b
}

// Build creates the immutable Collections request.
func (b *CollectionsBuilder) Build() *Collections {
	collections := b.collections
	return &collections
}

// Featured is a request for the featured collections list.
type Featured struct {
	page    int
	perPage int
}

// CreateURI renders the request to a fully qualified URL.
func (r *Featured) CreateURI() (string, error) {
	q := &queryPairs{}
	if r.page > 0 {
		q.addInt("page", r.page)
	}
	if r.perPage > 0 {
		q.addInt("per_page", r.perPage)
	}

	return buildURI(fmt.Sprintf("%s/%s/%s/featured", defaultBaseURL, apiVersion, collectionsPath), q)
}

// Fetch retrieves the featured collections list.
func (r *Featured) Fetch(ctx context.Context, c *Client) (*CollectionsPage, error) {
	uri, err := r.CreateURI()
	if err != nil {
		return nil, err
	}

	var page CollectionsPage
	if err := c.getJSON(ctx, c.resolve(uri), "", "", &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// FeaturedBuilder accumulates pagination parameters for the featured
// collections list.
type FeaturedBuilder struct {
	featured Featured
}

// NewFeaturedBuilder creates an empty FeaturedBuilder.
func NewFeaturedBuilder() *FeaturedBuilder {
	return &FeaturedBuilder{}
}

// Page sets the page number you are requesting.
func (b *FeaturedBuilder) Page(page int) *FeaturedBuilder {
	b.featured.page = page
	return b
}

// PerPage sets the number of results per page.
func (b *FeaturedBuilder) PerPage(perPage int) *FeaturedBuilder {
	b.featured.perPage = perPage
	return b
}

// Build creates the immutable Featured request.
func (b *FeaturedBuilder) Build() *Featured {
	featured := b.featured
	return &featured
}

// Media is a request for the media items of a single collection. The type
// parameter filters results to only photos or only videos.
type Media struct {
	id        string
	mediaType MediaType
	sort      MediaSort
	page      int
	perPage   int
}

// CreateURI renders the request to a fully qualified URL.
func (r *Media) CreateURI() (string, error) {
	q := &queryPairs{}
	if r.mediaType != MediaTypeAll {
		q.add("type", r.mediaType.String())
	}
	if r.sort != "" {
		q.add("sort", r.sort.String())
	}
	if r.page > 0 {
		q.addInt("page", r.page)
	}
	if r.perPage > 0 {
		q.addInt("per_page", r.perPage)
	}

	return buildURI(fmt.Sprintf("%s/%s/%s/%s", defaultBaseURL, apiVersion, collectionsPath, r.id), q)
}

// Fetch retrieves the collection's media from the Pexels API.
func (r *Media) Fetch(ctx context.Context, c *Client) (*MediaPage, error) {
	uri, err := r.CreateURI()
	if err != nil {
		return nil, err
	}

	var page MediaPage
	if err := c.getJSON(ctx, c.resolve(uri), "collection", r.id, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// MediaBuilder accumulates parameters for a collection media request.
type MediaBuilder struct {
	media Media
}

// NewMediaBuilder creates an empty MediaBuilder.
func NewMediaBuilder() *MediaBuilder {
	return &MediaBuilder{}
}

// ID sets the id of the collection you are requesting.
func (b *MediaBuilder) ID(id string) *MediaBuilder {
	b.media.id = id
	return b
}

// Type filters results to only photos or only videos.
func (b *MediaBuilder) Type(t MediaType) *MediaBuilder {
	b.media.mediaType = t
	return b
}

// Sort sets the order of items in the collection.
func (b *MediaBuilder) Sort(s MediaSort) *MediaBuilder {
	b.media.sort = s
	return b
}

// Page sets the page number you are requesting.
func (b *MediaBuilder) Page(page int) *MediaBuilder {
	b.media.page = page
	return b
}

// PerPage sets the number of results per page.
func (b *MediaBuilder) PerPage(perPage int) *MediaBuilder {
	b.media.perPage = perPage
	return b
}

// Build creates the immutable Media request.
func (b *MediaBuilder) Build() *Media {
	media := b.media
	return &media
}

// SearchCollections retrieves a page of the caller's collections.
func (c *Client) SearchCollections(ctx context.Context, builder *CollectionsBuilder) (*CollectionsPage, error) {
	return builder.Build().Fetch(ctx, c)
}

// FeaturedCollections retrieves a page of featured collections.
func (c *Client) FeaturedCollections(ctx context.Context, builder *FeaturedBuilder) (*CollectionsPage, error) {
	return builder.Build().Fetch(ctx, c)
}

// SearchMedia retrieves the media items of a single collection.
func (c *Client) SearchMedia(ctx context.Context, builder *MediaBuilder) (*MediaPage, error) {
	return builder.Build().Fetch(ctx, c)
}
