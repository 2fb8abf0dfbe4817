package pexels

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// maxBatchConcurrency bounds in-flight requests during batch lookups.
const maxBatchConcurrency = 5

// GetPhotos retrieves multiple photos by id with bounded concurrency.
// Results keep the order of ids; the first error cancels the remaining
// requests.
func (c *Client) GetPhotos(ctx context.Context, ids []uint64) ([]*Photo, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	photos := make([]*Photo, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxBatchConcurrency)

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			photo, err := c.GetPhoto(ctx, id)
			if err != nil {
				return err
			}
			photos[i] = photo
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return photos, nil
}

// GetVideos retrieves multiple videos by id with bounded concurrency.
func (c *Client) GetVideos(ctx context.Context, ids []uint64) ([]*Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	videos := make([]*Video, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxBatchConcurrency)

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			video, err := c.GetVideo(ctx, id)
			if err != nil {
				return err
			}
			videos[i] = video
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return videos, nil
}
