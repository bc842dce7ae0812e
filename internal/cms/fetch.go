package cms

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// FetchAllPosts retrieves every post from the CMS. A probe request reads the
// authoritative total, then batches are fetched in groups of parallelRequests
// concurrent requests, waiting for each group before starting the next.
// Results concatenate in ascending batch order regardless of completion
// order. Any failed batch aborts the whole fetch: a silently short post list
// is worse than no list.
//
// The total may drift between the probe and later page fetches if the remote
// data mutates mid-load; batches follow the originally computed plan.
func (c *Client) FetchAllPosts(ctx context.Context) ([]Post, error) {
	probe, err := c.fetchPostPage(ctx, 1, 0)
	if err != nil {
		return nil, fmt.Errorf("probe post count: %w", err)
	}

	total := probe.Total
	if total == 0 {
		return []Post{}, nil
	}

	totalBatches := (total + c.batchSize - 1) / c.batchSize
	c.logger.Debug("post fetch plan",
		"total", total,
		"batch_size", c.batchSize,
		"batches", totalBatches,
	)

	batches := make([][]Post, totalBatches)

	for start := 0; start < totalBatches; start += parallelRequests {
		end := min(start+parallelRequests, totalBatches)

		grp, gctx := errgroup.WithContext(ctx)
		for i := start; i < end; i++ {
			grp.Go(func() error {
				offset := i * c.batchSize
				page, err := c.fetchPostPage(gctx, c.batchSize, offset)
				if err != nil {
					return fmt.Errorf("batch %d (offset %d): %w", i, offset, err)
				}
				batches[i] = page.Posts
				return nil
			})
		}
		if err := grp.Wait(); err != nil {
			return nil, fmt.Errorf("fetch posts: %w", err)
		}
	}

	var posts []Post
	for _, batch := range batches {
		posts = append(posts, batch...)
	}

	return posts, nil
}

// FetchAllMedia retrieves every image record. Media volumes are small, so
// this fetches the first page and only paginates further, sequentially, when
// the total exceeds one batch.
func (c *Client) FetchAllMedia(ctx context.Context) ([]Media, error) {
	first, err := c.fetchMediaPage(ctx, c.batchSize, 0)
	if err != nil {
		return nil, fmt.Errorf("fetch media: %w", err)
	}

	media := first.Photos

	if first.Total > c.batchSize {
		for offset := c.batchSize; offset < first.Total; offset += c.batchSize {
			page, err := c.fetchMediaPage(ctx, c.batchSize, offset)
			if err != nil {
				return nil, fmt.Errorf("fetch media (offset %d): %w", offset, err)
			}
			media = append(media, page.Photos...)
		}
	}

	return media, nil
}

func (c *Client) fetchPostPage(ctx context.Context, limit, offset int) (*PostsEnvelope, error) {
	url := fmt.Sprintf("%s/api/public/posts?limit=%d&offset=%d&includeContent=true",
		c.baseURL, limit, offset)

	body, err := c.fetchWithRetry(ctx, c.postsClient, url)
	if err != nil {
		return nil, err
	}

	var env PostsEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode posts response: %w", err)
	}

	return &env, nil
}

func (c *Client) fetchMediaPage(ctx context.Context, limit, offset int) (*MediaEnvelope, error) {
	url := fmt.Sprintf("%s/api/public/media?limit=%d&offset=%d&type=image",
		c.baseURL, limit, offset)

	body, err := c.fetchWithRetry(ctx, c.mediaClient, url)
	if err != nil {
		return nil, err
	}

	var env MediaEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode media response: %w", err)
	}

	return &env, nil
}
