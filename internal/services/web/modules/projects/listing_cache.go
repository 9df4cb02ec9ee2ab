package projects

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// defaultPageSize is the fixed listing page size.
const defaultPageSize = 20

// pageKey identifies one listing request. Equal keys must resolve to the
// same fetch.
type pageKey struct {
	Page     int
	PageSize int
}

func (k pageKey) String() string {
	return strconv.Itoa(k.Page) + ":" + strconv.Itoa(k.PageSize)
}

// pageSnapshot is one loaded listing page plus derived pagination metadata.
// Generation orders snapshot arrivals across keys; the empty-collection
// guard keys its one-shot redirect to it.
type pageSnapshot struct {
	Projects   []Project
	TotalCount int
	TotalPages int
	Page       int
	PageSize   int
	Generation uint64
}

// Empty reports whether the loaded collection holds no projects at all.
func (s pageSnapshot) Empty() bool {
	return s.TotalCount == 0 && len(s.Projects) == 0
}

// listingCache resolves listing pages by request key. A cached key never
// reaches the gateway again until the cache is invalidated; concurrent
// requests for an uncached key share a single in-flight fetch. Fetch
// failures are returned to the caller and never cached.
type listingCache struct {
	gateway  ProjectGateway
	pageSize int
	group    singleflight.Group

	mu         sync.Mutex
	pages      map[pageKey]pageSnapshot
	generation uint64
}

func newListingCache(gateway ProjectGateway, pageSize int) *listingCache {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	return &listingCache{
		gateway:  gateway,
		pageSize: pageSize,
		pages:    make(map[pageKey]pageSnapshot),
	}
}

// Resolve returns the snapshot for a page, fetching it when absent. Pages
// below 1 resolve to page 1; pages beyond the loaded page count resolve to
// the last page.
func (c *listingCache) Resolve(ctx context.Context, page int) (pageSnapshot, error) {
	if page < 1 {
		page = 1
	}
	snapshot, err := c.resolveKey(ctx, pageKey{Page: page, PageSize: c.pageSize})
	if err != nil {
		return pageSnapshot{}, err
	}
	if snapshot.TotalPages >= 1 && page > snapshot.TotalPages {
		return c.resolveKey(ctx, pageKey{Page: snapshot.TotalPages, PageSize: c.pageSize})
	}
	return snapshot, nil
}

// Invalidate clears every cached page. Called after mutations that change
// the collection.
func (c *listingCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages = make(map[pageKey]pageSnapshot)
}

func (c *listingCache) resolveKey(ctx context.Context, key pageKey) (pageSnapshot, error) {
	c.mu.Lock()
	snapshot, ok := c.pages[key]
	c.mu.Unlock()
	if ok {
		return snapshot, nil
	}

	value, err, _ := c.group.Do(key.String(), func() (any, error) {
		c.mu.Lock()
		cached, ok := c.pages[key]
		c.mu.Unlock()
		if ok {
			return cached, nil
		}
		result, err := c.gateway.ListProjects(ctx, key.Page, key.PageSize)
		if err != nil {
			return pageSnapshot{}, err
		}
		return c.store(key, result), nil
	})
	if err != nil {
		return pageSnapshot{}, err
	}
	return value.(pageSnapshot), nil
}

// store records a fetched page under its request key. Results keep the key
// they were fetched for, so a late result can never replace another key's
// data.
func (c *listingCache) store(key pageKey, result ProjectPage) pageSnapshot {
	projects := result.Projects
	if projects == nil {
		projects = []Project{}
	}
	totalCount := result.TotalCount
	if totalCount < len(projects) {
		totalCount = len(projects)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	snapshot := pageSnapshot{
		Projects:   projects,
		TotalCount: totalCount,
		TotalPages: totalPageCount(totalCount, key.PageSize),
		Page:       key.Page,
		PageSize:   key.PageSize,
		Generation: c.generation,
	}
	c.pages[key] = snapshot
	return snapshot
}

// totalPageCount derives ceil(totalCount / pageSize).
func totalPageCount(totalCount int, pageSize int) int {
	if totalCount <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}
