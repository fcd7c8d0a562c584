// Package staffdir resolves teacher display names from the staff directory service.
package staffdir

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/zenGate-Global/palmyra-timetable/platform/go/metrics"
)

// maxIDsPerRequest bounds the ids query parameter of a single directory call.
const maxIDsPerRequest = 100

// Directory resolves staff ids to display names. Unknown ids are omitted from the result.
type Directory interface {
	DisplayNames(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

// Client is an HTTP client for GET {base}/api/v1/staff?ids=a,b with optional Redis caching.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client

	redis    *redis.Client
	cacheTTL time.Duration
}

type staffItem struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

type staffResponse struct {
	Items []staffItem `json:"items"`
}

// NewClient constructs a client with the directory base URL and API key.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// UseRedisCache configures optional Redis caching of resolved names.
func (c *Client) UseRedisCache(redisClient *redis.Client, ttl time.Duration) {
	c.redis = redisClient
	c.cacheTTL = ttl
}

// DisplayNames resolves ids in batches, serving what it can from the cache.
func (c *Client) DisplayNames(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	ids = dedupe(ids)
	if len(ids) == 0 {
		return names, nil
	}

	missing := c.readCache(ctx, tenantID, ids, names)
	metrics.AddStaffLookups("hit", len(ids)-len(missing))
	metrics.AddStaffLookups("miss", len(missing))

	for start := 0; start < len(missing); start += maxIDsPerRequest {
		end := start + maxIDsPerRequest
		if end > len(missing) {
			end = len(missing)
		}

		fetched, err := c.fetch(ctx, tenantID, missing[start:end])
		if err != nil {
			metrics.AddStaffLookups("error", end-start)
			return nil, err
		}
		for id, name := range fetched {
			names[id] = name
		}
		c.writeCache(ctx, tenantID, fetched)
	}

	return names, nil
}

func (c *Client) fetch(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.String())
	}
	endpoint := fmt.Sprintf("%s/api/v1/staff?ids=%s", c.baseURL, url.QueryEscape(strings.Join(raw, ",")))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Tenant-ID", tenantID.String())
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("staff directory request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("staff directory: http %d", resp.StatusCode)
	}

	var body staffResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode staff directory response: %w", err)
	}

	names := make(map[uuid.UUID]string, len(body.Items))
	for _, item := range body.Items {
		id, err := uuid.Parse(item.ID)
		if err != nil || strings.TrimSpace(item.DisplayName) == "" {
			continue
		}
		names[id] = item.DisplayName
	}
	return names, nil
}

// readCache fills names from Redis and returns the ids that still need a lookup.
func (c *Client) readCache(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID, names map[uuid.UUID]string) []uuid.UUID {
	if c.redis == nil || c.cacheTTL <= 0 {
		return ids
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, cacheKey(tenantID, id))
	}

	values, err := c.redis.MGet(ctx, keys...).Result()
	if err != nil {
		return ids
	}

	missing := make([]uuid.UUID, 0, len(ids))
	for i, id := range ids {
		if name, ok := values[i].(string); ok && name != "" {
			names[id] = name
			continue
		}
		missing = append(missing, id)
	}
	return missing
}

func (c *Client) writeCache(ctx context.Context, tenantID uuid.UUID, names map[uuid.UUID]string) {
	if c.redis == nil || c.cacheTTL <= 0 || len(names) == 0 {
		return
	}

	pipe := c.redis.Pipeline()
	for id, name := range names {
		pipe.Set(ctx, cacheKey(tenantID, id), name, c.cacheTTL)
	}
	_, _ = pipe.Exec(ctx)
}

func cacheKey(tenantID, id uuid.UUID) string {
	return fmt.Sprintf("staffdir:%s:%s", tenantID, id)
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Noop is used when no staff directory is configured; every lookup resolves nothing.
type Noop struct{}

func (Noop) DisplayNames(context.Context, uuid.UUID, []uuid.UUID) (map[uuid.UUID]string, error) {
	return map[uuid.UUID]string{}, nil
}

var (
	_ Directory = (*Client)(nil)
	_ Directory = Noop{}
)
