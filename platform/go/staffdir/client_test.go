package staffdir

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newDirectoryServer(t *testing.T, tenantID uuid.UUID, known map[uuid.UUID]string, calls *int32) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		require.Equal(t, "/api/v1/staff", r.URL.Path)
		require.Equal(t, tenantID.String(), r.Header.Get("X-Tenant-ID"))
		require.Equal(t, "secret", r.Header.Get("x-api-key"))

		items := []staffItem{}
		for _, raw := range strings.Split(r.URL.Query().Get("ids"), ",") {
			id, err := uuid.Parse(raw)
			require.NoError(t, err)
			if name, ok := known[id]; ok {
				items = append(items, staffItem{ID: id.String(), DisplayName: name})
			}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(staffResponse{Items: items})
	}))
}

func TestDisplayNamesResolvesKnownIDs(t *testing.T) {
	tenantID := uuid.New()
	alice, bob, ghost := uuid.New(), uuid.New(), uuid.New()

	var calls int32
	srv := newDirectoryServer(t, tenantID, map[uuid.UUID]string{alice: "Alice Mwangi", bob: "Bob Otieno"}, &calls)
	defer srv.Close()

	client := NewClient(srv.URL+"/", "secret")
	names, err := client.DisplayNames(context.Background(), tenantID, []uuid.UUID{alice, bob, alice, ghost, uuid.Nil})
	require.NoError(t, err)
	require.Equal(t, map[uuid.UUID]string{alice: "Alice Mwangi", bob: "Bob Otieno"}, names)
	require.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestDisplayNamesUsesRedisCache(t *testing.T) {
	tenantID := uuid.New()
	alice := uuid.New()

	var calls int32
	srv := newDirectoryServer(t, tenantID, map[uuid.UUID]string{alice: "Alice Mwangi"}, &calls)
	defer srv.Close()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	client := NewClient(srv.URL, "secret")
	client.UseRedisCache(rdb, time.Minute)

	for i := 0; i < 2; i++ {
		names, err := client.DisplayNames(context.Background(), tenantID, []uuid.UUID{alice})
		require.NoError(t, err)
		require.Equal(t, "Alice Mwangi", names[alice])
	}
	require.EqualValues(t, 1, atomic.LoadInt32(&calls))

	cached, err := mr.Get(cacheKey(tenantID, alice))
	require.NoError(t, err)
	require.Equal(t, "Alice Mwangi", cached)

	mr.FastForward(2 * time.Minute)
	_, err = client.DisplayNames(context.Background(), tenantID, []uuid.UUID{alice})
	require.NoError(t, err)
	require.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestDisplayNamesSurfacesServerErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	_, err := client.DisplayNames(context.Background(), uuid.New(), []uuid.UUID{uuid.New()})
	require.Error(t, err)
	require.Contains(t, err.Error(), "502")
}

func TestNoopResolvesNothing(t *testing.T) {
	names, err := Noop{}.DisplayNames(context.Background(), uuid.New(), []uuid.UUID{uuid.New()})
	require.NoError(t, err)
	require.Empty(t, names)
}
