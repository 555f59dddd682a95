package mushaf

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmaged/mushaf/internal/config"
	"github.com/hmaged/mushaf/internal/entities"
)

func testServer(t *testing.T, requests *atomic.Int64) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		if r.URL.Path != "/surah" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		surahs, err := json.Marshal([]entities.Surah{
			{Number: 1, EnglishName: "Al-Faatiha", NumberOfAyahs: 7, RevelationType: entities.RevelationMeccan},
			{Number: 2, EnglishName: "Al-Baqara", NumberOfAyahs: 286, RevelationType: entities.RevelationMedinan},
		})
		require.NoError(t, err)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"code": 200, "status": "OK", "data": json.RawMessage(surahs),
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func TestApp_StatePersistsAcrossRestart(t *testing.T) {
	var requests atomic.Int64
	server := testServer(t, &requests)
	cfg := &config.Config{
		API:      config.API{BaseURL: server.URL, Timeout: 2 * time.Second},
		Database: config.Database{Path: filepath.Join(t.TempDir(), "mushaf.db")},
	}

	app, err := New(cfg, nil)
	require.NoError(t, err)

	require.NoError(t, app.Content.LoadSurahList(context.Background()))
	assert.Len(t, app.Content.Surahs(), 2)
	app.User.AddBookmark(2, 255, "Ayat al-Kursi")
	app.User.UpdateProgress(2, 255)
	require.NoError(t, app.Close())
	require.Equal(t, int64(1), requests.Load())

	// A second app over the same database restores both stores; the surah
	// list comes from the snapshot, not the network.
	restarted, err := New(cfg, nil)
	require.NoError(t, err)
	defer restarted.Close()

	assert.Len(t, restarted.Content.Surahs(), 2)
	require.NoError(t, restarted.Content.LoadSurahList(context.Background()))
	assert.Equal(t, int64(1), requests.Load())

	assert.True(t, restarted.User.IsBookmarked(2, 255))
	entry, ok := restarted.User.GetProgress(2)
	require.True(t, ok)
	assert.Equal(t, 255, entry.AyahNumber)
}

func TestApp_NilConfigUsesDefaults(t *testing.T) {
	t.Setenv("DATABASE_PATH", filepath.Join(t.TempDir(), "mushaf.db"))

	app, err := New(nil, nil)
	require.NoError(t, err)
	defer app.Close()

	assert.NotNil(t, app.Content)
	assert.NotNil(t, app.User)
	assert.Equal(t, entities.DefaultPreferences(), app.User.Preferences())
}
