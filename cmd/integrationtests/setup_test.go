package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"gallery-assistant/internal/assistant"
	bidding "gallery-assistant/internal/biddingService"
	"gallery-assistant/internal/repository"
	"gallery-assistant/internal/seed"
	"gallery-assistant/internal/server"
	"gallery-assistant/internal/workflow"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type testStore interface {
	repository.GalleryDB
	repository.Seeder
}

var storeDrivers = []string{"memory", "sqlite"}

func newTestStore(t *testing.T, driver string) testStore {
	t.Helper()
	if driver == "memory" {
		return repository.NewMemoryRepo()
	}

	db, err := repository.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo, err := repository.NewSQLiteRepo(context.Background(), db)
	require.NoError(t, err)
	return repo
}

// SetupTestRouter builds the full stack on a seeded store with activeUser talking to the assistant.
func SetupTestRouter(t *testing.T, driver, activeUser string) (*gin.Engine, testStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := newTestStore(t, driver)
	data, err := seed.Default()
	require.NoError(t, err)
	require.NoError(t, seed.Apply(context.Background(), store, data))

	service := bidding.NewBiddingService(store)
	manager := workflow.NewManager(workflow.NewForm(service, activeUser))
	gallery := assistant.New(service, activeUser, assistant.Schedule{LeadDays: 3, Location: time.UTC})

	router := server.SetupRouter(manager, gallery)
	return router, store
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		if err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// data returns the envelope's data object
func data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	d, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %v", resp)
	return d
}

// messageTexts collects the text of every display message in a turn result
func messageTexts(turn map[string]any) []string {
	raw, _ := turn["messages"].([]any)
	texts := make([]string, 0, len(raw))
	for _, m := range raw {
		texts = append(texts, m.(map[string]any)["text"].(string))
	}
	return texts
}
