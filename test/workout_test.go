//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/workouttracker/internal/comments"
	"github.com/2beens/workouttracker/internal/measurements"
	"github.com/2beens/workouttracker/internal/snapshot"
	"github.com/2beens/workouttracker/internal/users"
)

func (s *IntegrationTestSuite) doRequest(ctx context.Context, method, path, body string) (int, []byte) {
	t := s.T()

	var reqBody io.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) TestTrainerTraineeFlow() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	// the trainee sees nothing yet
	status, body := s.doRequest(ctx, http.MethodGet, "/api/sync/tezuka", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `null`, string(mustField(t, body, "menus")))

	// the trainer writes menus and leaves a comment
	status, _ = s.doRequest(ctx, http.MethodPut, "/api/menus/tezuka",
		`{"menus":{"Legs":[{"name":"Squat","body":"Legs","repRange":"5","records":[{"date":"2024-02-08","sets":[{"kg":100,"reps":5}]}]}],"Arms":[]}}`,
	)
	require.Equal(t, http.StatusOK, status)

	status, body = s.doRequest(ctx, http.MethodPost, "/api/comments/tezuka",
		`{"key":"2024-02-08_Legs","author":"trainer","text":"deeper, please"}`,
	)
	require.Equal(t, http.StatusOK, status)
	var addResp comments.AddResponse
	require.NoError(t, json.Unmarshal(body, &addResp))
	require.Len(t, addResp.Comments, 1)
	assert.Equal(t, "trainer", addResp.Comments[0].Author)

	status, _ = s.doRequest(ctx, http.MethodPost, "/api/measurements/tezuka", `{"date":"2024/02/08","weight":81.2,"memo":"morning"}`)
	require.Equal(t, http.StatusOK, status)

	// the trainee polls and converges
	status, body = s.doRequest(ctx, http.MethodGet, "/api/sync/TEZUKA", "")
	require.Equal(t, http.StatusOK, status)
	var snap snapshot.Snapshot
	require.NoError(t, json.Unmarshal(body, &snap))
	require.NotNil(t, snap.Menus)
	assert.Equal(t, []string{"Legs", "Arms"}, snap.Menus.Keys())
	thread, ok := snap.Comments.Get("2024-02-08_Legs")
	require.True(t, ok)
	assert.Equal(t, "deeper, please", thread[0].Text)
	require.Len(t, snap.Measurements, 1)
	assert.Equal(t, "morning", snap.Measurements[0].Memo)
	assert.Positive(t, snap.ServerTime)

	// documents end up in postgres
	var storedNames int
	require.NoError(t, s.DB.QueryRowContext(ctx,
		`SELECT count(*) FROM workout_document WHERE name LIKE '%_TEZUKA'`,
	).Scan(&storedNames))
	assert.Equal(t, 3, storedNames)

	status, body = s.doRequest(ctx, http.MethodDelete, "/api/measurements/tezuka/2024%2F02%2F08", "")
	require.Equal(t, http.StatusOK, status)
	var updateResp measurements.UpdateResponse
	require.NoError(t, json.Unmarshal(body, &updateResp))
	assert.True(t, updateResp.OK)
	assert.Empty(t, updateResp.Measurements)

	status, body = s.doRequest(ctx, http.MethodGet, "/api/export/tezuka", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "RECORD,TEZUKA,2024-02-08,Legs,Squat,Legs,1,100,5,5,,\n")
	assert.Contains(t, string(body), "COMMENT,TEZUKA,2024-02-08,Legs,,,,,,,trainer,\"deeper, please\"\n")
}

func (s *IntegrationTestSuite) TestPatchTabWithoutMenus() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	status, body := s.doRequest(ctx, http.MethodPatch, "/api/menus/ghost/Legs", `{"exercises":[]}`)
	assert.Equal(s.T(), http.StatusNotFound, status)
	assert.JSONEq(s.T(), `{"error":"no data yet"}`, string(body))
}

func (s *IntegrationTestSuite) TestRegisterIsRateLimited() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	for i := range testWriteRateLimit {
		status, body := s.doRequest(ctx, http.MethodPost, "/api/users", fmt.Sprintf(`{"name":"user%d"}`, i))
		require.Equal(t, http.StatusOK, status, string(body))
	}

	status, _ := s.doRequest(ctx, http.MethodPost, "/api/users", `{"name":"one-too-many"}`)
	assert.Equal(t, http.StatusTooEarly, status)

	// reads are never limited
	status, body := s.doRequest(ctx, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, status)
	var registry users.Registry
	require.NoError(t, json.Unmarshal(body, &registry))
	assert.Len(t, registry.Users, 2+testWriteRateLimit)
	assert.NotContains(t, registry.Users, "ONE-TOO-MANY")
}

func mustField(t require.TestingT, body []byte, field string) json.RawMessage {
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &fields))
	raw, ok := fields[field]
	require.True(t, ok, "missing field %s", field)
	return raw
}
