package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"greengear/internal/db"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Integration tests run against a live Postgres. They are skipped when
// DATABASE_URL is not set.
func setupIntegration(t *testing.T) http.Handler {
	t.Helper()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	database, err := db.New(ctx, databaseURL)
	require.NoError(t, err, "connect to test database")
	t.Cleanup(database.Close)

	_, err = database.Pool.Exec(ctx,
		"TRUNCATE users, vehicles, trips, emission_records, community_posts, post_comments, messages RESTART IDENTITY CASCADE")
	require.NoError(t, err, "clean up test data")

	store := sessions.NewCookieStore([]byte("test-secret"))
	h := New(database, store, zap.NewNop())
	return h.Routes()
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	return list
}

func registerUser(t *testing.T, router http.Handler, username string) []*http.Cookie {
	t.Helper()
	rec := doRequest(t, router, http.MethodPost, "/register", map[string]any{
		"username": username,
		"email":    username + "@example.com",
		"password": "pw",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, "register %s: %s", username, rec.Body.String())
	return rec.Result().Cookies()
}

func addVehicle(t *testing.T, router http.Handler, cookies []*http.Cookie, fields map[string]any) int {
	t.Helper()
	body := map[string]any{
		"company":      "Toyota",
		"model":        "Corolla",
		"year":         2020,
		"price":        15000,
		"mileage":      30000,
		"fuel_type":    "petrol",
		"transmission": "manual",
	}
	for k, v := range fields {
		body[k] = v
	}
	rec := doRequest(t, router, http.MethodPost, "/api/vehicles", body, cookies)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return int(decodeMap(t, rec)["id"].(float64))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	router := setupIntegration(t)

	registerUser(t, router, "alice")

	rec := doRequest(t, router, http.MethodPost, "/register", map[string]any{
		"username": "alice",
		"email":    "other@example.com",
		"password": "pw",
	}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Username already exists", decodeMap(t, rec)["error"])

	rec = doRequest(t, router, http.MethodPost, "/register", map[string]any{
		"username": "alice2",
		"email":    "alice@example.com",
		"password": "pw",
	}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email already exists", decodeMap(t, rec)["error"])
}

func TestRegisterMissingFields(t *testing.T) {
	router := setupIntegration(t)

	rec := doRequest(t, router, http.MethodPost, "/register", map[string]any{
		"username": "alice",
	}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required fields", decodeMap(t, rec)["error"])

	// An empty password is as invalid as an absent one.
	rec = doRequest(t, router, http.MethodPost, "/register", map[string]any{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "",
	}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required fields", decodeMap(t, rec)["error"])
}

func TestLogin(t *testing.T) {
	router := setupIntegration(t)
	registerUser(t, router, "alice")

	rec := doRequest(t, router, http.MethodPost, "/login", map[string]any{
		"username": "alice",
		"password": "wrong",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies(), "failed login must not set a session cookie")

	rec = doRequest(t, router, http.MethodPost, "/login", map[string]any{
		"username": "nobody",
		"password": "pw",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/login", map[string]any{
		"username": "alice",
		"password": "pw",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies, "successful login must set a session cookie")

	user := decodeMap(t, rec)["user"].(map[string]any)
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "customer", user["role"])

	rec = doRequest(t, router, http.MethodGet, "/check_login", nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestLogoutClearsSession(t *testing.T) {
	router := setupIntegration(t)
	cookies := registerUser(t, router, "alice")

	rec := doRequest(t, router, http.MethodPost, "/logout", nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	// The logout response carries the expired cookie.
	expired := rec.Result().Cookies()
	rec = doRequest(t, router, http.MethodGet, "/check_login", nil, expired)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVehicleOwnershipAndMarketplace(t *testing.T) {
	router := setupIntegration(t)
	alice := registerUser(t, router, "alice")
	bob := registerUser(t, router, "bob")

	addVehicle(t, router, alice, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/vehicles", nil, bob)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeList(t, rec), "bob must not see alice's vehicle")

	rec = doRequest(t, router, http.MethodGet, "/api/vehicles", nil, alice)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeList(t, rec), 1)

	// The marketplace is unauthenticated and spans all owners.
	rec = doRequest(t, router, http.MethodGet, "/api/marketplace/vehicles", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	vehicles := decodeList(t, rec)
	require.Len(t, vehicles, 1)
	assert.Equal(t, "Toyota", vehicles[0]["company"])
}

func TestVehicleFuelTypeFilter(t *testing.T) {
	router := setupIntegration(t)
	alice := registerUser(t, router, "alice")

	addVehicle(t, router, alice, map[string]any{"fuel_type": "petrol"})
	addVehicle(t, router, alice, map[string]any{"fuel_type": "electric", "model": "Leaf", "company": "Nissan"})

	rec := doRequest(t, router, http.MethodGet, "/api/vehicles?fuel_type=electric", nil, alice)
	require.Equal(t, http.StatusOK, rec.Code)
	vehicles := decodeList(t, rec)
	require.Len(t, vehicles, 1)
	assert.Equal(t, "Nissan", vehicles[0]["company"])

	rec = doRequest(t, router, http.MethodGet, "/api/vehicles?fuel_type=All", nil, alice)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeList(t, rec), 2)
}

func TestVehiclePartialUpdate(t *testing.T) {
	router := setupIntegration(t)
	alice := registerUser(t, router, "alice")
	vehicleID := addVehicle(t, router, alice, nil)

	rec := doRequest(t, router, http.MethodPut, fmt.Sprintf("/api/vehicles/%d", vehicleID),
		map[string]any{"price": 12000}, alice)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doRequest(t, router, http.MethodGet, "/api/vehicles", nil, alice)
	vehicles := decodeList(t, rec)
	require.Len(t, vehicles, 1)
	assert.Equal(t, 12000.0, vehicles[0]["price"], "price must change")
	assert.Equal(t, "Toyota", vehicles[0]["company"], "untouched fields keep prior values")
	assert.Equal(t, 30000.0, vehicles[0]["mileage"])
}

func TestVehicleUpdateAndDeleteOwnership(t *testing.T) {
	router := setupIntegration(t)
	alice := registerUser(t, router, "alice")
	bob := registerUser(t, router, "bob")
	vehicleID := addVehicle(t, router, alice, nil)

	rec := doRequest(t, router, http.MethodPut, fmt.Sprintf("/api/vehicles/%d", vehicleID),
		map[string]any{"price": 1}, bob)
	require.Equal(t, http.StatusNotFound, rec.Code, "another user's vehicle reads as absent")

	rec = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/vehicles/%d", vehicleID), nil, bob)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/vehicles/%d", vehicleID), nil, alice)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/vehicles", nil, alice)
	assert.Empty(t, decodeList(t, rec))
}

func TestTripAndEmissionFlow(t *testing.T) {
	router := setupIntegration(t)
	alice := registerUser(t, router, "alice")
	vehicleID := addVehicle(t, router, alice, nil)

	rec := doRequest(t, router, http.MethodPost, "/trips", map[string]any{
		"start_location": "Home",
		"end_location":   "Office",
		"distance":       12.5,
		"start_time":     "2024-06-01T08:00:00",
		"end_time":       "2024-06-01T08:45:00",
		"vehicle_id":     vehicleID,
	}, alice)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	tripID := int(decodeMap(t, rec)["id"].(float64))

	rec = doRequest(t, router, http.MethodGet, "/trips", nil, alice)
	require.Equal(t, http.StatusOK, rec.Code)
	trips := decodeList(t, rec)
	require.Len(t, trips, 1)
	assert.Nil(t, trips[0]["emissions"], "no emission record yet")
	vehicle := trips[0]["vehicle"].(map[string]any)
	assert.Equal(t, "Corolla", vehicle["model"])
	assert.Equal(t, "Toyota", vehicle["company"])

	rec = doRequest(t, router, http.MethodPost, "/emissions", map[string]any{
		"trip_id":       tripID,
		"vehicle_id":    vehicleID,
		"co2_emissions": 2.4,
		"distance":      12.5,
		"fuel_consumed": 1.1,
		"record_date":   "2024-06-01",
	}, alice)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doRequest(t, router, http.MethodGet, "/trips", nil, alice)
	trips = decodeList(t, rec)
	require.Len(t, trips, 1)
	assert.Equal(t, 2.4, trips[0]["emissions"], "trip joins its emission's co2 value")

	rec = doRequest(t, router, http.MethodGet, "/emissions", nil, alice)
	require.Equal(t, http.StatusOK, rec.Code)
	records := decodeList(t, rec)
	require.Len(t, records, 1)
	assert.Equal(t, 2.4, records[0]["co2_emissions"])
	assert.Equal(t, "Corolla", records[0]["vehicle"].(map[string]any)["model"])

	// A trip carries at most one emission record.
	rec = doRequest(t, router, http.MethodPost, "/emissions", map[string]any{
		"trip_id":       tripID,
		"vehicle_id":    vehicleID,
		"co2_emissions": 3.0,
		"distance":      12.5,
		"fuel_consumed": 1.3,
		"record_date":   "2024-06-02",
	}, alice)
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Equal(t, "Trip already has an emission record", decodeMap(t, rec)["error"])

	rec = doRequest(t, router, http.MethodGet, "/emissions", nil, alice)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeList(t, rec), 1, "the rejected duplicate must not be stored")
}

func TestCreateTripValidation(t *testing.T) {
	router := setupIntegration(t)
	alice := registerUser(t, router, "alice")
	vehicleID := addVehicle(t, router, alice, nil)

	trip := func(overrides map[string]any) map[string]any {
		body := map[string]any{
			"start_location": "A",
			"end_location":   "B",
			"distance":       1,
			"start_time":     "2024-06-01T08:00:00",
			"end_time":       "2024-06-01T09:00:00",
			"vehicle_id":     vehicleID,
		}
		for k, v := range overrides {
			body[k] = v
		}
		return body
	}

	body := trip(nil)
	delete(body, "distance")
	rec := doRequest(t, router, http.MethodPost, "/trips", body, alice)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required fields", decodeMap(t, rec)["error"])

	rec = doRequest(t, router, http.MethodPost, "/trips", trip(map[string]any{"start_time": "not-a-time"}), alice)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/trips", trip(map[string]any{
		"start_time": "2024-06-01T09:00:00",
		"end_time":   "2024-06-01T08:00:00",
	}), alice)
	require.Equal(t, http.StatusBadRequest, rec.Code, "end before start is rejected")

	rec = doRequest(t, router, http.MethodPost, "/trips", trip(map[string]any{"vehicle_id": 999999}), alice)
	require.Equal(t, http.StatusBadRequest, rec.Code, "dangling vehicle reference is rejected")
}

func TestPostLifecycle(t *testing.T) {
	router := setupIntegration(t)
	alice := registerUser(t, router, "alice")

	rec := doRequest(t, router, http.MethodPost, "/posts", map[string]any{
		"title":     "Hypermiling",
		"content":   "Coast to red lights.",
		"post_type": "road-rage",
	}, alice)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid post type", decodeMap(t, rec)["error"])

	rec = doRequest(t, router, http.MethodPost, "/posts", map[string]any{
		"title":     "Hypermiling",
		"content":   "Coast to red lights.",
		"post_type": "tip",
	}, alice)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	postID := int(decodeMap(t, rec)["id"].(float64))

	rec = doRequest(t, router, http.MethodGet, "/posts", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	posts := decodeList(t, rec)
	require.Len(t, posts, 1)
	assert.Equal(t, "tip", posts[0]["post_type"])
	assert.Equal(t, "alice", posts[0]["author"].(map[string]any)["username"])
	assert.Equal(t, 0.0, posts[0]["comments_count"])

	rec = doRequest(t, router, http.MethodGet, fmt.Sprintf("/posts/%d", postID+1), nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetPostIncrementsViews(t *testing.T) {
	router := setupIntegration(t)
	alice := registerUser(t, router, "alice")

	rec := doRequest(t, router, http.MethodPost, "/posts", map[string]any{
		"title":     "Counter",
		"content":   "watch me",
		"post_type": "discussion",
	}, alice)
	require.Equal(t, http.StatusCreated, rec.Code)
	postID := int(decodeMap(t, rec)["id"].(float64))

	const n = 3
	var views float64
	for i := 0; i < n; i++ {
		rec = doRequest(t, router, http.MethodGet, fmt.Sprintf("/posts/%d", postID), nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		views = decodeMap(t, rec)["views"].(float64)
	}
	assert.Equal(t, float64(n), views, "each read bumps the counter by exactly one")
}

func TestCommentsAndLikes(t *testing.T) {
	router := setupIntegration(t)
	alice := registerUser(t, router, "alice")
	bob := registerUser(t, router, "bob")

	rec := doRequest(t, router, http.MethodPost, "/posts", map[string]any{
		"title":     "Question",
		"content":   "best oil?",
		"post_type": "question",
	}, alice)
	require.Equal(t, http.StatusCreated, rec.Code)
	postID := int(decodeMap(t, rec)["id"].(float64))

	rec = doRequest(t, router, http.MethodPost, fmt.Sprintf("/posts/%d/comments", postID),
		map[string]any{"content": ""}, bob)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Comment content is required", decodeMap(t, rec)["error"])

	rec = doRequest(t, router, http.MethodPost, fmt.Sprintf("/posts/%d/comments", postID),
		map[string]any{"content": "synthetic"}, bob)
	require.Equal(t, http.StatusCreated, rec.Code)
	commentID := int(decodeMap(t, rec)["id"].(float64))

	rec = doRequest(t, router, http.MethodGet, fmt.Sprintf("/posts/%d/comments", postID), nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	comments := decodeList(t, rec)
	require.Len(t, comments, 1)
	assert.Equal(t, "bob", comments[0]["author"].(map[string]any)["username"])

	rec = doRequest(t, router, http.MethodPost, fmt.Sprintf("/posts/%d/like", postID), nil, alice)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doRequest(t, router, http.MethodPost, fmt.Sprintf("/posts/%d/like", postID), nil, alice)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodPost, fmt.Sprintf("/comments/%d/like", commentID), nil, alice)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, fmt.Sprintf("/posts/%d", postID), nil, nil)
	post := decodeMap(t, rec)
	assert.Equal(t, 2.0, post["likes"], "likes are unconditional increments")
	assert.Equal(t, 1.0, post["comments_count"])

	rec = doRequest(t, router, http.MethodPost, "/posts/999999/like", nil, alice)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteCommentAuthorOnly(t *testing.T) {
	router := setupIntegration(t)
	alice := registerUser(t, router, "alice")
	bob := registerUser(t, router, "bob")

	rec := doRequest(t, router, http.MethodPost, "/posts", map[string]any{
		"title":     "Post",
		"content":   "content",
		"post_type": "discussion",
	}, alice)
	require.Equal(t, http.StatusCreated, rec.Code)
	postID := int(decodeMap(t, rec)["id"].(float64))

	rec = doRequest(t, router, http.MethodPost, fmt.Sprintf("/posts/%d/comments", postID),
		map[string]any{"content": "mine"}, alice)
	require.Equal(t, http.StatusCreated, rec.Code)
	commentID := int(decodeMap(t, rec)["id"].(float64))

	rec = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/comments/%d", commentID), nil, bob)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "You can only delete your own comments", decodeMap(t, rec)["error"])

	rec = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/comments/%d", commentID), nil, alice)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/comments/%d", commentID), nil, alice)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMessageBoard(t *testing.T) {
	router := setupIntegration(t)
	alice := registerUser(t, router, "alice")
	bob := registerUser(t, router, "bob")

	rec := doRequest(t, router, http.MethodGet, "/messages", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeList(t, rec))

	rec = doRequest(t, router, http.MethodPost, "/messages", map[string]any{"content": "hello"}, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code, "posting requires a session")

	rec = doRequest(t, router, http.MethodPost, "/messages", map[string]any{"content": "hello"}, alice)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeMap(t, rec)
	assert.Equal(t, "Anonymous", created["author_name"], "author name defaults")
	messageID := int(created["id"].(float64))

	rec = doRequest(t, router, http.MethodPost, "/messages",
		map[string]any{"content": "signed", "author_name": "Alice"}, alice)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Alice", decodeMap(t, rec)["author_name"])

	rec = doRequest(t, router, http.MethodGet, "/messages", nil, nil)
	messages := decodeList(t, rec)
	require.Len(t, messages, 2)
	assert.Equal(t, "signed", messages[0]["content"], "newest first")

	// Any authenticated caller may delete any message; the rows carry no owner.
	rec = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/messages/%d", messageID), nil, bob)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/messages/%d", messageID), nil, bob)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnauthenticatedAccess(t *testing.T) {
	router := setupIntegration(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/vehicles"},
		{http.MethodPost, "/api/vehicles"},
		{http.MethodGet, "/trips"},
		{http.MethodPost, "/trips"},
		{http.MethodGet, "/emissions"},
		{http.MethodPost, "/emissions"},
		{http.MethodPost, "/posts"},
		{http.MethodGet, "/check_login"},
	} {
		rec := doRequest(t, router, route.method, route.path, nil, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", route.method, route.path)
	}
}

// The example scenario from the API contract, end to end.
func TestExampleScenario(t *testing.T) {
	router := setupIntegration(t)

	rec := doRequest(t, router, http.MethodPost, "/register", map[string]any{
		"username": "alice",
		"email":    "a@x.com",
		"password": "pw",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/login", map[string]any{
		"username": "alice",
		"password": "pw",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	rec = doRequest(t, router, http.MethodGet, "/api/vehicles", nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", string(bytes.TrimSpace(rec.Body.Bytes())))

	rec = doRequest(t, router, http.MethodPost, "/api/vehicles", map[string]any{
		"company":      "Toyota",
		"model":        "Corolla",
		"year":         2020,
		"price":        15000,
		"mileage":      30000,
		"fuel_type":    "petrol",
		"transmission": "manual",
	}, cookies)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1.0, decodeMap(t, rec)["id"])

	rec = doRequest(t, router, http.MethodGet, "/api/vehicles", nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeList(t, rec), 1)

	rec = doRequest(t, router, http.MethodGet, "/api/marketplace/vehicles", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	vehicles := decodeList(t, rec)
	require.Len(t, vehicles, 1)
	assert.Equal(t, "Corolla", vehicles[0]["model"])
}
