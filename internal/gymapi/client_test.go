package gymapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRequestsCarryBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{"logs": []any{}})
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken("abc123"))
	if _, err := client.GetAllLogs(context.Background(), RecordQuery{}); err != nil {
		t.Fatalf("GetAllLogs: %v", err)
	}
	if gotAuth != "Bearer abc123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestRecordQueryParameters(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode(map[string]any{"transactions": []any{}})
	}))
	defer server.Close()

	from, _ := time.Parse("2006-01-02", "2024-03-01")
	to, _ := time.Parse("2006-01-02", "2024-03-31")

	client := NewClient(server.URL, StaticToken("t"))
	_, err := client.GetAllTransactions(context.Background(), RecordQuery{
		BranchID: "b1",
		From:     &from,
		To:       &to,
	})
	if err != nil {
		t.Fatalf("GetAllTransactions: %v", err)
	}

	for key, want := range map[string]string{"branch": "b1", "from": "2024-03-01", "to": "2024-03-31"} {
		values := gotQuery[key]
		if len(values) != 1 || values[0] != want {
			t.Fatalf("expected query %s=%s, got %v", key, want, values)
		}
	}
}

func TestLoginDecodesTokenAndUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "admin@gym.ph" {
			t.Errorf("unexpected login body: %v", body)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "issued-token",
			"user":  map[string]any{"_id": "u1", "role": "admin"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken(""))
	result, err := client.Login(context.Background(), "admin@gym.ph", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Token != "issued-token" {
		t.Fatalf("expected issued token, got %q", result.Token)
	}
	if result.User == nil || result.User.ID != "u1" {
		t.Fatalf("expected user decoded, got %+v", result.User)
	}
}

func TestLoginRejectsMissingToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"user": map[string]any{"_id": "u1"}})
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken(""))
	if _, err := client.Login(context.Background(), "a@b.ph", "secret123"); err == nil {
		t.Fatal("expected an error when the token is missing")
	}
}

func TestStatusMapping(t *testing.T) {
	status := http.StatusUnauthorized
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken("expired"))

	_, err := client.GetAllBranches(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	status = http.StatusNotFound
	_, err = client.GetBranch(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	status = http.StatusInternalServerError
	_, err = client.GetAllBranches(context.Background())
	if err == nil || errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected a generic status error, got %v", err)
	}
}

func TestWithTokenDoesNotMutateOriginal(t *testing.T) {
	client := NewClient("http://example.test", StaticToken("original"))
	clone := client.WithToken("other")

	if client.tokens.Token() != "original" {
		t.Fatal("WithToken mutated the original client")
	}
	if clone.tokens.Token() != "other" {
		t.Fatal("expected the clone bound to the new token")
	}
}

func TestAssignCoachSendsCoachID(t *testing.T) {
	var gotPath, gotCoach string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotCoach = body["coachID"]
		_ = json.NewEncoder(w).Encode(map[string]any{
			"availTrainer": map[string]any{"_id": "s1", "coachID": body["coachID"]},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken("t"))
	updated, err := client.AssignCoach(context.Background(), "s1", "coach9")
	if err != nil {
		t.Fatalf("AssignCoach: %v", err)
	}
	if gotPath != "/api/v1/availTrainer/assign-coach/s1" {
		t.Fatalf("unexpected path %s", gotPath)
	}
	if gotCoach != "coach9" {
		t.Fatalf("expected coachID coach9 in body, got %q", gotCoach)
	}
	if updated == nil || updated.CoachID == nil || *updated.CoachID != "coach9" {
		t.Fatalf("expected updated session with coach set, got %+v", updated)
	}
}

func TestRequestTokenOverridesTokenSource(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{"logs": []any{}})
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken("service-token"))
	ctx := WithRequestToken(context.Background(), "caller-token")
	if _, err := client.GetAllLogs(ctx, RecordQuery{}); err != nil {
		t.Fatalf("GetAllLogs: %v", err)
	}
	if gotAuth != "Bearer caller-token" {
		t.Fatalf("expected request-scoped token to win, got %q", gotAuth)
	}
}

func TestEmptyRequestTokenFallsBackToSource(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{"logs": []any{}})
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken("service-token"))
	ctx := WithRequestToken(context.Background(), "")
	if _, err := client.GetAllLogs(ctx, RecordQuery{}); err != nil {
		t.Fatalf("GetAllLogs: %v", err)
	}
	if gotAuth != "Bearer service-token" {
		t.Fatalf("expected fallback to the shared token, got %q", gotAuth)
	}
}
