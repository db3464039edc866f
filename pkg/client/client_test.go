package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func writeEnvelope(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": status < 400,
		"data":    data,
	})
}

func TestClientReReadsTokenPerRequest(t *testing.T) {
	var seen []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		writeEnvelope(w, http.StatusOK, []Course{})
	}))
	defer server.Close()

	store := &MemoryTokenStore{}
	store.Set("first")
	c := New(server.URL, WithTokenStore(store))

	if _, err := c.FetchCourses(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Rotating the stored token must affect the very next call
	store.Set("second")
	if _, err := c.FetchCourses(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Bearer first", "Bearer second"}
	if len(seen) != len(want) {
		t.Fatalf("expected %d requests, got %d", len(want), len(seen))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("request %d: expected header %q, got %q", i, want[i], seen[i])
		}
	}
}

func TestClientOmitsHeaderWithoutToken(t *testing.T) {
	var gotHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("Authorization")
		writeEnvelope(w, http.StatusOK, []Course{})
	}))
	defer server.Close()

	c := New(server.URL)
	if _, err := c.FetchCourses(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotHeader != "" {
		t.Errorf("expected no Authorization header, got %q", gotHeader)
	}
}

func TestClientDecodesCourse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/courses/3" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		writeEnvelope(w, http.StatusOK, Course{ID: 3, Title: "Go Basics", Price: 49.99})
	}))
	defer server.Close()

	c := New(server.URL)
	course, err := c.FetchCourseByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if course.ID != 3 || course.Title != "Go Basics" || course.Price != 49.99 {
		t.Errorf("unexpected course: %+v", course)
	}
}

func TestClientSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   map[string]string{"code": "RES_001", "message": "Course not found"},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.FetchCourseByID(context.Background(), 99)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Code != "RES_001" {
		t.Errorf("unexpected code %q", apiErr.Code)
	}
}

func TestClientLoginPostsCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/auth/login" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "jane@example.com" {
			t.Errorf("unexpected email %q", body["email"])
		}
		writeEnvelope(w, http.StatusOK, AuthResult{
			Token: Token{AccessToken: "token-value", TokenType: "Bearer"},
			User:  User{ID: 1, Email: "jane@example.com"},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	result, err := c.Login(context.Background(), "jane@example.com", "Abcdef1!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Token.AccessToken != "token-value" {
		t.Errorf("unexpected access token %q", result.Token.AccessToken)
	}
	if result.User.ID != 1 {
		t.Errorf("unexpected user %+v", result.User)
	}
}
