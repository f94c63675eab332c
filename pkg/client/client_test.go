package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/animalia/listing-system/pkg/session"
)

func TestSearchAnimals_PreservesBackendOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v0/animal/search" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("token"); got != "tok-1" {
			t.Fatalf("expected token header tok-1, got %q", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Fatalf("expected JSON accept header, got %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Fatalf("expected JSON content type, got %q", got)
		}
		if got := r.URL.Query().Get("limit"); got != "100" {
			t.Fatalf("expected default limit 100, got %q", got)
		}
		var req struct {
			Query string `json:"query"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Query != "dog" {
			t.Fatalf("expected query dog, got %q", req.Query)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"hits": 3,
			"animals": []map[string]any{
				{"id": "z9", "name": "Rex"},
				{"id": "a1", "name": "Mia"},
				{"id": "m5", "name": "Coco"},
			},
			"limit":  100,
			"offset": 0,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	list, err := c.SearchAnimals(context.Background(), session.Token("tok-1"), SearchQuery{Query: "dog"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if list.Hits() != 3 {
		t.Fatalf("expected 3 hits, got %d", list.Hits())
	}
	wantOrder := []string{"z9", "a1", "m5"}
	if !reflect.DeepEqual(list.IDs(), wantOrder) {
		t.Fatalf("expected order %v, got %v", wantOrder, list.IDs())
	}
	if a, ok := list.Get("a1"); !ok || a.Name != "Mia" {
		t.Fatalf("expected Mia for a1, got %+v ok=%v", a, ok)
	}
}

func TestSearchAnimals_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "token rejected"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.SearchAnimals(context.Background(), session.Token("stale"), SearchQuery{})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestSearchAnimals_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.SearchAnimals(context.Background(), session.NoToken, SearchQuery{})
	var pe *ProtocolError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ProtocolError, got %v", err)
	}
}

func TestSearchAnimals_ServerErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.SearchAnimals(context.Background(), session.NoToken, SearchQuery{})
	var pe *ProtocolError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ProtocolError, got %v", err)
	}
	if pe.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", pe.StatusCode)
	}
	if pe.Message != "internal server error" {
		t.Fatalf("expected envelope message, got %q", pe.Message)
	}
}

func TestSearchAnimals_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL)
	_, err := c.SearchAnimals(context.Background(), session.NoToken, SearchQuery{})
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
}

func TestGetAnimal_Found(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v0/animal" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("id") != "a1" || q.Get("deactivated") != "false" || q.Get("limit") != "1" || q.Get("offset") != "0" {
			t.Fatalf("unexpected query %v", q)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Fatalf("expected JSON accept header, got %q", got)
		}
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": "a1", "name": "Rex", "description": "Friendly dog"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	a, err := c.GetAnimal(context.Background(), session.Token("tok"), "a1", FetchQuery{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if a == nil || a.Name != "Rex" {
		t.Fatalf("expected Rex, got %+v", a)
	}
}

func TestGetAnimal_AbsentIsNilNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	a, err := c.GetAnimal(context.Background(), session.NoToken, "missing", FetchQuery{})
	if err != nil {
		t.Fatalf("expected no error for absent id, got %v", err)
	}
	if a != nil {
		t.Fatalf("expected nil animal, got %+v", a)
	}
}

func TestGetAnimal_EmptyID(t *testing.T) {
	c := New("http://example.invalid")
	_, err := c.GetAnimal(context.Background(), session.NoToken, "", FetchQuery{})
	var pe *ProtocolError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ProtocolError for empty id, got %v", err)
	}
}

func TestCreateAnimal_RoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v0/animal" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var draft Draft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			t.Fatalf("decode draft: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Animal{
			ID:          "new-1",
			Name:        draft.Name,
			Description: draft.Description,
			PhotoURL:    draft.PhotoURL,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	a, err := c.CreateAnimal(context.Background(), session.Token("tok"), Draft{
		Name:        "Rex",
		Description: "Friendly dog",
		PhotoURL:    "file:///img/1.jpg",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if a.ID != "new-1" || a.Name != "Rex" || a.PhotoURL != "file:///img/1.jpg" {
		t.Fatalf("unexpected animal: %+v", a)
	}
}

func TestCreateAnimal_IncompleteDraft(t *testing.T) {
	c := New("http://example.invalid")
	_, err := c.CreateAnimal(context.Background(), session.Token("tok"), Draft{Name: "Rex"})
	var pe *ProtocolError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ProtocolError for incomplete draft, got %v", err)
	}
}

func TestLogin_ReturnsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v0/user/login" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("token"); got != "" {
			t.Fatalf("login must not carry a token header, got %q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"user_id":     "u1",
			"handle_name": "kim",
			"token":       "jwt-abc",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	s, err := c.Login(context.Background(), "kim", "secret123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if s.UserID != "u1" || s.HandleName != "kim" || s.Token != session.Token("jwt-abc") {
		t.Fatalf("unexpected session: %+v", s)
	}
}

func TestGetMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v0/metadata" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"animal_category":    []map[string]string{{"id": "c1", "name": "mammal"}},
			"animal_subcategory": []map[string]string{{"id": "s1", "name": "dog"}},
			"animal_count":       42,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	md, err := c.GetMetadata(context.Background(), session.Token("tok"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if md.AnimalCount != 42 || len(md.Categories) != 1 || md.Categories[0].Name != "mammal" {
		t.Fatalf("unexpected metadata: %+v", md)
	}
}
