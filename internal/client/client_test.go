package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func newTestClient(serverURL string) *Client {
	return New(serverURL, 2*time.Second, StaticToken("test-token"))
}

func TestClient_GetJSON_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("Expected GET request, got %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Expected bearer token header, got %q", got)
		}
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("Expected page=2, got %q", got)
		}
		w.Write([]byte(`{"success":true,"message":"ok","data":{"value":42}}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	var out struct {
		Value int `json:"value"`
	}
	query := url.Values{"page": {"2"}}
	if err := c.GetJSON(context.Background(), "/thing/all-thing", query, &out, "Failed to fetch thing"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if out.Value != 42 {
		t.Errorf("Expected value 42, got %d", out.Value)
	}
}

func TestClient_ServerMessageTakesPrecedence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Instructor not found"}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	err := c.Delete(context.Background(), "/instructor/delete/i1", nil, "Failed to delete instructor")
	if err == nil {
		t.Fatal("Expected error for 404 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *APIError, got %T", err)
	}
	if apiErr.Message != "Instructor not found" {
		t.Errorf("Expected server message passed through, got %q", apiErr.Message)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", apiErr.StatusCode)
	}
}

func TestClient_FallbackOnBodylessError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	err := c.GetJSON(context.Background(), "/pilot/all-pilot", nil, nil, "Failed to fetch pilots")
	if err == nil {
		t.Fatal("Expected error for 502 response")
	}
	if Message(err) != "Failed to fetch pilots" {
		t.Errorf("Expected fallback message, got %q", Message(err))
	}
}

func TestClient_TransportErrorUsesFallback(t *testing.T) {
	// Closed server forces a connect failure.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := newTestClient(server.URL)

	err := c.GetJSON(context.Background(), "/pilot/all-pilot", nil, nil, "Failed to fetch pilots")
	if err == nil {
		t.Fatal("Expected transport error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *APIError, got %T", err)
	}
	if !apiErr.IsTransport() {
		t.Errorf("Expected transport classification, status was %d", apiErr.StatusCode)
	}
	if apiErr.Message != "Failed to fetch pilots" {
		t.Errorf("Expected fallback message, got %q", apiErr.Message)
	}
}

func TestClient_EnvelopeFailureSurfacesMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"Code already exists"}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	err := c.PostJSON(context.Background(), "/promocode/create", map[string]string{"code": "X"}, nil, "Failed to create promo code")
	if err == nil {
		t.Fatal("Expected error for success=false envelope")
	}
	if Message(err) != "Code already exists" {
		t.Errorf("Expected envelope message, got %q", Message(err))
	}
}

func TestClient_PostMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("Failed to parse multipart body: %v", err)
		}
		if got := r.FormValue("title"); got != "Night Flying" {
			t.Errorf("Expected title field, got %q", got)
		}
		file, header, err := r.FormFile("pdf")
		if err != nil {
			t.Fatalf("Expected pdf file part: %v", err)
		}
		defer file.Close()
		if header.Filename != "night-flying.pdf" {
			t.Errorf("Expected filename night-flying.pdf, got %q", header.Filename)
		}
		content, _ := io.ReadAll(file)
		if string(content) != "%PDF-stub" {
			t.Errorf("Unexpected file content %q", content)
		}
		w.Write([]byte(`{"success":true,"message":"created","data":{"id":"e1"}}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	var out struct {
		ID string `json:"id"`
	}
	err := c.PostMultipart(context.Background(), "/ebook/create",
		map[string]string{"title": "Night Flying"},
		[]FilePart{{Field: "pdf", Filename: "night-flying.pdf", Content: strings.NewReader("%PDF-stub")}},
		&out, "Failed to create ebook")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if out.ID != "e1" {
		t.Errorf("Expected id e1, got %q", out.ID)
	}
}
