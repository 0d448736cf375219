package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := New(Config{BaseURL: server.URL, Token: "test-token"})
	return client, server
}

func TestClient_SendsBearerToken(t *testing.T) {
	var gotAuth string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	})
	defer server.Close()

	var out map[string]interface{}
	if err := client.get(context.Background(), "/products", &out); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q, want Bearer test-token", gotAuth)
	}
}

func TestClient_NoAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL})
	var out map[string]interface{}
	if err := client.get(context.Background(), "/products", &out); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("unexpected Authorization header %q", gotAuth)
	}
}

func TestClient_SetTokenReplaces(t *testing.T) {
	client := New(Config{BaseURL: "http://example.invalid"})
	client.SetToken("abc")
	if client.Token() != "abc" {
		t.Errorf("Token = %q, want abc", client.Token())
	}
	client.SetToken("")
	if client.Token() != "" {
		t.Error("empty SetToken should clear the token")
	}
}

func TestClient_NonOKBecomesTypedError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "invalid coupon"}`))
	})
	defer server.Close()

	err := client.get(context.Background(), "/coupons/validate/NOPE", &struct{}{})
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("Status = %d, want 400", apiErr.Status)
	}
	if apiErr.Message != "invalid coupon" {
		t.Errorf("Message = %q, want server message", apiErr.Message)
	}
}

func TestClient_ErrorBodyFallbacks(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "message field", body: `{"message": "nope"}`, want: "nope"},
		{name: "error field", body: `{"error": "broken"}`, want: "broken"},
		{name: "plain text", body: `service unavailable`, want: "service unavailable"},
		{name: "html ignored", body: `<html><body>502</body></html>`, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := decodeError(500, []byte(tt.body))
			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *Error, got %T", err)
			}
			if apiErr.Message != tt.want {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.want)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(&Error{Status: 404}) {
		t.Error("404 should be not-found")
	}
	if IsNotFound(&Error{Status: 500}) {
		t.Error("500 should not be not-found")
	}
	if IsNotFound(errors.New("plain")) {
		t.Error("plain errors are not not-found")
	}
}

func TestClient_TransportErrorIsNotTyped(t *testing.T) {
	client := New(Config{BaseURL: "http://127.0.0.1:1"})

	err := client.get(context.Background(), "/products", &struct{}{})
	if err == nil {
		t.Fatal("expected transport error")
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		t.Error("transport failures should not map to *Error")
	}
}
