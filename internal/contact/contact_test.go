package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-folio/internal/clock"
)

func validForm() Form {
	return Form{
		Name:    "Sam",
		Email:   "sam@example.com",
		Subject: "Hello",
		Message: "Nice site.",
	}
}

func TestFormValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Form)
		wantErr error
		field   string
	}{
		{"valid", func(*Form) {}, nil, ""},
		{"missing name", func(f *Form) { f.Name = "  " }, ErrMissingField, "name"},
		{"missing email", func(f *Form) { f.Email = "" }, ErrMissingField, "email"},
		{"missing message", func(f *Form) { f.Message = "\n" }, ErrMissingField, "message"},
		{"email not checked", func(f *Form) { f.Email = "not-an-email" }, nil, ""},
		{"optional blank", func(f *Form) { f.Phone, f.Subject = "", "" }, nil, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := validForm()
			tc.mutate(&f)
			err := f.Validate()

			if tc.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Validate() = %v, expected %v", err, tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("Validate() = %v, expected to name field %q", err, tc.field)
			}
		})
	}
}

func TestSubmitSuccess(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, expected POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, expected application/json", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		_, _ = w.Write([]byte(`{"success":true,"message":"Email sent"}`))
	}))
	defer srv.Close()

	c := NewClient(Options{Endpoint: srv.URL, AccessKey: "key-123", Timeout: time.Second})
	f := validForm()
	f.Name = "  Sam  "

	res, err := c.Submit(context.Background(), f)
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if res.Message != "Email sent" || res.ID == "" {
		t.Errorf("Submit() = %+v, expected message and id", res)
	}

	expected := map[string]string{
		"name":       "Sam",
		"email":      "sam@example.com",
		"phone":      "",
		"subject":    "Hello",
		"message":    "Nice site.",
		"access_key": "key-123",
	}
	for k, v := range expected {
		if got[k] != v {
			t.Errorf("payload[%q] = %q, expected %q", k, got[k], v)
		}
	}
}

func TestSubmitRejected(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"success false", http.StatusOK, `{"success":false,"message":"Invalid access key"}`},
		{"server error", http.StatusInternalServerError, `{"success":false}`},
		{"not json", http.StatusBadGateway, `<html>oops</html>`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := NewClient(Options{Endpoint: srv.URL, AccessKey: "k"})
			if _, err := c.Submit(context.Background(), validForm()); !errors.Is(err, ErrRejected) {
				t.Errorf("Submit() = %v, expected ErrRejected", err)
			}
		})
	}
}

func TestSubmitPreconditions(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	c := NewClient(Options{Endpoint: srv.URL})
	if _, err := c.Submit(context.Background(), validForm()); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Submit() without key = %v, expected ErrNotConfigured", err)
	}

	c = NewClient(Options{Endpoint: srv.URL, AccessKey: "k"})
	err := (Form{}).Validate()
	if !errors.Is(err, ErrMissingField) {
		t.Errorf("Validate(empty) = %v, expected ErrMissingField", err)
	}
	for _, field := range []string{"name", "email", "message"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("Validate(empty) = %v, expected to name %q", err, field)
		}
	}
	if _, err := c.Submit(context.Background(), Form{}); !errors.Is(err, ErrMissingField) {
		t.Errorf("Submit(empty) = %v, expected ErrMissingField", err)
	}

	if calls != 0 {
		t.Errorf("server saw %d requests, expected 0", calls)
	}
}

func TestSubmitHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(Options{Endpoint: srv.URL, AccessKey: "k"})
	if _, err := c.Submit(ctx, validForm()); !errors.Is(err, context.Canceled) {
		t.Errorf("Submit() = %v, expected context.Canceled", err)
	}
}

type fakeSubmitter struct {
	calls int
	err   error
}

func (f *fakeSubmitter) Submit(context.Context, Form) (Result, error) {
	f.calls++
	return Result{ID: "x"}, f.err
}

func TestGuardThrottles(t *testing.T) {
	clk := clock.NewVirtual(time.Unix(0, 0))
	next := &fakeSubmitter{}
	g := NewGuard(next, clk, 3*time.Second)
	ctx := context.Background()

	if _, err := g.Submit(ctx, validForm()); err != nil {
		t.Fatalf("first Submit() failed: %v", err)
	}
	if _, err := g.Submit(ctx, validForm()); !errors.Is(err, ErrThrottled) {
		t.Errorf("second Submit() = %v, expected ErrThrottled", err)
	}
	if !g.Throttled() {
		t.Error("Throttled() = false inside the window")
	}

	clk.Advance(3 * time.Second)
	if _, err := g.Submit(ctx, validForm()); err != nil {
		t.Errorf("Submit() after window = %v, expected nil", err)
	}
	if next.calls != 2 {
		t.Errorf("next called %d times, expected 2", next.calls)
	}
}

func TestGuardInvalidAndFailedDoNotHoldWindow(t *testing.T) {
	clk := clock.NewVirtual(time.Unix(0, 0))
	next := &fakeSubmitter{err: errors.New("network down")}
	g := NewGuard(next, clk, time.Minute)
	ctx := context.Background()

	if _, err := g.Submit(ctx, Form{}); !errors.Is(err, ErrMissingField) {
		t.Errorf("Submit(empty) = %v, expected ErrMissingField", err)
	}
	if g.Throttled() {
		t.Error("invalid form should not open the window")
	}

	if _, err := g.Submit(ctx, validForm()); err == nil {
		t.Error("Submit() should surface the send error")
	}
	if g.Throttled() {
		t.Error("failed send should close the window")
	}

	next.err = nil
	if _, err := g.Submit(ctx, validForm()); err != nil {
		t.Errorf("retry Submit() = %v, expected nil", err)
	}
	if next.calls != 2 {
		t.Errorf("next called %d times, expected 2", next.calls)
	}
}
