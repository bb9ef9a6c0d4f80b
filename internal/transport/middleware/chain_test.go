package middleware

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"
)

func tracing(name string, order *[]string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*order = append(*order, name+"-before")
			next.ServeHTTP(w, r)
			*order = append(*order, name+"-after")
		})
	}
}

func TestChain_Order(t *testing.T) {
	tests := []struct {
		name string
		mws  func(order *[]string) []Middleware
		want []string
	}{
		{
			name: "outermost first",
			mws: func(order *[]string) []Middleware {
				return []Middleware{tracing("recovery", order), tracing("auth", order)}
			},
			want: []string{"recovery-before", "auth-before", "handler", "auth-after", "recovery-after"},
		},
		{
			name: "nil layers skipped",
			mws: func(order *[]string) []Middleware {
				return []Middleware{nil, tracing("auth", order), nil}
			},
			want: []string{"auth-before", "handler", "auth-after"},
		},
		{
			name: "empty",
			mws:  func(*[]string) []Middleware { return nil },
			want: []string{"handler"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var order []string
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, "handler")
				w.WriteHeader(http.StatusNoContent)
			})

			rec := httptest.NewRecorder()
			Chain(tt.mws(&order)...)(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			if !slices.Equal(order, tt.want) {
				t.Errorf("order = %v, want %v", order, tt.want)
			}
			if rec.Code != http.StatusNoContent {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
			}
		})
	}
}
