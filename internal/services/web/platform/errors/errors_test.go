package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapsKnownKinds(t *testing.T) {
	t.Parallel()

	if got := HTTPStatus(E(KindUnauthorized, "unauthorized")); got != http.StatusUnauthorized {
		t.Fatalf("unauthorized status = %d, want %d", got, http.StatusUnauthorized)
	}
	if got := HTTPStatus(E(KindInvalidInput, "bad")); got != http.StatusBadRequest {
		t.Fatalf("invalid input status = %d, want %d", got, http.StatusBadRequest)
	}
}

func TestHTTPStatusDefaultsToInternalError(t *testing.T) {
	t.Parallel()

	if got := HTTPStatus(errors.New("boom")); got != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", got, http.StatusInternalServerError)
	}
}

func TestErrorStringFallsBackToKindWhenMessageEmpty(t *testing.T) {
	t.Parallel()

	err := Error{Kind: KindForbidden}
	if got := err.Error(); got != string(KindForbidden) {
		t.Fatalf("Error() = %q, want %q", got, string(KindForbidden))
	}
}

func TestHTTPStatusCoversNilAndAdditionalKinds(t *testing.T) {
	t.Parallel()

	if got := HTTPStatus(nil); got != http.StatusOK {
		t.Fatalf("HTTPStatus(nil) = %d, want %d", got, http.StatusOK)
	}
	if got := HTTPStatus(E(KindForbidden, "forbidden")); got != http.StatusForbidden {
		t.Fatalf("forbidden status = %d, want %d", got, http.StatusForbidden)
	}
	if got := HTTPStatus(E(KindUnavailable, "unavailable")); got != http.StatusServiceUnavailable {
		t.Fatalf("unavailable status = %d, want %d", got, http.StatusServiceUnavailable)
	}
	if got := HTTPStatus(E(KindNotFound, "missing")); got != http.StatusNotFound {
		t.Fatalf("not-found status = %d, want %d", got, http.StatusNotFound)
	}
	if got := HTTPStatus(E(KindUnknown, "unknown")); got != http.StatusInternalServerError {
		t.Fatalf("unknown status = %d, want %d", got, http.StatusInternalServerError)
	}
}

func TestHTTPStatusUnwrapsWrappedErrors(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("list projects: %w", E(KindUnavailable, "project api down"))
	if got := HTTPStatus(wrapped); got != http.StatusServiceUnavailable {
		t.Fatalf("wrapped status = %d, want %d", got, http.StatusServiceUnavailable)
	}
}

func TestLocalizationKey(t *testing.T) {
	t.Parallel()

	if got := LocalizationKey(EK(KindNotFound, " projects.error.not_found ", "missing")); got != "projects.error.not_found" {
		t.Fatalf("LocalizationKey = %q", got)
	}
	if got := LocalizationKey(errors.New("boom")); got != "" {
		t.Fatalf("LocalizationKey(untyped) = %q", got)
	}
	if got := LocalizationKey(nil); got != "" {
		t.Fatalf("LocalizationKey(nil) = %q", got)
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	if got := KindOf(E(KindUnavailable, "down")); got != KindUnavailable {
		t.Fatalf("KindOf = %q", got)
	}
	if got := KindOf(fmt.Errorf("wrap: %w", E(KindNotFound, "missing"))); got != KindNotFound {
		t.Fatalf("KindOf(wrapped) = %q", got)
	}
	if got := KindOf(errors.New("boom")); got != KindUnknown {
		t.Fatalf("KindOf(untyped) = %q", got)
	}
	if got := KindOf(nil); got != KindUnknown {
		t.Fatalf("KindOf(nil) = %q", got)
	}
}

func TestKindFromHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		want   Kind
	}{
		{name: "bad request", status: http.StatusBadRequest, want: KindInvalidInput},
		{name: "unprocessable entity", status: http.StatusUnprocessableEntity, want: KindInvalidInput},
		{name: "unauthorized", status: http.StatusUnauthorized, want: KindUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, want: KindForbidden},
		{name: "not found", status: http.StatusNotFound, want: KindNotFound},
		{name: "bad gateway", status: http.StatusBadGateway, want: KindUnavailable},
		{name: "service unavailable", status: http.StatusServiceUnavailable, want: KindUnavailable},
		{name: "gateway timeout", status: http.StatusGatewayTimeout, want: KindUnavailable},
		{name: "internal falls back", status: http.StatusInternalServerError, want: KindUnknown},
		{name: "zero falls back", status: 0, want: KindUnknown},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := KindFromHTTPStatus(tc.status); got != tc.want {
				t.Fatalf("KindFromHTTPStatus(%d) = %q, want %q", tc.status, got, tc.want)
			}
		})
	}
}
