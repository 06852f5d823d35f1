package errors

import (
	stderrors "errors"
	"net/http"
	"strings"
	"testing"
)

func TestErrorFormat(t *testing.T) {
	e := New(CodeNotFound, "lead not found")
	if got := e.Error(); got != "[not_found(1002)] lead not found" {
		t.Errorf("unexpected format: %s", got)
	}

	withDetail := e.WithDetail("id=abc")
	if !strings.HasSuffix(withDetail.Error(), ": id=abc") {
		t.Errorf("detail missing: %s", withDetail.Error())
	}
	// Original must be untouched.
	if e.Detail != "" {
		t.Error("WithDetail mutated the receiver")
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, CodeDatabaseError, "query failed") != nil {
		t.Error("Wrap(nil) must return nil")
	}
}

func TestWrapPreservesCode(t *testing.T) {
	inner := New(CodeConflict, "lead already accepted")
	wrapped := Wrap(inner, CodeUnknown, "update rejected")
	if wrapped.Code != CodeConflict {
		t.Errorf("expected conflict code preserved, got %s", wrapped.Code)
	}
	if !stderrors.Is(wrapped, wrapped) || stderrors.Unwrap(wrapped) != error(inner) {
		t.Error("wrapped chain broken")
	}
}

func TestIsCodeTraversesChain(t *testing.T) {
	base := stderrors.New("connection refused")
	mid := Wrap(base, CodeDatabaseError, "insert failed")
	top := Wrap(mid, CodeInternal, "could not store lead")

	if !IsCode(top, CodeDatabaseError) {
		t.Error("IsCode failed to find database_error in chain")
	}
	if IsCode(top, CodeNotFound) {
		t.Error("IsCode reported absent code")
	}
	if !IsNotFound(NotFound("x")) {
		t.Error("IsNotFound false for NotFound error")
	}
}

func TestGetCode(t *testing.T) {
	if GetCode(nil) != CodeOK {
		t.Error("nil error must map to ok")
	}
	if GetCode(stderrors.New("plain")) != CodeUnknown {
		t.Error("plain error must map to unknown")
	}
	if GetCode(InvalidParam("bad role")) != CodeInvalidParam {
		t.Error("invalid_param lost")
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{CodeInvalidParam, http.StatusBadRequest},
		{CodeNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusConflict},
		{CodeRateLimit, http.StatusTooManyRequests},
		{CodeUnavailable, http.StatusServiceUnavailable},
		{CodeDatabaseError, http.StatusInternalServerError},
		{CodeUnknown, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := tc.code.HTTPStatus(); got != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.code, tc.want, got)
		}
	}
}
