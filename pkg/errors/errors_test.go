package errors

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestNativeErrorString(t *testing.T) {
	err := &NativeError{
		Op:   "views.Image.Build",
		Kind: KindResource,
		Err:  New("unknown format"),
	}
	got := err.Error()
	want := "views.Image.Build [resource]: unknown format"
	if got != want {
		t.Errorf("NativeError.Error() = %q, want %q", got, want)
	}
}

func TestNativeErrorWithView(t *testing.T) {
	err := &NativeError{
		Op:   "core.SeqRebuild",
		Kind: KindInvariant,
		View: "views.Text[main.Data]",
		Err:  New("type changed"),
	}
	if !strings.Contains(err.Error(), "view=views.Text[main.Data]") {
		t.Errorf("error string %q should contain the view", err.Error())
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindPlatform, "platform"},
		{KindInvariant, "invariant"},
		{KindResource, "resource"},
		{KindConfig, "config"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "app.Spawn"
	if got, want := err.Error(), "panic in app.Spawn: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestNativeErrorUnwrap(t *testing.T) {
	inner := fmt.Errorf("inner")
	err := &NativeError{Op: "op", Err: inner}
	if !Is(err, inner) {
		t.Error("expected errors.Is to find the wrapped error")
	}
}

type recordingHandler struct {
	errors []*NativeError
	panics []*PanicError
}

func (h *recordingHandler) HandleError(err *NativeError) { h.errors = append(h.errors, err) }
func (h *recordingHandler) HandlePanic(err *PanicError)  { h.panics = append(h.panics, err) }

func TestReportSetsTimestamp(t *testing.T) {
	h := &recordingHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Report(&NativeError{Op: "op", Err: New("x")})
	if len(h.errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(h.errors))
	}
	if h.errors[0].Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}
}

func TestInvariantPanicsAndReports(t *testing.T) {
	h := &recordingHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	defer func() {
		r := recover()
		inv, ok := r.(*InvariantError)
		if !ok {
			t.Fatalf("expected *InvariantError panic, got %T", r)
		}
		if inv.Detail != "index 3 out of range" {
			t.Errorf("Detail = %q", inv.Detail)
		}
		if len(h.errors) != 1 || h.errors[0].Kind != KindInvariant {
			t.Errorf("expected one invariant report, got %+v", h.errors)
		}
	}()
	Invariant("core.Elements.Remove", "index %d out of range", 3)
}

func TestMustNilIsNoop(t *testing.T) {
	Must("op", nil)
}

func TestMustPanicsWithWrappedError(t *testing.T) {
	h := &recordingHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	cause := New("stale node")
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !Is(err, cause) {
			t.Fatalf("expected panic wrapping cause, got %v", r)
		}
	}()
	Must("layout.InsertChild", cause)
}

func TestRecoverReportsPanic(t *testing.T) {
	h := &recordingHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	func() {
		defer Recover("test.op")
		panic("boom")
	}()

	if len(h.panics) != 1 {
		t.Fatalf("expected 1 panic, got %d", len(h.panics))
	}
	if h.panics[0].Op != "test.op" || h.panics[0].Value != "boom" {
		t.Errorf("unexpected panic report %+v", h.panics[0])
	}
}

func TestRecoverCapturesStack(t *testing.T) {
	h := &recordingHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	func() {
		defer Recover("test.op")
		panic(42)
	}()
	if len(h.panics) != 1 {
		t.Fatalf("expected 1 panic, got %d", len(h.panics))
	}
	if !strings.Contains(h.panics[0].StackTrace, "TestRecoverCapturesStack") {
		t.Errorf("stack trace does not mention the panicking test:\n%s", h.panics[0].StackTrace)
	}
}

func TestLogHandlerWritesPlainTextToWriter(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}
	h.HandleError(&NativeError{Op: "views.Image.Build", Kind: KindResource, Err: New("bad data")})
	h.HandlePanic(&PanicError{Op: "app.Spawn", Value: "boom"})

	want := "[native resource] views.Image.Build: bad data\n[native panic] app.Spawn: boom\n"
	if buf.String() != want {
		t.Errorf("log output = %q, want %q", buf.String(), want)
	}
}

func TestLogfRespectsVerbose(t *testing.T) {
	var buf bytes.Buffer
	SetHandler(&LogHandler{Out: &buf})
	defer SetHandler(nil)

	Logf("hidden %d", 1)
	SetVerbose(true)
	defer SetVerbose(false)
	Logf("shown %d", 2)

	if got := buf.String(); got != "[native] shown 2\n" {
		t.Errorf("log output = %q", got)
	}
}
