package errors

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	errorPrefix = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	panicPrefix = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	debugPrefix = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// LogHandler is an ErrorHandler that logs errors to a writer, stderr by
// default. Prefixes are colored when the writer is a terminal.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out receives the log lines. Nil means os.Stderr.
	Out io.Writer

	mu sync.Mutex
}

// NewLogHandler returns a LogHandler writing to stderr.
func NewLogHandler(verbose bool) *LogHandler {
	return &LogHandler{Verbose: verbose}
}

func (h *LogHandler) out() (io.Writer, bool) {
	if h.Out != nil {
		return h.Out, false
	}
	return os.Stderr, isTerminal(os.Stderr)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func prefix(style lipgloss.Style, text string, color bool) string {
	if color {
		return style.Render(text)
	}
	return text
}

// HandleError logs a NativeError.
func (h *LogHandler) HandleError(err *NativeError) {
	if err == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	w, color := h.out()
	p := prefix(errorPrefix, "[native "+err.Kind.String()+"]", color)
	if h.Verbose {
		fmt.Fprintf(w, "%s %s", p, err.Op)
		if err.View != "" {
			fmt.Fprintf(w, " view=%s", err.View)
		}
		fmt.Fprintf(w, ": %v\n", err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(w, "%s %s: %v\n", p, err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	w, color := h.out()
	p := prefix(panicPrefix, "[native panic]", color)
	if err.Op != "" {
		fmt.Fprintf(w, "%s %s: %v\n", p, err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "%s %v\n", p, err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// DebugLogger is implemented by handlers that also accept verbose
// diagnostic lines.
type DebugLogger interface {
	Debugf(format string, args ...any)
}

// Debugf logs a diagnostic line.
func (h *LogHandler) Debugf(format string, args ...any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	w, color := h.out()
	fmt.Fprintf(w, "%s "+format+"\n", append([]any{prefix(debugPrefix, "[native]", color)}, args...)...)
}

var verbose atomic.Bool

// SetVerbose enables Logf output.
func SetVerbose(v bool) {
	verbose.Store(v)
}

// Logf forwards a diagnostic line to the global handler if it implements
// DebugLogger and verbose logging is enabled.
func Logf(format string, args ...any) {
	if !verbose.Load() {
		return
	}
	if d, ok := currentHandler().(DebugLogger); ok {
		d.Debugf(format, args...)
	}
}
