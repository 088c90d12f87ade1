package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// errAborted is returned when the user presses Ctrl-C at a prompt.
var errAborted = errors.New("aborted")

// LineReader reads one line of input after showing prompt.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

type scanReader struct {
	r *bufio.Reader
	w io.Writer
}

// NewScanReader reads lines from r and writes prompts to w. It is used when
// stdin is not a terminal.
func NewScanReader(r io.Reader, w io.Writer) LineReader {
	return &scanReader{r: bufio.NewReader(r), w: w}
}

func (s *scanReader) Prompt(prompt string) (string, error) {
	if _, err := fmt.Fprint(s.w, prompt); err != nil {
		return "", err
	}
	line, err := s.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// linerReader adds line editing and a persistent command history.
type linerReader struct {
	st      *liner.State
	history string
}

func newLinerReader(historyPath string) *linerReader {
	st := liner.NewLiner()
	st.SetCtrlCAborts(true)
	lr := &linerReader{st: st, history: historyPath}
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = st.ReadHistory(f)
			_ = f.Close()
		}
	}
	return lr
}

func (l *linerReader) Prompt(prompt string) (string, error) {
	line, err := l.st.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", errAborted
	}
	return line, err
}

// Remember adds a shell command to the history.
func (l *linerReader) Remember(line string) {
	l.st.AppendHistory(line)
}

func (l *linerReader) Close() error {
	if l.history != "" {
		if f, err := os.OpenFile(l.history, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600); err == nil {
			_, _ = l.st.WriteHistory(f)
			_ = f.Close()
		}
	}
	return l.st.Close()
}

// GetSimpleText prompts for a single trimmed value.
func GetSimpleText(r LineReader, prompt string) (string, error) {
	line, err := r.Prompt(prompt + ": ")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetWithDefault prompts showing current; an empty answer keeps it.
func GetWithDefault(r LineReader, prompt, current string) (string, error) {
	if current == "" {
		return GetSimpleText(r, prompt)
	}
	line, err := r.Prompt(fmt.Sprintf("%s [%s]: ", prompt, current))
	if err != nil {
		return "", err
	}
	if v := strings.TrimSpace(line); v != "" {
		return v, nil
	}
	return current, nil
}

// Confirm asks a yes/no question; anything but y or yes is no.
func Confirm(r LineReader, prompt string) (bool, error) {
	line, err := r.Prompt(prompt + " [y/N]: ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// GetPassword reads a password from the terminal without echo. The caller
// should wipe the result.
func GetPassword(w io.Writer, fd int) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}
