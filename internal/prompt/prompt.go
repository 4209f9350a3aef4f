package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrInputClosed is returned when the input ends before a question is answered.
var ErrInputClosed = errors.New("input closed before an answer was given")

var yesNoPattern = regexp.MustCompile(`(?i)^(y|yes|n|no)$`)

// Question describes a single prompt.
type Question struct {
	Label        string
	Pattern      *regexp.Regexp // nil accepts any non-empty answer
	ErrorMessage string         // printed when Pattern rejects the answer
	Default      string         // returned unvalidated on an empty answer
	Optional     bool           // an empty answer returns ""
}

func (q Question) display() string {
	if q.Default != "" {
		return fmt.Sprintf("%s [%s]: ", q.Label, q.Default)
	}
	return q.Label + ": "
}

func (q Question) rejectMessage() string {
	if q.ErrorMessage != "" {
		return q.ErrorMessage
	}
	return q.Label + " is not valid"
}

func (q Question) requiredMessage() string {
	if q.ErrorMessage != "" {
		return q.ErrorMessage
	}
	return q.Label + " is required"
}

// Prompter asks questions on a writer and reads answers from a reader.
type Prompter struct {
	reader   *bufio.Reader
	w        io.Writer
	errStyle lipgloss.Style
}

// New creates a Prompter. Error lines are styled for w's terminal profile,
// so plain buffers receive unstyled text.
func New(r io.Reader, w io.Writer) *Prompter {
	renderer := lipgloss.NewRenderer(w)
	return &Prompter{
		reader:   bufio.NewReader(r),
		w:        w,
		errStyle: renderer.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Ask shows q until it receives an acceptable answer.
func (p *Prompter) Ask(q Question) (string, error) {
	for {
		fmt.Fprint(p.w, q.display())

		line, err := p.readLine()
		if err != nil {
			return "", fmt.Errorf("%s: %w", q.Label, err)
		}

		if line == "" {
			if q.Default != "" {
				return q.Default, nil
			}
			if q.Optional {
				return "", nil
			}
			p.Error(q.requiredMessage())
			continue
		}

		if q.Pattern != nil && !q.Pattern.MatchString(line) {
			p.Error(q.rejectMessage())
			continue
		}

		return line, nil
	}
}

// AskUntil repeats Ask until check accepts the answer. check's error text is
// shown before asking again.
func (p *Prompter) AskUntil(q Question, check func(string) error) (string, error) {
	for {
		answer, err := p.Ask(q)
		if err != nil {
			return "", err
		}
		if err := check(answer); err != nil {
			p.Error(err.Error())
			continue
		}
		return answer, nil
	}
}

// Confirm asks a yes/no question.
func (p *Prompter) Confirm(label string, def bool) (bool, error) {
	q := Question{
		Label:        label + " [yes/no]",
		Pattern:      yesNoPattern,
		ErrorMessage: `Please answer with "yes" or "no"`,
		Default:      "no",
	}
	if def {
		q.Default = "yes"
	}

	answer, err := p.Ask(q)
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(strings.ToLower(answer), "y"), nil
}

// Error writes a styled error line.
func (p *Prompter) Error(msg string) {
	fmt.Fprintln(p.w, p.errStyle.Render(msg))
}

// readLine reads one line and trims surrounding whitespace. A final line
// without a newline still counts.
func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return strings.TrimSpace(line), nil
			}
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
