// Package ui implements the session UI boundary on top of a readline
// editor. The hint suggestion is painted inline after the cursor in a dim
// color and recomputed on every buffer change.
package ui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/example/vocabtrainer/internal/quiz"
	"github.com/example/vocabtrainer/internal/session"
)

var (
	questionColor = color.New(color.FgHiYellow, color.Bold)
	phraseColor   = color.New(color.FgHiBlue, color.Bold)
	dimColor      = color.New(color.FgHiBlack)
	perfectColor  = color.New(color.FgHiGreen)
	mistakeColor  = color.New(color.FgHiRed)
)

// Readline is the interactive terminal implementation of session.UI
type Readline struct {
	rl      *readline.Instance
	painter *hintPainter
}

// hintPainter appends the current hint suggestion to the displayed line
type hintPainter struct {
	fn session.HintFunc
}

// Paint implements readline.Painter
func (p *hintPainter) Paint(line []rune, pos int) []rune {
	if p.fn == nil {
		return line
	}
	suggestion := p.fn(string(line))
	if suggestion == "" {
		return line
	}
	return append(line, []rune(dimColor.Sprint(suggestion))...)
}

// New creates a readline-backed UI with the standard prompt
func New() (*Readline, error) {
	painter := &hintPainter{}
	cfg := &readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		Painter:         painter,
	}
	// When the entry stream was piped in, the editor still needs the
	// terminal for interactive input.
	if !readline.IsTerminal(int(os.Stdin.Fd())) {
		if tty, err := os.Open("/dev/tty"); err == nil {
			cfg.Stdin = tty
		}
	}
	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize line editor: %v", err)
	}
	return &Readline{rl: rl, painter: painter}, nil
}

// Close releases the terminal
func (u *Readline) Close() error {
	return u.rl.Close()
}

// NotifyQuestion implements session.UI
func (u *Readline) NotifyQuestion(q quiz.Question) {
	fmt.Print(questionColor.Sprintf("Q%d", q.Index+1), " ")
	fmt.Println(FormatPhrases(q))
}

// NotifyCorrect implements session.UI
func (u *Readline) NotifyCorrect(q quiz.Question, st *quiz.State, mistakes int) {
	fmt.Println(FormatResult(q, st, mistakes))
}

// NotifyIncorrect implements session.UI
func (u *Readline) NotifyIncorrect(q quiz.Question) {
	fmt.Println(mistakeColor.Sprint("✗"))
}

// WaitForInput implements session.UI. Interrupt and end-of-input surface as
// a quit response; anything else the editor reports is a fatal error.
func (u *Readline) WaitForInput(hintFn session.HintFunc) (session.Response, error) {
	u.painter.fn = hintFn
	defer func() { u.painter.fn = nil }()

	line, err := u.rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return session.Response{Kind: session.Quit}, nil
		}
		return session.Response{}, fmt.Errorf("failed to read input: %v", err)
	}
	return session.Response{Kind: session.Answer, Text: line}, nil
}

// FormatPhrases renders an entry's phrases the way the source format writes
// them: /body/ with the comment dimmed after its semicolon.
func FormatPhrases(q quiz.Question) string {
	out := ""
	for _, phrase := range q.Entry.Phrases {
		if phrase.Comment == "" {
			out += "/" + phraseColor.Sprint(phrase.Body)
		} else {
			out += "/" + phraseColor.Sprint(phrase.Body) + dimColor.Sprint(";"+phrase.Comment)
		}
	}
	return out + "/"
}

// FormatResult renders the post-answer summary line with the updated score
func FormatResult(q quiz.Question, st *quiz.State, mistakes int) string {
	score := st.ScoreFor(q.Entry.Term)
	rate := int(score.CorrectRate()*100 + 0.5)
	if mistakes == 0 {
		return fmt.Sprintf("> %s %s", q.Entry.Term,
			perfectColor.Sprintf("(perfect, %s try, %d%% correct)", Ordinal(score.TotalTries()), rate))
	}
	return fmt.Sprintf("> %s %s", q.Entry.Term,
		mistakeColor.Sprintf("(%d mistakes, %s try, %d%% correct)", mistakes, Ordinal(score.TotalTries()), rate))
}

// Ordinal renders 1 as "1st", 2 as "2nd", 3 as "3rd" and everything else
// with a "th" suffix.
func Ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return fmt.Sprintf("%dth", n)
	}
}
