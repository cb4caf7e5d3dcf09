// Package session drives the quiz state machine against an abstract UI.
// The loop never touches the terminal directly; any line-editing widget that
// satisfies the UI interface can host a drill.
package session

import (
	"strings"

	"github.com/example/vocabtrainer/internal/hint"
	"github.com/example/vocabtrainer/internal/quiz"
)

// CommandPrefix marks input that should be interpreted as a command
const CommandPrefix = ":"

// ResponseKind classifies what the UI handed back for one input request
type ResponseKind int

const (
	// Answer carries a submitted answer attempt
	Answer ResponseKind = iota
	// Quit signals an explicit quit command, interrupt or end of input
	Quit
)

// Response is one classified input event from the UI
type Response struct {
	Kind ResponseKind
	Text string
}

// HintFunc produces the inline suggestion for the current input buffer
type HintFunc func(buffer string) string

// UI is the external collaborator boundary for one drill session
type UI interface {
	// NotifyQuestion announces a new question
	NotifyQuestion(q quiz.Question)
	// NotifyCorrect reports a correct answer with the updated aggregate
	// score and the mistake count accumulated on this question
	NotifyCorrect(q quiz.Question, st *quiz.State, mistakes int)
	// NotifyIncorrect reports a rejected answer attempt
	NotifyIncorrect(q quiz.Question)
	// WaitForInput blocks until the user submits a line or quits.
	// The hint function is consulted on every buffer change.
	WaitForInput(hintFn HintFunc) (Response, error)
}

// Run executes the drill until the entry list is exhausted or the user
// quits. A UI error aborts the loop and is returned; the caller is still
// expected to flush scores.
func Run(ui UI, st *quiz.State) error {
	for {
		q, ok := st.NextQuestion()
		if !ok {
			return nil
		}
		ui.NotifyQuestion(q)

		for {
			hintFn := func(buffer string) string {
				return hint.Suffix(q.Entry.Term, buffer, st.Mistakes())
			}
			resp, err := ui.WaitForInput(hintFn)
			if err != nil {
				return err
			}
			if resp.Kind == Quit || isQuitCommand(resp.Text) {
				return nil
			}
			mistakes := st.Mistakes()
			if st.AnswerQuestion(q, resp.Text) {
				ui.NotifyCorrect(q, st, mistakes)
				break
			}
			ui.NotifyIncorrect(q)
		}
	}
}

// isQuitCommand reports whether the input is a command that quits the
// session. Any unambiguous leading prefix of "quit" counts, including the
// bare prefix character; other commands fall through as literal answers.
func isQuitCommand(input string) bool {
	if !strings.HasPrefix(input, CommandPrefix) {
		return false
	}
	return strings.HasPrefix("quit", input[len(CommandPrefix):])
}
