package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/SaurabViena/heirloom/models"
)

// ErrScreenClosed is returned by ApproveGrant when the reveal screen exits
// before the user answers.
var ErrScreenClosed = errors.New("reveal screen closed")

type transitionMsg struct {
	from, to models.DecryptionState
}

type approvalMsg struct {
	summary string
	reply   chan<- bool
}

type revealDoneMsg struct {
	revealed models.Revealed
	err      error
}

type revealModel struct {
	spinner spinner.Model
	states  []models.DecryptionState
	pending *approvalMsg
	done    bool
	cancel  context.CancelFunc
}

func newRevealModel(cancel context.CancelFunc) revealModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return revealModel{spinner: s, cancel: cancel}
}

func (m revealModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m revealModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case transitionMsg:
		m.states = append(m.states, msg.to)
		return m, nil

	case approvalMsg:
		m.pending = &msg
		return m, nil

	case revealDoneMsg:
		m.done = true
		m.answer(false)
		return m, tea.Quit

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			m.answer(false)
			m.cancel()
		case m.pending == nil:
		case key.Matches(msg, keys.yes):
			m.answer(true)
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.answer(false)
		}
		return m, nil
	}
	return m, nil
}

// answer replies to the pending approval, if any. The reply channel is
// buffered so Update never blocks on it.
func (m *revealModel) answer(ok bool) {
	if m.pending == nil {
		return
	}
	m.pending.reply <- ok
	m.pending = nil
}

func (m revealModel) View() string {
	var b strings.Builder
	for i, s := range m.states {
		if i == len(m.states)-1 && !m.done && !s.Terminal() {
			b.WriteString(m.spinner.View() + " " + stateLabels[s] + "...")
		} else {
			b.WriteString(renderState(s))
		}
		b.WriteString("\n")
	}
	if m.pending != nil {
		b.WriteString(boxStyle.Render(m.pending.summary+"\n\n"+helpStyle.Render("y approve    n refuse")) + "\n")
	}
	return b.String()
}

// RevealProgram runs one reveal under a bubbletea screen. It satisfies
// service.Observer, and its ApproveGrant method matches signer.Approval.
type RevealProgram struct {
	program  *tea.Program
	ctx      context.Context
	cancel   context.CancelFunc
	finished chan struct{}
}

func NewRevealProgram(ctx context.Context, in io.Reader, out io.Writer) *RevealProgram {
	ctx, cancel := context.WithCancel(ctx)
	return &RevealProgram{
		program: tea.NewProgram(newRevealModel(cancel),
			tea.WithInput(in),
			tea.WithOutput(out),
			tea.WithoutSignalHandler(),
		),
		ctx:      ctx,
		cancel:   cancel,
		finished: make(chan struct{}),
	}
}

func (p *RevealProgram) OnTransition(from, to models.DecryptionState) {
	p.program.Send(transitionMsg{from: from, to: to})
}

// ApproveGrant shows the grant and waits for a y or n key press. It returns
// early with ctx.Err() when ctx ends first.
func (p *RevealProgram) ApproveGrant(ctx context.Context, typed apitypes.TypedData) (bool, error) {
	reply := make(chan bool, 1)
	go p.program.Send(approvalMsg{summary: GrantSummary(typed), reply: reply})

	select {
	case ok := <-reply:
		return ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	case <-p.finished:
		return false, ErrScreenClosed
	}
}

// Run calls fn with a context that ctrl+c cancels and keeps the screen up
// until fn returns.
func (p *RevealProgram) Run(fn func(ctx context.Context) (models.Revealed, error)) (models.Revealed, error) {
	result := make(chan revealDoneMsg, 1)
	go func() {
		revealed, err := fn(p.ctx)
		msg := revealDoneMsg{revealed: revealed, err: err}
		result <- msg
		p.program.Send(msg)
	}()

	_, runErr := p.program.Run()
	close(p.finished)
	p.cancel()

	msg := <-result
	if runErr != nil {
		return nil, fmt.Errorf("reveal screen: %w", runErr)
	}
	return msg.revealed, msg.err
}
