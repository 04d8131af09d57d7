// Package screen holds the state of the balance inquiry screen.
// Only the most recent submission may change what is displayed: older in-flight
// inquiries are cancelled and their results dropped.
package screen

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/cloud-inquiry-balance-web/internal/domain/inquiry"
	"github.com/google/uuid"
)

// ErrSuperseded is returned by Submit when a newer submission or a reset replaced the call
var ErrSuperseded = errors.New("inquiry superseded by a newer request")

// Phase is the display phase of the screen
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseFailure
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// State is a snapshot of the screen. Response is set only in PhaseSuccess and
// Err only in PhaseFailure.
type State struct {
	Phase      Phase
	Input      string
	Response   *inquiry.Response
	Err        *inquiry.APIError
	Generation string
}

// Screen sequences inquiries for one user. Safe for concurrent use.
type Screen struct {
	inquirer inquiry.Inquirer
	logger   *slog.Logger

	mu     sync.Mutex
	state  State
	seq    uint64
	cancel context.CancelFunc
}

// New creates an idle screen
func New(inquirer inquiry.Inquirer, logger *slog.Logger) *Screen {
	return &Screen{
		inquirer: inquirer,
		logger:   logger,
	}
}

// Submit runs one inquiry for accountNumber and returns the resulting state.
// Blank input fails with a validation error and no backend call.
func (s *Screen) Submit(ctx context.Context, accountNumber string) (State, error) {
	return s.Begin(ctx, accountNumber).Wait()
}

// Pending is a submission that already owns the newest generation.
// Wait must be called exactly once.
type Pending struct {
	screen  *Screen
	seq     uint64
	account string
	ctx     context.Context
	cancel  context.CancelFunc
	logger  *slog.Logger
	blank   bool
}

// Begin supersedes whatever is in flight and moves the screen to loading, or to the
// validation failure for blank input, before returning. Callers that dispatch inquiries
// asynchronously call Begin in input order and Wait concurrently.
func (s *Screen) Begin(ctx context.Context, accountNumber string) *Pending {
	account := strings.TrimSpace(accountNumber)

	s.mu.Lock()
	defer s.mu.Unlock()

	seq, token := s.supersedeLocked()
	logger := s.logger.With("generation", token, "account", inquiry.MaskAccountNumber(account))

	if account == "" {
		s.state = State{
			Phase:      PhaseFailure,
			Err:        inquiry.NewValidationError(inquiry.MessageAccountRequired),
			Generation: token,
		}
		return &Pending{screen: s, seq: seq, logger: logger, blank: true}
	}

	callCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.state = State{Phase: PhaseLoading, Input: account, Generation: token}

	return &Pending{
		screen:  s,
		seq:     seq,
		account: account,
		ctx:     callCtx,
		cancel:  cancel,
		logger:  logger,
	}
}

// Wait runs the inquiry started by Begin and applies its outcome.
// It returns ErrSuperseded, leaving the state untouched, when a newer Begin or a Reset came first.
func (p *Pending) Wait() (State, error) {
	s := p.screen

	if p.blank {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.seq != p.seq {
			return s.state, ErrSuperseded
		}
		return s.state, nil
	}

	p.logger.Debug("Inquiry started")
	resp, err := s.inquirer.InquiryBalance(p.ctx, p.account)

	s.mu.Lock()
	defer s.mu.Unlock()
	p.cancel()

	if s.seq != p.seq {
		p.logger.Debug("Discarding result of superseded inquiry")
		return s.state, ErrSuperseded
	}
	s.cancel = nil

	if err != nil {
		s.state.Phase = PhaseFailure
		s.state.Err = inquiry.AsAPIError(err)
		p.logger.Debug("Inquiry failed", "response_code", s.state.Err.ResponseCode)
	} else {
		s.state.Phase = PhaseSuccess
		s.state.Response = resp
		p.logger.Debug("Inquiry succeeded")
	}

	return s.state, nil
}

// Reset clears input, result and error and drops any in-flight inquiry
func (s *Screen) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.supersedeLocked()
	s.state = State{Phase: PhaseIdle}
}

// State returns the current snapshot
func (s *Screen) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// supersedeLocked starts a new generation and cancels the previous in-flight call.
// s.mu must be held.
func (s *Screen) supersedeLocked() (uint64, string) {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.seq++
	return s.seq, uuid.NewString()
}
