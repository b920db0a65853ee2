package service

import (
	"context"
	"errors"
	"file-shop-demo/internal/client"
	"file-shop-demo/internal/config"
	"file-shop-demo/internal/model"
	"file-shop-demo/internal/repository"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInvalidTransition means a session method was called in a state that
	// does not permit it. The session is left unchanged.
	ErrInvalidTransition = errors.New("invalid payment session transition")

	ErrSessionNotFound = errors.New("payment session not found")

	// ErrPaymentFailed wraps whatever the processor (or the session deadline)
	// reported. The ledger is never touched on this path.
	ErrPaymentFailed = errors.New("payment failed")
)

// PaymentSession drives a single purchase attempt for one file.
type PaymentSession struct {
	mu sync.Mutex

	id        string
	file      *model.CatalogNode
	amount    int
	state     model.SessionState
	reason    string
	result    string // download url, set on success
	expiresAt time.Time
}

func newPaymentSession(file *model.CatalogNode, ttl time.Duration) *PaymentSession {
	return &PaymentSession{
		id:        uuid.NewString(),
		file:      file,
		amount:    file.EffectivePrice(),
		state:     model.SessionIdle,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *PaymentSession) ID() string { return s.id }

func (s *PaymentSession) File() *model.CatalogNode { return s.file }

func (s *PaymentSession) Amount() int { return s.amount }

func (s *PaymentSession) State() model.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *PaymentSession) FailureReason() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reason
}

// DownloadURL is empty until the session succeeds.
func (s *PaymentSession) DownloadURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Start moves the session from idle to awaiting payment.
func (s *PaymentSession) Start() error {
	return s.transition(model.SessionIdle, model.SessionAwaitingPayment)
}

// Cancel discards the session. Only allowed before processing has begun.
func (s *PaymentSession) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != model.SessionIdle && s.state != model.SessionAwaitingPayment {
		return fmt.Errorf("%w: cancel from %s", ErrInvalidTransition, s.state)
	}
	s.state = model.SessionCancelled
	return nil
}

func (s *PaymentSession) transition(from, to model.SessionState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != from {
		return fmt.Errorf("%w: %s -> %s (session is %s)", ErrInvalidTransition, from, to, s.state)
	}
	s.state = to
	return nil
}

func (s *PaymentSession) beginProcessing() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != model.SessionAwaitingPayment {
		return fmt.Errorf("%w: confirm from %s", ErrInvalidTransition, s.state)
	}
	if time.Now().After(s.expiresAt) {
		s.state = model.SessionFailed
		s.reason = "payment timed out"
		return fmt.Errorf("%w: %s", ErrPaymentFailed, s.reason)
	}
	s.state = model.SessionProcessing
	return nil
}

func (s *PaymentSession) fail(reason string) {
	s.mu.Lock()
	s.state = model.SessionFailed
	s.reason = reason
	s.mu.Unlock()
}

func (s *PaymentSession) succeed(downloadURL string) {
	s.mu.Lock()
	s.state = model.SessionSucceeded
	s.result = downloadURL
	s.mu.Unlock()
}

// PaymentService owns the live payment sessions and runs confirmations
// against the external processor.
type PaymentService interface {
	// Open creates a session for the file and starts it (awaiting payment).
	Open(file *model.CatalogNode) (*PaymentSession, error)
	Get(sessionID string) (*PaymentSession, error)
	// Confirm models the user's "payment done" signal: the session moves to
	// processing, the processor confirmation runs, and on success the ledger
	// record is committed before the download url is surfaced.
	Confirm(ctx context.Context, sessionID string) (*PaymentSession, error)
	Cancel(sessionID string) error
	DownloadURL(fileID int) string
}

type paymentServiceImpl struct {
	processor       client.PaymentProcessor
	purchaseRepo    repository.PurchaseRepository
	downloadBaseURL string
	sessionTTL      time.Duration

	mu       sync.Mutex
	sessions map[string]*PaymentSession
}

func NewPaymentService(
	processor client.PaymentProcessor,
	purchaseRepo repository.PurchaseRepository,
	paymentCfg *config.Payment,
	downloadCfg *config.Download,
) PaymentService {
	return &paymentServiceImpl{
		processor:       processor,
		purchaseRepo:    purchaseRepo,
		downloadBaseURL: downloadCfg.BaseURL,
		sessionTTL:      paymentCfg.SessionTTL,
		sessions:        make(map[string]*PaymentSession),
	}
}

func (s *paymentServiceImpl) Open(file *model.CatalogNode) (*PaymentSession, error) {
	session := newPaymentSession(file, s.sessionTTL)
	if err := session.Start(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sessions[session.ID()] = session
	s.mu.Unlock()

	return session, nil
}

func (s *paymentServiceImpl) Get(sessionID string) (*PaymentSession, error) {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	s.mu.Unlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *paymentServiceImpl) Confirm(ctx context.Context, sessionID string) (*PaymentSession, error) {
	session, err := s.Get(sessionID)
	if err != nil {
		return nil, err
	}

	if err := session.beginProcessing(); err != nil {
		return session, err
	}

	intent := client.PaymentIntent{
		SessionID: session.ID(),
		FileID:    session.File().ID,
		Amount:    session.Amount(),
	}
	if err := s.processor.Confirm(ctx, intent); err != nil {
		session.fail(err.Error())
		return session, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	downloadURL := s.DownloadURL(session.File().ID)
	record := &model.PurchaseRecord{
		FileID:      session.File().ID,
		FileName:    session.File().Name,
		Price:       session.Amount(),
		DownloadURL: downloadURL,
		PurchasedAt: time.Now(),
	}

	// The record must be queryable before the caller ever sees the url.
	if err := s.purchaseRepo.Append(ctx, record); err != nil {
		session.fail("record purchase: " + err.Error())
		return session, fmt.Errorf("append purchase record: %w", err)
	}

	session.succeed(downloadURL)
	log.Printf("payment succeeded for file %d (session %s)", session.File().ID, session.ID())

	return session, nil
}

func (s *paymentServiceImpl) Cancel(sessionID string) error {
	session, err := s.Get(sessionID)
	if err != nil {
		return err
	}
	return session.Cancel()
}

// DownloadURL builds the opaque reference handed to the download collaborator.
func (s *paymentServiceImpl) DownloadURL(fileID int) string {
	return fmt.Sprintf("%s/%d", s.downloadBaseURL, fileID)
}
