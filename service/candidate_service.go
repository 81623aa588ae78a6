package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"leads-backend/metrics"
	"leads-backend/models"
	"leads-backend/notifier"
	"leads-backend/validation"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultReviewer is the attorney notified of new submissions when no
// reviewer list is configured
const DefaultReviewer = "admin"

// DefaultNotifyTimeout bounds the notifications sent after a submission
const DefaultNotifyTimeout = 30 * time.Second

// CandidateService handles the candidate side of the workflow and the
// attorney operations on candidate records
type CandidateService struct {
	candidates    CandidateStore
	attorneys     AttorneyStore
	notifier      notifier.Notifier
	reviewers     []string
	notifyTimeout time.Duration
	logger        *zap.Logger
}

// CandidateServiceOption is a functional option for CandidateService
type CandidateServiceOption func(*CandidateService)

// WithCandidateStore sets the candidate store
func WithCandidateStore(store CandidateStore) CandidateServiceOption {
	return func(s *CandidateService) {
		s.candidates = store
	}
}

// WithAttorneyStore sets the attorney store used to look up reviewers
func WithAttorneyStore(store AttorneyStore) CandidateServiceOption {
	return func(s *CandidateService) {
		s.attorneys = store
	}
}

// WithNotifier sets the notifier
func WithNotifier(n notifier.Notifier) CandidateServiceOption {
	return func(s *CandidateService) {
		s.notifier = n
	}
}

// WithReviewers sets the usernames of the attorneys alerted on submission
func WithReviewers(usernames ...string) CandidateServiceOption {
	return func(s *CandidateService) {
		s.reviewers = usernames
	}
}

// WithNotifyTimeout limits how long Submit waits for notifications.
// Non-positive values keep the default.
func WithNotifyTimeout(d time.Duration) CandidateServiceOption {
	return func(s *CandidateService) {
		if d > 0 {
			s.notifyTimeout = d
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) CandidateServiceOption {
	return func(s *CandidateService) {
		s.logger = logger
	}
}

// NewCandidateService creates a new candidate service
func NewCandidateService(opts ...CandidateServiceOption) *CandidateService {
	s := &CandidateService{
		reviewers:     []string{DefaultReviewer},
		notifyTimeout: DefaultNotifyTimeout,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitCandidateRequest represents a candidate submitting their information
type SubmitCandidateRequest struct {
	Email      string
	FullName   string
	ResumeFile *string
}

// SubmitCandidateResult represents the result of a submission
type SubmitCandidateResult struct {
	Candidate *models.Candidate
	Created   bool // false when the email was already on file
}

// Submit validates and stores a candidate, then notifies the candidate and
// the reviewing attorneys. A stored record is never rolled back because a
// notification failed.
func (s *CandidateService) Submit(ctx context.Context, req SubmitCandidateRequest) (*SubmitCandidateResult, error) {
	if !validation.IsEmail(req.Email) {
		return nil, invalidInput("invalid email address")
	}
	if strings.TrimSpace(req.FullName) == "" {
		return nil, invalidInput("full_name is required")
	}

	candidate, created, err := s.candidates.Create(ctx, &models.Candidate{
		Email:      req.Email,
		FullName:   req.FullName,
		ResumeFile: req.ResumeFile,
	})
	if err != nil {
		return nil, err
	}
	metrics.CandidateSubmissionsTotal.WithLabelValues(strconv.FormatBool(created)).Inc()

	s.logger.Info("candidate submitted",
		zap.String("email", candidate.Email),
		zap.Bool("created", created),
	)

	// The record is stored: notifications survive a client disconnect but
	// cannot hold the response past notifyTimeout
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notifyTimeout)
	defer cancel()
	s.notifySubmission(notifyCtx, candidate)

	return &SubmitCandidateResult{Candidate: candidate, Created: created}, nil
}

// notifySubmission sends the candidate confirmation and the reviewer alerts
// concurrently. Failures are logged and counted, never returned.
func (s *CandidateService) notifySubmission(ctx context.Context, candidate *models.Candidate) {
	if s.notifier == nil {
		return
	}

	var g errgroup.Group
	g.Go(func() error {
		outcome := s.notifier.Notify(ctx, candidate.Email, notifier.KindCandidateConfirmation, map[string]string{
			"candidate_name": candidate.FullName,
		})
		s.recordOutcome(notifier.KindCandidateConfirmation, candidate.Email, outcome)
		return nil
	})

	for _, username := range s.reviewers {
		g.Go(func() error {
			s.alertReviewer(ctx, username, candidate)
			return nil
		})
	}

	_ = g.Wait()
}

func (s *CandidateService) alertReviewer(ctx context.Context, username string, candidate *models.Candidate) {
	if s.attorneys == nil {
		return
	}

	attorney, err := s.attorneys.GetByUsername(ctx, username)
	if err != nil {
		metrics.NotificationsTotal.WithLabelValues(string(notifier.KindAttorneyAlert), "reviewer_unavailable").Inc()
		s.logger.Warn("reviewer lookup failed, alert not sent",
			zap.String("reviewer", username),
			zap.Error(err),
		)
		return
	}

	outcome := s.notifier.Notify(ctx, attorney.Email, notifier.KindAttorneyAlert, map[string]string{
		"attorney_name":  attorney.FullName,
		"candidate_name": candidate.FullName,
	})
	s.recordOutcome(notifier.KindAttorneyAlert, attorney.Email, outcome)
}

func (s *CandidateService) recordOutcome(kind notifier.TemplateKind, address string, outcome notifier.Outcome) {
	metrics.NotificationsTotal.WithLabelValues(string(kind), string(outcome.Status)).Inc()
	if outcome.Delivered() {
		return
	}
	s.logger.Warn("notification not delivered",
		zap.String("kind", string(kind)),
		zap.String("to", address),
		zap.String("status", string(outcome.Status)),
		zap.Error(outcome.Err),
	)
}

// Get retrieves a candidate by email
func (s *CandidateService) Get(ctx context.Context, email string) (*models.Candidate, error) {
	candidate, err := s.candidates.GetByEmail(ctx, email)
	if err != nil {
		return nil, translateStoreErr(err, "email not found")
	}
	return candidate, nil
}

// CandidateSelfUpdate holds the fields a candidate may change on their own record
type CandidateSelfUpdate struct {
	FullName   *string
	ResumeFile *string
}

// SelfUpdate applies a candidate's own partial update. Status cannot be changed here.
func (s *CandidateService) SelfUpdate(ctx context.Context, email string, req CandidateSelfUpdate) (*models.Candidate, error) {
	if req.FullName != nil && strings.TrimSpace(*req.FullName) == "" {
		return nil, invalidInput("full_name cannot be empty")
	}

	candidate, err := s.candidates.Update(ctx, email, models.CandidatePatch{
		FullName:   req.FullName,
		ResumeFile: req.ResumeFile,
	})
	if err != nil {
		return nil, translateStoreErr(err, "email not found")
	}
	return candidate, nil
}

// CandidateAttorneyUpdate holds the fields an attorney may change
type CandidateAttorneyUpdate struct {
	FullName   *string
	ResumeFile *string
	Status     *string
}

// AttorneyUpdate applies an attorney's partial update, including status
func (s *CandidateService) AttorneyUpdate(ctx context.Context, actor *models.Attorney, email string, req CandidateAttorneyUpdate) (*models.Candidate, error) {
	if actor == nil {
		return nil, ErrAuthFailure
	}
	if req.FullName != nil && strings.TrimSpace(*req.FullName) == "" {
		return nil, invalidInput("full_name cannot be empty")
	}

	patch := models.CandidatePatch{
		FullName:   req.FullName,
		ResumeFile: req.ResumeFile,
	}
	if req.Status != nil {
		status := models.CandidateStatus(*req.Status)
		if !status.Valid() {
			return nil, invalidInput("unknown status %q", *req.Status)
		}
		patch.Status = &status
	}

	candidate, err := s.candidates.Update(ctx, email, patch)
	if err != nil {
		return nil, translateStoreErr(err, "email not found")
	}

	if patch.Status != nil {
		s.logger.Info("candidate status changed",
			zap.String("email", email),
			zap.String("status", string(*patch.Status)),
			zap.String("attorney", actor.Username),
		)
	}
	return candidate, nil
}

// ListLeads returns every candidate. No filtering, paging or ordering.
func (s *CandidateService) ListLeads(ctx context.Context, actor *models.Attorney) ([]*models.Candidate, error) {
	if actor == nil {
		return nil, ErrAuthFailure
	}
	candidates, err := s.candidates.List(ctx)
	if err != nil {
		return nil, err
	}
	return candidates, nil
}
