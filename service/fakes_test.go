package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"leads-backend/models"
	"leads-backend/notifier"
	"leads-backend/repository"

	"github.com/google/uuid"
)

type memCandidates struct {
	mu     sync.Mutex
	rows   map[string]models.Candidate
	reads  int
	writes int
}

func newMemCandidates() *memCandidates {
	return &memCandidates{rows: map[string]models.Candidate{}}
}

func (m *memCandidates) Create(ctx context.Context, c *models.Candidate) (*models.Candidate, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.rows[c.Email]; ok {
		return &existing, false, nil
	}
	m.writes++
	row := *c
	if row.Status == "" {
		row.Status = models.StatusPending
	}
	row.CreatedAt = time.Now()
	row.UpdatedAt = row.CreatedAt
	m.rows[c.Email] = row
	return &row, true, nil
}

func (m *memCandidates) GetByEmail(ctx context.Context, email string) (*models.Candidate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	row, ok := m.rows[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &row, nil
}

func (m *memCandidates) Update(ctx context.Context, email string, patch models.CandidatePatch) (*models.Candidate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	m.writes++
	if patch.FullName != nil {
		row.FullName = *patch.FullName
	}
	if patch.ResumeFile != nil {
		row.ResumeFile = patch.ResumeFile
	}
	if patch.Status != nil {
		row.Status = *patch.Status
	}
	row.UpdatedAt = time.Now()
	m.rows[email] = row
	return &row, nil
}

func (m *memCandidates) List(ctx context.Context) ([]*models.Candidate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	out := make([]*models.Candidate, 0, len(m.rows))
	for _, row := range m.rows {
		out = append(out, &row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (m *memCandidates) counts() (reads, writes int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reads, m.writes
}

type memAttorneys struct {
	mu   sync.Mutex
	rows map[string]models.Attorney
}

func newMemAttorneys(attorneys ...models.Attorney) *memAttorneys {
	m := &memAttorneys{rows: map[string]models.Attorney{}}
	for _, a := range attorneys {
		m.rows[a.Username] = a
	}
	return m
}

func (m *memAttorneys) Create(ctx context.Context, a *models.Attorney) (*models.Attorney, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.rows[a.Username]; ok {
		return &existing, false, nil
	}
	row := *a
	row.CreatedAt = time.Now()
	m.rows[a.Username] = row
	return &row, true, nil
}

func (m *memAttorneys) GetByUsername(ctx context.Context, username string) (*models.Attorney, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &row, nil
}

type memFiles struct {
	mu      sync.Mutex
	rows    map[uuid.UUID]models.File
	failErr error
}

func newMemFiles() *memFiles {
	return &memFiles{rows: map[uuid.UUID]models.File{}}
}

func (m *memFiles) Create(ctx context.Context, f *models.File) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	f.CreatedAt = time.Now()
	m.rows[f.ID] = *f
	return nil
}

func (m *memFiles) GetByID(ctx context.Context, id uuid.UUID) (*models.File, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &row, nil
}

type sentNotification struct {
	Address string
	Kind    notifier.TemplateKind
	Data    map[string]string
}

// recordingNotifier records every call and answers with a fixed outcome
type recordingNotifier struct {
	mu      sync.Mutex
	sent    []sentNotification
	outcome notifier.Outcome
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{outcome: notifier.Outcome{Status: notifier.StatusDelivered}}
}

func (r *recordingNotifier) Notify(ctx context.Context, address string, kind notifier.TemplateKind, data map[string]string) notifier.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, sentNotification{Address: address, Kind: kind, Data: data})
	return r.outcome
}

func (r *recordingNotifier) calls() []sentNotification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]sentNotification, len(r.sent))
	copy(out, r.sent)
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}

var errStoreDown = errors.New("store unavailable")

func candidateRow(email, name string) *models.Candidate {
	return &models.Candidate{Email: email, FullName: name}
}
