package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"care-connect.backend/internal/domain/entities"
)

type requirementExpiryRepoStub struct {
	expired    []*entities.VerificationRequirement
	listErr    error
	markErr    error
	markCalls  int
	lastMarked []uuid.UUID
}

func (s *requirementExpiryRepoStub) Create(_ context.Context, _ *entities.VerificationRequirement) error {
	return nil
}

func (s *requirementExpiryRepoStub) CreateBatch(_ context.Context, _ []*entities.VerificationRequirement) error {
	return nil
}

func (s *requirementExpiryRepoStub) GetByID(_ context.Context, _ uuid.UUID) (*entities.VerificationRequirement, error) {
	return nil, nil
}

func (s *requirementExpiryRepoStub) ListByProfileID(_ context.Context, _ uuid.UUID) ([]*entities.VerificationRequirement, error) {
	return nil, nil
}

func (s *requirementExpiryRepoStub) Update(_ context.Context, _ *entities.VerificationRequirement) error {
	return nil
}

func (s *requirementExpiryRepoStub) ListExpiredApproved(_ context.Context, _ time.Time, _ int) ([]*entities.VerificationRequirement, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.expired, nil
}

func (s *requirementExpiryRepoStub) MarkExpired(_ context.Context, ids []uuid.UUID) error {
	s.markCalls++
	s.lastMarked = ids
	return s.markErr
}

type auditLogRepoStub struct {
	created   []*entities.AuditLog
	createErr error
}

func (s *auditLogRepoStub) Create(_ context.Context, log *entities.AuditLog) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, log)
	return nil
}

func (s *auditLogRepoStub) List(_ context.Context, _ entities.AuditLogFilter, _ int, _ int) ([]*entities.AuditLog, int64, error) {
	return nil, 0, nil
}

func TestProcessExpiredRequirements_NoItems(t *testing.T) {
	repo := &requirementExpiryRepoStub{}
	audit := &auditLogRepoStub{}
	job := &RequirementExpiryJob{requirements: repo, auditLogs: audit, interval: time.Millisecond, batchSize: 10, stop: make(chan struct{})}

	job.processExpiredRequirements(context.Background())
	require.Equal(t, 0, repo.markCalls)
	require.Empty(t, audit.created)
}

func TestProcessExpiredRequirements_Success(t *testing.T) {
	id1, id2 := uuid.New(), uuid.New()
	repo := &requirementExpiryRepoStub{expired: []*entities.VerificationRequirement{
		{ID: id1, WorkerProfileID: uuid.New(), Type: "first_aid"},
		{ID: id2, WorkerProfileID: uuid.New(), Type: "police_check"},
	}}
	audit := &auditLogRepoStub{}
	job := &RequirementExpiryJob{requirements: repo, auditLogs: audit, interval: time.Millisecond, batchSize: 10, stop: make(chan struct{})}

	job.processExpiredRequirements(context.Background())
	require.Equal(t, 1, repo.markCalls)
	require.ElementsMatch(t, []uuid.UUID{id1, id2}, repo.lastMarked)
	require.Len(t, audit.created, 2)
	require.Equal(t, entities.AuditRequirementExpired, audit.created[0].Action)
	require.Nil(t, audit.created[0].UserID)
}

func TestProcessExpiredRequirements_ListError(t *testing.T) {
	repo := &requirementExpiryRepoStub{listErr: errors.New("db down")}
	job := &RequirementExpiryJob{requirements: repo, auditLogs: &auditLogRepoStub{}, interval: time.Millisecond, batchSize: 10, stop: make(chan struct{})}

	job.processExpiredRequirements(context.Background())
	require.Equal(t, 0, repo.markCalls)
}

func TestProcessExpiredRequirements_MarkError(t *testing.T) {
	repo := &requirementExpiryRepoStub{
		expired: []*entities.VerificationRequirement{{ID: uuid.New()}},
		markErr: errors.New("update failed"),
	}
	audit := &auditLogRepoStub{}
	job := &RequirementExpiryJob{requirements: repo, auditLogs: audit, interval: time.Millisecond, batchSize: 10, stop: make(chan struct{})}

	job.processExpiredRequirements(context.Background())
	require.Equal(t, 1, repo.markCalls)
	require.Empty(t, audit.created)
}

func TestRequirementExpiryJob_StartStop(t *testing.T) {
	repo := &requirementExpiryRepoStub{}
	job := &RequirementExpiryJob{requirements: repo, auditLogs: &auditLogRepoStub{}, interval: time.Millisecond, batchSize: 10, stop: make(chan struct{})}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		job.Start(ctx)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not stop on context cancel")
	}

	job2 := &RequirementExpiryJob{requirements: repo, auditLogs: &auditLogRepoStub{}, interval: time.Millisecond, batchSize: 10, stop: make(chan struct{})}
	done2 := make(chan struct{})
	go func() {
		job2.Start(context.Background())
		close(done2)
	}()

	time.Sleep(10 * time.Millisecond)
	job2.Stop()
	select {
	case <-done2:
	case <-time.After(time.Second):
		t.Fatal("job did not stop on Stop()")
	}
}
