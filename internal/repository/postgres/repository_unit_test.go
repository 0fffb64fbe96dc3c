package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/casekeeper-server/internal/model"
)

func TestNewRepositories(t *testing.T) {
	db := &Connection{}

	assert.Equal(t, db, NewCaseRepository(db).db)
	assert.Equal(t, db, NewOutboxRepository(db).db)
	assert.Equal(t, db, NewUserRepository(db).db)
	assert.Equal(t, db, NewLawyerRepository(db).db)
}

func TestCaseRepository_Update_RejectsBrokenLock(t *testing.T) {
	repo := NewCaseRepository(&Connection{})
	c := model.NewCase(uuid.New(), "", time.Now())
	c.FullyLocked = true

	_, err := repo.Update(context.Background(), c, nil)
	require.ErrorIs(t, err, model.ErrLockInvariant)
}

func TestOutboxRepository_Lease_RejectsZeroLimit(t *testing.T) {
	repo := NewOutboxRepository(&Connection{})

	_, err := repo.Lease(context.Background(), time.Now(), 0, time.Minute)
	require.Error(t, err)
}

func TestConnection_PingWithoutPool(t *testing.T) {
	conn := &Connection{}

	require.Error(t, conn.Ping(context.Background()))
	require.NoError(t, conn.Close())
}
