//go:build integration

package postgres_test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/casekeeper-server/internal/model"
	repo "github.com/dtroode/casekeeper-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "casekeeper_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/casekeeper_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func connect(t *testing.T) *repo.Connection {
	t.Helper()

	conn, err := repo.NewConnection(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestCaseRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	conn := connect(t)
	cases := repo.NewCaseRepository(conn)
	outbox := repo.NewOutboxRepository(conn)

	now := time.Now().UTC().Truncate(time.Microsecond)
	owner, invited := uuid.New(), uuid.New()
	c := model.NewCase(owner, "agreement", now)
	c.InviteToken = "invite-" + uuid.NewString()

	created, err := cases.Create(ctx, c, nil)
	require.NoError(t, err)
	require.Equal(t, int64(1), created.Version)

	byToken, err := cases.GetByInviteToken(ctx, c.InviteToken)
	require.NoError(t, err)
	require.Equal(t, c.ID, byToken.ID)

	created.InvitedUserID = &invited
	created.ClearInvite()
	created.SetStep(1, json.RawMessage(`{"fullName":"A"}`), owner, now)
	event, err := model.NewOutboxEvent(model.EventPartnerJoined, model.CaseEvent{CaseID: c.ID, ActorID: invited}, now)
	require.NoError(t, err)

	updated, err := cases.Update(ctx, created, []model.OutboxEvent{event})
	require.NoError(t, err)
	require.Equal(t, int64(2), updated.Version)

	_, err = cases.Update(ctx, created, nil)
	require.ErrorIs(t, err, model.ErrVersionConflict)

	_, err = cases.GetByInviteToken(ctx, c.InviteToken)
	require.ErrorIs(t, err, model.ErrNotFound)

	got, err := cases.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), got.Version)
	require.Equal(t, invited, *got.InvitedUserID)
	require.True(t, got.EnsureStepStatus(1).Submitted)
	require.JSONEq(t, `{"fullName":"A"}`, string(got.Steps[0]))

	list, err := cases.ListByParticipant(ctx, invited)
	require.NoError(t, err)
	require.Len(t, list, 1)

	leased, err := outbox.Lease(ctx, now.Add(time.Second), 10, time.Minute)
	require.NoError(t, err)
	require.Len(t, leased, 1)
	require.Equal(t, model.EventPartnerJoined, leased[0].Type)
	require.Equal(t, 1, leased[0].Attempts)

	again, err := outbox.Lease(ctx, now.Add(time.Second), 10, time.Minute)
	require.NoError(t, err)
	require.Empty(t, again)

	require.NoError(t, outbox.MarkRetry(ctx, event.ID, now, "smtp down"))
	retried, err := outbox.Lease(ctx, now.Add(time.Second), 10, time.Minute)
	require.NoError(t, err)
	require.Len(t, retried, 1)
	require.Equal(t, "smtp down", retried[0].LastError)
	require.Equal(t, 2, retried[0].Attempts)

	require.NoError(t, outbox.MarkDelivered(ctx, event.ID, now))
	require.ErrorIs(t, outbox.MarkDead(ctx, uuid.New(), "x"), model.ErrNotFound)

	_, err = cases.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestDirectories(t *testing.T) {
	ctx := context.Background()
	conn := connect(t)

	managerID, lawyerID := uuid.New(), uuid.New()
	_, err := conn.Exec(ctx, `INSERT INTO users (id, email, name, role) VALUES ($1, $2, 'Manager', 'case_manager')`,
		managerID, managerID.String()+"@example.com")
	require.NoError(t, err)
	_, err = conn.Exec(ctx, `INSERT INTO lawyers (id, name, direct_email) VALUES ($1, 'Lawyer', 'lawyer@example.com')`, lawyerID)
	require.NoError(t, err)

	users := repo.NewUserRepository(conn)
	u, err := users.GetByID(ctx, managerID)
	require.NoError(t, err)
	require.Equal(t, model.RoleCaseManager, u.Role)

	managers, err := users.ListByRole(ctx, model.RoleCaseManager)
	require.NoError(t, err)
	require.NotEmpty(t, managers)

	lawyers := repo.NewLawyerRepository(conn)
	l, err := lawyers.GetByID(ctx, lawyerID)
	require.NoError(t, err)
	require.Equal(t, "lawyer@example.com", l.ContactEmail())

	_, err = lawyers.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, model.ErrNotFound)
}
