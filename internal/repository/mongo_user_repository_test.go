package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/storefront-labs/storefront-service/internal/domain"
)

const mongoTestTimeout = 10 * time.Second

// mongoURI is set by TestMain when GO_TEST_INTEGRATION is enabled.
var mongoURI string

func TestMain(m *testing.M) {
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		os.Exit(m.Run())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7.0",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForLog("Waiting for connections").WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start mongo container: %v\n", err)
		os.Exit(1)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "failed to get container host: %v\n", err)
		os.Exit(1)
	}
	port, err := container.MappedPort(ctx, "27017/tcp")
	if err != nil {
		_ = container.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "failed to get mapped port: %v\n", err)
		os.Exit(1)
	}
	mongoURI = fmt.Sprintf("mongodb://%s:%s", host, port.Port())

	code := m.Run()

	_ = container.Terminate(context.Background())
	os.Exit(code)
}

func newMongoTestDB(t *testing.T) *mongo.Database {
	t.Helper()
	if mongoURI == "" {
		t.Skip("set GO_TEST_INTEGRATION=1 to run MongoDB integration tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoTestTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	require.NoError(t, err)

	db := client.Database("storefront_test_" + uuid.NewString()[:8])
	require.NoError(t, EnsureUserIndexes(ctx, db))

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), mongoTestTimeout)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	return db
}

func TestMongoUserRepository_Lifecycle(t *testing.T) {
	db := newMongoTestDB(t)
	repo := NewMongoUserRepository(db)
	ctx, cancel := context.WithTimeout(context.Background(), mongoTestTimeout)
	defer cancel()

	user := &domain.User{Username: "shopper", Email: "a@x.com", PasswordHash: "hash", Role: domain.RoleUser}
	require.NoError(t, repo.Create(ctx, user))
	require.NotEmpty(t, user.ID)

	dup := &domain.User{Username: "shopper2", Email: "a@x.com", PasswordHash: "hash", Role: domain.RoleUser}
	assert.ErrorIs(t, repo.Create(ctx, dup), ErrConflict)

	got, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.False(t, got.InvalidToken.IsSet())

	tokenID := "jti-1"
	cutoff := int64(1767225600)
	require.NoError(t, repo.SetInvalidationMarker(ctx, user.ID, domain.InvalidationMarker{
		TokenID: &tokenID, CutoffEpochSeconds: &cutoff,
	}))

	got, err = repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, got.InvalidToken.IsSet())
	assert.Equal(t, tokenID, *got.InvalidToken.TokenID)
	assert.Equal(t, cutoff, *got.InvalidToken.CutoffEpochSeconds)

	users, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestMongoUserRepository_NotFound(t *testing.T) {
	db := newMongoTestDB(t)
	repo := NewMongoUserRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "not-an-object-id")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByID(ctx, "65f1c2a4b3e2d1c0a9b8c7d6")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.SetInvalidationMarker(ctx, "65f1c2a4b3e2d1c0a9b8c7d6", domain.InvalidationMarker{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserDocument_ToDomain(t *testing.T) {
	tokenID := "jti-1"
	cutoff := int64(42)
	doc := userDocument{Username: "shopper", Email: "a@x.com", Password: "hash"}
	doc.Profile.Role = "admin"
	doc.Private.InvalidToken = invalidTokenDocument{TokenID: &tokenID, ExpiryAt: &cutoff}

	user := doc.toDomain()

	assert.Equal(t, domain.RoleAdmin, user.Role)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.Equal(t, &tokenID, user.InvalidToken.TokenID)
	assert.Equal(t, &cutoff, user.InvalidToken.CutoffEpochSeconds)
	assert.Len(t, user.ID, 24)
}
