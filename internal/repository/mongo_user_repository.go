package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/storefront-labs/storefront-service/internal/domain"
)

// UsersCollection is the MongoDB collection holding user documents.
const UsersCollection = "Users"

type invalidTokenDocument struct {
	TokenID  *string `bson:"tokenId,omitempty"`
	ExpiryAt *int64  `bson:"expiryAt,omitempty"`
}

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Profile   struct {
		Role string `bson:"role"`
	} `bson:"profile"`
	Private struct {
		InvalidToken invalidTokenDocument `bson:"invalidToken"`
	} `bson:"private"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func (d *userDocument) toDomain() *domain.User {
	return &domain.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.Password,
		Role:         domain.Role(d.Profile.Role),
		InvalidToken: domain.InvalidationMarker{
			TokenID:            d.Private.InvalidToken.TokenID,
			CutoffEpochSeconds: d.Private.InvalidToken.ExpiryAt,
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type mongoUserRepository struct {
	users *mongo.Collection
	now   func() time.Time
}

// NewMongoUserRepository returns a MongoDB-backed credential store.
func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{
		users: db.Collection(UsersCollection),
		now:   time.Now,
	}
}

// EnsureUserIndexes creates the unique email index.
func EnsureUserIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("email_unique").SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("mongo ensure user indexes: %w", err)
	}
	return nil
}

func (r *mongoUserRepository) Create(ctx context.Context, user *domain.User) error {
	// BSON dates carry millisecond precision.
	now := r.now().UTC().Truncate(time.Millisecond)

	doc := userDocument{
		Username:  user.Username,
		Email:     user.Email,
		Password:  user.PasswordHash,
		CreatedAt: now,
		UpdatedAt: now,
	}
	doc.Profile.Role = string(user.Role)

	res, err := r.users.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrConflict
		}
		return fmt.Errorf("insert user: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("insert user: unexpected id type %T", res.InsertedID)
	}
	user.ID = oid.Hex()
	user.CreatedAt = now
	user.UpdatedAt = now
	return nil
}

func (r *mongoUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, ErrNotFound
	}
	return r.findOne(ctx, bson.D{{Key: "_id", Value: oid}})
}

func (r *mongoUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (r *mongoUserRepository) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	limit, offset = normalizePage(limit, offset)
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cur, err := r.users.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cur.Close(ctx)

	users := []domain.User{}
	for cur.Next(ctx) {
		var doc userDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, *doc.toDomain())
	}
	return users, cur.Err()
}

// SetInvalidationMarker overwrites the invalidToken subdocument with one $set.
func (r *mongoUserRepository) SetInvalidationMarker(ctx context.Context, userID string, marker domain.InvalidationMarker) error {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(userID))
	if err != nil {
		return ErrNotFound
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "private.invalidToken", Value: invalidTokenDocument{
			TokenID:  marker.TokenID,
			ExpiryAt: marker.CutoffEpochSeconds,
		}},
		{Key: "updatedAt", Value: r.now().UTC().Truncate(time.Millisecond)},
	}}}

	res, err := r.users.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, update)
	if err != nil {
		return fmt.Errorf("set invalidation marker: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoUserRepository) findOne(ctx context.Context, filter bson.D) (*domain.User, error) {
	var doc userDocument
	if err := r.users.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}
