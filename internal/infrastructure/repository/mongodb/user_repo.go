package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mentry-app/mentry-server/internal/domain/contract"
	"github.com/mentry-app/mentry-server/internal/domain/entity"
)

// UserRepository is the MongoDB implementation of the IUserRepository interface.
// Users are keyed by the identity provider uid, not by _id.
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates and returns a new UserRepository instance.
func NewUserRepository(collection *mongo.Collection) *UserRepository {
	return &UserRepository{collection: collection}
}

// GetUserByUID retrieves a user by the identity provider uid.
func (r *UserRepository) GetUserByUID(ctx context.Context, uid string) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, bson.M{"uid": uid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to retrieve user by email: %w", err)
	}
	return &user, nil
}

// ListUsers retrieves all user documents.
func (r *UserRepository) ListUsers(ctx context.Context) ([]*entity.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []*entity.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// UpsertProfile sets profile fields on the user document, creating it if absent.
func (r *UserRepository) UpsertProfile(ctx context.Context, uid string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	update := bson.M{
		"$set":         updates,
		"$setOnInsert": newUserDefaults(uid),
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, bson.M{"uid": uid}, update, opts); err != nil {
		return fmt.Errorf("failed to upsert user profile: %w", err)
	}
	return nil
}

// IncrementTotalLessons adjusts the derived authored-lesson counter. Positive
// deltas upsert the user document so first-time authors get one created.
func (r *UserRepository) IncrementTotalLessons(ctx context.Context, uid string, delta int) error {
	if delta > 0 {
		if err := r.ensureExists(ctx, uid); err != nil {
			return err
		}
	}
	update := bson.M{
		"$inc": bson.M{"totalLessons": delta},
		"$set": bson.M{"updated_at": time.Now()},
	}
	if _, err := r.collection.UpdateOne(ctx, bson.M{"uid": uid}, update); err != nil {
		return fmt.Errorf("failed to adjust total lessons: %w", err)
	}
	return nil
}

// ToggleFavorite adds or removes the lesson id from the user's favorites set.
// Membership and the savedLessons counter move in one atomic mutation guarded
// by a membership filter, so re-applying the same action is a no-op and the
// counter stays derivable from the set.
func (r *UserRepository) ToggleFavorite(ctx context.Context, uid, lessonID string, add bool) (bool, error) {
	if add {
		if err := r.ensureExists(ctx, uid); err != nil {
			return false, err
		}
	}

	var filter, update bson.M
	if add {
		filter = bson.M{"uid": uid, "favoritesArray": bson.M{"$ne": lessonID}}
		update = bson.M{
			"$addToSet": bson.M{"favoritesArray": lessonID},
			"$inc":      bson.M{"savedLessons": 1},
			"$set":      bson.M{"updated_at": time.Now()},
		}
	} else {
		filter = bson.M{"uid": uid, "favoritesArray": lessonID}
		update = bson.M{
			"$pull": bson.M{"favoritesArray": lessonID},
			"$inc":  bson.M{"savedLessons": -1},
			"$set":  bson.M{"updated_at": time.Now()},
		}
	}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to toggle favorite: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

// SetPremium marks the user premium. The isPremium guard in the filter makes
// re-delivery of the same completion event a harmless no-op.
func (r *UserRepository) SetPremium(ctx context.Context, uid string) (bool, error) {
	if err := r.ensureExists(ctx, uid); err != nil {
		return false, err
	}

	filter := bson.M{"uid": uid, "isPremium": bson.M{"$ne": true}}
	update := bson.M{
		"$set": bson.M{
			"isPremium":  true,
			"upgradedAt": time.Now(),
			"updated_at": time.Now(),
		},
	}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to set premium flag: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

// RemoveFavoriteFromAll pulls the lesson id out of every referencing user's
// favorites set. The filter matches only documents that contain the id, so the
// paired counter decrement never drifts.
func (r *UserRepository) RemoveFavoriteFromAll(ctx context.Context, lessonID string) error {
	filter := bson.M{"favoritesArray": lessonID}
	update := bson.M{
		"$pull": bson.M{"favoritesArray": lessonID},
		"$inc":  bson.M{"savedLessons": -1},
	}
	if _, err := r.collection.UpdateMany(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to clean up favorites referencing lesson %s: %w", lessonID, err)
	}
	return nil
}

// ensureExists upserts a bare user document for the uid. Conditional updates
// with membership guards cannot themselves upsert safely (a non-matching guard
// would insert a duplicate), so existence is guaranteed separately.
func (r *UserRepository) ensureExists(ctx context.Context, uid string) error {
	update := bson.M{"$setOnInsert": newUserDefaults(uid)}
	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, bson.M{"uid": uid}, update, opts); err != nil {
		return fmt.Errorf("failed to ensure user document: %w", err)
	}
	return nil
}

func newUserDefaults(uid string) bson.M {
	return bson.M{
		"uid":            uid,
		"isPremium":      false,
		"totalLessons":   0,
		"savedLessons":   0,
		"favoritesArray": []string{},
		"created_at":     time.Now(),
	}
}

var _ contract.IUserRepository = (*UserRepository)(nil)
