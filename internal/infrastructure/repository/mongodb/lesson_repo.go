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

// LessonRepository is the MongoDB implementation of the ILessonRepository interface.
type LessonRepository struct {
	collection *mongo.Collection
}

// NewLessonRepository creates and returns a new LessonRepository instance.
func NewLessonRepository(db *mongo.Database) *LessonRepository {
	return &LessonRepository{
		collection: db.Collection("lessons"),
	}
}

// publicFilter returns the exclusion filters applied to every public listing.
// privacy and visibility are orthogonal flags; both are enforced.
func publicFilter() bson.M {
	return bson.M{
		"metadata.privacy":    bson.M{"$ne": string(entity.PrivacyPrivate)},
		"metadata.visibility": bson.M{"$ne": string(entity.VisibilityHidden)},
	}
}

// buildLessonFilter creates a BSON filter from LessonFilterOptions.
func buildLessonFilter(opts *contract.LessonFilterOptions) bson.M {
	filter := bson.M{}
	if opts.PublicOnly {
		filter = publicFilter()
	}
	if opts.AuthorUID != nil && *opts.AuthorUID != "" {
		filter["author.uid"] = *opts.AuthorUID
	}
	return filter
}

// CreateLesson inserts a new lesson record into the database.
func (r *LessonRepository) CreateLesson(ctx context.Context, lesson *entity.Lesson) error {
	if lesson.Metadata.CreatedDate.IsZero() {
		lesson.Metadata.CreatedDate = time.Now()
	}
	if lesson.Stats.LikesArray == nil {
		lesson.Stats.LikesArray = []string{} // keep the set decodable and countable
	}
	if _, err := r.collection.InsertOne(ctx, lesson); err != nil {
		return fmt.Errorf("failed to create lesson: %w", err)
	}
	return nil
}

// GetLessonByID retrieves a single lesson by its unique id.
func (r *LessonRepository) GetLessonByID(ctx context.Context, lessonID string) (*entity.Lesson, error) {
	var lesson entity.Lesson
	err := r.collection.FindOne(ctx, bson.M{"_id": lessonID}).Decode(&lesson)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrLessonNotFound
		}
		return nil, fmt.Errorf("failed to retrieve lesson: %w", err)
	}
	return &lesson, nil
}

// GetLessons retrieves lessons matching the filter, newest first, with the
// total match count. Page/PageSize of zero return the full result set.
func (r *LessonRepository) GetLessons(ctx context.Context, filterOptions *contract.LessonFilterOptions) ([]*entity.Lesson, int64, error) {
	filter := buildLessonFilter(filterOptions)

	totalCount, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get total lesson count: %w", err)
	}

	findOpts := options.Find().SetSort(bson.M{"metadata.createdDate": -1})
	if filterOptions.PageSize > 0 {
		skip := int64((filterOptions.Page - 1) * filterOptions.PageSize)
		findOpts.SetSkip(skip).SetLimit(int64(filterOptions.PageSize))
	}

	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve lessons: %w", err)
	}
	defer cursor.Close(ctx)

	var lessons []*entity.Lesson
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, 0, fmt.Errorf("failed to decode lessons: %w", err)
	}

	return lessons, totalCount, nil
}

// GetLessonsByIDs retrieves lessons by id, optionally narrowed by category
// and/or tone, newest first. Ids without a matching document are skipped.
func (r *LessonRepository) GetLessonsByIDs(ctx context.Context, ids []string, category, tone string) ([]*entity.Lesson, error) {
	if len(ids) == 0 {
		return []*entity.Lesson{}, nil
	}

	filter := bson.M{"_id": bson.M{"$in": ids}}
	if category != "" {
		filter["lessonInfo.category"] = category
	}
	if tone != "" {
		filter["lessonInfo.tone"] = tone
	}

	opts := options.Find().SetSort(bson.M{"metadata.createdDate": -1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve lessons by ids: %w", err)
	}
	defer cursor.Close(ctx)

	var lessons []*entity.Lesson
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, fmt.Errorf("failed to decode lessons: %w", err)
	}
	return lessons, nil
}

// GetSimilarLessons returns up to limit public lessons other than excludeID
// whose category or tone matches.
func (r *LessonRepository) GetSimilarLessons(ctx context.Context, excludeID, category, tone string, limit int) ([]*entity.Lesson, error) {
	filter := publicFilter()
	filter["_id"] = bson.M{"$ne": excludeID}
	filter["$or"] = []bson.M{
		{"lessonInfo.category": category},
		{"lessonInfo.tone": tone},
	}

	opts := options.Find().SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve similar lessons: %w", err)
	}
	defer cursor.Close(ctx)

	var lessons []*entity.Lesson
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, fmt.Errorf("failed to decode similar lessons: %w", err)
	}
	return lessons, nil
}

// UpdateLesson applies a partial update to a lesson.
func (r *LessonRepository) UpdateLesson(ctx context.Context, lessonID string, updates map[string]interface{}) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": lessonID}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update lesson: %w", err)
	}
	if res.MatchedCount == 0 {
		return contract.ErrLessonNotFound
	}
	return nil
}

// DeleteLesson removes a lesson document.
func (r *LessonRepository) DeleteLesson(ctx context.Context, lessonID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": lessonID})
	if err != nil {
		return fmt.Errorf("failed to delete lesson: %w", err)
	}
	if res.DeletedCount == 0 {
		return contract.ErrLessonNotFound
	}
	return nil
}

// CountByAuthor counts lessons authored by the given uid.
func (r *LessonRepository) CountByAuthor(ctx context.Context, uid string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"author.uid": uid})
	if err != nil {
		return 0, fmt.Errorf("failed to count lessons by author: %w", err)
	}
	return count, nil
}

// SetLikeMembership adds or removes the uid from the lesson's like-member set.
// The membership guard in the filter makes set change and counter move one
// atomic document mutation: the counter only moves when the set actually
// changed, so stats.likes stays equal to len(stats.likesArray).
func (r *LessonRepository) SetLikeMembership(ctx context.Context, lessonID, uid string, add bool) (bool, error) {
	var filter, update bson.M
	if add {
		filter = bson.M{"_id": lessonID, "stats.likesArray": bson.M{"$ne": uid}}
		update = bson.M{
			"$addToSet": bson.M{"stats.likesArray": uid},
			"$inc":      bson.M{"stats.likes": 1},
		}
	} else {
		filter = bson.M{"_id": lessonID, "stats.likesArray": uid}
		update = bson.M{
			"$pull": bson.M{"stats.likesArray": uid},
			"$inc":  bson.M{"stats.likes": -1},
		}
	}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to update like membership: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

// IncrementFavoriteCount moves the lesson's derived favorite counter.
func (r *LessonRepository) IncrementFavoriteCount(ctx context.Context, lessonID string, delta int) error {
	update := bson.M{"$inc": bson.M{"stats.favorites": delta}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": lessonID}, update)
	if err != nil {
		return fmt.Errorf("failed to adjust favorite count: %w", err)
	}
	if res.MatchedCount == 0 {
		return contract.ErrLessonNotFound
	}
	return nil
}

// ActivityByDay groups the author's lesson creations per day since the given
// time, ascending by day.
func (r *LessonRepository) ActivityByDay(ctx context.Context, uid string, since time.Time) ([]contract.ActivityBucket, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"author.uid":           uid,
			"metadata.createdDate": bson.M{"$gte": since},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   "$metadata.createdDate",
			}},
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate lesson activity: %w", err)
	}
	defer cursor.Close(ctx)

	var buckets []contract.ActivityBucket
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, fmt.Errorf("failed to decode lesson activity: %w", err)
	}
	return buckets, nil
}

// SyncAuthorSnapshot rewrites the denormalized author name/photo on all
// lessons authored by uid.
func (r *LessonRepository) SyncAuthorSnapshot(ctx context.Context, uid, name, photoURL string) error {
	filter := bson.M{"author.uid": uid}
	update := bson.M{"$set": bson.M{
		"author.name":         name,
		"author.profileImage": photoURL,
	}}
	if _, err := r.collection.UpdateMany(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to sync author snapshot: %w", err)
	}
	return nil
}

var _ contract.ILessonRepository = (*LessonRepository)(nil)
