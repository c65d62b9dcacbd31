package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mentry-app/mentry-server/internal/domain/contract"
	"github.com/mentry-app/mentry-server/internal/domain/entity"
	"github.com/mentry-app/mentry-server/internal/infrastructure/uuidgen"
)

// CommentRepository is the MongoDB implementation of the ICommentRepository interface.
type CommentRepository struct {
	collection *mongo.Collection
}

// NewCommentRepository creates and returns a new CommentRepository instance.
func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{
		collection: db.Collection("comments"),
	}
}

// Create inserts a new comment document.
func (r *CommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	if comment.ID == "" {
		comment.ID = uuidgen.NewGenerator().NewUUID()
	}
	comment.CreatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, comment); err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// GetByLessonID retrieves all comments for a lesson, newest first.
func (r *CommentRepository) GetByLessonID(ctx context.Context, lessonID string) ([]*entity.Comment, error) {
	filter := bson.M{"lessonId": lessonID}
	opts := options.Find().SetSort(bson.M{"createdAt": -1})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve comments: %w", err)
	}
	defer cursor.Close(ctx)

	var comments []*entity.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("failed to decode comments: %w", err)
	}
	return comments, nil
}

var _ contract.ICommentRepository = (*CommentRepository)(nil)
