package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mentry-app/mentry-server/internal/domain/contract"
	"github.com/mentry-app/mentry-server/internal/domain/entity"
	"github.com/mentry-app/mentry-server/internal/infrastructure/uuidgen"
)

// ReportRepository is the MongoDB implementation of the IReportRepository
// interface. Reports are append-only.
type ReportRepository struct {
	collection *mongo.Collection
}

// NewReportRepository creates and returns a new ReportRepository instance.
func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{
		collection: db.Collection("lessonsReports"),
	}
}

// Create appends a new lesson report.
func (r *ReportRepository) Create(ctx context.Context, report *entity.Report) error {
	if report.ID == "" {
		report.ID = uuidgen.NewGenerator().NewUUID()
	}
	if report.Status == "" {
		report.Status = entity.ReportStatusPending
	}
	report.CreatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, report); err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

var _ contract.IReportRepository = (*ReportRepository)(nil)
