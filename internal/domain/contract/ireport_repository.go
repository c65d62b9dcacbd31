package contract

import (
	"context"

	"github.com/mentry-app/mentry-server/internal/domain/entity"
)

type IReportRepository interface {
	// Create appends a new lesson report.
	Create(ctx context.Context, report *entity.Report) error
}
