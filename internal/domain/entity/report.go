package entity

import (
	"time"
)

// ReportStatus tracks the moderation state of a lesson report.
type ReportStatus string

const (
	ReportStatusPending ReportStatus = "Pending Review"
)

// Report is an append-only abuse report filed against a lesson.
type Report struct {
	ID                string       `bson:"_id,omitempty" json:"id"`
	LessonID          string       `bson:"lessonId" json:"lessonId"`
	ReporterUserID    string       `bson:"reporterUserId" json:"reporterUserId"`
	ReportedUserEmail string       `bson:"reportedUserEmail" json:"reportedUserEmail"`
	Reason            string       `bson:"reason" json:"reason"`
	Status            ReportStatus `bson:"status" json:"status"`
	CreatedAt         time.Time    `bson:"createdAt" json:"createdAt"`
}
