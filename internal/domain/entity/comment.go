package entity

import (
	"time"
)

// CommentAuthor is the author snapshot captured at posting time.
type CommentAuthor struct {
	UID          string `bson:"uid" json:"uid"`
	Name         string `bson:"name" json:"name"`
	ProfileImage string `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
}

// Comment is a user comment on a lesson. Comments are immutable once posted.
type Comment struct {
	ID        string        `bson:"_id,omitempty" json:"id"`
	LessonID  string        `bson:"lessonId" json:"lessonId"`
	Content   string        `bson:"content" json:"content"`
	Author    CommentAuthor `bson:"author" json:"author"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}
