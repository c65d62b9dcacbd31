package entity

import (
	"time"
)

// LessonPrivacy controls who may open the lesson detail.
type LessonPrivacy string

// LessonVisibility controls whether the lesson shows up in listings.
type LessonVisibility string

// LessonAccessLevel gates the lesson behind the premium entitlement.
type LessonAccessLevel string

const (
	PrivacyPublic  LessonPrivacy = "Public"
	PrivacyPrivate LessonPrivacy = "Private"

	VisibilityVisible LessonVisibility = "Visible"
	VisibilityHidden  LessonVisibility = "Hidden"

	AccessLevelFree    LessonAccessLevel = "Free"
	AccessLevelPremium LessonAccessLevel = "Premium"
)

// LessonAuthor is the denormalized author snapshot embedded in a lesson.
// The uid is the weak reference back to the users collection.
type LessonAuthor struct {
	UID          string `bson:"uid" json:"uid"`
	Email        string `bson:"email" json:"email"`
	Name         string `bson:"name,omitempty" json:"name,omitempty"`
	ProfileImage string `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
}

// LessonInfo holds the categorization fields used by similarity lookups.
type LessonInfo struct {
	Category string `bson:"category,omitempty" json:"category,omitempty"`
	Tone     string `bson:"tone,omitempty" json:"tone,omitempty"`
}

// LessonMetadata carries the access-control flags and timestamps.
// Privacy and visibility are orthogonal: a lesson is listable only when it is
// neither Private nor Hidden, and both filters are applied independently.
type LessonMetadata struct {
	CreatedDate time.Time         `bson:"createdDate" json:"createdDate"`
	LastUpdated *time.Time        `bson:"lastUpdated,omitempty" json:"lastUpdated,omitempty"`
	Privacy     LessonPrivacy     `bson:"privacy" json:"privacy"`
	Visibility  LessonVisibility  `bson:"visibility" json:"visibility"`
	AccessLevel LessonAccessLevel `bson:"accessLevel" json:"accessLevel"`
}

// LessonStats holds the engagement state. Likes is a derived counter: it must
// always equal len(LikesArray) at rest, and is only ever moved together with a
// membership change of the set.
type LessonStats struct {
	Likes      int      `bson:"likes" json:"likes"`
	LikesArray []string `bson:"likesArray" json:"likesArray"`
	Favorites  int      `bson:"favorites" json:"favorites"`
}

// Lesson represents a structured lesson document authored by a user.
type Lesson struct {
	ID         string         `bson:"_id,omitempty" json:"id"`
	Author     LessonAuthor   `bson:"author" json:"author"`
	Title      string         `bson:"title" json:"title"`
	Summary    string         `bson:"summary,omitempty" json:"summary,omitempty"`
	Content    string         `bson:"content" json:"content"`
	LessonInfo LessonInfo     `bson:"lessonInfo" json:"lessonInfo"`
	Metadata   LessonMetadata `bson:"metadata" json:"metadata"`
	Stats      LessonStats    `bson:"stats" json:"stats"`
}

// IsListable reports whether the lesson may appear in public listings.
func (l *Lesson) IsListable() bool {
	return l.Metadata.Privacy != PrivacyPrivate && l.Metadata.Visibility != VisibilityHidden
}

// HasLiked reports whether the given uid is in the lesson's like-member set.
func (l *Lesson) HasLiked(uid string) bool {
	for _, id := range l.Stats.LikesArray {
		if id == uid {
			return true
		}
	}
	return false
}
