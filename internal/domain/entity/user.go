package entity

import (
	"time"
)

// User represents a registered user in the system. Identity (uid, email) comes
// from the external identity provider; the document stores profile data and
// engagement state keyed by that uid.
type User struct {
	UID            string     `bson:"uid" json:"uid"`
	Email          string     `bson:"email" json:"email"`
	DisplayName    string     `bson:"displayName,omitempty" json:"displayName,omitempty"`
	PhotoURL       string     `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	IsPremium      bool       `bson:"isPremium" json:"isPremium"`
	UpgradedAt     *time.Time `bson:"upgradedAt,omitempty" json:"upgradedAt,omitempty"`
	TotalLessons   int        `bson:"totalLessons" json:"totalLessons"`
	SavedLessons   int        `bson:"savedLessons" json:"savedLessons"`
	FavoritesArray []string   `bson:"favoritesArray" json:"favoritesArray"`
	CreatedAt      time.Time  `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt      time.Time  `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// HasFavorited reports whether the given lesson id is in the user's favorites set.
func (u *User) HasFavorited(lessonID string) bool {
	for _, id := range u.FavoritesArray {
		if id == lessonID {
			return true
		}
	}
	return false
}
