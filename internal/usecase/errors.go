package usecase

import "errors"

// Sentinel errors mapped to HTTP statuses at the handler boundary.
var (
	// ErrPrivateLesson: the lesson is private and the caller is not the author.
	ErrPrivateLesson = errors.New("this lesson is private")
	// ErrPremiumRequired: the lesson (or edit) needs the premium entitlement.
	ErrPremiumRequired = errors.New("premium access required")
	// ErrForbidden: authenticated but not entitled (non-author mutation).
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidAction: unrecognized toggle action, rejected before storage.
	ErrInvalidAction = errors.New("invalid action specified")
	// ErrInvalidPagination: page < 1 or non-positive page size.
	ErrInvalidPagination = errors.New("invalid pagination parameters")
	// ErrAlreadyPremium: checkout requested by a caller who already upgraded.
	ErrAlreadyPremium = errors.New("user already has premium access")
	// ErrEmptyComment: comment content is empty or whitespace.
	ErrEmptyComment = errors.New("comment content cannot be empty")
	// ErrReasonTooShort: report reason below the minimum length.
	ErrReasonTooShort = errors.New("invalid or missing reason for report")
)
