package dto

// LikeActionRequest carries the like toggle action. The action set is
// enforced by the registered likeaction validator.
type LikeActionRequest struct {
	Action string `json:"action" binding:"required,likeaction"`
}

// FavoriteActionRequest carries the favorite toggle action.
type FavoriteActionRequest struct {
	Action string `json:"action" binding:"required,favoriteaction"`
}

// CreateCommentRequest defines the structure for posting a comment.
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// ReportLessonRequest defines the structure for filing a lesson report.
type ReportLessonRequest struct {
	Reason string `json:"reason" binding:"required,reportreason"`
}
