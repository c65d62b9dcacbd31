package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	// MinReportReasonLength is the minimum accepted length of a report reason.
	MinReportReasonLength = 5
)

// RegisterCustomValidators registers custom validation functions with the Gin validator.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("likeaction", likeActionFL)
		v.RegisterValidation("favoriteaction", favoriteActionFL)
		v.RegisterValidation("reportreason", reportReasonFL)
	}
}

// likeActionFL accepts only the like/unlike toggle actions.
func likeActionFL(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "like" || s == "unlike"
}

// favoriteActionFL accepts only the favorite/unfavorite toggle actions.
func favoriteActionFL(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "favorite" || s == "unfavorite"
}

// reportReasonFL enforces the minimum report reason length.
func reportReasonFL(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) >= MinReportReasonLength
}
