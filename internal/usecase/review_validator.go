package usecase

import (
	"fmt"
	"unicode/utf8"

	"reviewflow/pkg/utils"
)

// ValidationError names the violated constraint and its configured bound.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
}

// ReviewValidator checks review fields against the configured bounds.
// Pure checks, no I/O.
type ReviewValidator struct {
	limits utils.ReviewConfig
}

func NewReviewValidator(limits utils.ReviewConfig) *ReviewValidator {
	return &ReviewValidator{limits: limits}
}

// ValidateContent returns nil when the content length is within bounds.
// Length is counted in characters, not bytes.
func (v *ReviewValidator) ValidateContent(content string) *ValidationError {
	length := utf8.RuneCountInString(content)

	if length < v.limits.MinLength {
		return &ValidationError{
			Field:   "content",
			Message: fmt.Sprintf("review content must be at least %d characters", v.limits.MinLength),
		}
	}

	if length > v.limits.MaxLength {
		return &ValidationError{
			Field:   "content",
			Message: fmt.Sprintf("review content cannot exceed %d characters", v.limits.MaxLength),
		}
	}

	return nil
}

// ValidateRating returns nil when the rating is within the inclusive range.
func (v *ReviewValidator) ValidateRating(rating int) *ValidationError {
	if rating < v.limits.MinRating || rating > v.limits.MaxRating {
		return &ValidationError{
			Field:   "rating",
			Message: fmt.Sprintf("rating must be between %d and %d", v.limits.MinRating, v.limits.MaxRating),
		}
	}

	return nil
}
