package dto

import (
	"strings"

	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/pkg/apperr"
)

type CreateReviewRequest struct {
	Rating   *int    `json:"rating"`
	Comments *string `json:"comments"`
}

func (r *CreateReviewRequest) Validate() error {
	if r.Rating == nil {
		return apperr.Validation("INVALID_RATING")
	}
	if *r.Rating < 1 {
		return apperr.Validation("RATING_MIN")
	}
	if *r.Rating > 5 {
		return apperr.Validation("RATING_MAX")
	}
	if r.Comments != nil {
		*r.Comments = strings.TrimSpace(*r.Comments)
		if len(*r.Comments) > 5000 {
			return apperr.Validation("COMMENTS_TOO_LONG")
		}
	}
	return nil
}

// UpdateReviewRequest keeps rating mandatory but models comments as a
// three-way option: absent leaves the stored comment unchanged, explicit
// null clears it, a value replaces it.
type UpdateReviewRequest struct {
	Rating   *int        `json:"rating"`
	Comments Opt[string] `json:"comments"`
}

func (r *UpdateReviewRequest) Validate() error {
	if r.Rating == nil {
		return apperr.Validation("INVALID_RATING")
	}
	if *r.Rating < 1 {
		return apperr.Validation("RATING_MIN")
	}
	if *r.Rating > 5 {
		return apperr.Validation("RATING_MAX")
	}
	if r.Comments.Valid {
		r.Comments.Value = strings.TrimSpace(r.Comments.Value)
		if len(r.Comments.Value) > 5000 {
			return apperr.Validation("COMMENTS_TOO_LONG")
		}
	}
	return nil
}
