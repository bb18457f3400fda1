package request

import (
	"yacht-charter/internal/pkg/patch"
	"yacht-charter/internal/usecase/commands"
	"yacht-charter/internal/usecase/queries"
)

type CreateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (r CreateReviewRequest) ToInput() commands.ReviewInput {
	return commands.ReviewInput{Rating: r.Rating, Comment: r.Comment}
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty"`
	Comment *string `json:"comment,omitempty"`
}

func (r UpdateReviewRequest) ToInput(existing *queries.ReviewView) commands.ReviewInput {
	return commands.ReviewInput{
		Rating:  patch.Coalesce(r.Rating, existing.Rating),
		Comment: patch.Coalesce(r.Comment, existing.Comment),
	}
}

type ReviewListQuery struct {
	PageQuery
	MinRating *int `form:"min_rating"`
	MaxRating *int `form:"max_rating"`
}

func (q ReviewListQuery) ToFilters() queries.ReviewFilters {
	return queries.ReviewFilters{MinRating: q.MinRating, MaxRating: q.MaxRating}
}
