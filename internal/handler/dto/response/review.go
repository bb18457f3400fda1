package response

import (
	"yacht-charter/internal/usecase/queries"
)

type ReviewResponse struct {
	ID           string `json:"id"`
	BookingID    string `json:"booking_id"`
	YachtID      string `json:"yacht_id"`
	YachtTitle   string `json:"yacht_title"`
	ReviewerID   string `json:"reviewer_id"`
	ReviewerName string `json:"reviewer_name"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	CreatedAt    int64  `json:"created_at"`
	UpdatedAt    int64  `json:"updated_at"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:           v.ID.String(),
		BookingID:    v.BookingID.String(),
		YachtID:      v.YachtID.String(),
		YachtTitle:   v.YachtTitle,
		ReviewerID:   v.ReviewerID.String(),
		ReviewerName: v.ReviewerName,
		Rating:       v.Rating,
		Comment:      v.Comment,
		CreatedAt:    v.CreatedAt.Unix(),
		UpdatedAt:    v.UpdatedAt.Unix(),
	}
}

func FromReviewList(items []*queries.ReviewView) []*ReviewResponse {
	return copyList(items, FromReviewView)
}

type YachtRatingStatsResponse struct {
	YachtID       string  `json:"yacht_id"`
	TotalReviews  int32   `json:"total_reviews"`
	AverageRating float64 `json:"average_rating"`
	Rating1Count  int32   `json:"rating_1_count"`
	Rating2Count  int32   `json:"rating_2_count"`
	Rating3Count  int32   `json:"rating_3_count"`
	Rating4Count  int32   `json:"rating_4_count"`
	Rating5Count  int32   `json:"rating_5_count"`
	UpdatedAt     int64   `json:"updated_at"`
}

func FromYachtRatingStats(s *queries.YachtRatingStats) *YachtRatingStatsResponse {
	resp := &YachtRatingStatsResponse{
		YachtID:       s.YachtID.String(),
		TotalReviews:  s.TotalReviews,
		AverageRating: s.AverageRating,
		Rating1Count:  s.Rating1Count,
		Rating2Count:  s.Rating2Count,
		Rating3Count:  s.Rating3Count,
		Rating4Count:  s.Rating4Count,
		Rating5Count:  s.Rating5Count,
	}
	if !s.UpdatedAt.IsZero() {
		resp.UpdatedAt = s.UpdatedAt.Unix()
	}
	return resp
}
