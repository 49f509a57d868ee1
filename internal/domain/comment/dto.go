package comment

import "time"

type CreateCommentInput struct {
	Value string `json:"value" binding:"required"`
}

type CommentDTO struct {
	CommentID                 uint      `json:"commentId"`
	Value                     string    `json:"value"`
	CreatedBy                 uint      `json:"createdBy"`
	CreatedByName             *string   `json:"createdByName"`
	CreatedByPrimaryGroupName *string   `json:"createdByPrimaryGroupName"`
	CreatedAt                 time.Time `json:"createdAt"`
}

type ListResponse struct {
	Items []CommentDTO `json:"items"`
}

// Row is the scan target for the comment list join.
type Row struct {
	CommentID uint
	Value     string
	CreatedBy uint
	CreatedAt time.Time
	UserName  *string
	GroupName *string
}
