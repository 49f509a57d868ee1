package record

import "time"

type ItemRef struct {
	FileID      string `json:"fileId" binding:"required"`
	ThumbFileID string `json:"thumbFileId" binding:"required"`
}

type CreateRecordInput struct {
	Title      string    `json:"title" binding:"required"`
	Detail     string    `json:"detail"`
	CategoryID int       `json:"categoryId" binding:"required"`
	FileIDList []ItemRef `json:"fileIdList"`
}

type UpdateRecordInput struct {
	Status string `json:"status" binding:"required"`
}

type CreateRecordResponse struct {
	RecordID string `json:"recordId"`
}

type ItemFileDTO struct {
	ItemID int     `json:"itemId"`
	Name   *string `json:"name"`
}

type DetailDTO struct {
	RecordID                  string        `json:"recordId"`
	Status                    string        `json:"status"`
	Title                     string        `json:"title"`
	Detail                    string        `json:"detail"`
	CategoryID                int           `json:"categoryId"`
	CategoryName              *string       `json:"categoryName"`
	ApplicationGroup          uint          `json:"applicationGroup"`
	ApplicationGroupName      *string       `json:"applicationGroupName"`
	CreatedBy                 uint          `json:"createdBy"`
	CreatedByName             *string       `json:"createdByName"`
	CreatedByPrimaryGroupName *string       `json:"createdByPrimaryGroupName"`
	CreatedAt                 time.Time     `json:"createdAt"`
	Files                     []ItemFileDTO `json:"files"`
}

// ListItemDTO mirrors the wire shape the frontend consumes; the createAt
// key (no "d") is long-standing and kept as-is.
type ListItemDTO struct {
	RecordID             string    `json:"recordId"`
	Title                string    `json:"title"`
	ApplicationGroup     uint      `json:"applicationGroup"`
	ApplicationGroupName *string   `json:"applicationGroupName"`
	CreatedBy            uint      `json:"createdBy"`
	CreatedByName        *string   `json:"createdByName"`
	CreatedAt            time.Time `json:"createAt"`
	CommentCount         int64     `json:"commentCount"`
	IsUnConfirmed        bool      `json:"isUnConfirmed"`
	ThumbNailItemID      *int      `json:"thumbNailItemId"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

type ListResponse struct {
	Count int64         `json:"count"`
	Items []ListItemDTO `json:"items"`
}

// DetailRow is the scan target for the single-record join.
type DetailRow struct {
	RecordID             string
	Status               string
	Title                string
	Detail               string
	CategoryID           int
	ApplicationGroup     uint
	CreatedBy            uint
	CreatedAt            time.Time
	CreatedByName        *string
	PrimaryGroupName     *string
	ApplicationGroupName *string
}

// ItemRow is the scan target for one attachment slot of a record.
type ItemRow struct {
	ItemID int
	Name   *string
}

// ListRow is the scan target for one row of the combined list query.
type ListRow struct {
	RecordID         string
	Title            string
	ApplicationGroup uint
	CreatedBy        uint
	CreatedAt        time.Time
	UpdatedAt        time.Time
	UserName         *string
	GroupName        *string
	ThumbItemID      *int
	AccessTime       *time.Time
	CommentCount     int64
}
