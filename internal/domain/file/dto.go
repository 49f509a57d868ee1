package file

type UploadInput struct {
	Name string `json:"name" binding:"required"`
	Data string `json:"data" binding:"required"`
}

type UploadResponse struct {
	FileID      string `json:"fileId"`
	ThumbFileID string `json:"thumbFileId"`
}

type DownloadResponse struct {
	Data string `json:"data"`
	Name string `json:"name"`
}
