package file

// File describes one stored binary artifact. Content lives in the object
// store under ObjectKey; the row only carries the address and display name.
// Uploads write two rows, the original and its thumbnail.
type File struct {
	FileID    string `gorm:"primaryKey;column:file_id;size:36"`
	ObjectKey string `gorm:"column:object_key;size:512;not null"`
	Name      string `gorm:"size:255;not null"`
}

func (File) TableName() string {
	return "file"
}
