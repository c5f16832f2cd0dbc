package model

// User is a directory entry. Email is stored lowercased and unique.
type User struct {
	BaseModel
	Name  string `gorm:"type:varchar(255);not null" json:"name"`
	Email string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
}
