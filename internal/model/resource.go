package model

import "time"

// Kind 资源类型
type Kind string

const (
	KindBlog   Kind = "blog"
	KindNotice Kind = "notice"
	KindThanks Kind = "thanks"
	KindFolder Kind = "folder"
)

// Resource 所有资源模型的公共行为
type Resource interface {
	PrimaryKey() uint64
	StoredImages() Images
	SetStoredImages(Images)
}

// Blog 博客
type Blog struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Content     string    `gorm:"type:longtext;not null" json:"content"`
	Images      Images    `gorm:"type:json" json:"images"`
	IsFeatured  bool      `gorm:"not null;default:false" json:"isFeatured"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Blog) TableName() string {
	return "blogs"
}

func (s *Blog) PrimaryKey() uint64 { return s.ID }

func (s *Blog) StoredImages() Images { return s.Images }

func (s *Blog) SetStoredImages(images Images) { s.Images = images }

// Notice 通知公告
type Notice struct {
	ID          uint64     `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Images      Images     `gorm:"type:json" json:"images"`
	Expiry      *time.Time `json:"expiry"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func (Notice) TableName() string {
	return "notices"
}

func (s *Notice) PrimaryKey() uint64 { return s.ID }

func (s *Notice) StoredImages() Images { return s.Images }

func (s *Notice) SetStoredImages(images Images) { s.Images = images }

// Thanks 鸣谢墙
type Thanks struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Content     string    `gorm:"type:longtext;not null" json:"content"`
	Images      Images    `gorm:"type:json" json:"images"`
	IsFeatured  bool      `gorm:"not null;default:false" json:"isFeatured"`
	CreatedAt   time.Time `gorm:"index:idx_thanks_created_at" json:"createdAt"`
}

func (Thanks) TableName() string {
	return "thanks"
}

func (s *Thanks) PrimaryKey() uint64 { return s.ID }

func (s *Thanks) StoredImages() Images { return s.Images }

func (s *Thanks) SetStoredImages(images Images) { s.Images = images }

// Folder 媒体文件夹，图片挂在文件夹上
type Folder struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Images      Images    `gorm:"type:json" json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Folder) TableName() string {
	return "folders"
}

func (s *Folder) PrimaryKey() uint64 { return s.ID }

func (s *Folder) StoredImages() Images { return s.Images }

func (s *Folder) SetStoredImages(images Images) { s.Images = images }

// AllModels 需要迁移的模型
func AllModels() []any {
	return []any{&Blog{}, &Notice{}, &Thanks{}, &Folder{}}
}
