package dto

import (
	"Campus/internal/model"
	"time"
)

// BlogCreateDTO 博客 - 新增
type BlogCreateDTO struct {
	Title       string              `json:"title" validate:"required,min=5,max=255"`
	Description string              `json:"description" validate:"required,min=10"`
	Content     string              `json:"content" validate:"required,min=50"`
	Images      []AssetReferenceDTO `json:"images" validate:"required,min=1,dive"`
	IsFeatured  *bool               `json:"isFeatured" validate:"required"`
}

func (s BlogCreateDTO) ToModel() (*model.Blog, error) {
	images, err := model.NewImages(toAssetReferences(s.Images))
	if err != nil {
		return nil, err
	}
	return &model.Blog{
		Title:       s.Title,
		Description: s.Description,
		Content:     s.Content,
		Images:      images,
		IsFeatured:  *s.IsFeatured,
	}, nil
}

// BlogDTO 博客，列表中不返回 content
type BlogDTO struct {
	ID          uint64       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Content     string       `json:"content,omitempty"`
	Images      model.Images `json:"images"`
	IsFeatured  bool         `json:"isFeatured"`
	CreatedAt   time.Time    `json:"createdAt"`
}
