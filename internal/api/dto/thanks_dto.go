package dto

import (
	"Campus/internal/model"
	"time"
)

// ThanksCreateDTO 鸣谢 - 新增
type ThanksCreateDTO struct {
	Title       string              `json:"title" validate:"required,min=3,max=255"`
	Description string              `json:"description" validate:"required,min=10"`
	Content     string              `json:"content" validate:"required,min=20"`
	Images      []AssetReferenceDTO `json:"images" validate:"required,min=1,dive"`
	IsFeatured  *bool               `json:"isFeatured" validate:"required"`
}

func (s ThanksCreateDTO) ToModel() (*model.Thanks, error) {
	images, err := model.NewImages(toAssetReferences(s.Images))
	if err != nil {
		return nil, err
	}
	return &model.Thanks{
		Title:       s.Title,
		Description: s.Description,
		Content:     s.Content,
		Images:      images,
		IsFeatured:  *s.IsFeatured,
	}, nil
}

// ThanksDTO 鸣谢
type ThanksDTO struct {
	ID          uint64       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Content     string       `json:"content,omitempty"`
	Images      model.Images `json:"images"`
	IsFeatured  bool         `json:"isFeatured"`
	CreatedAt   time.Time    `json:"createdAt"`
}
