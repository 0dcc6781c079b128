package dto

import (
	"Campus/internal/model"
	"time"
)

// FolderCreateDTO 文件夹 - 新增
type FolderCreateDTO struct {
	Title       string              `json:"title" validate:"required,min=1,max=255"`
	Description string              `json:"description"`
	Images      []AssetReferenceDTO `json:"images" validate:"omitempty,dive"`
}

func (s FolderCreateDTO) ToModel() (*model.Folder, error) {
	images, err := model.NewImages(toAssetReferences(s.Images))
	if err != nil {
		return nil, err
	}
	return &model.Folder{
		Title:       s.Title,
		Description: s.Description,
		Images:      images,
	}, nil
}

// FolderDTO 文件夹
type FolderDTO struct {
	ID          uint64       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Images      model.Images `json:"images"`
	CreatedAt   time.Time    `json:"createdAt"`
}
