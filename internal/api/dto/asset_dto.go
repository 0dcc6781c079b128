package dto

import "Campus/internal/model"

// AssetReferenceDTO 图片引用 - 新增
type AssetReferenceDTO struct {
	FileID string `json:"fileId" validate:"required"`
	URL    string `json:"url" validate:"required,url"`
	Width  *int   `json:"width,omitempty" validate:"omitempty,min=0"`
	Height *int   `json:"height,omitempty" validate:"omitempty,min=0"`
}

// AppendMediaDTO 向文件夹追加媒体
type AppendMediaDTO struct {
	Images []AssetReferenceDTO `json:"images" validate:"required,min=1,dive"`
}

func toAssetReferences(items []AssetReferenceDTO) []model.AssetReference {
	refs := make([]model.AssetReference, 0, len(items))
	for _, item := range items {
		refs = append(refs, model.AssetReference{
			FileID: item.FileID,
			URL:    item.URL,
			Width:  item.Width,
			Height: item.Height,
		})
	}
	return refs
}

// References 转换为模型
func (s AppendMediaDTO) References() []model.AssetReference {
	return toAssetReferences(s.Images)
}
