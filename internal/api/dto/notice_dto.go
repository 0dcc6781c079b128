package dto

import (
	"Campus/internal/model"
	"time"
)

// NoticeCreateDTO 通知 - 新增，expiry 接受 2006-01-02 或 RFC3339
type NoticeCreateDTO struct {
	Title       string              `json:"title" validate:"required,min=3,max=255"`
	Description string              `json:"description" validate:"required,min=5"`
	Images      []AssetReferenceDTO `json:"images" validate:"omitempty,dive"`
	Expiry      *string             `json:"expiry" validate:"omitempty,flexdate"`
}

func (s NoticeCreateDTO) ToModel() (*model.Notice, error) {
	images, err := model.NewImages(toAssetReferences(s.Images))
	if err != nil {
		return nil, err
	}
	notice := &model.Notice{
		Title:       s.Title,
		Description: s.Description,
		Images:      images,
	}
	if s.Expiry != nil {
		expiry, err := ParseFlexDate(*s.Expiry)
		if err != nil {
			return nil, err
		}
		notice.Expiry = &expiry
	}
	return notice, nil
}

// ParseFlexDate 日期字段的宽松解析
func ParseFlexDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// NoticeDTO 通知
type NoticeDTO struct {
	ID          uint64       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Images      model.Images `json:"images"`
	Expiry      *time.Time   `json:"expiry"`
	CreatedAt   time.Time    `json:"createdAt"`
}
