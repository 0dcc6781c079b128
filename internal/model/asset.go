package model

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// ErrImagesCorrupted 已存储的 images 字段不符合 AssetReference 结构
var ErrImagesCorrupted = errors.New("stored images are corrupted")

// AssetReference 外部图床中的一个文件
type AssetReference struct {
	FileID string `json:"fileId"`
	URL    string `json:"url"`
	Width  *int   `json:"width,omitempty"`
	Height *int   `json:"height,omitempty"`
}

// Images 以 JSON 形式内嵌在资源上的图片列表，读取时才解析
type Images []byte

// NewImages 序列化图片列表
func NewImages(refs []AssetReference) (Images, error) {
	if refs == nil {
		refs = []AssetReference{}
	}
	data, err := json.Marshal(refs)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// IsEmpty 未存储任何内容，或存储的是空数组/null
func (s Images) IsEmpty() bool {
	switch string(s) {
	case "", "null", "[]":
		return true
	}
	return false
}

// Valid 是否为合法 JSON
func (s Images) Valid() bool {
	return len(s) == 0 || json.Valid(s)
}

// Parse 按 AssetReference 结构解析
func (s Images) Parse() ([]AssetReference, error) {
	if len(s) == 0 {
		return []AssetReference{}, nil
	}

	var refs []AssetReference
	if err := json.Unmarshal(s, &refs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImagesCorrupted, err)
	}
	for i, ref := range refs {
		if ref.FileID == "" {
			return nil, fmt.Errorf("%w: images[%d] has no fileId", ErrImagesCorrupted, i)
		}
	}
	if refs == nil {
		refs = []AssetReference{}
	}
	return refs, nil
}

// FileIDs 按顺序提取 fileId
func (s Images) FileIDs() ([]string, error) {
	refs, err := s.Parse()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.FileID)
	}
	return ids, nil
}

// Value 实现 driver.Valuer
func (s Images) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return string(s), nil
}

// Scan 实现 sql.Scanner
func (s *Images) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*s = nil
	case []byte:
		*s = append(Images(nil), v...)
	case string:
		*s = Images(v)
	default:
		return fmt.Errorf("unsupported images column type %T", value)
	}
	return nil
}

// MarshalJSON 原样输出已存储的内容
func (s Images) MarshalJSON() ([]byte, error) {
	if len(s) == 0 {
		return []byte("[]"), nil
	}
	return s, nil
}

// UnmarshalJSON 原样保留
func (s *Images) UnmarshalJSON(data []byte) error {
	*s = append(Images(nil), data...)
	return nil
}
