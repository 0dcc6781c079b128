package repository

import (
	"Campus/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ImagesMutation 基于当前媒体列表计算新列表，返回错误时放弃写入
type ImagesMutation func(current model.Images) (model.Images, error)

type FolderRepo interface {
	ResourceRepo[*model.Folder]
	UpdateImages(ctx context.Context, id uint64, mutate ImagesMutation) (bool, error)
}

type FolderRepoImpl struct {
	*ResourceRepoImpl[*model.Folder]
}

func NewFolderRepo(db *gorm.DB) FolderRepo {
	return &FolderRepoImpl{
		ResourceRepoImpl: &ResourceRepoImpl[*model.Folder]{
			db:       db,
			newModel: func() *model.Folder { return &model.Folder{} },
			list: listSpec{
				columns: []string{"id", "title", "description", "images", "created_at"},
			},
		},
	}
}

// UpdateImages 在事务内锁定行后读取、修改并写回媒体列表
// 行不存在时返回 false 且不调用 mutate
func (s *FolderRepoImpl) UpdateImages(ctx context.Context, id uint64, mutate ImagesMutation) (bool, error) {
	found := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row struct{ Images model.Images }
		res := tx.Model(&model.Folder{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("images").
			Where("id = ?", id).
			Limit(1).
			Find(&row)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		found = true

		next, err := mutate(row.Images)
		if err != nil {
			return err
		}
		return tx.Model(&model.Folder{}).Where("id = ?", id).Update("images", next).Error
	})
	return found, err
}
