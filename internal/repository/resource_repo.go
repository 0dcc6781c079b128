package repository

import (
	"Campus/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// ResourceRepo 单一资源类型的持久化操作，M 为模型指针类型
type ResourceRepo[M model.Resource] interface {
	Create(ctx context.Context, m M) error
	GetByID(ctx context.Context, id uint64) (M, bool, error)
	GetImages(ctx context.Context, id uint64) (model.Images, bool, error)
	List(ctx context.Context) ([]M, error)
	Delete(ctx context.Context, id uint64) (bool, error)
}

// listSpec 列表投影与排序
type listSpec struct {
	columns []string
	order   string
}

type ResourceRepoImpl[M model.Resource] struct {
	db       *gorm.DB
	newModel func() M
	list     listSpec
}

func NewBlogRepo(db *gorm.DB) ResourceRepo[*model.Blog] {
	return &ResourceRepoImpl[*model.Blog]{
		db:       db,
		newModel: func() *model.Blog { return &model.Blog{} },
		list: listSpec{
			columns: []string{"id", "title", "description", "images", "is_featured", "created_at"},
		},
	}
}

func NewNoticeRepo(db *gorm.DB) ResourceRepo[*model.Notice] {
	return &ResourceRepoImpl[*model.Notice]{
		db:       db,
		newModel: func() *model.Notice { return &model.Notice{} },
		list: listSpec{
			columns: []string{"id", "title", "description", "images", "expiry", "created_at"},
		},
	}
}

func NewThanksRepo(db *gorm.DB) ResourceRepo[*model.Thanks] {
	return &ResourceRepoImpl[*model.Thanks]{
		db:       db,
		newModel: func() *model.Thanks { return &model.Thanks{} },
		list: listSpec{
			columns: []string{"id", "title", "description", "images", "is_featured", "created_at"},
			order:   "created_at DESC, id DESC",
		},
	}
}

func (s *ResourceRepoImpl[M]) Create(ctx context.Context, m M) error {
	return s.db.WithContext(ctx).Create(m).Error
}

// GetByID 第二个返回值表示记录是否存在
func (s *ResourceRepoImpl[M]) GetByID(ctx context.Context, id uint64) (M, bool, error) {
	m := s.newModel()
	err := s.db.WithContext(ctx).Take(m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return m, false, nil
		}
		return m, false, err
	}
	return m, true, nil
}

// GetImages 只取 images 列，第二个返回值表示记录是否存在
func (s *ResourceRepoImpl[M]) GetImages(ctx context.Context, id uint64) (model.Images, bool, error) {
	var row struct {
		Images model.Images
	}
	res := s.db.WithContext(ctx).Model(s.newModel()).Select("images").Where("id = ?", id).Limit(1).Find(&row)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, false, nil
	}
	return row.Images, true, nil
}

func (s *ResourceRepoImpl[M]) List(ctx context.Context) ([]M, error) {
	var items []M
	query := s.db.WithContext(ctx).Model(s.newModel()).Select(s.list.columns)
	if s.list.order != "" {
		query = query.Order(s.list.order)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Delete 第一个返回值表示是否删除了记录
func (s *ResourceRepoImpl[M]) Delete(ctx context.Context, id uint64) (bool, error) {
	res := s.db.WithContext(ctx).Delete(s.newModel(), id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
