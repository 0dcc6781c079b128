package handler

import (
	"Campus/internal/api/dto"
	"Campus/internal/pkg/response"
	"Campus/internal/service"

	"github.com/gin-gonic/gin"
)

// ResourceHandler 四类资源共用的增删查接口
type ResourceHandler[P any, R any] struct {
	svc service.ResourceService[P, R]
}

func NewResourceHandler[P any, R any](svc service.ResourceService[P, R]) *ResourceHandler[P, R] {
	return &ResourceHandler[P, R]{svc: svc}
}

func (s *ResourceHandler[P, R]) Create(c *gin.Context) {
	var req P
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	id, err := s.svc.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedWith(c, dto.CreatedDTO{ID: id})
}

func (s *ResourceHandler[P, R]) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	s.delete(c, id)
}

// DeleteByBody 兼容旧版前端在 body 中传 id
func (s *ResourceHandler[P, R]) DeleteByBody(c *gin.Context) {
	var req dto.IDBodyDTO
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	if req.ID == nil || *req.ID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	s.delete(c, *req.ID)
}

func (s *ResourceHandler[P, R]) delete(c *gin.Context, id uint64) {
	if err := s.svc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ResourceHandler[P, R]) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	item, err := s.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, item)
}

func (s *ResourceHandler[P, R]) List(c *gin.Context) {
	items, err := s.svc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}
