package handler

import (
	"Campus/internal/api/dto"
	"Campus/internal/pkg/response"
	"Campus/internal/service"

	"github.com/gin-gonic/gin"
)

type FolderHandler struct {
	*ResourceHandler[dto.FolderCreateDTO, dto.FolderDTO]
	folderSvc service.FolderService
}

func NewFolderHandler(folderSvc service.FolderService) *FolderHandler {
	return &FolderHandler{
		ResourceHandler: NewResourceHandler[dto.FolderCreateDTO, dto.FolderDTO](folderSvc),
		folderSvc:       folderSvc,
	}
}

func (s *FolderHandler) AppendMedia(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.AppendMediaDTO
	if err = bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	if err = s.folderSvc.AppendMedia(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *FolderHandler) RemoveMedia(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	fileID := c.Param("fileId")
	if fileID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.folderSvc.RemoveMedia(c.Request.Context(), id, fileID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
