package api

import (
	"Campus/internal/admin"
	"Campus/internal/api/dto"
	"Campus/internal/api/handler"
)

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	BlogHandler   *handler.ResourceHandler[dto.BlogCreateDTO, dto.BlogDTO]
	NoticeHandler *handler.ResourceHandler[dto.NoticeCreateDTO, dto.NoticeDTO]
	ThanksHandler *handler.ResourceHandler[dto.ThanksCreateDTO, dto.ThanksDTO]
	FolderHandler *handler.FolderHandler
	MediaHandler  *handler.MediaHandler
	AuthHandler   *handler.AuthHandler
	Console       *admin.Console
	Gate          *admin.Gate
}
