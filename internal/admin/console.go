package admin

import (
	"Campus/internal/api/dto"
	"Campus/internal/service"
	"context"
	"embed"
	"html/template"
	log "log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Row 列表页的一行
type Row struct {
	ID          uint64
	Title       string
	Description string
	Extra       string
	CreatedAt   time.Time
}

type section struct {
	Name  string
	Path  string
	Title string
	rows  func(ctx context.Context) ([]Row, error)
}

// Console 服务端渲染的管理后台列表页
type Console struct {
	sections []section
}

func NewConsole(blogs service.BlogService, notices service.NoticeService, thanks service.ThanksService, folders service.FolderService) *Console {
	return &Console{
		sections: []section{
			{Name: "blogs", Path: "/admin/blogs", Title: "博客", rows: rowsOf(blogs, func(b *dto.BlogDTO) Row {
				return Row{ID: b.ID, Title: b.Title, Description: b.Description, Extra: featured(b.IsFeatured), CreatedAt: b.CreatedAt}
			})},
			{Name: "notices", Path: "/admin/notices", Title: "通知", rows: rowsOf(notices, func(n *dto.NoticeDTO) Row {
				extra := ""
				if n.Expiry != nil {
					extra = "截止 " + n.Expiry.Format(time.DateOnly)
				}
				return Row{ID: n.ID, Title: n.Title, Description: n.Description, Extra: extra, CreatedAt: n.CreatedAt}
			})},
			{Name: "thanks", Path: "/admin/thanks", Title: "鸣谢", rows: rowsOf(thanks, func(t *dto.ThanksDTO) Row {
				return Row{ID: t.ID, Title: t.Title, Description: t.Description, Extra: featured(t.IsFeatured), CreatedAt: t.CreatedAt}
			})},
			{Name: "folders", Path: "/admin/folders", Title: "媒体文件夹", rows: rowsOf[dto.FolderCreateDTO, dto.FolderDTO](folders, func(f *dto.FolderDTO) Row {
				return Row{ID: f.ID, Title: f.Title, Description: f.Description, CreatedAt: f.CreatedAt}
			})},
		},
	}
}

func rowsOf[P any, R any](svc service.ResourceService[P, R], toRow func(*R) Row) func(ctx context.Context) ([]Row, error) {
	return func(ctx context.Context) ([]Row, error) {
		items, err := svc.List(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]Row, 0, len(items))
		for _, item := range items {
			rows = append(rows, toRow(item))
		}
		return rows, nil
	}
}

func featured(v bool) string {
	if v {
		return "精选"
	}
	return ""
}

// Templates 需在注册路由前设置到 gin.Engine
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"date": func(t time.Time) string { return t.Format("2006-01-02 15:04") },
	}).ParseFS(templateFS, "templates/*.tmpl"))
}

// Register 挂载后台页面，gate 为空时不做会话校验
func (s *Console) Register(r *gin.Engine, gate gin.HandlerFunc) {
	r.GET("/admin/login", s.login)

	group := r.Group("/admin")
	if gate != nil {
		group.Use(gate)
	}
	group.GET("/", s.dashboard)
	for _, sec := range s.sections {
		group.GET("/"+sec.Name, s.list(sec))
	}
}

type summary struct {
	Title string
	Path  string
	Count int
}

func (s *Console) dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	summaries := make([]summary, 0, len(s.sections))
	for _, sec := range s.sections {
		rows, err := sec.rows(ctx)
		if err != nil {
			s.fail(c, err)
			return
		}
		summaries = append(summaries, summary{Title: sec.Title, Path: sec.Path, Count: len(rows)})
	}
	c.HTML(http.StatusOK, "dashboard.tmpl", gin.H{"Sections": summaries})
}

func (s *Console) list(sec section) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := sec.rows(c.Request.Context())
		if err != nil {
			s.fail(c, err)
			return
		}
		c.HTML(http.StatusOK, "list.tmpl", gin.H{"Title": sec.Title, "Rows": rows})
	}
}

func (s *Console) login(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", nil)
}

func (s *Console) fail(c *gin.Context, err error) {
	log.ErrorContext(c.Request.Context(), "admin page failed", "path", c.FullPath(), "err", err)
	c.HTML(http.StatusInternalServerError, "error.tmpl", gin.H{"Message": service.UnExpectedError.Error()})
}
