package wire

import (
	"Campus/internal/admin"
	"Campus/internal/api"
	"Campus/internal/api/config"
	"Campus/internal/api/handler"
	"Campus/internal/job"
	"Campus/internal/model"
	"Campus/internal/pkg/cron"
	"Campus/internal/pkg/imagekit"
	"Campus/internal/pkg/minio"
	"Campus/internal/pkg/redis"
	"Campus/internal/repository"
	"Campus/internal/service"
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

// NewAssetStore 按 asset.provider 选择图床实现
func NewAssetStore(ctx context.Context, cfg *config.Config) (service.AssetStore, error) {
	switch cfg.Asset.Provider {
	case "minio", "":
		store, err := minio.NewStore(ctx, cfg.MinIO)
		if err != nil {
			return nil, err
		}
		return store, nil
	case "imagekit":
		client, err := imagekit.NewClient(cfg.ImageKit)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown asset provider %q", cfg.Asset.Provider)
	}
}

// BuildApplication rdb 为空时不启用孤儿文件登记与对账任务
func BuildApplication(db *gorm.DB, rdb *goredis.Client, assets service.AssetStore, cfg *config.Config) (*ApplicationContainer, error) {
	var ledger service.OrphanLedger
	var reconcileJob *job.AssetReconcileJob
	if rdb != nil {
		orphanLedger := redis.NewOrphanLedger(rdb)
		ledger = orphanLedger
		reconcileJob = job.NewAssetReconcileJob(assets, orphanLedger, redis.NewLocker(rdb), cfg.Asset.ReconcileBatch, cfg.Asset.DeleteTimeout)
	}

	optsFor := func(kind model.Kind) (service.LifecycleOptions, error) {
		policy, err := service.PolicyFor(cfg.Lifecycle, kind)
		if err != nil {
			return service.LifecycleOptions{}, fmt.Errorf("%s: %w", kind, err)
		}
		return service.LifecycleOptions{
			Policy:        policy,
			DeleteTimeout: cfg.Asset.DeleteTimeout,
			Ledger:        ledger,
		}, nil
	}

	blogOpts, err := optsFor(model.KindBlog)
	if err != nil {
		return nil, err
	}
	noticeOpts, err := optsFor(model.KindNotice)
	if err != nil {
		return nil, err
	}
	thanksOpts, err := optsFor(model.KindThanks)
	if err != nil {
		return nil, err
	}
	folderOpts, err := optsFor(model.KindFolder)
	if err != nil {
		return nil, err
	}

	blogService := service.NewBlogService(repository.NewBlogRepo(db), assets, blogOpts)
	noticeService := service.NewNoticeService(repository.NewNoticeRepo(db), assets, noticeOpts)
	thanksService := service.NewThanksService(repository.NewThanksRepo(db), assets, thanksOpts)
	folderService := service.NewFolderService(repository.NewFolderRepo(db), assets, folderOpts)
	mediaService := service.NewMediaService(assets)

	sessionCfg := cfg.Session
	if sessionCfg.VerifyURL == "" {
		sessionCfg.VerifyURL = fmt.Sprintf("http://127.0.0.1:%d/api/auth/verify", cfg.Server.Port)
	}

	handlers := &api.HandlersGroup{
		BlogHandler:   handler.NewResourceHandler(blogService),
		NoticeHandler: handler.NewResourceHandler(noticeService),
		ThanksHandler: handler.NewResourceHandler(thanksService),
		FolderHandler: handler.NewFolderHandler(folderService),
		MediaHandler:  handler.NewMediaHandler(mediaService),
		AuthHandler:   handler.NewAuthHandler(sessionCfg),
		Console:       admin.NewConsole(blogService, noticeService, thanksService, folderService),
		Gate:          admin.NewGate(sessionCfg),
	}

	router := api.SetupRouter(handlers, cfg.Server, sessionCfg)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cron.NewCronManager(reconcileJob, cfg.Asset.ReconcileCron),
	}, nil
}
