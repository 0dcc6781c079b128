package consts

const (
	// AssetOrphanKey 远端删除失败、待对账的 fileId 集合
	AssetOrphanKey = "asset:orphan"
)

const (
	// AssetReconcileLockKey 孤儿文件对账任务的分布式锁
	AssetReconcileLockKey = "lock:asset:reconcile"
)
