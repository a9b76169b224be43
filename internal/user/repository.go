package user

// --- Redis 键名常量 ---

const (
	// KnownUsersKey 是一个 Redis Set 的键，缓存所有已激活用户的UUID。
	// 它让激活检查不必每次都落到SQLite。
	KnownUsersKey = "user:known"
)
