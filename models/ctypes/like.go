package ctypes

// LikeStatus 点赞行的当前状态，用显式枚举而不是布尔值，方便以后扩展
type LikeStatus string

const (
	LikeActive  LikeStatus = "active"  // 已点赞
	LikeDeleted LikeStatus = "deleted" // 已取消（软删除）
)

// LikeAction 一次切换操作产生的动作
type LikeAction string

const (
	ActionLiked   LikeAction = "liked"
	ActionUnliked LikeAction = "unliked"
)

// Toggle 返回切换后的状态和对应动作
func (s LikeStatus) Toggle() (LikeStatus, LikeAction) {
	if s == LikeActive {
		return LikeDeleted, ActionUnliked
	}
	return LikeActive, ActionLiked
}
