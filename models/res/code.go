package res

// ResponseCode 响应码类型
type ResponseCode int

const (
	// 客户端错误码 (1000-1999)
	// 通用客户端错误 (1000-1099)
	BadRequest   ResponseCode = 1000 // 错误的请求
	Unauthorized ResponseCode = 1001 // 未授权
	Forbidden    ResponseCode = 1003 // 禁止访问
	NotFound     ResponseCode = 1004 // 资源未找到

	// 参数验证错误 (1100-1199)
	InvalidParameter ResponseCode = 1100 // 无效的参数
	MissingParameter ResponseCode = 1101 // 缺少参数
	InvalidFormat    ResponseCode = 1102 // 格式错误

	// 认证授权错误 (1200-1299)
	TokenExpired     ResponseCode = 1200 // 令牌过期
	TokenInvalid     ResponseCode = 1201 // 令牌无效
	TokenMissing     ResponseCode = 1202 // 缺少令牌
	PermissionDenied ResponseCode = 1204 // 权限不足

	// 服务端错误码 (2000-2999)
	ServerError ResponseCode = 2000 // 服务器内部错误

	// 数据库相关错误 (2100-2199)
	DBError ResponseCode = 2100 // 数据库错误

	// 业务错误码 (3000-3999)
	// 用户相关错误 (3000-3099)
	UserNotFound  ResponseCode = 3000 // 用户不存在
	PhoneExists   ResponseCode = 3001 // 手机号已注册
	PasswordError ResponseCode = 3002 // 密码错误

	// 帖子相关错误 (3100-3199)
	PostNotFound ResponseCode = 3100 // 帖子不存在

	// 关注相关错误 (3200-3299)
	FollowExists ResponseCode = 3200 // 已关注该用户
	NotFollowing ResponseCode = 3201 // 未关注该用户
	FollowSelf   ResponseCode = 3202 // 不能关注自己

	// 标签相关错误 (3300-3399)
	TagExists ResponseCode = 3300 // 标签名已存在

	// 文件相关错误 (3400-3499)
	FileUploadFailed ResponseCode = 3400 // 文件上传失败
	FileTooLarge     ResponseCode = 3401 // 文件过大
	InvalidFileType  ResponseCode = 3402 // 无效的文件类型
)

// CodeMsg 错误码消息映射
var CodeMsg = map[ResponseCode]string{
	BadRequest:   "请求参数错误",
	Unauthorized: "未授权访问",
	Forbidden:    "禁止访问",
	NotFound:     "资源不存在",

	InvalidParameter: "无效的参数",
	MissingParameter: "缺少必要参数",
	InvalidFormat:    "数据格式错误",

	TokenExpired:     "令牌已过期",
	TokenInvalid:     "令牌无效",
	TokenMissing:     "缺少令牌",
	PermissionDenied: "权限不足",

	ServerError: "服务器内部错误",
	DBError:     "数据库操作失败",

	UserNotFound:  "用户不存在",
	PhoneExists:   "手机号已注册",
	PasswordError: "密码错误",

	PostNotFound: "帖子不存在",

	FollowExists: "已关注该用户",
	NotFollowing: "未关注该用户",
	FollowSelf:   "不能关注自己",

	TagExists: "标签名已存在",

	FileUploadFailed: "文件上传失败",
	FileTooLarge:     "文件超过大小限制",
	InvalidFileType:  "不支持的文件类型",
}

// GetMsg 获取错误码对应的消息
func GetMsg(code ResponseCode) string {
	msg, ok := CodeMsg[code]
	if ok {
		return msg
	}
	return "未知错误"
}
