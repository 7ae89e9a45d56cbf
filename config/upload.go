package config

type Upload struct {
	Path string `mapstructure:"path"` // 上传目录
	Size int    `mapstructure:"size"` // 单个文件大小限制（MB）
}
