package config

type Jwt struct {
	Secret  string `mapstructure:"secret"`
	Expires int    `mapstructure:"expires"` // token有效期（天）
	Issuer  string `mapstructure:"issuer"`
}
