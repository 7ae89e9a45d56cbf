package config

type Config struct {
	Mysql      Mysql      `mapstructure:"mysql"`
	Redis      Redis      `mapstructure:"redis"`
	Log        Log        `mapstructure:"log"`
	System     System     `mapstructure:"system"`
	Jwt        Jwt        `mapstructure:"jwt"`
	Captcha    Captcha    `mapstructure:"captcha"`
	Upload     Upload     `mapstructure:"upload"`
	TencentCos TencentCos `mapstructure:"tencent_cos"`
}
