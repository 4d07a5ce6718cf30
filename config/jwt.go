package config

// Jwt 令牌配置，令牌有效期固定为 12 小时
type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
}
