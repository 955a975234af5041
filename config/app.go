package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// 附件下载的公开访问域名
	PublicURL string `json:"public_url" yaml:"public_url"`
}
