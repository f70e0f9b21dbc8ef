package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Board is one bulletin board on the KHIDI site: a display name plus the
// listing-page URL the crawler fetches.
type Board struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
	} `yaml:"app" json:"app"`

	Crawl struct {
		Boards []Board `yaml:"boards" json:"boards"`
		// MaxItems bounds how many rows are taken from each listing page.
		MaxItems int `yaml:"max_items" json:"max_items"`
		// ContentLimit bounds how many characters of body text are stored per briefing.
		ContentLimit int `yaml:"content_limit" json:"content_limit"`
	} `yaml:"crawl" json:"crawl"`

	Analysis struct {
		Model string `yaml:"model" json:"model"`
		// KeyringAccount names the OS keychain entry holding the Gemini API key.
		KeyringAccount string `yaml:"keyring_account" json:"keyring_account"`
	} `yaml:"analysis" json:"analysis"`
}

// Default returns the built-in configuration: the three KHIDI boards the
// dashboard tracks and the crawl limits the site tolerates.
func Default() Config {
	var cfg Config
	cfg.App.Port = 38472
	cfg.App.DataDir = "."
	cfg.Crawl.Boards = []Board{
		{Name: "보건산업브리프", URL: "https://www.khidi.or.kr/board?menuId=MENU00085"},
		{Name: "글로벌보건산업동향", URL: "https://www.khidi.or.kr/board?menuId=MENU00949"},
		{Name: "뉴스레터", URL: "https://www.khidi.or.kr/board?menuId=MENU00094"},
	}
	cfg.Crawl.MaxItems = 5
	cfg.Crawl.ContentLimit = 5000
	cfg.Analysis.Model = "gemini-1.5-flash"
	cfg.Analysis.KeyringAccount = "gemini"
	return cfg
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
