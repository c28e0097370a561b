package jieba

import "github.com/dmitrymomot/textkit/core/config"

// Config declares the environment variables a segmenter can be built
// from.
type Config struct {
	HMMPath     string `env:"TEXTKIT_JIEBA_HMM_PATH,required"`
	MPPath      string `env:"TEXTKIT_JIEBA_MP_PATH,required"`
	Mode        string `env:"TEXTKIT_JIEBA_MODE" envDefault:"mix"`
	WithOffsets bool   `env:"TEXTKIT_JIEBA_WITH_OFFSETS" envDefault:"false"`
}

// NewFromEnv builds a segmenter from environment configuration.
func NewFromEnv() (*Segmenter, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	mode, err := ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	return New(cfg.HMMPath, cfg.MPPath, mode, cfg.WithOffsets)
}
