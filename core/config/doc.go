// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/textkit/core/config"
//
//	type SegmenterConfig struct {
//		HMMPath string `env:"TEXTKIT_JIEBA_HMM_PATH,required"`
//		MPPath  string `env:"TEXTKIT_JIEBA_MP_PATH,required"`
//		Mode    string `env:"TEXTKIT_JIEBA_MODE" envDefault:"mix"`
//	}
//
//	func main() {
//		var cfg SegmenterConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 SegmenterConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 SegmenterConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently, so each package can declare its
// own configuration struct without coordinating with the others.
package config
