package pkg

import "go.uber.org/zap"

// NewLogger 按运行环境构造 zap logger
func NewLogger(env string) (*zap.Logger, error) {
	if env == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
