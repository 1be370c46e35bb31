package main

import (
	"go.uber.org/zap"

	"Go_Board/internal/config"
	"Go_Board/internal/handler"
	"Go_Board/internal/pkg"
	"Go_Board/internal/repository/mysql"
	"Go_Board/internal/router"
	"Go_Board/internal/service"
)

func main() {
	cfg := config.Load()

	logger, err := pkg.NewLogger(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := mysql.InitDB(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		logger.Fatal("init db failed", zap.Error(err))
	}

	// 显式装配：仓储 -> 服务 -> 接口
	postRepo := &mysql.PostRepository{DB: db}
	postSvc := service.NewPostService(postRepo)
	postHandler := handler.NewPostHandler(postSvc, logger)

	r := router.InitRouter(postHandler)

	logger.Info("server starting", zap.String("port", cfg.Port), zap.String("db", cfg.DBDriver))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
