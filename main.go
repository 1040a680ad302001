package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"SecondBrainGo/config"
	"SecondBrainGo/middleware"
	"SecondBrainGo/routes"
	"SecondBrainGo/services"
	"SecondBrainGo/store"
)

func main() {
	// 初始化日志
	if err := config.InitLogger(); err != nil {
		log.Fatalf("无法初始化日志: %v", err)
	}
	defer config.Logger.Sync()

	// 加载配置
	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("无法加载配置: %v", err)
		return
	}

	// 初始化记忆文档存储
	st, err := store.New(conf.MemoryFile)
	if err != nil {
		log.Fatalf("无法初始化记忆文档: %v", err)
		return
	}

	// 初始化Groq客户端，没有API Key时走兜底回复
	groqClient, err := services.NewGroqClient(conf.GroqAPIKey, conf.GroqAPIEndpoint)
	if err != nil {
		log.Fatalf("无法初始化Groq客户端: %v", err)
	}
	if !groqClient.Available() {
		config.Logger.Warnw("未配置GROQ_API_KEY，对话接口将使用兜底回复")
	}

	// 设置Gin模式
	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建Gin引擎
	r := gin.New()

	// 设置中间件
	middleware.SetupMiddleware(r)

	// 注册路由
	routes.RegisterRoutes(r, st, groqClient)

	// 创建HTTP服务器
	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	// 在goroutine中启动服务器
	go func() {
		config.Logger.Infow("启动服务器", "port", conf.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("服务器启动失败: %v", err)
		}
	}()

	// 等待中断信号以实现优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	config.Logger.Infow("正在关闭服务器")

	// 创建超时上下文
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 优雅关闭服务器
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务器关闭失败: %v", err)
	}

	config.Logger.Infow("服务器已关闭")
}
