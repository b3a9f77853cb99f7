package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/qwikyankit/qwiky-backend/internal/app/config"
	"github.com/qwikyankit/qwiky-backend/internal/app/consumer"
	"github.com/qwikyankit/qwiky-backend/internal/app/infra/mq/lmstfy"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/logger"
)

// 独立运行的通知消费者，与 apiserver 内嵌的消费循环二选一部署
func main() {
	// 1. 加载配置
	cfg, err := config.LoadDefault()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. 初始化日志
	appLogger, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer appLogger.Sync()

	// 3. 初始化 Lmstfy
	lmstfyClient := lmstfy.NewClient(cfg.Lmstfy.Host, cfg.Lmstfy.Namespace, cfg.Lmstfy.Token)

	// 4. 初始化 Consumer
	notificationConsumer := consumer.NewNotificationConsumer(
		lmstfyClient,
		&consumer.Config{
			QueueName:    cfg.Lmstfy.NotifyQueue,
			Timeout:      cfg.Lmstfy.Timeout,
			TTR:          cfg.Lmstfy.TTR,
			PollInterval: cfg.Lmstfy.PollBackoff,
		},
		appLogger,
	)

	// 5. 启动消费循环（优雅退出）
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- notificationConsumer.Start(ctx)
	}()

	select {
	case <-sigChan:
		appLogger.Infof(ctx, "received shutdown signal, stopping consumer...")
		notificationConsumer.Stop()
		cancel()
		time.Sleep(1 * time.Second) // 等待消费者处理完当前消息
	case err := <-errChan:
		if err != nil && err != context.Canceled {
			appLogger.Errorf(ctx, "consumer stopped with error: %v", err)
			os.Exit(1)
		}
	}
}
