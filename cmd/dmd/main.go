// dmd 是 Discord 风格 Markdown 的命令行工具，支持渲染 HTML、纯文本、格式化、语法树和消息预览。
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if err := newRootCmd(logger).ExecuteContext(ctx); nil != err {
		logger.WithError(err).Error("dmd failed")
		stop()
		os.Exit(1)
	}
}
