package main

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// watchFile 监听文件 path，文件被写入或者重新创建（编辑器保存时常见）后调用 run，直到 ctx 结束。
// 监听的是文件所在目录，这样文件被替换后仍能收到事件。
func (a *app) watchFile(ctx context.Context, path string, run func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return errors.Wrap(err, "could not create watcher")
	}
	defer watcher.Close()

	path = filepath.Clean(path)
	if err = watcher.Add(filepath.Dir(path)); nil != err {
		return errors.Wrapf(err, "could not watch [%s]", path)
	}
	a.logger.WithField("file", path).Info("watching for changes")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path || 0 == event.Op&(fsnotify.Write|fsnotify.Create) {
				continue
			}
			a.logger.WithField("op", event.Op.String()).Debug("file changed")
			if err = run(); nil != err {
				a.logger.WithError(err).Warn("render failed")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.WithError(err).Warn("watch error")
		}
	}
}
