package main

import (
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pafthang/dmd"
	"github.com/pafthang/dmd/ast"
	"github.com/pafthang/dmd/parse"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app 保存各个子命令共享的状态。
type app struct {
	logger *logrus.Logger
	config *config
	engine *dmd.DMD

	configPath string
	envFile    string
	logLevel   string
	watch      bool
}

func newRootCmd(logger *logrus.Logger) *cobra.Command {
	a := &app{logger: logger}
	root := &cobra.Command{
		Use:           "dmd",
		Short:         "Discord flavored markdown tool",
		Version:       dmd.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			if a.config, err = loadConfig(a.configPath, a.envFile, os.LookupEnv); nil != err {
				return
			}
			if err = a.config.configureLogger(a.logger, a.logLevel); nil != err {
				return
			}
			a.engine, err = a.config.engine()
			return
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file")
	flags.StringVar(&a.envFile, "env-file", ".env", "env file, ignored when missing")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		a.newHTMLCmd(),
		a.newTextCmd(),
		a.newFormatCmd(),
		a.newTreeCmd(),
		a.newHighlightCmd(),
		a.newCSSCmd(),
		a.newPreviewCmd(),
	)
	return root
}

// input 读取参数指定的文件，没有参数或者参数为 - 时读取标准输入。
func (a *app) input(cmd *cobra.Command, args []string) (name string, data []byte, err error) {
	if 0 == len(args) || "-" == args[0] {
		name = "stdin"
		data, err = io.ReadAll(cmd.InOrStdin())
		return name, data, errors.Wrap(err, "could not read stdin")
	}

	name = args[0]
	if data, err = os.ReadFile(name); nil != err {
		return name, nil, errors.Wrapf(err, "could not read [%s]", name)
	}
	return
}

// parse 解析输入并记录统计信息。
func (a *app) parse(name string, data []byte) *parse.Tree {
	tree := a.engine.Parse(name, data)
	if a.logger.IsLevelEnabled(logrus.DebugLevel) {
		nodes := 0
		ast.Walk(tree.Root, func(n *ast.Node, entering bool) ast.WalkStatus {
			if entering {
				nodes++
			}
			return ast.WalkContinue
		})
		a.logger.WithFields(logrus.Fields{
			"input": name,
			"size":  humanize.Bytes(uint64(len(data))),
			"nodes": humanize.Comma(int64(nodes)),
		}).Debug("parsed")
	}
	return tree
}
