package main

import (
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pafthang/dmd"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// config 描述了命令行的配置，依次从 YAML 文件、.env 文件和 DMD_ 前缀的环境变量加载，后者覆盖前者。
type config struct {
	MaxNestingDepth     int    `yaml:"max_nesting_depth"`
	CodeSyntaxHighlight *bool  `yaml:"code_syntax_highlight"`
	InlineStyle         bool   `yaml:"inline_style"`
	Style               string `yaml:"style"`
	ClassPrefix         string `yaml:"class_prefix"`
	Timezone            string `yaml:"timezone"`
	MediaLinkPreview    *bool  `yaml:"media_link_preview"`
	Log                 struct {
		Level string `yaml:"level"`
		JSON  bool   `yaml:"json"`
	} `yaml:"log"`
}

// loadConfig 加载配置。path 为空时不读取 YAML 文件；envFile 不存在时忽略。
func loadConfig(path, envFile string, environ func(string) (string, bool)) (ret *config, err error) {
	ret = &config{}
	if "" != path {
		var data []byte
		if data, err = os.ReadFile(path); nil != err {
			return nil, errors.Wrap(err, "could not open config")
		}
		if err = yaml.Unmarshal(data, ret); nil != err {
			return nil, errors.Wrapf(err, "could not parse config [%s]", path)
		}
	}

	env := map[string]string{}
	if "" != envFile {
		if env, err = godotenv.Read(envFile); nil != err {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, errors.Wrapf(err, "could not parse env file [%s]", envFile)
			}
			env, err = map[string]string{}, nil
		}
	}
	lookup := func(key string) (string, bool) {
		if value, ok := environ(key); ok {
			return value, true
		}
		value, ok := env[key]
		return value, ok
	}
	if err = ret.applyEnv(lookup); nil != err {
		return nil, err
	}
	return
}

func (c *config) applyEnv(lookup func(string) (string, bool)) (err error) {
	if value, ok := lookup("DMD_MAX_NESTING_DEPTH"); ok {
		if c.MaxNestingDepth, err = strconv.Atoi(value); nil != err {
			return errors.Wrap(err, "invalid DMD_MAX_NESTING_DEPTH")
		}
	}
	if value, ok := lookup("DMD_CODE_SYNTAX_HIGHLIGHT"); ok {
		var b bool
		if b, err = strconv.ParseBool(value); nil != err {
			return errors.Wrap(err, "invalid DMD_CODE_SYNTAX_HIGHLIGHT")
		}
		c.CodeSyntaxHighlight = &b
	}
	if value, ok := lookup("DMD_MEDIA_LINK_PREVIEW"); ok {
		var b bool
		if b, err = strconv.ParseBool(value); nil != err {
			return errors.Wrap(err, "invalid DMD_MEDIA_LINK_PREVIEW")
		}
		c.MediaLinkPreview = &b
	}
	if value, ok := lookup("DMD_STYLE"); ok {
		c.Style = value
	}
	if value, ok := lookup("DMD_TIMEZONE"); ok {
		c.Timezone = value
	}
	if value, ok := lookup("DMD_LOG_LEVEL"); ok {
		c.Log.Level = value
	}
	if value, ok := lookup("DMD_LOG_JSON"); ok {
		if c.Log.JSON, err = strconv.ParseBool(value); nil != err {
			return errors.Wrap(err, "invalid DMD_LOG_JSON")
		}
	}
	return
}

// engine 按配置创建 DMD 引擎。
func (c *config) engine() (ret *dmd.DMD, err error) {
	ret = dmd.New()
	if 0 < c.MaxNestingDepth {
		ret.SetMaxNestingDepth(c.MaxNestingDepth)
	}
	if nil != c.CodeSyntaxHighlight {
		ret.SetCodeSyntaxHighlight(*c.CodeSyntaxHighlight)
	}
	ret.SetCodeSyntaxHighlightInlineStyle(c.InlineStyle)
	if "" != c.Style {
		ret.SetCodeSyntaxHighlightStyleName(c.Style)
	}
	if "" != c.ClassPrefix {
		ret.SetCodeSyntaxHighlightClassPrefix(c.ClassPrefix)
	}
	if nil != c.MediaLinkPreview {
		ret.SetMediaLinkPreview(*c.MediaLinkPreview)
	}
	if "" != c.Timezone {
		var location *time.Location
		if location, err = time.LoadLocation(c.Timezone); nil != err {
			return nil, errors.Wrapf(err, "invalid timezone [%s]", c.Timezone)
		}
		ret.SetTimestampLocation(location)
	}
	return
}

// configureLogger 按配置设置日志级别和格式，level 非空时覆盖配置中的级别。
func (c *config) configureLogger(logger *logrus.Logger, level string) error {
	if "" == level {
		level = c.Log.Level
	}
	if "" != level {
		parsed, err := logrus.ParseLevel(level)
		if nil != err {
			return errors.Wrap(err, "invalid log level")
		}
		logger.SetLevel(parsed)
	}
	if c.Log.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}
