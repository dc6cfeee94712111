package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/formatters"
	"github.com/alecthomas/chroma/styles"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/k0kubun/pp"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mattn/go-isatty"
	"github.com/pafthang/dmd/ast"
	"github.com/pafthang/dmd/embed"
	"github.com/pafthang/dmd/highlight"
	"github.com/pafthang/dmd/parse"
	"github.com/pafthang/dmd/render"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// renderFunc 将语法树渲染为输出内容。
type renderFunc func(tree *parse.Tree) []byte

// newRenderCmd 创建一个读取 Markdown、渲染后写到标准输出的子命令，支持 --watch 监听文件变化后重新渲染。
func (a *app) newRenderCmd(use, short string, renderTree renderFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " [file]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			run := func() error {
				name, data, err := a.input(cmd, args)
				if nil != err {
					return err
				}
				output := renderTree(a.parse(name, data))
				if _, err = cmd.OutOrStdout().Write(output); nil != err {
					return errors.Wrap(err, "could not write output")
				}
				if 0 < len(output) && '\n' != output[len(output)-1] {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				return nil
			}

			if err := run(); nil != err {
				return err
			}
			if !a.watch {
				return nil
			}
			if 0 == len(args) || "-" == args[0] {
				return errors.New("--watch requires a file argument")
			}
			return a.watchFile(cmd.Context(), args[0], run)
		},
	}
	cmd.Flags().BoolVarP(&a.watch, "watch", "w", false, "re-render when the file changes")
	return cmd
}

func (a *app) newHTMLCmd() *cobra.Command {
	return a.newRenderCmd("html", "Render markdown to HTML", func(tree *parse.Tree) []byte {
		return []byte(a.engine.Tree2HTML(tree, a.engine.RenderOptions))
	})
}

func (a *app) newTextCmd() *cobra.Command {
	return a.newRenderCmd("text", "Render markdown to display text", func(tree *parse.Tree) []byte {
		return render.NewTextRenderer(tree, a.engine.RenderOptions).Render()
	})
}

func (a *app) newFormatCmd() *cobra.Command {
	return a.newRenderCmd("format", "Re-serialize markdown in canonical form", func(tree *parse.Tree) []byte {
		return render.NewFormatRenderer(tree, a.engine.RenderOptions).Render()
	})
}

func (a *app) newTreeCmd() *cobra.Command {
	var prettyPrint, asJSON bool
	cmd := a.newRenderCmd("tree", "Print the syntax tree", func(tree *parse.Tree) []byte {
		switch {
		case asJSON:
			return render.NewJSONRenderer(tree, a.engine.RenderOptions).Render()
		case prettyPrint:
			pp.ColoringEnabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
			return []byte(pp.Sprint(render.NewJSONNode(tree.Root, a.engine.RenderOptions)))
		default:
			return []byte(ast.Sprint(tree.Root))
		}
	})
	cmd.Flags().BoolVar(&prettyPrint, "pp", false, "pretty print the tree")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the tree as JSON")
	return cmd
}

func (a *app) newHighlightCmd() *cobra.Command {
	var language, format string
	cmd := &cobra.Command{
		Use:   "highlight [file]",
		Short: "Highlight source code",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !highlight.Supported(language) {
				return unsupportedLanguage(language)
			}
			_, data, err := a.input(cmd, args)
			if nil != err {
				return err
			}
			tokens := a.engine.Highlight(string(data), language)
			return writeTokens(cmd.OutOrStdout(), tokens, format, a.engine.RenderOptions.CodeSyntaxHighlightStyleName)
		},
	}
	cmd.Flags().StringVarP(&language, "lang", "l", "", "language of the code")
	cmd.Flags().StringVar(&format, "format", "auto", "output format (auto, terminal, tokens)")
	return cmd
}

// unsupportedLanguage 返回不支持语言的错误，并附上名称相近的语言作为建议。
func unsupportedLanguage(language string) error {
	ranks := fuzzy.RankFindFold(language, highlight.Languages())
	sort.Sort(ranks)
	var suggestions []string
	for i := 0; i < len(ranks) && i < 3; i++ {
		suggestions = append(suggestions, ranks[i].Target)
	}
	if 0 == len(suggestions) {
		return errors.Errorf("unsupported language [%s]", language)
	}
	return errors.Errorf("unsupported language [%s], did you mean %s?", language, strings.Join(suggestions, ", "))
}

func writeTokens(w io.Writer, tokens []chroma.Token, format, styleName string) error {
	if "auto" == format {
		format = "tokens"
		if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			format = "terminal"
		}
	}

	switch format {
	case "terminal":
		err := formatters.Get("terminal256").Format(w, styles.Get(styleName), chroma.Literator(tokens...))
		if nil == err {
			_, err = fmt.Fprintln(w)
		}
		return errors.Wrap(err, "could not format tokens")
	case "tokens":
		for _, token := range tokens {
			if _, err := fmt.Fprintf(w, "%s\t%q\n", token.Type, token.Value); nil != err {
				return errors.Wrap(err, "could not write tokens")
			}
		}
		return nil
	default:
		return errors.Errorf("unknown format [%s]", format)
	}
}

func (a *app) newCSSCmd() *cobra.Command {
	var style string
	cmd := &cobra.Command{
		Use:   "css",
		Short: "Print the code block stylesheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if "" != style {
				a.engine.SetCodeSyntaxHighlightStyleName(style)
			}
			css, err := render.CodeBlockCSS(a.engine.RenderOptions)
			if nil != err {
				return errors.Wrap(err, "could not generate css")
			}
			_, err = io.WriteString(cmd.OutOrStdout(), css)
			return err
		},
	}
	cmd.Flags().StringVar(&style, "style", "", "chroma style name")
	return cmd
}

// message 描述了 Webhook 消息中参与预览的部分。
type message struct {
	Content string          `json:"content"`
	Embeds  []discord.Embed `json:"embeds"`
}

func (a *app) newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [file]",
		Short: "Render a webhook message JSON payload to HTML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, data, err := a.input(cmd, args)
			if nil != err {
				return err
			}
			msg := &message{}
			if err = json.Unmarshal(data, msg); nil != err {
				return errors.Wrapf(err, "could not parse message [%s]", name)
			}
			preview, err := embed.NewPreview(msg.Content, msg.Embeds, a.engine.ParseOptions)
			if nil != err {
				return err
			}
			a.logger.WithField("embeds", len(preview.Embeds)).Debug("previewed message")
			_, err = io.WriteString(cmd.OutOrStdout(), preview.HTML(a.engine.RenderOptions))
			return err
		},
	}
}
