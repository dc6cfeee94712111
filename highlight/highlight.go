// Package highlight 实现了代码块的轻量语法高亮。
//
// 高亮按行进行，依次识别字符串、数字、关键字和行尾注释，先识别到的优先。结果使用
// chroma 的 Token 表示，未识别的部分为 chroma.Text。
package highlight

import (
	"regexp"
	"sort"
	"strings"

	"github.com/alecthomas/chroma"
)

// Lookup 返回 language 对应的语言，language 大小写不敏感，可以是别名。不支持的语言返回 nil。
func Lookup(language string) *Language {
	key := foldLanguage(strings.TrimSpace(language))
	if "" == key {
		return nil
	}
	if lang, ok := languages[key]; ok {
		return lang
	}
	if name, ok := aliases[key]; ok {
		return languages[name]
	}
	if name := resolveAlias(strings.TrimSpace(language)); "" != name {
		return languages[name]
	}
	return nil
}

// Supported 判断 language 是否支持高亮。
func Supported(language string) bool {
	return nil != Lookup(language)
}

// Languages 返回所有支持的语言名称和内置别名，按字典序排列。
func Languages() (ret []string) {
	for name := range languages {
		ret = append(ret, name)
	}
	for alias := range aliases {
		ret = append(ret, alias)
	}
	sort.Strings(ret)
	return
}

// Highlight 对 code 进行高亮，language 不支持或者为空时返回 nil。
// 返回的所有 Token 值依次拼接后等于 code。
func Highlight(code, language string) (ret []chroma.Token) {
	lang := Lookup(language)
	if nil == lang {
		return
	}

	for i, line := range strings.Split(code, "\n") {
		if 0 < i {
			ret = appendToken(ret, chroma.Text, "\n")
		}
		pos := 0
		for _, s := range lang.lineSpans(line) {
			ret = appendToken(ret, chroma.Text, line[pos:s.start])
			ret = appendToken(ret, s.typ, line[s.start:s.end])
			pos = s.end
		}
		ret = appendToken(ret, chroma.Text, line[pos:])
	}
	return
}

func appendToken(tokens []chroma.Token, typ chroma.TokenType, value string) []chroma.Token {
	if "" == value {
		return tokens
	}
	if last := len(tokens) - 1; 0 <= last && chroma.Text == typ && chroma.Text == tokens[last].Type {
		tokens[last].Value += value
		return tokens
	}
	return append(tokens, chroma.Token{Type: typ, Value: value})
}

type span struct {
	start, end int
	typ        chroma.TokenType
}

type spans []span

func (ss spans) covers(start, end int) bool {
	for _, s := range ss {
		if start < s.end && s.start < end {
			return true
		}
	}
	return false
}

var numberRegexp = regexp.MustCompile(`\b(?:0[xX][0-9a-fA-F]+|\d+(?:\.\d+)?)\b`)

// lineSpans 返回 line 中按起始位置排序、互不重叠的高亮区间。
func (lang *Language) lineSpans(line string) spans {
	ss := stringSpans(line)
	ss = appendMatches(ss, line, numberRegexp, chroma.LiteralNumber)
	ss = appendMatches(ss, line, lang.keywordRegexp, chroma.Keyword)
	if "" != lang.LineComment {
		ss = lang.appendComment(ss, line)
	}
	sort.Slice(ss, func(i, j int) bool { return ss[i].start < ss[j].start })
	return ss
}

func appendMatches(ss spans, line string, re *regexp.Regexp, typ chroma.TokenType) spans {
	for _, loc := range re.FindAllStringIndex(line, -1) {
		if !ss.covers(loc[0], loc[1]) {
			ss = append(ss, span{loc[0], loc[1], typ})
		}
	}
	return ss
}

// appendComment 查找第一个未被已有区间覆盖的注释标记，注释延续到行尾并吞掉其后的区间。
func (lang *Language) appendComment(ss spans, line string) spans {
	marker := lang.LineComment
	for offset := 0; offset < len(line); {
		idx := strings.Index(line[offset:], marker)
		if 0 > idx {
			return ss
		}
		idx += offset
		if ss.covers(idx, idx+len(marker)) {
			offset = idx + len(marker)
			continue
		}

		kept := ss[:0]
		for _, s := range ss {
			if s.start < idx {
				kept = append(kept, s)
			}
		}
		return append(kept, span{idx, len(line), chroma.CommentSingle})
	}
	return ss
}

// stringSpans 返回 line 中由单引号、双引号或者反引号包裹的字符串区间，反斜杠转义的引号不会结束字符串。
// 未闭合的引号不产生区间。
func stringSpans(line string) (ret spans) {
	for i := 0; i < len(line); i++ {
		quote := line[i]
		if '"' != quote && '\'' != quote && '`' != quote {
			continue
		}
		for j := i + 1; j < len(line); j++ {
			if '\\' == line[j] {
				j++
				continue
			}
			if quote == line[j] {
				ret = append(ret, span{i, j + 1, chroma.LiteralString})
				i = j
				break
			}
		}
	}
	return
}
