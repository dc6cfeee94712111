package highlight

import (
	"regexp"
	"strings"
)

// Language 描述了一门支持高亮的语言。
type Language struct {
	Name        string   // 规范名称（小写）
	Keywords    []string // 关键字
	LineComment string   // 行注释标记，空表示无行注释

	keywordRegexp *regexp.Regexp
}

func newLanguage(name, lineComment string, keywords ...string) *Language {
	quoted := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		quoted = append(quoted, regexp.QuoteMeta(kw))
	}
	return &Language{
		Name:          name,
		Keywords:      keywords,
		LineComment:   lineComment,
		keywordRegexp: regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`),
	}
}

const (
	cLikeComment      = "//"
	pythonLikeComment = "#"
)

// languages 以规范名称为键，构建后只读。
var languages = func() map[string]*Language {
	ret := map[string]*Language{}
	for _, lang := range []*Language{
		newLanguage("javascript", cLikeComment,
			"async", "await", "break", "case", "catch", "class", "const", "continue", "default", "delete",
			"do", "else", "export", "extends", "false", "finally", "for", "from", "function", "if", "import",
			"in", "instanceof", "let", "new", "null", "of", "return", "static", "super", "switch", "this",
			"throw", "true", "try", "typeof", "undefined", "var", "void", "while", "yield"),
		newLanguage("typescript", cLikeComment,
			"abstract", "any", "as", "async", "await", "boolean", "break", "case", "catch", "class", "const",
			"continue", "declare", "default", "do", "else", "enum", "export", "extends", "false", "finally",
			"for", "from", "function", "if", "implements", "import", "in", "interface", "let", "namespace",
			"never", "new", "null", "number", "private", "protected", "public", "readonly", "return",
			"string", "super", "switch", "this", "throw", "true", "try", "type", "typeof", "undefined",
			"unknown", "var", "void", "while"),
		newLanguage("python", pythonLikeComment,
			"and", "as", "assert", "async", "await", "break", "class", "continue", "def", "del", "elif",
			"else", "except", "False", "finally", "for", "from", "global", "if", "import", "in", "is",
			"lambda", "None", "nonlocal", "not", "or", "pass", "raise", "return", "True", "try", "while",
			"with", "yield"),
		newLanguage("go", cLikeComment,
			"break", "case", "chan", "const", "continue", "default", "defer", "else", "fallthrough",
			"false", "for", "func", "go", "goto", "if", "import", "interface", "iota", "map", "nil",
			"package", "range", "return", "select", "struct", "switch", "true", "type", "var"),
		newLanguage("rust", cLikeComment,
			"as", "async", "await", "break", "const", "continue", "crate", "dyn", "else", "enum", "extern",
			"false", "fn", "for", "if", "impl", "in", "let", "loop", "match", "mod", "move", "mut", "pub",
			"ref", "return", "self", "Self", "static", "struct", "super", "trait", "true", "type", "unsafe",
			"use", "where", "while"),
		newLanguage("java", cLikeComment,
			"abstract", "boolean", "break", "byte", "case", "catch", "char", "class", "const", "continue",
			"default", "do", "double", "else", "enum", "extends", "false", "final", "finally", "float",
			"for", "if", "implements", "import", "instanceof", "int", "interface", "long", "new", "null",
			"package", "private", "protected", "public", "return", "short", "static", "super", "switch",
			"this", "throw", "throws", "true", "try", "void", "while"),
		newLanguage("c", cLikeComment,
			"auto", "break", "case", "char", "const", "continue", "default", "do", "double", "else", "enum",
			"extern", "float", "for", "goto", "if", "int", "long", "register", "return", "short", "signed",
			"sizeof", "static", "struct", "switch", "typedef", "union", "unsigned", "void", "volatile",
			"while"),
		newLanguage("c++", cLikeComment,
			"auto", "bool", "break", "case", "catch", "char", "class", "const", "constexpr", "continue",
			"default", "delete", "do", "double", "else", "enum", "explicit", "false", "float", "for",
			"friend", "if", "inline", "int", "long", "namespace", "new", "nullptr", "operator", "private",
			"protected", "public", "return", "short", "sizeof", "static", "struct", "switch", "template",
			"this", "throw", "true", "try", "typedef", "typename", "using", "virtual", "void", "while"),
		newLanguage("c#", cLikeComment,
			"abstract", "as", "async", "await", "base", "bool", "break", "case", "catch", "class", "const",
			"continue", "default", "do", "double", "else", "enum", "false", "finally", "float", "for",
			"foreach", "if", "in", "int", "interface", "internal", "is", "namespace", "new", "null",
			"override", "private", "protected", "public", "readonly", "return", "static", "string",
			"struct", "switch", "this", "throw", "true", "try", "using", "var", "virtual", "void", "while"),
		newLanguage("bash", pythonLikeComment,
			"case", "do", "done", "elif", "else", "esac", "export", "fi", "for", "function", "if", "in",
			"local", "return", "then", "until", "while"),
		newLanguage("ruby", pythonLikeComment,
			"begin", "break", "case", "class", "def", "do", "else", "elsif", "end", "ensure", "false",
			"for", "if", "in", "module", "next", "nil", "require", "rescue", "return", "self", "then",
			"true", "unless", "until", "when", "while", "yield"),
		newLanguage("json", "", "true", "false", "null"),
	} {
		ret[lang.Name] = lang
	}
	return ret
}()

// aliases 列出常见的简写，其他别名交给 chroma 解析。
var aliases = map[string]string{
	"js":     "javascript",
	"jsx":    "javascript",
	"ts":     "typescript",
	"tsx":    "typescript",
	"py":     "python",
	"golang": "go",
	"rs":     "rust",
	"cpp":    "c++",
	"cs":     "c#",
	"csharp": "c#",
	"sh":     "bash",
	"shell":  "bash",
	"rb":     "ruby",
}
