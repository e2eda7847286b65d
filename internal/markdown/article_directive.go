package markdown

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// directive fences look like
//
//	:::article 2020-01-15 10:30
//	:author: ana, bob
//	:category: news
//	nested markdown content
//	:::
//
// The positional argument and option values are captured verbatim; the
// aggregator validates them later.
const directiveFenceChar = ':'

var markerNames = map[string]struct{}{
	"article":  {},
	"post":     {},
	"blogpost": {},
}

type articleDirectiveParser struct{}

func newArticleDirectiveParser() parser.BlockParser {
	return &articleDirectiveParser{}
}

func (p *articleDirectiveParser) Trigger() []byte {
	return []byte{directiveFenceChar}
}

func (p *articleDirectiveParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, segment := reader.PeekLine()
	pos := pc.BlockOffset()
	if pos < 0 || line[pos] != directiveFenceChar {
		return nil, parser.NoChildren
	}

	i := pos
	for ; i < len(line) && line[i] == directiveFenceChar; i++ {
	}
	fenceLength := i - pos
	if fenceLength < 3 {
		return nil, parser.NoChildren
	}

	name, arg := splitDirectiveHeader(string(line[i:]))
	if _, ok := markerNames[name]; !ok {
		return nil, parser.NoChildren
	}

	node := NewArticleNode(name)
	node.Date = arg
	node.fenceIndent = pos
	node.fenceLength = fenceLength

	reader.Advance(segment.Len() - 1)
	return node, parser.HasChildren
}

func (p *articleDirectiveParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	article := node.(*ArticleNode)
	line, segment := reader.PeekLine()

	if util.IsBlank(line) {
		article.optionsPhase = false
		return parser.Continue | parser.HasChildren
	}

	w, pos := util.IndentWidth(line, reader.LineOffset())
	if w < 4 {
		i := pos
		for ; i < len(line) && line[i] == directiveFenceChar; i++ {
		}
		length := i - pos
		if length >= article.fenceLength && util.IsBlank(line[i:]) {
			newline := 1
			if line[len(line)-1] != '\n' {
				newline = 0
			}
			reader.Advance(segment.Stop - segment.Start - newline + segment.Padding)
			return parser.Close
		}
	}

	if article.optionsPhase {
		if key, value, ok := splitOptionLine(line, pos); ok && applyOption(article, key, value) {
			reader.Advance(segment.Len() - 1)
			return parser.Continue | parser.HasChildren
		}
		article.optionsPhase = false
	}

	return parser.Continue | parser.HasChildren
}

func (p *articleDirectiveParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {
	node.(*ArticleNode).optionsPhase = false
}

func (p *articleDirectiveParser) CanInterruptParagraph() bool {
	return true
}

func (p *articleDirectiveParser) CanAcceptIndentedLine() bool {
	return false
}

// splitDirectiveHeader separates the marker name from the raw positional
// argument on the opening fence line.
func splitDirectiveHeader(rest string) (string, string) {
	rest = strings.TrimSpace(strings.TrimSuffix(rest, "\n"))
	if rest == "" {
		return "", ""
	}
	name := rest
	arg := ""
	if idx := strings.IndexAny(rest, " \t"); idx >= 0 {
		name = rest[:idx]
		arg = strings.TrimSpace(rest[idx+1:])
	}
	return strings.ToLower(name), arg
}

// splitOptionLine recognises `:key: value` lines that immediately follow the
// opening fence. Anything else ends the option phase and is parsed as content.
func splitOptionLine(line []byte, pos int) (string, string, bool) {
	if pos >= len(line) || line[pos] != directiveFenceChar {
		return "", "", false
	}
	rest := strings.TrimSuffix(string(line[pos+1:]), "\n")
	idx := strings.IndexByte(rest, ':')
	if idx <= 0 {
		return "", "", false
	}
	key := rest[:idx]
	for _, r := range key {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return "", "", false
		}
	}
	return strings.ToLower(key), strings.TrimSpace(rest[idx+1:]), true
}

func applyOption(node *ArticleNode, key, value string) bool {
	switch key {
	case "author":
		node.Authors = splitList(value)
	case "category":
		node.Categories = splitList(value)
	case "language":
		node.Languages = splitList(value)
	case "tags":
		node.Tags = splitList(value)
	case "image":
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			node.Image = &n
		}
	case "noindex":
		node.NoIndex = true
	default:
		return false
	}
	return true
}

// splitList splits a comma-separated option value, trimming whitespace and
// dropping empty items.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
