package markdown

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// articleExtension wires the article directive parser and its no-output
// renderer into a goldmark instance. The engine installs it unconditionally;
// documents without the marker are unaffected.
type articleExtension struct{}

// ArticleExtension is the goldmark extension enabling :::article fences.
var ArticleExtension goldmark.Extender = &articleExtension{}

func (e *articleExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithBlockParsers(
		util.Prioritized(newArticleDirectiveParser(), 100),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(newArticleNodeRenderer(), 500),
	))
}

// articleNodeRenderer renders marker nodes as nothing while letting any
// children render normally. A marker that survives until render time still
// leaves no trace in the output.
type articleNodeRenderer struct{}

func newArticleNodeRenderer() renderer.NodeRenderer {
	return &articleNodeRenderer{}
}

func (r *articleNodeRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindArticle, r.renderArticle)
}

func (r *articleNodeRenderer) renderArticle(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	return ast.WalkContinue, nil
}
