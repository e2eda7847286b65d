package markdown

import (
	"github.com/yuin/goldmark/ast"
)

// KindArticle identifies the invisible marker node produced by the article
// directive. The node carries indexing metadata and contributes no output.
var KindArticle = ast.NewNodeKind("Article")

// ArticleNode holds article metadata in the document tree. Values are captured
// verbatim from the directive; validation is deferred to the aggregator.
type ArticleNode struct {
	ast.BaseBlock

	// Marker is the directive name that produced the node (article, post, blogpost).
	Marker string
	// Date is the raw positional argument, unparsed.
	Date string

	Authors    []string
	Categories []string
	Languages  []string
	Tags       []string
	Image      *int
	NoIndex    bool

	fenceIndent  int
	fenceLength  int
	optionsPhase bool
}

// NewArticleNode returns an empty marker node for the given directive name.
func NewArticleNode(marker string) *ArticleNode {
	return &ArticleNode{
		Marker:       marker,
		optionsPhase: true,
	}
}

// Kind implements ast.Node.
func (n *ArticleNode) Kind() ast.NodeKind {
	return KindArticle
}

// Dump implements ast.Node.
func (n *ArticleNode) Dump(source []byte, level int) {
	m := map[string]string{
		"Marker": n.Marker,
		"Date":   n.Date,
	}
	ast.DumpHelper(n, source, level, m, nil)
}

// Attributes returns the marker metadata keyed the way the aggregator copies
// it into the per-document metadata store. Slices are copied so callers can
// mutate the result safely.
func (n *ArticleNode) Attributes() map[string]any {
	attrs := map[string]any{
		"date":     n.Date,
		"author":   append([]string(nil), n.Authors...),
		"category": append([]string(nil), n.Categories...),
		"language": append([]string(nil), n.Languages...),
		"tags":     append([]string(nil), n.Tags...),
		"noindex":  n.NoIndex,
	}
	if n.Image != nil {
		attrs["image"] = *n.Image
	}
	return attrs
}

// Unwrap removes node from its tree, promoting its children into the parent
// at the node's position. Document order of the children is preserved.
func Unwrap(node ast.Node) {
	parent := node.Parent()
	if parent == nil {
		return
	}

	var children []ast.Node
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		children = append(children, child)
	}
	for _, child := range children {
		node.RemoveChild(node, child)
		parent.InsertBefore(parent, node, child)
	}
	parent.RemoveChild(parent, node)
}
