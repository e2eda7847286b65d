// Package markdown turns source files into parsed documents. It discovers
// files under the content root, strips front matter, parses the body with
// goldmark, and recognises the article directive that flags a document for
// indexing and feed inclusion.
package markdown
