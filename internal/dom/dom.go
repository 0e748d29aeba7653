// Package dom builds and edits HTML element trees.
//
// Nodes are golang.org/x/net/html nodes, so text set through Text or an
// attribute value is escaped when the tree is rendered.
package dom

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attrs maps attribute names to values. Keys are emitted in sorted order.
type Attrs map[string]string

// El creates an element with the given attributes and children. Nil
// children are skipped.
func El(tag string, attrs Attrs, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		n.Attr = append(n.Attr, html.Attribute{Key: k, Val: attrs[k]})
	}

	for _, c := range children {
		if c == nil {
			continue
		}
		n.AppendChild(c)
	}
	return n
}

// Text creates a text node.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Raw parses a markup fragment in the context of a <div>. It is only for
// trusted markup such as icon SVGs or already-sanitized HTML.
func Raw(fragment string) ([]*html.Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		return nil, fmt.Errorf("parsing fragment: %w", err)
	}
	return nodes, nil
}

// MustRaw is Raw for compile-time constant markup.
func MustRaw(fragment string) []*html.Node {
	nodes, err := Raw(fragment)
	if err != nil {
		panic(err)
	}
	return nodes
}

// Render serializes a node and its subtree.
func Render(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderAll serializes a sequence of sibling nodes.
func RenderAll(nodes []*html.Node) (string, error) {
	var buf bytes.Buffer
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// Parse reads a full HTML document.
func Parse(doc []byte) (*html.Node, error) {
	root, err := html.Parse(bytes.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return root, nil
}

// Find returns the first node in depth-first order for which match is true.
func Find(root *html.Node, match func(*html.Node) bool) *html.Node {
	if root == nil {
		return nil
	}
	if match(root) {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if found := Find(c, match); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node for which match is true, in document order.
func FindAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	if root != nil {
		walk(root)
	}
	return out
}

// ByID finds the element with the given id, or nil.
func ByID(root *html.Node, id string) *html.Node {
	return Find(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && Attr(n, "id") == id
	})
}

// ByClass finds the first element carrying the given class, or nil.
func ByClass(root *html.Node, class string) *html.Node {
	return Find(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && HasClass(n, class)
	})
}

// Attr returns the value of an attribute, or "" when absent.
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// SetAttr sets or replaces an attribute.
func SetAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// HasClass reports whether the element's class list contains class.
func HasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(Attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass appends class to the element's class list if missing.
func AddClass(n *html.Node, class string) {
	if HasClass(n, class) {
		return
	}
	existing := strings.TrimSpace(Attr(n, "class"))
	if existing == "" {
		SetAttr(n, "class", class)
		return
	}
	SetAttr(n, "class", existing+" "+class)
}

// Clear removes all children of n.
func Clear(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
}

// Replace clears n and appends children in order.
func Replace(n *html.Node, children ...*html.Node) {
	Clear(n)
	for _, c := range children {
		if c != nil {
			n.AppendChild(c)
		}
	}
}

// Prepend inserts child as the first child of n.
func Prepend(n, child *html.Node) {
	if n.FirstChild == nil {
		n.AppendChild(child)
		return
	}
	n.InsertBefore(child, n.FirstChild)
}

// TextContent concatenates all descendant text.
func TextContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
