package pretty

import (
	"fmt"
	"io"
	"strings"

	"github.com/yaklabco/syntree/pkg/syntree"
)

const (
	indentStep     = 2
	maxLeafText    = 40
	errorKindLabel = "ERROR"
)

// TreeRenderer renders a parse tree as an indented, optionally styled
// outline, one node per line.
type TreeRenderer struct {
	styles      *Styles
	namedOnly   bool
	showExtents bool
	source      []byte
}

// TreeOptions control what the renderer includes.
type TreeOptions struct {
	// NamedOnly hides anonymous syntax nodes such as punctuation.
	NamedOnly bool

	// ShowExtents appends each node's byte extent.
	ShowExtents bool

	// Source, when non-nil, lets the renderer show leaf text snippets.
	Source []byte
}

// NewTreeRenderer creates a renderer with the given styles and options.
func NewTreeRenderer(styles *Styles, opts TreeOptions) *TreeRenderer {
	return &TreeRenderer{
		styles:      styles,
		namedOnly:   opts.NamedOnly,
		showExtents: opts.ShowExtents,
		source:      opts.Source,
	}
}

// Render writes the outline for the subtree rooted at root.
func (r *TreeRenderer) Render(w io.Writer, root syntree.Node) error {
	return r.renderNode(w, root, "", 0)
}

func (r *TreeRenderer) renderNode(w io.Writer, node syntree.Node, field string, depth int) error {
	if node.IsNull() {
		return nil
	}
	if r.namedOnly && !node.IsNamed() && depth > 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w, r.formatLine(node, field, depth)); err != nil {
		return err
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		childField := node.FieldNameForChild(uint32(i))
		if err := r.renderNode(w, node.Child(i), childField, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (r *TreeRenderer) formatLine(node syntree.Node, field string, depth int) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", depth*indentStep))

	if field != "" {
		sb.WriteString(r.styles.Field.Render(field + ":"))
		sb.WriteString(" ")
	}

	sb.WriteString(r.kindLabel(node))

	if r.showExtents {
		ext := node.ByteExtent()
		sb.WriteString(" ")
		sb.WriteString(r.styles.Extent.Render(fmt.Sprintf("[%d, %d)", ext.Start, ext.End)))
	}

	if snippet := r.leafSnippet(node); snippet != "" {
		sb.WriteString(" ")
		sb.WriteString(r.styles.Dim.Render(snippet))
	}

	return sb.String()
}

func (r *TreeRenderer) kindLabel(node syntree.Node) string {
	kind := node.Kind()
	switch {
	case node.IsError():
		return r.styles.ErrorNode.Render(errorKindLabel)
	case node.IsMissing():
		return r.styles.Missing.Render("MISSING " + kind)
	case node.IsNamed():
		return r.styles.Kind.Render(kind)
	default:
		return r.styles.Anonymous.Render(fmt.Sprintf("%q", kind))
	}
}

// leafSnippet returns a truncated source excerpt for leaf nodes, or "".
func (r *TreeRenderer) leafSnippet(node syntree.Node) string {
	if r.source == nil || node.ChildCount() > 0 || !node.IsNamed() {
		return ""
	}
	text := string(node.Text(r.source))
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "\n", "\\n")
	return fmt.Sprintf("%q", truncate(text, maxLeafText))
}

// truncate shortens s to at most max runes, marking the cut with an
// ellipsis. Cutting on rune boundaries keeps multibyte text valid.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
