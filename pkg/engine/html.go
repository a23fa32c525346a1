package engine

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Bounds of randomHtml. maxHTMLBlocks caps the total number of block
// elements, which otherwise grows as width^depth.
const (
	maxHTMLDepth  = 10
	maxHTMLWidth  = 10
	maxHTMLBlocks = 1000
)

func init() {
	register("html", map[string]Formatter{
		"randomHtml": randomHTML,
	})
}

// randomHTML renders a small document whose body nests block elements up to
// maxDepth levels with at most maxWidth children each.
func randomHTML(e *Engine, a Args) (any, error) {
	maxDepth, err := a.Int(0, 4)
	if err != nil {
		return nil, err
	}
	maxWidth, err := a.Int(1, 4)
	if err != nil {
		return nil, err
	}
	if maxDepth < 1 || maxWidth < 1 {
		return nil, invalidArg("depth %d and width %d must be positive", maxDepth, maxWidth)
	}
	if maxDepth > maxHTMLDepth || maxWidth > maxHTMLWidth {
		return nil, invalidArg("depth %d and width %d must be at most %d and %d", maxDepth, maxWidth, maxHTMLDepth, maxHTMLWidth)
	}

	title, err := e.sentence(4, true)
	if err != nil {
		return nil, err
	}

	doc := element(atom.Html)
	head := element(atom.Head)
	titleNode := element(atom.Title)
	titleNode.AppendChild(textNode(title))
	head.AppendChild(titleNode)
	doc.AppendChild(head)

	body := element(atom.Body)
	budget := maxHTMLBlocks
	if err := e.fillHTML(body, maxDepth, maxWidth, &budget); err != nil {
		return nil, err
	}
	doc.AppendChild(body)

	var sb strings.Builder
	if err := html.Render(&sb, doc); err != nil {
		return nil, err
	}
	return sb.String(), nil
}

func (e *Engine) fillHTML(parent *html.Node, depth, width int, budget *int) error {
	children := 1 + e.rng.IntN(width)
	for range children {
		if *budget <= 0 {
			return nil
		}
		*budget--
		var (
			node *html.Node
			err  error
		)
		if depth <= 1 {
			node, err = e.leafHTML()
		} else {
			node = element(atom.Div)
			err = e.fillHTML(node, depth-1, width, budget)
		}
		if err != nil {
			return err
		}
		parent.AppendChild(node)
	}
	return nil
}

func (e *Engine) leafHTML() (*html.Node, error) {
	switch e.rng.IntN(5) {
	case 0:
		return e.listHTML()
	case 1:
		return e.tableHTML()
	case 2:
		return e.formHTML()
	case 3:
		s, err := e.sentence(6, true)
		if err != nil {
			return nil, err
		}
		h := element(atom.H1)
		h.AppendChild(textNode(s))
		return h, nil
	default:
		s, err := e.paragraph(3, true)
		if err != nil {
			return nil, err
		}
		p := element(atom.P)
		p.AppendChild(textNode(s))
		return p, nil
	}
}

func (e *Engine) listHTML() (*html.Node, error) {
	ul := element(atom.Ul)
	for range 1 + e.rng.IntN(5) {
		s, err := e.sentence(4, true)
		if err != nil {
			return nil, err
		}
		li := element(atom.Li)
		li.AppendChild(textNode(s))
		ul.AppendChild(li)
	}
	return ul, nil
}

func (e *Engine) tableHTML() (*html.Node, error) {
	rows, cols := 1+e.rng.IntN(5), 1+e.rng.IntN(4)
	table := element(atom.Table)

	head := element(atom.Thead)
	tr := element(atom.Tr)
	for range cols {
		w, err := e.word()
		if err != nil {
			return nil, err
		}
		th := element(atom.Th)
		th.AppendChild(textNode(w))
		tr.AppendChild(th)
	}
	head.AppendChild(tr)
	table.AppendChild(head)

	body := element(atom.Tbody)
	for range rows {
		tr := element(atom.Tr)
		for range cols {
			s, err := e.sentence(3, true)
			if err != nil {
				return nil, err
			}
			td := element(atom.Td)
			td.AppendChild(textNode(s))
			tr.AppendChild(td)
		}
		body.AppendChild(tr)
	}
	table.AppendChild(body)
	return table, nil
}

func (e *Engine) formHTML() (*html.Node, error) {
	name, err := e.word()
	if err != nil {
		return nil, err
	}
	form := element(atom.Form, html.Attribute{Key: "action", Val: "#"}, html.Attribute{Key: "method", Val: "POST"})

	label := element(atom.Label, html.Attribute{Key: "for", Val: name})
	label.AppendChild(textNode(name))
	form.AppendChild(label)
	form.AppendChild(element(atom.Input,
		html.Attribute{Key: "type", Val: "text"},
		html.Attribute{Key: "id", Val: name},
		html.Attribute{Key: "name", Val: name}))
	form.AppendChild(element(atom.Input,
		html.Attribute{Key: "type", Val: "submit"},
		html.Attribute{Key: "value", Val: "Submit"}))
	return form, nil
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
