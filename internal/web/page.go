package web

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"slidedeck/internal/render"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

//go:embed static/deck.css
var deckCSS string

//go:embed static/deck.js
var deckJS string

// PageData is what the document shell needs besides the deck tree.
type PageData struct {
	Language    string
	Title       string
	Description string
	// Keys the page forwards to the server, and the subset whose default
	// (scrolling) it prevents locally.
	Keys       []string
	Suppressed []string
}

// RenderPage builds the full HTML document around the initial deck shell.
func RenderPage(data PageData, shell *render.Node) ([]byte, error) {
	keys, err := json.Marshal(data.Keys)
	if err != nil {
		return nil, fmt.Errorf("encode keys: %w", err)
	}
	suppressed, err := json.Marshal(data.Suppressed)
	if err != nil {
		return nil, fmt.Errorf("encode suppressed keys: %w", err)
	}

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, attr("charset", "utf-8")))
	head.AppendChild(element(atom.Meta, attr("name", "viewport"), attr("content", "width=device-width, initial-scale=1")))
	title := element(atom.Title)
	title.AppendChild(textNode(data.Title))
	head.AppendChild(title)
	if data.Description != "" {
		head.AppendChild(element(atom.Meta, attr("name", "description"), attr("content", data.Description)))
	}
	style := element(atom.Style)
	style.AppendChild(textNode(deckCSS))
	head.AppendChild(style)

	root := element(atom.Div, attr("id", "deck-root"))
	if hn := HTMLNode(shell); hn != nil {
		root.AppendChild(hn)
	}
	script := element(atom.Script)
	script.AppendChild(textNode(deckJS))

	body := element(atom.Body,
		attr("data-keys", string(keys)),
		attr("data-suppress", string(suppressed)),
	)
	body.AppendChild(root)
	body.AppendChild(script)

	lang := data.Language
	if lang == "" {
		lang = "de"
	}
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	page := element(atom.Html, attr("lang", lang))
	page.AppendChild(head)
	page.AppendChild(body)
	doc.AppendChild(page)

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}

func sortedKeys(m map[string]string) []string {
	return slices.Sorted(maps.Keys(m))
}
