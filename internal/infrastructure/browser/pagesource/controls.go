package pagesource

import (
	"fmt"
	"strings"

	"webui-e2e/internal/domain/entity"

	"golang.org/x/net/html"
)

type ControlsConfig struct {
	MaxControls int
	// Keywords keeps only controls whose text or labels mention one of
	// them. Empty keeps everything.
	Keywords []string
}

var DefaultControlsConfig = ControlsConfig{
	MaxControls: 50,
}

// Control is an interactive element found in a page snapshot together with
// the most specific locator that would reach it.
type Control struct {
	Kind    string
	Text    string
	Locator entity.LocatorStrategy
}

func (c Control) String() string {
	if c.Text == "" {
		return fmt.Sprintf("%s %s", c.Kind, c.Locator)
	}
	return fmt.Sprintf("%s %s %q", c.Kind, c.Locator, c.Text)
}

// Controls lists the buttons, inputs, selects and links of the body in
// document order, skipping hidden ones and duplicate locators.
func Controls(rawHTML string, cfg *ControlsConfig) []Control {
	if cfg == nil {
		cfg = &DefaultControlsConfig
	}
	body, ok := parseBody(rawHTML)
	if !ok {
		return nil
	}
	cleanNode(body, &CleanConfig{TagsToRemove: DefaultCleanConfig.TagsToRemove})

	var result []Control
	seen := make(map[entity.LocatorStrategy]bool)

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if cfg.MaxControls > 0 && len(result) >= cfg.MaxControls {
			return
		}
		if n.Type == html.ElementNode {
			if kind, ok := controlKind(n); ok {
				c := Control{Kind: kind, Text: label(n), Locator: bestLocator(n)}
				if !seen[c.Locator] && matchesKeywords(n, c.Text, cfg.Keywords) {
					seen[c.Locator] = true
					result = append(result, c)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(body)
	return result
}

func controlKind(n *html.Node) (string, bool) {
	switch n.Data {
	case "button", "select", "textarea":
		return n.Data, true
	case "a":
		return "link", attr(n, "href") != "" || attr(n, "role") != ""
	case "input":
		typ := strings.ToLower(attr(n, "type"))
		if typ == "" {
			typ = "text"
		}
		if typ == "submit" || typ == "button" {
			return "button", true
		}
		return "input[" + typ + "]", true
	}
	switch attr(n, "role") {
	case "button", "checkbox", "link", "menuitem", "tab":
		return attr(n, "role"), true
	}
	if attr(n, "data-testid") != "" || attr(n, "data-test-id") != "" {
		return "element", true
	}
	return "", false
}

func label(n *html.Node) string {
	if text := ownText(n); text != "" {
		return truncateRunes(text, 80)
	}
	for _, key := range []string{"aria-label", "placeholder", "title", "value", "data-tooltip"} {
		if v := strings.TrimSpace(attr(n, key)); v != "" {
			return truncateRunes(v, 80)
		}
	}
	return ""
}

// bestLocator prefers stable attributes over text, and text over
// structure.
func bestLocator(n *html.Node) entity.LocatorStrategy {
	if id := attr(n, "id"); id != "" {
		return entity.ID(id)
	}
	if name := attr(n, "name"); name != "" {
		return entity.Name(name)
	}
	for _, key := range []string{"data-testid", "data-test-id"} {
		if v := attr(n, key); v != "" {
			return entity.CSS(fmt.Sprintf("[%s=%q]", key, v))
		}
	}
	text := ownText(n)
	if n.Data == "a" && text != "" {
		return entity.LinkText(text)
	}
	if text != "" && n.Data == "button" {
		return entity.Text(text)
	}
	css := n.Data
	for _, class := range strings.Fields(attr(n, "class")) {
		css += "." + class
	}
	if typ := attr(n, "type"); typ != "" && n.Data == "input" {
		css += fmt.Sprintf("[type=%q]", typ)
	}
	return entity.CSS(css)
}

func matchesKeywords(n *html.Node, text string, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	haystack := strings.ToLower(strings.Join([]string{
		text, attr(n, "aria-label"), attr(n, "placeholder"), attr(n, "title"), attr(n, "data-tooltip"),
	}, " "))
	for _, kw := range keywords {
		if strings.Contains(haystack, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func ownText(n *html.Node) string {
	return strings.Join(strings.Fields(textContent(n)), " ")
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func truncateRunes(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
