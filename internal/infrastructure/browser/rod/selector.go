package rod

import (
	"fmt"
	"strings"

	"webui-e2e/internal/domain/entity"
)

type query struct {
	selector string
	xpath    bool
}

// compile turns a locator strategy into the CSS or XPath query rod runs.
func compile(loc entity.LocatorStrategy) (query, error) {
	if err := loc.Validate(); err != nil {
		return query{}, err
	}
	v := loc.Value
	switch loc.By {
	case entity.ByCSS:
		return query{selector: v}, nil
	case entity.ByXPath:
		return query{selector: v, xpath: true}, nil
	case entity.ByID:
		return query{selector: fmt.Sprintf(`[id=%s]`, cssString(v))}, nil
	case entity.ByName:
		return query{selector: fmt.Sprintf(`[name=%s]`, cssString(v))}, nil
	case entity.ByClassName:
		if strings.ContainsAny(v, " \t\n") {
			return query{}, fmt.Errorf("%w: compound class name %q", ErrInvalidSelector, v)
		}
		return query{selector: fmt.Sprintf(`[class~=%s]`, cssString(v))}, nil
	case entity.ByLinkText:
		return query{selector: fmt.Sprintf(`//a[normalize-space(.)=%s]`, xpathLiteral(v)), xpath: true}, nil
	case entity.ByText:
		return query{selector: fmt.Sprintf(`//*[text()[normalize-space(.)=%s]]`, xpathLiteral(v)), xpath: true}, nil
	}
	return query{}, fmt.Errorf("%w: %s", ErrInvalidSelector, loc)
}

func cssString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\a `)
	return `"` + r.Replace(s) + `"`
}

// xpathLiteral quotes s for XPath 1.0, which has no escape sequences.
func xpathLiteral(s string) string {
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	parts := strings.Split(s, "'")
	quoted := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			quoted = append(quoted, `"'"`)
		}
		quoted = append(quoted, "'"+p+"'")
	}
	return "concat(" + strings.Join(quoted, ", ") + ")"
}
