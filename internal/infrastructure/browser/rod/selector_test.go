package rod

import (
	"testing"

	"webui-e2e/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name string
		loc  entity.LocatorStrategy
		want query
	}{
		{"css", entity.CSS("#login .ant-btn"), query{selector: "#login .ant-btn"}},
		{"xpath", entity.XPath("//div[@class='ant-message']"), query{selector: "//div[@class='ant-message']", xpath: true}},
		{"id", entity.ID("username"), query{selector: `[id="username"]`}},
		{"id with digits first", entity.ID("1st"), query{selector: `[id="1st"]`}},
		{"name", entity.Name("password"), query{selector: `[name="password"]`}},
		{"class name", entity.ClassName("ant-input"), query{selector: `[class~="ant-input"]`}},
		{"link text", entity.LinkText("Orders"), query{selector: `//a[normalize-space(.)='Orders']`, xpath: true}},
		{"text", entity.Text("Sign In"), query{selector: `//*[text()[normalize-space(.)='Sign In']]`, xpath: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := compile(tt.loc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		loc  entity.LocatorStrategy
	}{
		{"empty value", entity.CSS("  ")},
		{"unknown kind", entity.LocatorStrategy{By: "shadow", Value: "x"}},
		{"compound class", entity.ClassName("ant-btn primary")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := compile(tt.loc)
			assert.ErrorIs(t, err, entity.ErrInvalidConfiguration)
		})
	}
}

func TestCSSString(t *testing.T) {
	assert.Equal(t, `"plain"`, cssString("plain"))
	assert.Equal(t, `"say \"hi\""`, cssString(`say "hi"`))
	assert.Equal(t, `"a\\b"`, cssString(`a\b`))
	assert.Equal(t, `"line\a break"`, cssString("line\nbreak"))
}

func TestXPathLiteral(t *testing.T) {
	assert.Equal(t, `'Sign In'`, xpathLiteral("Sign In"))
	assert.Equal(t, `"it's"`, xpathLiteral("it's"))
	assert.Equal(t, `concat('a', "'", 'b"c')`, xpathLiteral(`a'b"c`))
	assert.Equal(t, `concat('', "'", 'x', "'", '"')`, xpathLiteral(`'x'"`))
}
