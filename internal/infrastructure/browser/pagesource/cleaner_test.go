package pagesource

import (
	"strings"
	"testing"
)

func contains(haystack, needle string) bool {
	return strings.Contains(haystack, needle)
}

func TestClean_RemovesScriptStyle(t *testing.T) {
	html := `
<body>
    <div id="main">Hello</div>
    <script>alert("hi")</script>
    <style>.x {}</style>
</body>`

	out := Clean(html, nil)

	if contains(out, "<script") || contains(out, "<style") {
		t.Errorf("script/style tags must be removed, output: %s", out)
	}
	if !contains(out, `id="main"`) {
		t.Errorf("expected to keep normal elements")
	}
}

func TestClean_RemovesCommentsAndHandlers(t *testing.T) {
	html := `
<body>
    <!-- comment -->
    <button onclick="go()" class="btn-auth">Login</button>
</body>`

	out := Clean(html, &DefaultCleanConfig)

	if contains(out, "comment") {
		t.Errorf("HTML comments must be removed")
	}
	if contains(out, "onclick") {
		t.Errorf("event handler attributes must be removed")
	}
	if !contains(out, `class="btn-auth"`) {
		t.Errorf("class must remain")
	}
}

func TestClean_RemovesHeadMetaLink(t *testing.T) {
	html := `
<html>
<head>
    <meta charset="utf-8">
    <link rel="stylesheet" href="x.css">
</head>
<body>
    <p>Hi</p>
</body>
</html>`

	out := Clean(html, &DefaultCleanConfig)

	if contains(out, "<head") || contains(out, "<meta") || contains(out, "<link") {
		t.Errorf("head/meta/link must be removed")
	}
	if !contains(out, "<p") {
		t.Errorf("body content must remain")
	}
}

func TestClean_Truncation(t *testing.T) {
	var big strings.Builder
	big.WriteString("<body>")
	for i := 0; i < 5000; i++ {
		big.WriteString("<div>test</div>")
	}
	big.WriteString("</body>")

	out := Clean(big.String(), &DefaultCleanConfig)

	if len(out) > DefaultCleanConfig.MaxOutputSize+64 {
		t.Errorf("output must be truncated near %d bytes, got %d", DefaultCleanConfig.MaxOutputSize, len(out))
	}
	if !contains(out, "truncated") {
		t.Errorf("truncation notice must appear")
	}
}

func TestVisibleText_SkipsHiddenAndScripts(t *testing.T) {
	html := `
<body>
    <div class="ant-message">  Tên tài khoản hoặc
        mật khẩu không chính xác </div>
    <div hidden>secret</div>
    <input type="hidden" value="token">
    <script>var leaked = "script text";</script>
</body>`

	got := VisibleText(html, nil)

	if got != "Tên tài khoản hoặc mật khẩu không chính xác" {
		t.Errorf("unexpected visible text: %q", got)
	}
}

func TestVisibleText_TruncatesOnRuneBoundary(t *testing.T) {
	html := "<body><p>" + strings.Repeat("ă", 50) + "</p></body>"

	got := VisibleText(html, &CleanConfig{MaxOutputSize: 7})

	text := strings.TrimSuffix(got, "\n<!-- truncated -->")
	if text != "ăăă" {
		t.Errorf("expected three whole runes, got %q", text)
	}
}

func TestContainsText(t *testing.T) {
	html := `<body><div>Thông báo:
        Tên tài khoản hoặc mật khẩu KHÔNG chính xác</div></body>`

	tests := []struct {
		name   string
		needle string
		want   bool
	}{
		{"exact phrase", "mật khẩu KHÔNG chính xác", true},
		{"case and spacing", "thông   báo:", true},
		{"absent", "đăng nhập thành công", false},
		{"empty needle", "  ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsText(html, tt.needle); got != tt.want {
				t.Errorf("ContainsText(%q) = %v, want %v", tt.needle, got, tt.want)
			}
		})
	}
}

func TestClean_EmptyDocument(t *testing.T) {
	// html.Parse always synthesises a body, so an empty document still
	// cleans to an empty body.
	out := Clean("", nil)
	if !contains(out, "<body>") {
		t.Errorf("expected synthesised body, got %q", out)
	}
}
