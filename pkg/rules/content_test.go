package rules

import (
	"strings"
	"testing"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		name        string
		html        string
		wantScore   int
		wantFinding string
	}{
		{
			name:        "missing title scores zero",
			html:        "<html><body>no title</body></html>",
			wantScore:   0,
			wantFinding: "No title tag found",
		},
		{
			name:        "whitespace-only title counts as missing",
			html:        "<title>   </title>",
			wantScore:   0,
			wantFinding: "No title tag found",
		},
		{
			name:        "optimal length",
			html:        "<title>" + strings.Repeat("a", 55) + "</title>",
			wantScore:   100,
			wantFinding: "Title length is optimal for search engines",
		},
		{
			name:        "acceptable length",
			html:        "<title>" + strings.Repeat("a", 35) + "</title>",
			wantScore:   80,
			wantFinding: "Title length is acceptable but could be improved",
		},
		{
			name:        "too short",
			html:        "<title>Tiny</title>",
			wantScore:   50,
			wantFinding: "Title is too short",
		},
		{
			name:        "too long",
			html:        "<title>" + strings.Repeat("a", 90) + "</title>",
			wantScore:   60,
			wantFinding: "Title is too long and may be truncated in search results",
		},
		{
			name:        "generic title penalized",
			html:        "<title>Home</title>",
			wantScore:   20, // too short (50) minus generic (30)
			wantFinding: "Title appears to be generic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Title(mustParse(t, tt.html), nil)
			if res.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", res.Score, tt.wantScore)
			}
			if !hasFinding(res.Findings, tt.wantFinding) {
				t.Errorf("findings %v missing %q", res.Findings, tt.wantFinding)
			}
		})
	}
}

func TestTitleMissingHasSingleFinding(t *testing.T) {
	res := Title(mustParse(t, "<html></html>"), nil)
	if len(res.Findings) != 1 || res.Findings[0] != "No title tag found" {
		t.Errorf("findings = %v, want exactly one 'No title tag found'", res.Findings)
	}
}

func TestMetaDescription(t *testing.T) {
	tests := []struct {
		name      string
		html      string
		wantScore int
	}{
		{
			name:      "missing scores zero",
			html:      "<html></html>",
			wantScore: 0,
		},
		{
			name:      "empty content scores ten",
			html:      `<meta name="description" content="  ">`,
			wantScore: 10,
		},
		{
			name:      "optimal length",
			html:      `<meta name="description" content="` + strings.Repeat("a", 155) + `">`,
			wantScore: 100,
		},
		{
			name:      "good length",
			html:      `<meta name="description" content="` + strings.Repeat("a", 130) + `">`,
			wantScore: 85,
		},
		{
			name:      "too short",
			html:      `<meta name="description" content="short description">`,
			wantScore: 60,
		},
		{
			name:      "too long",
			html:      `<meta name="description" content="` + strings.Repeat("a", 200) + `">`,
			wantScore: 70,
		},
		{
			name:      "generic phrase penalized",
			html:      `<meta name="description" content="Welcome to ` + strings.Repeat("a", 144) + `">`,
			wantScore: 80, // optimal (100) minus generic (20)
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := MetaDescription(mustParse(t, tt.html), nil)
			if res.Score != tt.wantScore {
				t.Errorf("score = %d, want %d (findings: %v)", res.Score, tt.wantScore, res.Findings)
			}
		})
	}
}

func TestMetaDescriptionMissingHasSingleFinding(t *testing.T) {
	res := MetaDescription(mustParse(t, "<html></html>"), nil)
	if len(res.Findings) != 1 || res.Findings[0] != "No meta description found" {
		t.Errorf("findings = %v, want exactly one 'No meta description found'", res.Findings)
	}
}

func TestHeadings(t *testing.T) {
	tests := []struct {
		name      string
		html      string
		wantScore int
	}{
		{
			name:      "clean structure",
			html:      "<h1>Main</h1><h2>Sub</h2><h3>Deep</h3>",
			wantScore: 100,
		},
		{
			name:      "no h1",
			html:      "<h2>Sub</h2>",
			wantScore: 50, // -40 for missing H1, -10 for the H0 -> H2 skip
		},
		{
			name:      "multiple h1",
			html:      "<h1>One</h1><h1>Two</h1>",
			wantScore: 80,
		},
		{
			name:      "empty h1",
			html:      "<h1></h1><h2>Sub</h2>",
			wantScore: 85,
		},
		{
			name:      "skipped level",
			html:      "<h1>Main</h1><h3>Deep</h3>",
			wantScore: 90,
		},
		{
			name:      "no headings at all",
			html:      "<p>just text</p>",
			wantScore: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Headings(mustParse(t, tt.html), nil)
			if res.Score != tt.wantScore {
				t.Errorf("score = %d, want %d (findings: %v)", res.Score, tt.wantScore, res.Findings)
			}
		})
	}
}

func TestImages(t *testing.T) {
	tests := []struct {
		name      string
		html      string
		wantScore int
	}{
		{
			name:      "no images is a perfect score",
			html:      "<p>text only</p>",
			wantScore: 100,
		},
		{
			name:      "full alt coverage",
			html:      `<img src="/a.png" alt="a"><img src="/b.png" alt="b">`,
			wantScore: 100,
		},
		{
			name:      "missing alt penalized",
			html:      `<img src="/a.png" alt="a"><img src="/b.png">`,
			wantScore: 40, // 50% coverage minus 10
		},
		{
			name:      "empty alt penalized less",
			html:      `<img src="/a.png" alt="a"><img src="/b.png" alt="">`,
			wantScore: 45, // 50% coverage minus 5
		},
		{
			name:      "no alts at all",
			html:      `<img src="/a.png"><img src="/b.png">`,
			wantScore: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Images(mustParse(t, tt.html), nil)
			if res.Score != tt.wantScore {
				t.Errorf("score = %d, want %d (findings: %v)", res.Score, tt.wantScore, res.Findings)
			}
		})
	}
}

func TestImagesModernFormatFinding(t *testing.T) {
	res := Images(mustParse(t, `<img src="/pic.webp" alt="p">`), nil)
	if !hasFinding(res.Findings, "Modern image formats (WebP/AVIF): 1/1") {
		t.Errorf("findings = %v, want modern format finding", res.Findings)
	}
}

func hasFinding(findings []string, want string) bool {
	for _, f := range findings {
		if f == want {
			return true
		}
	}
	return false
}
