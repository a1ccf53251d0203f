package document

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Heading is one h1-h6 tag, in document order.
type Heading struct {
	Level int
	Text  string
}

// Link is one <a> tag with an href attribute.
type Link struct {
	Href string
	Text string
	Rel  []string
}

// Image is one <img> tag. HasAlt distinguishes a missing alt attribute from
// an empty one.
type Image struct {
	Src     string
	Alt     string
	HasAlt  bool
	Loading string
}

// Stylesheet is one <link rel="stylesheet"> tag.
type Stylesheet struct {
	Href  string
	Media string
}

// JSONLD is one successfully parsed application/ld+json block.
type JSONLD struct {
	Types []string
}

// Model is a read-only view over a parsed HTML page. Implementations must
// degrade gracefully: malformed markup yields empty values, never errors.
type Model interface {
	// Title returns the first <title> text, trimmed. Empty if absent.
	Title() string
	// Meta looks up a <meta> tag by its lowercase name or property attribute
	// and returns the content attribute. Tags without a content attribute are
	// not recorded.
	Meta(key string) (string, bool)
	Headings() []Heading
	Links() []Link
	Images() []Image
	Stylesheets() []Stylesheet
	// ScriptSources returns the src attribute of every external <script>.
	ScriptSources() []string
	// JSONLD returns the parsed ld+json blocks and the total number of
	// ld+json script tags (parsed or not).
	JSONLD() ([]JSONLD, int)
	MicrodataCount() int
}

// page implements Model on top of a goquery document. All fields are
// extracted once at parse time so repeated evaluator access stays cheap and
// deterministic.
type page struct {
	title       string
	meta        map[string]string
	headings    []Heading
	links       []Link
	images      []Image
	stylesheets []Stylesheet
	scriptSrcs  []string
	jsonld      []JSONLD
	jsonldTotal int
	microdata   int
}

// Parse builds a Model from raw HTML. The underlying parser recovers from
// malformed markup, so an error here only means the input could not be read
// at all.
func Parse(raw []byte) (Model, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}

	p := &page{meta: map[string]string{}}

	p.title = normalizeText(doc.Find("title").First().Text())

	doc.Find("meta").Each(func(i int, s *goquery.Selection) {
		content, hasContent := s.Attr("content")
		if !hasContent {
			return
		}
		if name, ok := s.Attr("name"); ok && name != "" {
			p.meta[strings.ToLower(name)] = content
		}
		if prop, ok := s.Attr("property"); ok && prop != "" {
			p.meta[strings.ToLower(prop)] = content
		}
	})

	doc.Find("h1,h2,h3,h4,h5,h6").Each(func(i int, s *goquery.Selection) {
		tag := goquery.NodeName(s)
		p.headings = append(p.headings, Heading{
			Level: int(tag[1] - '0'),
			Text:  normalizeText(s.Text()),
		})
	})

	doc.Find("a[href]").Each(func(i int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		link := Link{Href: href, Text: normalizeText(s.Text())}
		if rel, ok := s.Attr("rel"); ok {
			link.Rel = strings.Fields(strings.ToLower(rel))
		}
		p.links = append(p.links, link)
	})

	doc.Find("img").Each(func(i int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		alt, hasAlt := s.Attr("alt")
		loading, _ := s.Attr("loading")
		p.images = append(p.images, Image{
			Src:     src,
			Alt:     alt,
			HasAlt:  hasAlt,
			Loading: strings.ToLower(loading),
		})
	})

	doc.Find(`link[rel="stylesheet"]`).Each(func(i int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		media, _ := s.Attr("media")
		p.stylesheets = append(p.stylesheets, Stylesheet{Href: href, Media: media})
	})

	doc.Find("script").Each(func(i int, s *goquery.Selection) {
		if typ, _ := s.Attr("type"); strings.EqualFold(typ, "application/ld+json") {
			p.jsonldTotal++
			if block, ok := parseJSONLD(s.Text()); ok {
				p.jsonld = append(p.jsonld, block)
			}
			return
		}
		if src, ok := s.Attr("src"); ok && src != "" {
			p.scriptSrcs = append(p.scriptSrcs, src)
		}
	})

	p.microdata = doc.Find("[itemscope]").Length()

	return p, nil
}

func (p *page) Title() string { return p.title }

func (p *page) Meta(key string) (string, bool) {
	v, ok := p.meta[strings.ToLower(key)]
	return v, ok
}

func (p *page) Headings() []Heading       { return p.headings }
func (p *page) Links() []Link             { return p.links }
func (p *page) Images() []Image           { return p.images }
func (p *page) Stylesheets() []Stylesheet { return p.stylesheets }
func (p *page) ScriptSources() []string   { return p.scriptSrcs }
func (p *page) MicrodataCount() int       { return p.microdata }

func (p *page) JSONLD() ([]JSONLD, int) { return p.jsonld, p.jsonldTotal }

// parseJSONLD parses a script body as JSON-LD. A block may be a single object
// or an array of objects; anything else counts as zero valid entries.
func parseJSONLD(body string) (JSONLD, bool) {
	body = strings.TrimSpace(body)
	if body == "" {
		return JSONLD{}, false
	}

	var block JSONLD
	var single map[string]any
	if err := json.Unmarshal([]byte(body), &single); err == nil {
		block.Types = appendType(block.Types, single)
		return block, true
	}

	var list []any
	if err := json.Unmarshal([]byte(body), &list); err != nil {
		return JSONLD{}, false
	}
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			block.Types = appendType(block.Types, m)
		}
	}
	return block, true
}

func appendType(types []string, m map[string]any) []string {
	switch t := m["@type"].(type) {
	case string:
		return append(types, t)
	case []any:
		for _, v := range t {
			if s, ok := v.(string); ok {
				types = append(types, s)
			}
		}
	}
	return types
}

// normalizeText collapses a block of text into single-space separated lines.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
