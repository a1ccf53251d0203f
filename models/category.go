package models

// Category identifies one of the ten audit categories. The string value is
// the key used in JSON/YAML output and is part of the external contract.
type Category string

const (
	CategoryTitle           Category = "title"
	CategoryMetaDescription Category = "meta_description"
	CategoryHeadings        Category = "headings"
	CategoryImages          Category = "images"
	CategoryMobile          Category = "mobile"
	CategorySSLSecurity     Category = "ssl_security"
	CategoryPerformance     Category = "performance"
	CategoryLinks           Category = "links"
	CategoryOpenGraph       Category = "open_graph"
	CategorySchema          Category = "schema"
)

// CategoryOrder is the fixed evaluation and display order. Renderers and the
// report assembler must never reorder it.
var CategoryOrder = []Category{
	CategoryTitle,
	CategoryMetaDescription,
	CategoryHeadings,
	CategoryImages,
	CategoryMobile,
	CategorySSLSecurity,
	CategoryPerformance,
	CategoryLinks,
	CategoryOpenGraph,
	CategorySchema,
}

var categoryNames = map[Category]string{
	CategoryTitle:           "Title Tag",
	CategoryMetaDescription: "Meta Description",
	CategoryHeadings:        "Headings",
	CategoryImages:          "Images",
	CategoryMobile:          "Mobile",
	CategorySSLSecurity:     "SSL/Security",
	CategoryPerformance:     "Performance",
	CategoryLinks:           "Links",
	CategoryOpenGraph:       "Open Graph",
	CategorySchema:          "Schema/Structured Data",
}

// DisplayName returns the human-readable category name.
func (c Category) DisplayName() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return string(c)
}
