package seo

import (
	"encoding/json"
	"html/template"
	"time"
)

// LocalBusiness emits the schema.org snippet for the studio itself, rendered
// on the home and contact pages.
func LocalBusiness(name, phone, email, address, url string) template.JS {
	doc := map[string]any{
		"@context":  "https://schema.org",
		"@type":     "LocalBusiness",
		"name":      name,
		"telephone": phone,
		"email":     email,
		"address":   address,
		"url":       url,
	}
	return marshal(doc)
}

// Article emits the schema.org snippet for a blog post detail page.
func Article(title, description, image, author string, published time.Time) template.JS {
	doc := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Article",
		"headline":    title,
		"description": description,
	}
	if image != "" {
		doc["image"] = image
	}
	if author != "" {
		doc["author"] = map[string]any{"@type": "Person", "name": author}
	}
	if !published.IsZero() {
		doc["datePublished"] = published.Format(time.RFC3339)
	}
	return marshal(doc)
}

// FAQPage emits the schema.org FAQ snippet for the home page FAQ section.
func FAQPage(pairs [][2]string) template.JS {
	entities := make([]map[string]any, 0, len(pairs))
	for _, p := range pairs {
		entities = append(entities, map[string]any{
			"@type": "Question",
			"name":  p[0],
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  p[1],
			},
		})
	}
	doc := map[string]any{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": entities,
	}
	return marshal(doc)
}

func marshal(doc map[string]any) template.JS {
	raw, err := json.Marshal(doc)
	if err != nil {
		return ""
	}
	return template.JS(raw)
}
