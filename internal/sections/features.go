package sections

import (
	"strings"

	"debase-landing/internal/content"
)

func renderFeatures(ctx RenderContext, prefix string) string {
	items := content.Features()

	var sb strings.Builder
	sb.WriteString(`<section id="features" class="` + className(prefix, "features") + `">`)
	sb.WriteString(`<h2 class="` + className(prefix, "section-title") + `">` + escape(content.FeaturesTitle) + `</h2>`)
	sb.WriteString(`<p class="` + className(prefix, "section-lead") + `">` + escape(content.FeaturesLead) + `</p>`)
	sb.WriteString(`<div class="` + className(prefix, "features-list") + `">`)
	for _, item := range items {
		sb.WriteString(renderFeatureItem(prefix, item))
	}
	sb.WriteString(`</div>`)
	sb.WriteString(`</section>`)
	return sb.String()
}

func renderFeatureItem(prefix string, item content.Feature) string {
	var sb strings.Builder
	sb.WriteString(`<article class="` + className(prefix, "feature-item") + ` ` + className(prefix, "accent--"+item.Accent) + `">`)
	sb.WriteString(`<div class="` + className(prefix, "feature-media") + `">`)
	sb.WriteString(icon(className(prefix, "feature-icon"), item.Icon))
	sb.WriteString(`</div>`)
	sb.WriteString(`<h3 class="` + className(prefix, "feature-title") + `">` + escape(item.Title) + `</h3>`)
	sb.WriteString(`<p class="` + className(prefix, "feature-text") + `">` + escape(item.Description) + `</p>`)
	sb.WriteString(`</article>`)
	return sb.String()
}
