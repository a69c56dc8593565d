package sections

import (
	"strings"

	"debase-landing/internal/content"
	"debase-landing/pkg/navigation"
)

func renderAbout(ctx RenderContext, prefix string) string {
	start := navigation.Item{Label: content.AboutButton, Path: content.BotURL, External: true}

	var sb strings.Builder
	sb.WriteString(`<section id="about" class="` + className(prefix, "about") + `">`)
	sb.WriteString(`<h2 class="` + className(prefix, "section-title") + `">` + escape(content.AboutHeading) + `</h2>`)
	sb.WriteString(`<div class="` + className(prefix, "about-grid") + `">`)
	sb.WriteString(`<div class="` + className(prefix, "about-media") + `">`)
	sb.WriteString(`<img class="` + className(prefix, "about-image") + `" src="` + content.AssetRobotPeaking + `" alt="` + escape(content.AboutImageAlt) + `" />`)
	sb.WriteString(`</div>`)
	sb.WriteString(`<div class="` + className(prefix, "about-body") + `">`)
	sb.WriteString(`<p class="` + className(prefix, "about-text") + `">` + ctx.SanitizeHTML(content.AboutBody) + `</p>`)
	sb.WriteString(anchor(className(prefix, "about-button"), start, escape(start.Label)))
	sb.WriteString(`</div>`)
	sb.WriteString(`</div>`)
	sb.WriteString(`</section>`)
	return sb.String()
}
