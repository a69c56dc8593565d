package sections

import (
	"fmt"
	"strings"

	"debase-landing/internal/content"
)

func renderFooter(ctx RenderContext, prefix string) string {
	groups := content.FooterGroups()

	var sb strings.Builder
	sb.WriteString(`<footer class="` + className(prefix, "footer") + `">`)
	sb.WriteString(`<div class="` + className(prefix, "footer-grid") + `">`)

	sb.WriteString(`<div class="` + className(prefix, "footer-brand") + `">`)
	sb.WriteString(`<img class="` + className(prefix, "footer-logo") + `" src="` + content.AssetLogo + `" alt="` + escape(content.BrandName) + `" />`)
	sb.WriteString(`<p class="` + className(prefix, "footer-tagline") + `">` + escape(content.FooterTagline) + `</p>`)
	sb.WriteString(`</div>`)

	for _, group := range groups {
		sb.WriteString(`<div class="` + className(prefix, "footer-group") + `">`)
		sb.WriteString(`<h3 class="` + className(prefix, "footer-title") + `">` + escape(group.Title) + `</h3>`)
		sb.WriteString(`<ul class="` + className(prefix, "footer-links") + `">`)
		for _, link := range group.Links {
			sb.WriteString(`<li>` + anchor(className(prefix, "footer-link"), link, escape(link.Label)) + `</li>`)
		}
		sb.WriteString(`</ul>`)
		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</div>`)

	sb.WriteString(`<div class="` + className(prefix, "footer-bottom") + `">`)
	sb.WriteString(fmt.Sprintf(`<p class="%s">&copy; %d %s. All rights reserved.</p>`,
		className(prefix, "footer-copyright"), content.CopyrightYear, escape(content.CopyrightOwner)))
	sb.WriteString(`<p class="` + className(prefix, "footer-built") + `">Built on <span>` + escape(content.FooterBuiltOn) + `</span></p>`)
	sb.WriteString(`</div>`)

	sb.WriteString(`</footer>`)
	return sb.String()
}
