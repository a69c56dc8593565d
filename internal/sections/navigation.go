package sections

import (
	"strings"

	"debase-landing/internal/content"
	"debase-landing/pkg/navigation"
)

func renderNavigation(ctx RenderContext, prefix string) string {
	menu := ctx.Menu()
	links := navigation.PrimaryLinks()
	cta := content.CallToAction()

	var sb strings.Builder
	sb.WriteString(`<nav class="` + className(prefix, "nav") + `">`)
	sb.WriteString(`<div class="` + className(prefix, "nav-bar") + `">`)
	sb.WriteString(`<a class="` + className(prefix, "nav-brand") + `" href="#home">`)
	sb.WriteString(`<img class="` + className(prefix, "nav-logo") + `" src="` + content.AssetLogo + `" alt="` + escape(content.BrandName) + `" />`)
	sb.WriteString(`</a>`)

	sb.WriteString(`<div class="` + className(prefix, "nav-links") + `">`)
	for _, link := range links {
		sb.WriteString(anchor(className(prefix, "nav-link"), link, escape(link.Label)))
	}
	sb.WriteString(`</div>`)

	sb.WriteString(anchor(className(prefix, "nav-cta"), cta, escape(cta.Label)))

	// The toggle carries the state it would produce, so it works without scripts.
	toggleIcon, toggleLabel := "menu", "Open menu"
	if menu.IsOpen() {
		toggleIcon, toggleLabel = "x", "Close menu"
	}
	sb.WriteString(`<a class="` + className(prefix, "nav-toggle") + `" href="` + escape(menu.Toggled().Href()) + `" aria-label="` + toggleLabel + `" aria-expanded="` + boolAttr(menu.IsOpen()) + `">`)
	sb.WriteString(icon(className(prefix, "nav-toggle-icon"), toggleIcon))
	sb.WriteString(`</a>`)
	sb.WriteString(`</div>`)

	if mobile := menu.MobileLinks(); len(mobile) > 0 {
		sb.WriteString(`<div class="` + className(prefix, "nav-mobile") + `" data-mobile-menu>`)
		for _, link := range mobile {
			sb.WriteString(anchor(className(prefix, "nav-mobile-link"), link, escape(link.Label)))
		}
		sb.WriteString(anchor(className(prefix, "nav-mobile-cta"), cta, escape(cta.Label)))
		sb.WriteString(`</div>`)
	}

	sb.WriteString(`</nav>`)
	return sb.String()
}

func boolAttr(value bool) string {
	if value {
		return "true"
	}
	return "false"
}
