package sections

import (
	"strings"

	"debase-landing/internal/content"
	"debase-landing/pkg/navigation"
)

func renderContact(ctx RenderContext, prefix string) string {
	channels := content.ContactChannels()

	var sb strings.Builder
	sb.WriteString(`<section id="contact" class="` + className(prefix, "contact") + `">`)
	sb.WriteString(`<h2 class="` + className(prefix, "section-title") + `">` + escape(content.ContactHeading) + `</h2>`)
	sb.WriteString(`<p class="` + className(prefix, "section-lead") + `">` + escape(content.ContactLead) + `</p>`)
	sb.WriteString(`<div class="` + className(prefix, "contact-links") + `">`)
	for _, channel := range channels {
		item := navigation.Item{Label: channel.Name, Path: channel.URL, External: channel.External}
		inner := icon(className(prefix, "contact-icon"), channel.Icon) +
			`<span class="` + className(prefix, "visually-hidden") + `">` + escape(channel.Name) + `</span>`
		sb.WriteString(anchor(className(prefix, "contact-link"), item, inner))
	}
	sb.WriteString(`</div>`)
	sb.WriteString(`</section>`)
	return sb.String()
}
