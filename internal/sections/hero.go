package sections

import (
	"strings"

	"debase-landing/internal/content"
	"debase-landing/pkg/navigation"
)

func renderHero(ctx RenderContext, prefix string) string {
	launch := navigation.Item{Label: content.HeroButton, Path: content.BotURL, External: true}

	var sb strings.Builder
	sb.WriteString(`<section id="home" class="` + className(prefix, "hero") + `">`)
	sb.WriteString(`<div class="` + className(prefix, "hero-container") + `">`)
	sb.WriteString(`<h1 class="` + className(prefix, "hero-title") + `">`)
	sb.WriteString(`<span class="` + className(prefix, "gradient-text") + `">` + escape(content.HeroHeadline) + `</span><br />`)
	sb.WriteString(`<span>` + escape(content.HeroHeadlineSuffix) + `</span>`)
	sb.WriteString(`</h1>`)
	sb.WriteString(`<p class="` + className(prefix, "hero-text") + `">` + escape(content.HeroLead) + `</p>`)
	sb.WriteString(anchor(className(prefix, "hero-button"), launch, escape(launch.Label)))

	sb.WriteString(`<div class="` + className(prefix, "hero-visual") + `">`)
	for _, coin := range []string{"btc-left", "btc-right", "eth"} {
		sb.WriteString(`<span class="` + className(prefix, "hero-coin") + ` ` + className(prefix, "hero-coin--"+coin) + `" aria-hidden="true"></span>`)
	}
	sb.WriteString(`<img class="` + className(prefix, "hero-image") + `" src="` + content.AssetRobotHero + `" alt="` + escape(content.BrandName) + `" />`)
	sb.WriteString(`</div>`)

	sb.WriteString(`</div>`)
	sb.WriteString(`</section>`)
	return sb.String()
}
