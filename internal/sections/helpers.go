package sections

import (
	"fmt"
	"html/template"

	"debase-landing/pkg/navigation"
)

const iconSprite = "/static/img/icons.svg"

func className(prefix, block string) string {
	return fmt.Sprintf("%s__%s", prefix, block)
}

func escape(value string) string {
	return template.HTMLEscapeString(value)
}

// anchor renders a link, opening external destinations in a new browsing context.
func anchor(class string, item navigation.Item, inner string) string {
	target := ""
	if item.External {
		target = ` target="_blank" rel="noopener noreferrer"`
	}
	return `<a class="` + class + `" href="` + escape(item.Path) + `"` + target + `>` + inner + `</a>`
}

func icon(class, id string) string {
	return `<svg class="` + class + `" viewBox="0 0 24 24" aria-hidden="true"><use href="` + iconSprite + `#` + escape(id) + `"></use></svg>`
}
