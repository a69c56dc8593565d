package sections

import (
	"github.com/microcosm-cc/bluemonday"

	"debase-landing/pkg/navigation"
)

var sanitizer = bluemonday.UGCPolicy()

type renderContext struct {
	menu navigation.MenuState
}

// NewRenderContext builds the context used for a single page render.
func NewRenderContext(menu navigation.MenuState) RenderContext {
	return renderContext{menu: menu}
}

func (c renderContext) SanitizeHTML(input string) string {
	return sanitizer.Sanitize(input)
}

func (c renderContext) Menu() navigation.MenuState {
	return c.menu
}
