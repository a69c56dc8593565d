package page

import (
	"errors"
	"fmt"
	"strings"

	"debase-landing/internal/sections"
)

// Prefix is the CSS block prefix shared by every section.
const Prefix = "landing"

// ErrSectionNotRegistered is returned when the composition order names a
// section without a renderer.
var ErrSectionNotRegistered = errors.New("section renderer not registered")

// Order is the fixed top-to-bottom layout of the landing page.
var Order = []string{
	sections.TypeNavigation,
	sections.TypeHero,
	sections.TypeAbout,
	sections.TypeFeatures,
	sections.TypeContact,
	sections.TypeFooter,
}

// Compose renders every section of Order into a single body.
func Compose(ctx sections.RenderContext, registry *sections.Registry) (string, error) {
	var sb strings.Builder
	for _, sectionType := range Order {
		renderer, ok := registry.Get(sectionType)
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrSectionNotRegistered, sectionType)
		}
		sb.WriteString(renderer(ctx, Prefix))
	}
	return sb.String(), nil
}
