package sections

// Section types of the landing page.
const (
	TypeNavigation = "navigation"
	TypeHero       = "hero"
	TypeAbout      = "about"
	TypeFeatures   = "features"
	TypeContact    = "contact"
	TypeFooter     = "footer"
)

// RegisterDefaults registers every landing section renderer.
func RegisterDefaults(reg *Registry) {
	if reg == nil {
		return
	}

	reg.MustRegister(TypeNavigation, renderNavigation)
	reg.MustRegister(TypeHero, renderHero)
	reg.MustRegister(TypeAbout, renderAbout)
	reg.MustRegister(TypeFeatures, renderFeatures)
	reg.MustRegister(TypeContact, renderContact)
	reg.MustRegister(TypeFooter, renderFooter)
}

// Default returns a registry populated with the landing sections.
func Default() *Registry {
	reg := NewRegistry()
	RegisterDefaults(reg)
	return reg
}
