package content

import (
	"strings"
	"testing"
)

func TestStaticListSizes(t *testing.T) {
	if got := len(Features()); got != 6 {
		t.Fatalf("expected 6 features, got %d", got)
	}
	if got := len(ContactChannels()); got != 4 {
		t.Fatalf("expected 4 contact channels, got %d", got)
	}
	groups := FooterGroups()
	if len(groups) != 3 {
		t.Fatalf("expected 3 footer groups, got %d", len(groups))
	}
	for _, group := range groups {
		if len(group.Links) != 3 {
			t.Errorf("footer group %s: expected 3 links, got %d", group.Title, len(group.Links))
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	Features()[0].Title = "mutated"
	ContactChannels()[0].URL = "mutated"
	FooterGroups()[0].Links[0].Label = "mutated"

	if Features()[0].Title != "Automated Trading" {
		t.Errorf("features source list was mutated")
	}
	if ContactChannels()[0].URL != "mailto:contact@debase.bot" {
		t.Errorf("contact source list was mutated")
	}
	if FooterGroups()[0].Links[0].Label != "Features" {
		t.Errorf("footer source list was mutated")
	}
}

func TestEveryRecordHasOneAsset(t *testing.T) {
	for _, feature := range Features() {
		if strings.TrimSpace(feature.Icon) == "" {
			t.Errorf("feature %q has no icon", feature.Title)
		}
	}
	for _, channel := range ContactChannels() {
		if strings.TrimSpace(channel.Icon) == "" {
			t.Errorf("channel %q has no icon", channel.Name)
		}
	}
}

func TestCallToActionOpensBot(t *testing.T) {
	cta := CallToAction()
	if cta.Path != BotURL || !cta.External {
		t.Fatalf("unexpected call to action: %+v", cta)
	}
}
