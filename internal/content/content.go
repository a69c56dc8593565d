package content

import "debase-landing/pkg/navigation"

const (
	BrandName = "DEBASE Trading Bot"
	BotURL    = "https://t.me/de_base_bot"
)

// Asset identifiers resolved against the embedded static directory.
const (
	AssetLogo         = "/static/img/logo.svg"
	AssetRobotHero    = "/static/img/robot-hero.svg"
	AssetRobotPeaking = "/static/img/robot-peaking.svg"
)

// Feature is a single card of the features grid.
type Feature struct {
	Title       string
	Description string
	Icon        string
	Accent      string
}

// ContactChannel is an outbound contact link.
type ContactChannel struct {
	Name     string
	URL      string
	Icon     string
	External bool
}

// FooterGroup is a titled column of footer links.
type FooterGroup struct {
	Title string
	Links []navigation.Item
}

var features = []Feature{
	{Title: "Automated Trading", Description: "Execute Trades Using Predefined Strategies Tailored To Base Tokens.", Icon: "refresh-cw", Accent: "cyan-blue"},
	{Title: "Risk Management", Description: "Custom Stop-Loss And Take-Profit Controls.", Icon: "shield", Accent: "purple-pink"},
	{Title: "Smart Market Analysis", Description: "AI-Driven Analysis For Detecting Trends In Base's DeFi Markets.", Icon: "trending-up", Accent: "green-emerald"},
	{Title: "Portfolio Management", Description: "Automated Diversification And Rebalancing.", Icon: "briefcase", Accent: "orange-red"},
	{Title: "Real-Time Alerts", Description: "Instant Notifications For Trades, Prices, And Network Events.", Icon: "bell", Accent: "blue-indigo"},
	{Title: "Copy Trading & Signals", Description: "Follow Top Base Traders And Premium Signal Providers.", Icon: "users", Accent: "pink-purple"},
}

var contactChannels = []ContactChannel{
	{Name: "Email", URL: "mailto:contact@debase.bot", Icon: "mail"},
	{Name: "X", URL: "https://twitter.com/debase", Icon: "x", External: true},
	{Name: "GitHub", URL: "https://github.com/debase", Icon: "github", External: true},
	{Name: "Telegram", URL: "https://t.me/debase", Icon: "telegram", External: true},
}

var footerGroups = []FooterGroup{
	{Title: "Product", Links: []navigation.Item{
		{Label: "Features", Path: "#features"},
		{Label: "Documentation", Path: "#docs"},
		{Label: "API", Path: "#api"},
	}},
	{Title: "Company", Links: []navigation.Item{
		{Label: "About", Path: "#about"},
		{Label: "Blog", Path: "#blog"},
		{Label: "Careers", Path: "#careers"},
	}},
	{Title: "Legal", Links: []navigation.Item{
		{Label: "Privacy", Path: "#privacy"},
		{Label: "Terms", Path: "#terms"},
		{Label: "Cookies", Path: "#cookies"},
	}},
}

// CallToAction is the "Get Started" link of the navigation bar.
func CallToAction() navigation.Item {
	return navigation.Item{Label: "Get Started", Path: BotURL, External: true}
}

// Features returns a copy of the feature cards in display order.
func Features() []Feature {
	out := make([]Feature, len(features))
	copy(out, features)
	return out
}

// ContactChannels returns a copy of the contact links in display order.
func ContactChannels() []ContactChannel {
	out := make([]ContactChannel, len(contactChannels))
	copy(out, contactChannels)
	return out
}

// FooterGroups returns a deep copy of the footer link columns.
func FooterGroups() []FooterGroup {
	out := make([]FooterGroup, len(footerGroups))
	for i, group := range footerGroups {
		links := make([]navigation.Item, len(group.Links))
		copy(links, group.Links)
		out[i] = FooterGroup{Title: group.Title, Links: links}
	}
	return out
}
