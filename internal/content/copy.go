package content

// Hero copy.
const (
	HeroHeadline       = "Trade Smarter on Base"
	HeroHeadlineSuffix = "with AI Precision"
	HeroLead           = "DEBASE Trading Bot is an AI-powered Telegram bot that automates crypto trading on the Base network, delivering real-time insights, optimized execution, and seamless DeFi integration."
	HeroButton         = "Launch Bot"
)

// About copy. AboutBody carries inline markup and goes through the sanitizer.
const (
	AboutHeading   = "Why Debase Trading Bot ?"
	AboutBody      = `<strong>DEBASE TRADING BOT</strong> is an AI-powered Telegram trading bot tailored for the Base network, designed to automate and optimize cryptocurrency trading within the Ethereum Layer 2 ecosystem. Leveraging advanced algorithms, real-time market analysis, and seamless integration with Base's DeFi protocols, our bot empowers users to execute trades efficiently, manage portfolios, and capitalize on AI-driven strategies for tokens on the Base chain.`
	AboutButton    = "Start Trading"
	AboutImageAlt  = "DEBASE Trading Bot Robot"
	FeaturesTitle  = "What can Debase trading do ?"
	FeaturesLead   = "Powerful features designed to maximize your trading potential on the Base network"
	ContactHeading = "Contact Us"
	ContactLead    = "Get in touch with us through any of these channels"
	FooterTagline  = "AI-powered trading on Base"
	FooterBuiltOn  = "Base Network"
	CopyrightOwner = "DEBASE Trading Bot"
	CopyrightYear  = 2024
)
