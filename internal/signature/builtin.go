package signature

// builtin is the shipped signature catalog. Overlay files loaded from config
// are merged over it, so entries here can be replaced or extended without a
// rebuild. Detection terms cover both Appx package identities and the
// display names registered by desktop installers.
func builtin() []Entry {
	return []Entry{
		// Windows inbox bloatware
		{Name: "3D Viewer", Category: "Bloatware", Detection: []string{"Microsoft.Microsoft3DViewer"},
			Reason: "Rarely used 3D model viewer. Reinstallable from the Store if ever needed."},
		{Name: "Paint 3D", Category: "Bloatware", Detection: []string{"Microsoft.MSPaint"},
			Reason: "3D painting app most users never open; classic Paint remains available."},
		{Name: "Print 3D", Category: "Bloatware", Detection: []string{"Microsoft.Print3D"},
			Reason: "3D printing utility, only relevant with a 3D printer attached."},
		{Name: "Mixed Reality Portal", Category: "Bloatware", Detection: []string{"Microsoft.MixedReality.Portal"},
			Reason: "Portal for a discontinued VR headset line; loads drivers non-VR users never need."},
		{Name: "Clipchamp", Category: "Bloatware", Detection: []string{"Clipchamp", "Microsoft.Clipchamp"},
			Reason: "Video editor with watermarked free tier, force-installed after acquisition."},
		{Name: "Adobe Express", Category: "Bloatware", Detection: []string{"Adobe Express", "AdobeSystemsIncorporated.AdobeExpress"},
			Reason: "Preinstalled trial with features locked behind a paywall."},
		{Name: "Cortana", Category: "Spyware", Detection: []string{"Microsoft.549981C3F5F10"},
			Reason: "Deprecated assistant with background data collection."},
		{Name: "Microsoft News", Category: "Bloatware", Detection: []string{"Microsoft.BingNews"},
			Reason: "News aggregator duplicating any browser; shows sponsored content."},
		{Name: "Weather", Category: "Bloatware", Detection: []string{"Microsoft.BingWeather", "MSN Weather"},
			Reason: "Weather widget redundant with any browser; runs background updaters."},
		{Name: "Feedback Hub", Category: "Bloatware", Detection: []string{"Microsoft.WindowsFeedbackHub"},
			Reason: "Telemetry submission app of no use outside Insider builds."},
		{Name: "Tips", Category: "Bloatware", Detection: []string{"Microsoft.Getstarted", "Microsoft Tips"},
			Reason: "Onboarding hints app that keeps resurfacing notifications."},
		{Name: "Xbox Game Bar", Category: "Bloatware", Detection: []string{"Microsoft.XboxGamingOverlay"},
			Reason: "Gaming overlay with measurable idle overhead for non-gamers."},
		{Name: "Xbox Console Companion", Category: "Bloatware", Detection: []string{"Microsoft.XboxApp"},
			Reason: "Superseded Xbox companion app kept only for legacy installs."},
		{Name: "Phone Link", Category: "Bloatware", Detection: []string{"Microsoft.YourPhone", "Phone Link"},
			Reason: "Phone pairing app that starts at boot whether or not a phone is linked."},
		{Name: "Microsoft Solitaire Collection", Category: "Adware/Game", Detection: []string{"Microsoft.MicrosoftSolitaireCollection"},
			Reason: "Ad-supported card games preinstalled on every SKU."},
		{Name: "Microsoft Photos", Category: "Bloatware", Detection: []string{"Microsoft.Windows.Photos", "Microsoft Photos"},
			Reason: "Slow viewer with shopping integrations; many lighter alternatives."},
		{Name: "Mail and Calendar", Category: "Bloatware", Detection: []string{"microsoft.windowscommunicationsapps", "Mail and Calendar"},
			Reason: "Deprecated mail client being replaced by ad-carrying Outlook."},
		{Name: "OneNote", Category: "Bloatware", Detection: []string{"Microsoft.Office.OneNote"},
			Reason: "Store edition of OneNote, duplicated by the Office installation."},
		{Name: "OneDrive", Category: "Bloatware", Detection: []string{"OneDrive", "Microsoft OneDrive"},
			Reason: "Cloud sync enabled by default, uploads documents without explicit opt-in."},
		{Name: "Microsoft Teams", Category: "Bloatware", Detection: []string{"Microsoft Teams", "Teams Machine-Wide Installer"},
			Reason: "Consumer Teams auto-starting at boot; the machine-wide installer reinstalls it per user."},
		{Name: "Microsoft Office Trial", Category: "Trialware", Detection: []string{"Microsoft Office 365", "Microsoft 365"},
			Reason: "Preinstalled trial nagging for subscription activation."},

		// Preinstalled games / adware
		{Name: "Candy Crush Saga", Category: "Adware/Game", Detection: []string{"king.com.CandyCrushSaga", "Candy Crush Saga"},
			Reason: "Pay-to-win game silently provisioned via the consumer content pipeline."},
		{Name: "Candy Crush Soda Saga", Category: "Adware/Game", Detection: []string{"king.com.CandyCrushSodaSaga", "Candy Crush Soda Saga"},
			Reason: "Same silent provisioning channel as Candy Crush Saga."},
		{Name: "Candy Crush Friends Saga", Category: "Adware/Game", Detection: []string{"king.com.CandyCrushFriendsSaga", "Candy Crush Friends Saga"},
			Reason: "Same silent provisioning channel as Candy Crush Saga."},
		{Name: "Farm Heroes Saga", Category: "Adware/Game", Detection: []string{"king.com.FarmHeroesSaga", "Farm Heroes Saga"},
			Reason: "Preinstalled freemium game."},
		{Name: "Bubble Witch 3 Saga", Category: "Adware/Game", Detection: []string{"king.com.BubbleWitch3Saga", "Bubble Witch 3 Saga"},
			Reason: "Preinstalled freemium game."},
		{Name: "FarmVille 2: Country Escape", Category: "Adware/Game", Detection: []string{"ZyngaInc.FarmVille2CountryEscape", "FarmVille 2"},
			Reason: "Preinstalled freemium game."},
		{Name: "Hidden City", Category: "Adware/Game", Detection: []string{"G5EntertainmentAB.HiddenCityHiddenObjectAdventure", "Hidden City"},
			Reason: "Preinstalled freemium game."},
		{Name: "Asphalt 8: Airborne", Category: "Adware/Game", Detection: []string{"GAMELOFTSA.Asphalt8Airborne", "Asphalt 8"},
			Reason: "Preinstalled freemium game."},
		{Name: "Disney Magic Kingdoms", Category: "Adware/Game", Detection: []string{"GAMELOFTSA.DisneyMagicKingdoms", "Disney Magic Kingdoms"},
			Reason: "Preinstalled freemium game."},
		{Name: "Roblox", Category: "Adware/Game", Detection: []string{"ROBLOXCORPORATION.ROBLOX"},
			Reason: "Game platform preinstalled on consumer SKUs without consent."},

		// Preinstalled third-party apps
		{Name: "TikTok", Category: "Bloatware", Detection: []string{"ByteDancePte.Ltd.TikTok"},
			Reason: "Social app provisioned by consumer SKUs; heavy telemetry."},
		{Name: "Instagram", Category: "Bloatware", Detection: []string{"Facebook.InstagramBeta"},
			Reason: "Preinstalled social wrapper app."},
		{Name: "Facebook", Category: "Bloatware", Detection: []string{"Facebook.Facebook"},
			Reason: "Preinstalled social wrapper app."},
		{Name: "Netflix", Category: "Bloatware", Detection: []string{"Netflix.Netflix"},
			Reason: "Streaming wrapper preinstalled; the website is equivalent."},
		{Name: "Prime Video", Category: "Bloatware", Detection: []string{"AmazonVideo.PrimeVideo"},
			Reason: "Streaming wrapper preinstalled; the website is equivalent."},
		{Name: "Spotify", Category: "Bloatware", Detection: []string{"SpotifyAB.SpotifyMusic"},
			Reason: "Preinstalled Store build that auto-starts at boot."},
		{Name: "Duolingo", Category: "Bloatware", Detection: []string{"Duolingo.Duolingo-LearnLanguagesforFree"},
			Reason: "Preinstalled promotional app."},
		{Name: "Dropbox OEM", Category: "Bloatware", Detection: []string{"Dropbox OEM"},
			Reason: "OEM promotional install with bundled upsell offers."},
		{Name: "Evernote OEM", Category: "Bloatware", Detection: []string{"Evernote OEM"},
			Reason: "OEM promotional install."},
		{Name: "WildTangent Games", Category: "Bloatware", Detection: []string{"WildTangent"},
			Reason: "OEM game storefront with trial nagware and background updater."},

		// Trial antivirus
		{Name: "McAfee", Category: "Trial AV", Detection: []string{"McAfee", "McAfee Security Scan Plus"},
			Reason: "Expired-trial scanner with aggressive renewal popups; leaves services and scheduled scans behind."},
		{Name: "Norton", Category: "Trial AV", Detection: []string{"Norton", "Symantec"},
			Reason: "Trial AV with persistent background services and renewal nagging."},

		// OEM utilities
		{Name: "HP Support Assistant", Category: "Bloatware", Detection: []string{"HP Support Assistant"},
			Reason: "OEM support agent running multiple always-on services."},
		{Name: "HP JumpStart", Category: "Bloatware", Detection: []string{"HP JumpStart"},
			Reason: "First-run promotional tour app."},
		{Name: "HP Connection Optimizer", Category: "Bloatware", Detection: []string{"HP Connection Optimizer"},
			Reason: "Wi-Fi switcher duplicating OS functionality."},
		{Name: "HP Touchpoint Analytics", Category: "Spyware", Detection: []string{"HP Touchpoint Analytics Client"},
			Reason: "Telemetry collector with a documented privilege-escalation history."},
		{Name: "Dell SupportAssist", Category: "Bloatware", Detection: []string{"Dell SupportAssist"},
			Reason: "OEM support agent with a record of remote-exploitable flaws."},
		{Name: "Dell Update", Category: "Bloatware", Detection: []string{"Dell Update", "Dell Digital Delivery"},
			Reason: "Redundant updater stack; drivers come through Windows Update."},
		{Name: "Dell Customer Connect", Category: "Bloatware", Detection: []string{"Dell Customer Connect"},
			Reason: "Survey and promotion delivery client."},
		{Name: "Lenovo Vantage", Category: "Bloatware", Detection: []string{"Lenovo Vantage"},
			Reason: "OEM hub mixing driver updates with ads and telemetry."},
		{Name: "Lenovo Solution Center", Category: "Bloatware", Detection: []string{"Lenovo Solution Center"},
			Reason: "Discontinued diagnostics suite with known local privilege escalation."},
		{Name: "Lenovo Accelerator", Category: "Bloatware/Vulnerable", Detection: []string{"Lenovo Accelerator Application"},
			Reason: "Update accelerator with an insecure update channel; vendor advises removal."},
		{Name: "ASUS GiftBox", Category: "Bloatware", Detection: []string{"ASUS GiftBox", "ASUS AppDeals"},
			Reason: "OEM app store pushing promotional installs."},
		{Name: "ASUS Live Update", Category: "Bloatware/Vulnerable", Detection: []string{"ASUS Live Update"},
			Reason: "Updater abused in a supply-chain attack; superseded by MyASUS."},
		{Name: "Acer Care Center", Category: "Bloatware", Detection: []string{"Acer Care Center"},
			Reason: "OEM support hub with multiple resident processes."},
		{Name: "Acer Product Registration", Category: "Bloatware", Detection: []string{"Acer Product Registration"},
			Reason: "One-shot registration nag that stays installed."},
		{Name: "MSI Dragon Center", Category: "Bloatware", Detection: []string{"MSI Dragon Center"},
			Reason: "Heavy OEM control panel; superseded by MSI Center."},
		{Name: "Samsung Update", Category: "Bloatware", Detection: []string{"Samsung Settings", "Samsung Update"},
			Reason: "OEM updater duplicating Windows Update delivery."},
		{Name: "Armoury Crate", Category: "Bloatware/Persistent", Detection: []string{"Armoury Crate", "ArmouryCrateInstaller"},
			Reason: "Reinstalls itself from firmware unless disabled in BIOS; many services."},

		// Adware, hijackers, rogue tools
		{Name: "Ask Toolbar", Category: "Adware/Toolbar", Detection: []string{"Ask Toolbar", "Updater by Ask", "Ask.com"},
			Reason: "Browser toolbar hijacking search defaults, bundled with installers."},
		{Name: "MyWay", Category: "Adware/Hijacker", Detection: []string{"MyWay", "MindSpark"},
			Reason: "Search hijacker family installed via bundled toolbars."},
		{Name: "Conduit", Category: "Adware/Hijacker", Detection: []string{"Conduit", "Search Protect"},
			Reason: "Hijacker that guards its own settings against reversal."},
		{Name: "SweetIM", Category: "Adware/Spyware", Detection: []string{"SweetIM"},
			Reason: "Messenger add-on with tracking and search redirection."},
		{Name: "RelevantKnowledge", Category: "Spyware", Detection: []string{"RelevantKnowledge"},
			Reason: "Market-research agent recording browsing activity."},
		{Name: "DealPly", Category: "Adware", Detection: []string{"DealPly"},
			Reason: "Shopping ad injector."},
		{Name: "Babylon", Category: "Adware/Hijacker", Detection: []string{"Babylon"},
			Reason: "Translation toolbar notorious for search hijacking."},
		{Name: "Delta Search", Category: "Adware/Hijacker", Detection: []string{"Delta Search"},
			Reason: "Homepage and search hijacker."},
		{Name: "Segurazo", Category: "Rogue AV", Detection: []string{"Segurazo", "SAntivirus"},
			Reason: "Fake antivirus resisting uninstall through its own service and driver."},
		{Name: "SpyHunter", Category: "PUP/Rogue", Detection: []string{"SpyHunter"},
			Reason: "Scareware scanner charging to remove its own findings."},
		{Name: "Advanced SystemCare", Category: "PUP/Optimizer", Detection: []string{"Advanced SystemCare"},
			Reason: "Registry cleaner of no measurable benefit, bundled with extras."},
		{Name: "Driver Booster", Category: "PUP/Driver Updater", Detection: []string{"Driver Booster"},
			Reason: "Driver updater installing unneeded and sometimes wrong drivers."},
		{Name: "DriverPack Solution", Category: "Adware/Bundle", Detection: []string{"DriverPack Solution", "DriverPack Notifier"},
			Reason: "Driver bundle known for silently adding promoted software."},
		{Name: "Reimage Repair", Category: "PUP/Scareware", Detection: []string{"Reimage Repair"},
			Reason: "Repair tool inflating found issues to sell licenses."},
		{Name: "Restoro", Category: "PUP/Scareware", Detection: []string{"Restoro"},
			Reason: "Same scareware model as Reimage."},
		{Name: "TotalAV", Category: "PUP/Antivirus", Detection: []string{"TotalAV", "PC Protect"},
			Reason: "Heavily telemarketed AV with dark-pattern billing."},
		{Name: "KMSPico", Category: "HackTool/Trojan", Detection: []string{"KMSPico", "KMSpico Portable"},
			Reason: "Activation cracker; distributed builds commonly carry miners or trojans."},
		{Name: "CCleaner", Category: "PUP/Risky", Detection: []string{"CCleaner", "Piriform", "ccsetup"},
			Reason: "Cleaner with a compromised-release history and bundled offers; OS tools cover its use."},
		{Name: "Hola VPN", Category: "Adware/P2P", Detection: []string{"Hola VPN"},
			Reason: "Sells user bandwidth as exit nodes of a commercial proxy network."},
	}
}
