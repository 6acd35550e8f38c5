package web

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"marquee/contexts/landing-experience/variant-service/ports"
)

// DownloadLinks are the per-platform installer locations shown after a
// completed checkout.
type DownloadLinks struct {
	Windows string
	MacOS   string
	Linux   string
}

func SuccessPage(profile ports.VariantProfile, sessionID string, checkoutRef string, downloads DownloadLinks) g.Node {
	return Layout(profile, sessionID,
		Section(
			H1(g.Text("Welcome to Framewise")),
			P(Class("muted"), g.Text("Your subscription is active. Download the app to get started.")),
			g.If(checkoutRef != "",
				P(Class("muted"), g.Text("Checkout reference: "+checkoutRef)),
			),
			Div(Class("grid"),
				downloadCard("Windows", ".exe installer", downloads.Windows),
				downloadCard("macOS", ".dmg installer", downloads.MacOS),
				downloadCard("Linux", ".AppImage", downloads.Linux),
			),
			P(A(Href("/"), g.Text("← Back to homepage"))),
		),
	)
}

func downloadCard(name string, hint string, url string) g.Node {
	return A(
		Class("card"),
		Href(url),
		H3(g.Text(name)),
		P(Class("muted"), g.Text(hint)),
	)
}
