package web

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"marquee/contexts/landing-experience/variant-service/ports"
)

// StyleGuide renders the component explorer for designers: color palette,
// typography scale, spacing scale and button set for every variant theme.
func StyleGuide(profiles []ports.VariantProfile, active ports.VariantProfile, sessionID string) g.Node {
	links := make([]g.Node, 0, len(profiles))
	for _, profile := range profiles {
		links = append(links, A(
			Href("/styleguide?variant="+string(profile.ID)),
			Style("margin-right:12px"),
			g.Text(string(profile.ID)),
		))
	}

	swatches := make([]g.Node, 0, len(active.Theme.Palette))
	for _, swatch := range active.Theme.Palette {
		swatches = append(swatches, Div(
			Div(Class("swatch"), Style("background:"+swatch.Hex)),
			P(Class("muted"), g.Text(swatch.Name+" "+swatch.Hex)),
		))
	}

	steps := make([]g.Node, 0, len(active.Theme.Spacing))
	for _, space := range active.Theme.Spacing {
		steps = append(steps, Div(
			Div(Style("background:var(--primary);height:16px;width:"+space)),
			P(Class("muted"), g.Text(space)),
		))
	}

	return Layout(active, sessionID,
		Section(
			H1(g.Text("Style guide")),
			P(Class("muted"), g.Text("Theme: "+string(active.ID))),
			Div(g.Group(links)),
		),
		Section(
			H2(g.Text("Color palette")),
			Div(Class("grid"), g.Group(swatches)),
		),
		Section(
			H2(g.Text("Typography")),
			H1(g.Text("Heading one")),
			H2(g.Text("Heading two")),
			H3(g.Text("Heading three")),
			P(g.Text("Body copy uses the variant's body font.")),
			P(Class("muted"), g.Text("Muted copy for supporting text.")),
		),
		Section(
			H2(g.Text("Spacing")),
			Div(Class("grid"), g.Group(steps)),
		),
		Section(
			H2(g.Text("Buttons")),
			Button(Class("btn"), g.Text("Primary action")),
			g.Text(" "),
			Button(Class("btn"), Disabled(), g.Text("Disabled")),
		),
	)
}
