package web

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"marquee/contexts/landing-experience/variant-service/ports"
)

// Section names instrumented for view tracking. These are the values carried
// by the data-section attribute the beacon script observes.
const (
	SectionHero       = "hero"
	SectionFeatures   = "features"
	SectionHowItWorks = "how_it_works"
	SectionPricing    = "pricing"
	SectionWaitlist   = "waitlist"
	SectionCTA        = "cta"
)

func LandingPage(profile ports.VariantProfile, sessionID string) g.Node {
	content := profile.Content
	return Layout(profile, sessionID,
		hero(content),
		features(content),
		howItWorks(content),
		pricing(content),
		waitlist(content),
		ctaSection(content),
		contactWidget(content),
		pageFooter(content),
	)
}

func hero(content ports.PageContent) g.Node {
	return Section(
		g.Attr("data-section", SectionHero),
		ID(SectionHero),
		H1(g.Text(content.HeroHeadline)),
		P(Class("muted"), g.Text(content.HeroSubtitle)),
		Button(
			Class("btn"),
			g.Attr("data-track-cta", content.HeroCTALabel),
			g.Attr("data-cta-location", SectionHero),
			g.Attr("data-checkout", "1"),
			g.Text(content.HeroCTALabel),
		),
	)
}

func features(content ports.PageContent) g.Node {
	items := make([]g.Node, 0, len(content.Features))
	for _, feature := range content.Features {
		items = append(items, Div(
			Class("card"),
			Div(g.Text(feature.Icon)),
			H3(g.Text(feature.Title)),
			P(Class("muted"), g.Text(feature.Description)),
		))
	}
	return Section(
		g.Attr("data-section", SectionFeatures),
		ID(SectionFeatures),
		H2(g.Text("Features")),
		Div(Class("grid"), g.Group(items)),
	)
}

func howItWorks(content ports.PageContent) g.Node {
	items := make([]g.Node, 0, len(content.Steps))
	for i, step := range content.Steps {
		items = append(items, Div(
			Class("card"),
			H3(g.Text(fmt.Sprintf("%d. %s", i+1, step.Title))),
			P(Class("muted"), g.Text(step.Description)),
		))
	}
	return Section(
		g.Attr("data-section", SectionHowItWorks),
		ID(SectionHowItWorks),
		H2(g.Text("How it works")),
		Div(Class("grid"), g.Group(items)),
	)
}

func pricing(content ports.PageContent) g.Node {
	card := content.Pricing
	bullets := make([]g.Node, 0, len(card.Bullets))
	for _, bullet := range card.Bullets {
		bullets = append(bullets, Li(g.Text(bullet)))
	}
	return Section(
		g.Attr("data-section", SectionPricing),
		ID(SectionPricing),
		H2(g.Text(card.PlanName)),
		P(
			Span(g.Text(card.Price)),
			Span(Class("muted"), g.Text(" "+card.Period)),
		),
		Ul(g.Group(bullets)),
		Button(
			Class("btn"),
			g.Attr("data-track-cta", card.CTALabel),
			g.Attr("data-cta-location", SectionPricing),
			g.Attr("data-checkout", "1"),
			g.Text(card.CTALabel),
		),
	)
}

func waitlist(content ports.PageContent) g.Node {
	return Section(
		g.Attr("data-section", SectionWaitlist),
		ID(SectionWaitlist),
		H2(g.Text(content.WaitlistTitle)),
		P(Class("muted"), g.Text(content.WaitlistBlurb)),
		Form(
			ID("waitlist-form"),
			Input(Type("email"), Name("email"), ID("waitlist-email"), Required()),
			Button(Type("submit"), Class("btn"), ID("waitlist-submit"), g.Text("Join waitlist")),
			Div(Class("form-message"), ID("waitlist-message")),
		),
	)
}

func ctaSection(content ports.PageContent) g.Node {
	return Section(
		g.Attr("data-section", SectionCTA),
		ID(SectionCTA),
		H2(g.Text(content.CTAHeadline)),
		Button(
			Class("btn"),
			g.Attr("data-track-cta", content.CTALabel),
			g.Attr("data-cta-location", SectionCTA),
			g.Attr("data-checkout", "1"),
			g.Text(content.CTALabel),
		),
	)
}

func contactWidget(content ports.PageContent) g.Node {
	channels := make([]g.Node, 0, len(content.Contact))
	for _, channel := range content.Contact {
		channels = append(channels, A(
			Href(channel.URL),
			g.Attr("data-contact-channel", channel.Channel),
			g.Text(channel.Label),
		))
	}
	return Div(
		ID("contact-widget"),
		g.Attr("data-contact-widget", "1"),
		Details(
			Summary(g.Text("Contact")),
			g.Group(channels),
		),
	)
}

func pageFooter(_ ports.PageContent) g.Node {
	return Footer(
		P(Class("muted"), g.Text("Framewise. Desktop video creation.")),
	)
}
