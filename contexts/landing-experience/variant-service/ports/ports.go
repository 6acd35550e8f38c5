package ports

import "context"

// Variant identifies one visual presentation of the landing page.
// Exactly one variant is active per page view.
type Variant string

const (
	VariantNeoBrutalist         Variant = "neo_brutalist"
	VariantModern               Variant = "modern"
	VariantModernDark           Variant = "modern_dark"
	VariantModernLight          Variant = "modern_light"
	VariantProductionStudio     Variant = "production_studio"
	VariantPremium              Variant = "premium"
	VariantNeoBrutalistPTBR     Variant = "neo_brutalist_ptbr"
	VariantModernPTBR           Variant = "modern_ptbr"
	VariantProductionStudioPTBR Variant = "production_studio_ptbr"
)

type Swatch struct {
	Name string
	Hex  string
}

// Theme carries the design tokens that drive a variant's markup.
type Theme struct {
	Background  string
	Surface     string
	Primary     string
	PrimaryText string
	Accent      string
	Text        string
	MutedText   string
	Border      string
	HeadingFont string
	BodyFont    string
	Radius      string
	Palette     []Swatch
	Spacing     []string
}

type Feature struct {
	Icon        string
	Title       string
	Description string
}

type Step struct {
	Title       string
	Description string
}

type PricingCard struct {
	PlanName string
	Price    string
	Period   string
	Bullets  []string
	CTALabel string
}

type ContactChannel struct {
	Channel string
	Label   string
	URL     string
}

// PageContent is the copy preset for one variant. Markup is driven purely
// from this mapping; no per-variant interaction logic exists.
type PageContent struct {
	Locale        string
	Title         string
	Description   string
	HeroHeadline  string
	HeroSubtitle  string
	HeroCTALabel  string
	Features      []Feature
	Steps         []Step
	Pricing       PricingCard
	WaitlistTitle string
	WaitlistBlurb string
	CTAHeadline   string
	CTALabel      string
	Contact       []ContactChannel
}

type VariantProfile struct {
	ID      Variant
	Theme   Theme
	Content PageContent
}

// PreferenceStore persists the last-resolved variant identifier. The live
// implementation is the visitor's cookie, adapted at the HTTP layer.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key string, value string) error
}
