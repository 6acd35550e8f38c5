package application

import (
	domainerrors "marquee/contexts/landing-experience/variant-service/domain/errors"
	"marquee/contexts/landing-experience/variant-service/ports"
)

// Registry holds the closed set of supported variants with their theme and
// content presets.
type Registry struct {
	profiles map[ports.Variant]ports.VariantProfile
	order    []ports.Variant
}

func NewRegistry() *Registry {
	r := &Registry{profiles: map[ports.Variant]ports.VariantProfile{}}
	for _, profile := range defaultProfiles() {
		r.profiles[profile.ID] = profile
		r.order = append(r.order, profile.ID)
	}
	return r
}

// Lookup validates a raw identifier against the supported set.
func (r *Registry) Lookup(raw string) (ports.Variant, bool) {
	profile, ok := r.profiles[ports.Variant(raw)]
	if !ok {
		return "", false
	}
	return profile.ID, true
}

func (r *Registry) Profile(variant ports.Variant) (ports.VariantProfile, error) {
	profile, ok := r.profiles[variant]
	if !ok {
		return ports.VariantProfile{}, domainerrors.ErrUnknownVariant
	}
	return profile, nil
}

func (r *Registry) Supported() []ports.Variant {
	return append([]ports.Variant(nil), r.order...)
}

func (r *Registry) Profiles() []ports.VariantProfile {
	profiles := make([]ports.VariantProfile, 0, len(r.order))
	for _, id := range r.order {
		profiles = append(profiles, r.profiles[id])
	}
	return profiles
}

func defaultProfiles() []ports.VariantProfile {
	spacing := []string{"4px", "8px", "16px", "24px", "32px", "48px", "64px", "96px"}

	neoBrutalistTheme := ports.Theme{
		Background:  "#fdf6e3",
		Surface:     "#ffffff",
		Primary:     "#ff5d5d",
		PrimaryText: "#111111",
		Accent:      "#ffd93d",
		Text:        "#111111",
		MutedText:   "#444444",
		Border:      "#111111",
		HeadingFont: "'Archivo Black', sans-serif",
		BodyFont:    "'Space Grotesk', sans-serif",
		Radius:      "0",
		Spacing:     spacing,
		Palette: []ports.Swatch{
			{Name: "paper", Hex: "#fdf6e3"},
			{Name: "ink", Hex: "#111111"},
			{Name: "coral", Hex: "#ff5d5d"},
			{Name: "lemon", Hex: "#ffd93d"},
		},
	}

	modernTheme := ports.Theme{
		Background:  "#f8fafc",
		Surface:     "#ffffff",
		Primary:     "#6366f1",
		PrimaryText: "#ffffff",
		Accent:      "#22d3ee",
		Text:        "#0f172a",
		MutedText:   "#64748b",
		Border:      "#e2e8f0",
		HeadingFont: "'Inter', sans-serif",
		BodyFont:    "'Inter', sans-serif",
		Radius:      "12px",
		Spacing:     spacing,
		Palette: []ports.Swatch{
			{Name: "slate", Hex: "#f8fafc"},
			{Name: "indigo", Hex: "#6366f1"},
			{Name: "cyan", Hex: "#22d3ee"},
			{Name: "midnight", Hex: "#0f172a"},
		},
	}

	modernDarkTheme := modernTheme
	modernDarkTheme.Background = "#0b1020"
	modernDarkTheme.Surface = "#151b2e"
	modernDarkTheme.Text = "#e2e8f0"
	modernDarkTheme.MutedText = "#94a3b8"
	modernDarkTheme.Border = "#273049"
	modernDarkTheme.Palette = []ports.Swatch{
		{Name: "void", Hex: "#0b1020"},
		{Name: "panel", Hex: "#151b2e"},
		{Name: "indigo", Hex: "#6366f1"},
		{Name: "cyan", Hex: "#22d3ee"},
	}

	modernLightTheme := modernTheme
	modernLightTheme.Background = "#ffffff"
	modernLightTheme.Surface = "#f1f5f9"

	studioTheme := ports.Theme{
		Background:  "#18181b",
		Surface:     "#232329",
		Primary:     "#f97316",
		PrimaryText: "#18181b",
		Accent:      "#fbbf24",
		Text:        "#fafafa",
		MutedText:   "#a1a1aa",
		Border:      "#2e2e36",
		HeadingFont: "'Sora', sans-serif",
		BodyFont:    "'Sora', sans-serif",
		Radius:      "8px",
		Spacing:     spacing,
		Palette: []ports.Swatch{
			{Name: "charcoal", Hex: "#18181b"},
			{Name: "panel", Hex: "#232329"},
			{Name: "amber", Hex: "#f97316"},
			{Name: "gold", Hex: "#fbbf24"},
		},
	}

	premiumTheme := ports.Theme{
		Background:  "#0c0a09",
		Surface:     "#1c1917",
		Primary:     "#d4af37",
		PrimaryText: "#0c0a09",
		Accent:      "#f5f5f4",
		Text:        "#f5f5f4",
		MutedText:   "#a8a29e",
		Border:      "#292524",
		HeadingFont: "'Playfair Display', serif",
		BodyFont:    "'Inter', sans-serif",
		Radius:      "4px",
		Spacing:     spacing,
		Palette: []ports.Swatch{
			{Name: "onyx", Hex: "#0c0a09"},
			{Name: "espresso", Hex: "#1c1917"},
			{Name: "gold", Hex: "#d4af37"},
			{Name: "ivory", Hex: "#f5f5f4"},
		},
	}

	en := englishContent()
	ptbr := portugueseContent()

	return []ports.VariantProfile{
		{ID: ports.VariantNeoBrutalist, Theme: neoBrutalistTheme, Content: en},
		{ID: ports.VariantModern, Theme: modernTheme, Content: en},
		{ID: ports.VariantModernDark, Theme: modernDarkTheme, Content: en},
		{ID: ports.VariantModernLight, Theme: modernLightTheme, Content: en},
		{ID: ports.VariantProductionStudio, Theme: studioTheme, Content: en},
		{ID: ports.VariantPremium, Theme: premiumTheme, Content: en},
		{ID: ports.VariantNeoBrutalistPTBR, Theme: neoBrutalistTheme, Content: ptbr},
		{ID: ports.VariantModernPTBR, Theme: modernTheme, Content: ptbr},
		{ID: ports.VariantProductionStudioPTBR, Theme: studioTheme, Content: ptbr},
	}
}

func englishContent() ports.PageContent {
	return ports.PageContent{
		Locale:       "en",
		Title:        "Framewise — Make 1000 videos before lunch",
		Description:  "Framewise is the desktop studio that turns one recording into a month of short-form video.",
		HeroHeadline: "Create videos 10x faster",
		HeroSubtitle: "One recording in, a month of clips out. Framewise cuts, captions and resizes on your machine, not in a browser tab.",
		HeroCTALabel: "Get started",
		Features: []ports.Feature{
			{Icon: "✂️", Title: "Auto-cut", Description: "Silence, filler words and dead air removed in one pass."},
			{Icon: "💬", Title: "Captions that stick", Description: "Styled captions rendered straight onto every clip."},
			{Icon: "📐", Title: "Every aspect ratio", Description: "Vertical, square and widescreen exports from the same timeline."},
			{Icon: "⚡", Title: "Runs on your desktop", Description: "No upload queue. Your GPU does the work."},
		},
		Steps: []ports.Step{
			{Title: "Record once", Description: "Drop in any screen recording, podcast or talking-head video."},
			{Title: "Review the cuts", Description: "Framewise proposes clips; you approve or tweak them."},
			{Title: "Export everywhere", Description: "Batch-export for every platform in one click."},
		},
		Pricing: ports.PricingCard{
			PlanName: "Creator",
			Price:    "$29",
			Period:   "per month",
			Bullets: []string{
				"Unlimited local exports",
				"All caption styles",
				"Every aspect ratio",
				"Priority support",
			},
			CTALabel: "Start subscription",
		},
		WaitlistTitle: "Not ready to buy?",
		WaitlistBlurb: "Join the waitlist and we will tell you when the next cohort opens.",
		CTAHeadline:   "Your backlog of recordings is a content library.",
		CTALabel:      "Start creating",
		Contact: []ports.ContactChannel{
			{Channel: "email", Label: "Email us", URL: "mailto:hello@framewise.app"},
			{Channel: "telegram", Label: "Telegram", URL: "https://t.me/framewise"},
			{Channel: "whatsapp", Label: "WhatsApp", URL: "https://wa.me/framewise"},
		},
	}
}

func portugueseContent() ports.PageContent {
	return ports.PageContent{
		Locale:       "pt-BR",
		Title:        "Framewise — Faça 1000 vídeos antes do almoço",
		Description:  "Framewise é o estúdio de desktop que transforma uma gravação em um mês de vídeos curtos.",
		HeroHeadline: "Crie vídeos 10x mais rápido",
		HeroSubtitle: "Uma gravação entra, um mês de clipes sai. O Framewise corta, legenda e redimensiona na sua máquina.",
		HeroCTALabel: "Começar agora",
		Features: []ports.Feature{
			{Icon: "✂️", Title: "Corte automático", Description: "Silêncios e vícios de linguagem removidos em uma passada."},
			{Icon: "💬", Title: "Legendas com estilo", Description: "Legendas estilizadas renderizadas em cada clipe."},
			{Icon: "📐", Title: "Todos os formatos", Description: "Vertical, quadrado e widescreen a partir da mesma timeline."},
			{Icon: "⚡", Title: "Roda no seu desktop", Description: "Sem fila de upload. Sua GPU faz o trabalho."},
		},
		Steps: []ports.Step{
			{Title: "Grave uma vez", Description: "Solte qualquer gravação de tela, podcast ou vídeo falado."},
			{Title: "Revise os cortes", Description: "O Framewise propõe clipes; você aprova ou ajusta."},
			{Title: "Exporte para tudo", Description: "Exportação em lote para cada plataforma em um clique."},
		},
		Pricing: ports.PricingCard{
			PlanName: "Criador",
			Price:    "R$149",
			Period:   "por mês",
			Bullets: []string{
				"Exportações locais ilimitadas",
				"Todos os estilos de legenda",
				"Todos os formatos",
				"Suporte prioritário",
			},
			CTALabel: "Assinar",
		},
		WaitlistTitle: "Ainda não está pronto?",
		WaitlistBlurb: "Entre na lista de espera e avisaremos quando a próxima turma abrir.",
		CTAHeadline:   "Seu arquivo de gravações é uma biblioteca de conteúdo.",
		CTALabel:      "Começar a criar",
		Contact: []ports.ContactChannel{
			{Channel: "email", Label: "E-mail", URL: "mailto:ola@framewise.app"},
			{Channel: "telegram", Label: "Telegram", URL: "https://t.me/framewise"},
			{Channel: "whatsapp", Label: "WhatsApp", URL: "https://wa.me/framewise"},
		},
	}
}
