package web

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"marquee/contexts/landing-experience/variant-service/ports"
)

// Layout is the shared page shell. Styling comes entirely from the variant's
// theme tokens; the beacon script picks up session and variant from the
// bootstrap object.
func Layout(profile ports.VariantProfile, sessionID string, content ...g.Node) g.Node {
	lang := "en"
	if profile.Content.Locale == "pt-BR" {
		lang = "pt-BR"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang(lang),
			g.Attr("data-variant", string(profile.ID)),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(profile.Content.Title)),
				Meta(Name("description"), Content(profile.Content.Description)),
				StyleEl(g.Raw(themeCSS(profile.Theme))),
			),
			Body(
				g.Group(content),
				Script(g.Raw(fmt.Sprintf(
					"window.__marquee = {session: %q, variant: %q};",
					sessionID, string(profile.ID),
				))),
				Script(Src("/static/beacon.js"), Defer()),
			),
		),
	})
}

func themeCSS(theme ports.Theme) string {
	return fmt.Sprintf(`:root{
--bg:%s;--surface:%s;--primary:%s;--primary-text:%s;--accent:%s;
--text:%s;--muted:%s;--border:%s;--radius:%s;
--heading-font:%s;--body-font:%s;
}
*{box-sizing:border-box;margin:0}
body{background:var(--bg);color:var(--text);font-family:var(--body-font);line-height:1.6}
h1,h2,h3{font-family:var(--heading-font);line-height:1.15}
section{padding:64px 24px;max-width:1080px;margin:0 auto}
.card{background:var(--surface);border:1px solid var(--border);border-radius:var(--radius);padding:24px}
.btn{display:inline-block;background:var(--primary);color:var(--primary-text);border:1px solid var(--border);
border-radius:var(--radius);padding:12px 28px;font-weight:700;cursor:pointer;text-decoration:none}
.btn:disabled{opacity:.6;cursor:wait}
.muted{color:var(--muted)}
.grid{display:grid;gap:24px;grid-template-columns:repeat(auto-fit,minmax(220px,1fr))}
input[type=email]{padding:12px;border:1px solid var(--border);border-radius:var(--radius);min-width:260px}
.form-message{min-height:1.5em;margin-top:8px}
.swatch{width:120px;height:72px;border:1px solid var(--border);border-radius:var(--radius)}
footer{border-top:1px solid var(--border);padding:32px 24px;text-align:center}`,
		theme.Background, theme.Surface, theme.Primary, theme.PrimaryText, theme.Accent,
		theme.Text, theme.MutedText, theme.Border, theme.Radius,
		theme.HeadingFont, theme.BodyFont,
	)
}
