package render

import (
	"fmt"
	"time"

	"github.com/emeraldgate/core/internal/models"
)

// TemplateID identifies one of the built-in post layouts. The set is closed:
// dispatch over it is total and anything outside falls back to the classic
// layout.
type TemplateID int

const (
	TemplateClassic TemplateID = iota + 1
	TemplateSplit
	TemplateQuote
	TemplateInverted
	TemplateHeadline
	TemplateCard
	TemplateMagazine
)

const DefaultTemplate = TemplateClassic

// PostMeta is the per-post metadata every layout receives. Each layout
// decides where (and whether) to place each field; the content slot is
// always the same rendered block sequence.
type PostMeta struct {
	Title    string
	Banner   string
	Category string
	Created  time.Time
}

type layoutFunc func(meta PostMeta, content string) string

var layouts = map[TemplateID]layoutFunc{
	TemplateClassic:  layoutClassic,
	TemplateSplit:    layoutSplit,
	TemplateQuote:    layoutQuote,
	TemplateInverted: layoutInverted,
	TemplateHeadline: layoutHeadline,
	TemplateCard:     layoutCard,
	TemplateMagazine: layoutMagazine,
}

// Resolve maps a stored template number onto a known layout. The second
// return reports whether the number was recognized; either way the returned
// id is renderable.
func Resolve(id int) (TemplateID, bool) {
	t := TemplateID(id)
	if _, ok := layouts[t]; ok {
		return t, true
	}
	return DefaultTemplate, false
}

// RenderArticle renders a post's article body with its chosen layout.
func RenderArticle(p *models.PostModel) string {
	id, _ := Resolve(p.TemplateID)

	meta := PostMeta{
		Title:   p.Title,
		Banner:  p.BannerImage,
		Created: p.CreatedAt,
	}
	if p.Category != nil {
		meta.Category = p.Category.Name
	}
	return layouts[id](meta, RenderBlocks(p.Content))
}

func layoutClassic(m PostMeta, content string) string {
	category := m.Category
	if category == "" {
		category = "News"
	}
	return `<article class="layout-classic">` +
		banner(m, "classic-banner") +
		`<header><span class="badge">` + esc(category) + `</span>` +
		`<h1>` + esc(m.Title) + `</h1>` +
		`<time datetime="` + m.Created.Format("2006-01-02") + `">` + m.Created.Format("January 2, 2006") + `</time>` +
		`</header>` +
		`<div class="post-content">` + content + `</div>` +
		`</article>`
}

func layoutSplit(m PostMeta, content string) string {
	return `<article class="layout-split">` +
		`<aside class="split-rail">` +
		banner(m, "split-banner") +
		`<h1>` + esc(m.Title) + `</h1>` +
		metaLine(m) +
		`</aside>` +
		`<div class="post-content">` + content + `</div>` +
		`</article>`
}

func layoutQuote(m PostMeta, content string) string {
	category := m.Category
	if category == "" {
		category = "Journal"
	}
	return `<article class="layout-quote">` +
		`<header class="quote-header">` +
		`<span class="kicker">` + esc(category) + `</span>` +
		`<h1>&ldquo;` + esc(m.Title) + `&rdquo;</h1>` +
		`<time>` + m.Created.Format("Jan 2, 2006") + `</time>` +
		`</header>` +
		banner(m, "quote-banner") +
		`<div class="post-content">` + content + `</div>` +
		`</article>`
}

func layoutInverted(m PostMeta, content string) string {
	return `<article class="layout-inverted">` +
		`<header class="inverted-hero">` +
		`<h1>` + esc(m.Title) + `</h1>` +
		metaLine(m) +
		`</header>` +
		`<div class="post-content">` + content + `</div>` +
		banner(m, "inverted-banner") +
		`</article>`
}

func layoutHeadline(m PostMeta, content string) string {
	return `<article class="layout-headline">` +
		`<h1 class="headline-title">` + esc(m.Title) + `</h1>` +
		`<div class="headline-row">` +
		banner(m, "headline-banner") +
		metaLine(m) +
		`</div>` +
		`<div class="post-content">` + content + `</div>` +
		`</article>`
}

func layoutCard(m PostMeta, content string) string {
	return `<article class="layout-card">` +
		`<div class="card-frame">` +
		banner(m, "card-banner") +
		`<h1>` + esc(m.Title) + `</h1>` +
		metaLine(m) +
		`<div class="post-content">` + content + `</div>` +
		`</div>` +
		`</article>`
}

func layoutMagazine(m PostMeta, content string) string {
	return `<article class="layout-magazine">` +
		`<header class="magazine-masthead">` +
		metaLine(m) +
		`<h1>` + esc(m.Title) + `</h1>` +
		`</header>` +
		banner(m, "magazine-banner") +
		`<div class="post-content post-columns">` + content + `</div>` +
		`</article>`
}

func banner(m PostMeta, class string) string {
	if m.Banner == "" {
		return ""
	}
	return fmt.Sprintf(`<img class="%s" src="%s" alt="%s" />`, class, esc(m.Banner), esc(m.Title))
}

func metaLine(m PostMeta) string {
	s := `<p class="post-meta">`
	if m.Category != "" {
		s += esc(m.Category) + ` &middot; `
	}
	return s + m.Created.Format("Jan 2, 2006") + `</p>`
}
