package render

// renderDocument wraps a rendered article body into a standalone HTML page.
// Styling is deliberately self-contained so the output needs no assets.
func renderDocument(title, body string) string {
	return `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>` + esc(title) + `</title>
  <style>` + documentCSS + `</style>
</head>
<body>
  <main>
` + body + `
  </main>
</body>
</html>`
}

func renderNotFound() string {
	return `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Post not found</title>
  <style>` + documentCSS + `</style>
</head>
<body>
  <main class="not-found">
    <h1>Post not found</h1>
    <p>The article you are looking for has been moved or no longer exists.</p>
    <p><a href="/blog">Back to the blog</a></p>
  </main>
</body>
</html>`
}

const documentCSS = `
    body { margin: 0; padding: 24px; font: 16px/1.7 -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; color: #1f2937; background: #fff; }
    main { max-width: 880px; margin: 0 auto; }
    article h1 { margin: 0 0 12px; font-size: 32px; line-height: 1.25; }
    article time, .post-meta { color: #6b7280; font-size: 14px; }
    .badge, .kicker { display: inline-block; margin-bottom: 8px; padding: 2px 10px; border-radius: 999px; background: #065f46; color: #fff; font-size: 12px; text-transform: uppercase; letter-spacing: .06em; }
    .post-content { margin-top: 24px; }
    .post-heading { margin: 28px 0 12px; }
    .post-paragraph { margin: 0 0 16px; }
    .post-figure { margin: 24px 0; }
    .post-figure img { max-width: 100%; border-radius: 8px; }
    .post-video { position: relative; margin: 24px 0; aspect-ratio: 16 / 9; }
    .post-video iframe { width: 100%; height: 100%; border: 0; border-radius: 8px; }
    .post-list { margin: 0 0 16px; padding-left: 24px; }
    .classic-banner, .split-banner, .quote-banner, .inverted-banner, .headline-banner, .card-banner, .magazine-banner { width: 100%; border-radius: 10px; margin-bottom: 20px; }
    .layout-split { display: grid; grid-template-columns: 280px 1fr; gap: 32px; }
    .layout-split .split-rail { position: sticky; top: 24px; align-self: start; }
    .layout-quote .quote-header { text-align: center; margin-bottom: 24px; }
    .layout-inverted { background: #111827; color: #f9fafb; padding: 32px; border-radius: 12px; }
    .layout-inverted .post-meta, .layout-inverted time { color: #9ca3af; }
    .layout-headline .headline-title { font-size: 44px; }
    .layout-card .card-frame { border: 1px solid #e5e7eb; border-radius: 12px; padding: 28px; box-shadow: 0 1px 3px rgba(0,0,0,.08); }
    .layout-magazine .post-columns { column-count: 2; column-gap: 36px; }
    .layout-magazine .magazine-masthead { border-bottom: 3px solid #111827; padding-bottom: 12px; margin-bottom: 20px; }
    .not-found { text-align: center; padding-top: 80px; }
    .not-found a { color: #065f46; }
    @media (max-width: 720px) { .layout-split { grid-template-columns: 1fr; } .layout-magazine .post-columns { column-count: 1; } }
`
