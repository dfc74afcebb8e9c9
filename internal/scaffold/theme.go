// internal/scaffold/theme.go
// Default file contents written by the scaffolder: the site seed, the
// archetypes, and the full "plain" theme.
package scaffold

const siteYamlContent = `author: Your Name
title: My New Blog
url: https://example.org
description: Yet another gazette site.
timezone: Etc/UTC
lang: en
pagination: 10
staticPaths:
  - images
`

// welcomeContent is executed with the scaffold data, so the sample post
// carries a real date.
const welcomeContent = `---
title: Welcome to your new blog
date: {{ .Date }}
category: misc
tags: [meta]
---

This post was created by ` + "`gazette new site`" + `. Edit or delete it, then
write your own with:

    gazette new article "My first post"

Posts live under ` + "`content/`" + ` as markdown files with a YAML front
matter block. A file dropped into a subdirectory picks up that directory
name as its category.
`

const aboutContent = `---
title: About
---

Tell your readers who you are.
`

const articleArchetype = `---
title: {{ .Title }}
date: {{ .Date }}
category: misc
tags: []
draft: true
---

Write here.
`

const pageArchetype = `---
title: {{ .Title }}
---

Write here.
`

const styleCSSContent = `body {
  font-family: sans-serif;
  max-width: 720px;
  margin: 2em auto;
  padding: 0 1em;
  line-height: 1.6;
  color: #222;
  background: #fdfdfd;
}
header.banner {
  display: flex;
  justify-content: space-between;
  align-items: baseline;
  gap: 1em;
  margin-bottom: 2em;
  flex-wrap: wrap;
}
.site-title { font-size: 1.3em; font-weight: 600; }
.site-title a { color: #222; text-decoration: none; }
header.banner nav a { color: #444; margin-left: 0.75em; text-decoration: none; }
header.banner nav a:hover { text-decoration: underline; }
article.hentry { margin-bottom: 2em; }
article.hentry h2 { margin-bottom: 0.2em; }
.meta { font-size: 0.85em; color: #777; }
.meta a { color: #777; }
.tags a { color: #555; text-decoration: none; margin-right: 0.5em; }
.draft-notice { background: #fff3cd; color: #856404; padding: 0.3em 0.6em; }
nav.pagination { display: flex; justify-content: space-between; margin: 2em 0; }
dl.archives dt { float: left; clear: left; width: 7em; color: #777; font-size: 0.9em; }
dl.archives dd { margin-left: 8em; margin-bottom: 0.25em; }
footer { margin-top: 3em; text-align: center; font-size: 0.9em; color: #555; }
footer nav a { color: #444; text-decoration: none; margin: 0 0.5em; }
hr { border: none; border-top: 1px solid #ccc; width: 33%; margin: 2em auto; }
`

const layoutTemplate = `{{ define "main" }}
<!DOCTYPE html>
<html lang="{{ .Site.DefaultLang }}">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }} | {{ .Site.Title }}</title>
{{ if .Site.Description }}  <meta name="description" content="{{ .Site.Description }}">
{{ end }}  <link rel="stylesheet" href="{{ .Base }}/theme/style.css">
{{ if .FeedURL }}  <link rel="alternate" type="application/atom+xml" title="{{ .Site.Title }}" href="{{ .Base }}/{{ .FeedURL }}">
{{ end }}</head>
<body>
  {{ template "header" . }}
  <main>
    {{ template "content" . }}
  </main>
  {{ template "footer" . }}
</body>
</html>
{{ end }}`

const headerTemplate = `{{ define "header" }}
<header class="banner">
  <div class="site-title"><a href="{{ .Base }}/index.html">{{ .Site.Title }}</a></div>
  <nav>
    <a href="{{ .Base }}/archives.html">archives</a>
    <a href="{{ .Base }}/categories.html">categories</a>
    <a href="{{ .Base }}/tags.html">tags</a>
  </nav>
</header>
{{ end }}`

const footerTemplate = `{{ define "footer" }}
<footer>
{{ if .Site.Links }}  <nav class="blogroll">
    {{ range .Site.Links }}<a href="{{ .URL }}">{{ .Label }}</a>
    {{ end }}</nav>
{{ end }}{{ if .Site.Social }}  <nav class="social">
    {{ range .Site.Social }}<a href="{{ .URL }}">{{ .Label }}</a>
    {{ end }}</nav>
{{ end }}  <div class="copyright">&copy; {{ .Site.Author }}</div>
{{ if .Site.Analytics.PiwikURL }}  <script>
    var _paq = window._paq = window._paq || [];
    _paq.push(['trackPageView']);
    _paq.push(['enableLinkTracking']);
    (function() {
      var u = "//{{ .Site.Analytics.PiwikURL }}/";
      _paq.push(['setTrackerUrl', u + 'matomo.php']);
      _paq.push(['setSiteId', '{{ .Site.Analytics.PiwikSiteID }}']);
      var d = document, g = d.createElement('script'), s = d.getElementsByTagName('script')[0];
      g.async = true; g.src = u + 'matomo.js'; s.parentNode.insertBefore(g, s);
    })();
  </script>
{{ end }}</footer>
{{ end }}`

const listingTemplate = `{{ define "articleList" }}
{{ range .Articles }}
<article class="hentry">
  <h2><a href="{{ $.Base }}/{{ .OutputName $.Site.DefaultLang }}">{{ .Title }}</a></h2>
  <p class="meta">
    <time datetime="{{ .Date.Format "2006-01-02" }}">{{ .Date.Format "2 January 2006" }}</time>
    &middot; <a href="{{ $.Base }}/category/{{ slugify .Category }}.html">{{ .Category }}</a>
  </p>
  <p class="summary">{{ .Summary }}</p>
</article>
{{ else }}
<p class="empty">Nothing published yet.</p>
{{ end }}
{{ end }}

{{ define "pagination" }}
{{ if gt .Window.Total 1 }}
<nav class="pagination">
  <span>{{ if .PrevURL }}<a href="{{ .Base }}/{{ .PrevURL }}">&laquo; newer</a>{{ end }}</span>
  <span>page {{ .Window.Number }} of {{ .Window.Total }}</span>
  <span>{{ if .NextURL }}<a href="{{ .Base }}/{{ .NextURL }}">older &raquo;</a>{{ end }}</span>
</nav>
{{ end }}
{{ end }}`

const indexTemplate = `{{ define "content" }}
{{ template "articleList" . }}
{{ template "pagination" . }}
{{ end }}`

const articleTemplate = `{{ define "content" }}
<article>
  <header>
    <h1>{{ .Article.Title }}</h1>
{{ if .Article.Draft }}    <p class="draft-notice">This is a draft.</p>
{{ end }}    <p class="meta">
      <time datetime="{{ .Article.Date.Format "2006-01-02" }}">{{ .Article.Date.Format "2 January 2006" }}</time>
{{ range .Article.Authors }}      &middot; <a href="{{ $.Base }}/author/{{ slugify . }}.html">{{ . }}</a>
{{ end }}      &middot; <a href="{{ .Base }}/category/{{ slugify .Article.Category }}.html">{{ .Article.Category }}</a>
    </p>
  </header>
  {{ .Article.HTML }}
{{ if .Article.Tags }}  <p class="tags">
    {{ range .Article.Tags }}<a href="{{ $.Base }}/tag/{{ slugify . }}.html">#{{ . }}</a>
    {{ end }}</p>
{{ end }}{{ if .Translations }}  <p class="translations">Also in:
    {{ range .Translations }}<a href="{{ $.Base }}/{{ .OutputName $.Site.DefaultLang }}">{{ .Lang }}</a>
    {{ end }}</p>
{{ end }}{{ if .Site.Comments.DisqusSite }}  <div id="disqus_thread"></div>
  <script>
    var disqus_config = function() {
      this.page.identifier = "{{ .Article.Slug }}";
    };
    (function() {
      var d = document, s = d.createElement('script');
      s.src = 'https://{{ .Site.Comments.DisqusSite }}.disqus.com/embed.js';
      s.setAttribute('data-timestamp', +new Date());
      (d.head || d.body).appendChild(s);
    })();
  </script>
{{ end }}</article>
{{ end }}`

const pageTemplate = `{{ define "content" }}
<article class="page">
  <h1>{{ .Page.Title }}</h1>
  {{ .Page.HTML }}
</article>
{{ end }}`

const categoryTemplate = `{{ define "content" }}
<h1>Category: {{ .Group.Name }}</h1>
{{ template "articleList" . }}
{{ template "pagination" . }}
{{ end }}`

const tagTemplate = `{{ define "content" }}
<h1>Tag: {{ .Group.Name }}</h1>
{{ template "articleList" . }}
{{ template "pagination" . }}
{{ end }}`

const authorTemplate = `{{ define "content" }}
<h1>Articles by {{ .Group.Name }}</h1>
{{ template "articleList" . }}
{{ template "pagination" . }}
{{ end }}`

const archivesTemplate = `{{ define "content" }}
<h1>Archives</h1>
<dl class="archives">
{{ range .Articles }}  <dt>{{ .Date.Format "2006-01-02" }}</dt>
  <dd><a href="{{ $.Base }}/{{ .OutputName $.Site.DefaultLang }}">{{ .Title }}</a></dd>
{{ end }}</dl>
{{ end }}`

const categoriesTemplate = `{{ define "content" }}
<h1>Categories</h1>
<ul class="terms">
{{ range .Groups }}  <li><a href="{{ $.Base }}/category/{{ .Slug }}.html">{{ .Name }}</a> ({{ len .Articles }})</li>
{{ end }}</ul>
{{ end }}`

const tagsTemplate = `{{ define "content" }}
<h1>Tags</h1>
<ul class="terms">
{{ range .Groups }}  <li><a href="{{ $.Base }}/tag/{{ .Slug }}.html">{{ .Name }}</a> ({{ len .Articles }})</li>
{{ end }}</ul>
{{ end }}`

const authorsTemplate = `{{ define "content" }}
<h1>Authors</h1>
<ul class="terms">
{{ range .Groups }}  <li><a href="{{ $.Base }}/author/{{ .Slug }}.html">{{ .Name }}</a> ({{ len .Articles }})</li>
{{ end }}</ul>
{{ end }}`
