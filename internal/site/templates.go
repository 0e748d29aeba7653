package site

// Paths of the embedded assets relative to the site root.
const (
	StylePath  = "style.css"
	ScriptPath = "script.js"
)

// Asset returns an embedded asset and its content type.
func Asset(name string) (content []byte, contentType string, ok bool) {
	switch name {
	case StylePath:
		return []byte(styleSheet), "text/css; charset=utf-8", true
	case ScriptPath:
		return []byte(jsContent), "text/javascript; charset=utf-8", true
	}
	return nil, "", false
}

// defaultShell is the page used when no shell file is configured. The
// renderer only relies on the element ids, so a custom shell may change
// everything else.
const defaultShell = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Home</title>
  <link rel="stylesheet" href="style.css">
</head>
<body>
  <header class="site-header">
    <div class="container nav-bar">
      <a class="brand" href="#home">Home</a>
      <button class="nav-toggle" type="button" aria-expanded="false" aria-controls="nav-list" aria-label="Toggle navigation">
        <svg width="22" height="22" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <line x1="3" y1="6" x2="21" y2="6"/><line x1="3" y1="12" x2="21" y2="12"/><line x1="3" y1="18" x2="21" y2="18"/>
        </svg>
      </button>
      <ul class="nav-list" id="nav-list"></ul>
    </div>
  </header>
  <main id="main">
    <section id="home" class="container hero">
      <div id="about" class="about"></div>
      <div id="hero-links"></div>
    </section>
    <section id="publications" class="container">
      <h2 class="section-title">Publications</h2>
      <input id="pub-search" class="search" type="search" placeholder="Search publications..." autocomplete="off">
      <div id="publications-filters" class="chip-row"></div>
      <ul id="publications-list" class="pub-list"></ul>
    </section>
    <section id="presentations" class="container">
      <h2 class="section-title">Presentations</h2>
      <div id="presentations-list" class="stack"></div>
    </section>
    <section id="cv" class="container">
      <h2 class="section-title">CV</h2>
    </section>
    <section id="demos" class="container">
      <h2 class="section-title">Demos</h2>
      <div id="demos-grid" class="grid"></div>
    </section>
    <section id="teaching" class="container">
      <h2 class="section-title">Teaching</h2>
      <div id="teaching-list" class="stack"></div>
    </section>
    <section id="outreach" class="container">
      <h2 class="section-title">Outreach</h2>
      <div id="outreach-list" class="stack"></div>
    </section>
    <section id="contact" class="container">
      <h2 class="section-title">Contact</h2>
      <p><a id="email-link" href="#contact"></a></p>
      <address id="address"></address>
      <ul id="elsewhere-list"></ul>
    </section>
  </main>
  <footer class="container footer">&copy; <span id="year"></span></footer>
  <script src="script.js"></script>
</body>
</html>`

// styleSheet is the served stylesheet: the shell rules followed by the
// code highlighting rules.
var styleSheet = cssContent + "\n" + codeCSS()

// cssContent is the stylesheet for the default shell.
const cssContent = `:root {
  --bg: #ffffff;
  --fg: #1f2328;
  --muted: #5f6368;
  --line: #e3e6ea;
  --accent: #1a73e8;
  --chip: #f1f3f4;
  --radius: 12px;
  --max: 960px;
}
* { box-sizing: border-box; }
body {
  margin: 0;
  font: 16px/1.55 system-ui, -apple-system, "Segoe UI", Roboto, sans-serif;
  color: var(--fg);
  background: var(--bg);
}
a { color: var(--accent); text-decoration: none; }
a:hover { text-decoration: underline; }
.container { max-width: var(--max); margin: 0 auto; padding: 0 1rem; }
section { padding: 2.5rem 0 1rem; scroll-margin-top: 80px; }
.section-title { font-size: 1.35rem; font-weight: 600; margin: 0 0 1rem; }
.muted { color: var(--muted); }
.small { font-size: .9rem; }

/* Navigation */
.site-header { position: sticky; top: 0; background: var(--bg); border-bottom: 1px solid var(--line); z-index: 10; }
.nav-bar { display: flex; align-items: center; gap: 1rem; min-height: 60px; }
.brand { font-weight: 600; color: var(--fg); margin-right: auto; }
.nav-list { display: flex; gap: .25rem; list-style: none; margin: 0; padding: 0; }
.nav-list a { display: block; padding: .4rem .7rem; border-radius: 999px; color: var(--muted); }
.nav-list a[aria-current="page"] { background: var(--chip); color: var(--fg); }
.nav-toggle { display: none; background: none; border: 0; color: var(--fg); cursor: pointer; }
@media (max-width: 760px) {
  .nav-toggle { display: block; }
  .nav-list { display: none; position: absolute; top: 60px; left: 0; right: 0; flex-direction: column; background: var(--bg); border-bottom: 1px solid var(--line); padding: .5rem 1rem; }
  .nav-list.open { display: flex; }
}

/* Hero */
.icon-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(120px, 1fr)); gap: .75rem; margin-top: 1.25rem; }
.icon-tile { display: flex; flex-direction: column; align-items: center; gap: .4rem; padding: .9rem .5rem; border: 1px solid var(--line); border-radius: var(--radius); color: var(--fg); }
.icon-tile svg { width: 26px; height: 26px; }
.icon-tile .label { font-size: .9rem; text-align: center; }

/* Chips and buttons */
.chip-row { display: flex; flex-wrap: wrap; gap: .4rem; margin: .75rem 0 1rem; }
.chip { display: inline-block; padding: .2rem .65rem; border: 1px solid var(--line); border-radius: 999px; background: var(--chip); font-size: .85rem; color: var(--fg); cursor: pointer; }
.chip[aria-pressed="true"] { background: var(--accent); border-color: var(--accent); color: #fff; }
.button { display: inline-flex; align-items: center; gap: .35rem; padding: .3rem .75rem; border: 1px solid var(--line); border-radius: 999px; font-size: .9rem; color: var(--fg); }
.button svg { width: 16px; height: 16px; }
.search { width: 100%; padding: .6rem .9rem; border: 1px solid var(--line); border-radius: var(--radius); font: inherit; }

/* Publications */
.pub-list { list-style: none; margin: 0; padding: 0; }
.pub { padding: 1rem 0; border-bottom: 1px solid var(--line); }
.pub .meta { display: flex; flex-wrap: wrap; gap: .3rem; margin-bottom: .35rem; }
.pub .title { font-weight: 600; }
.pub .citation { color: var(--muted); font-size: .95rem; }
.pub .links, .item-links, .pub-links, .tile .links { display: flex; flex-wrap: wrap; gap: .4rem; margin-top: .5rem; }

/* Cards, tiles, items */
.stack { display: flex; flex-direction: column; gap: 1rem; }
.grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(260px, 1fr)); gap: 1rem; }
.card, .tile { border: 1px solid var(--line); border-radius: var(--radius); }
.pad, .tile { padding: 1rem 1.1rem; }
.tile h3 { margin: 0 0 .4rem; font-size: 1.05rem; }
.item { padding: .75rem 0; border-bottom: 1px solid var(--line); }
.kicker { font-size: .8rem; text-transform: uppercase; letter-spacing: .04em; color: var(--muted); }
.item-title { font-weight: 600; }
.presentation-head { display: flex; justify-content: space-between; gap: 12px; align-items: flex-start; flex-wrap: wrap; }
.presentation-head .section-title { margin: 0 0 4px; font-size: 1.1rem; }
.presentation-desc { margin: 10px 0 12px; }
.pill-row, .meta { display: flex; flex-wrap: wrap; gap: .3rem; }
.pill-row { margin: 0 0 12px; }
.pill { padding: .15rem .6rem; border-radius: 999px; background: var(--chip); font-size: .8rem; }
.embed-frame { border-radius: var(--radius); overflow: hidden; border: 1px solid var(--line); }
.ratio-16x9 { position: relative; padding-top: 56.25%; }
.ratio-16x9 iframe { position: absolute; inset: 0; width: 100%; height: 100%; border: 0; }
.load-error .card { padding: 1rem; border-color: #f1b2ad; background: #fdf0ef; }
.footer { padding: 2rem 1rem; color: var(--muted); font-size: .9rem; }
`

// jsContent runs the parts of the page that depend on layout or input:
// the mobile menu, active-section highlighting and publication filtering.
// Filtering mirrors publications.Matches; when the list carries a
// data-endpoint the server does the filtering instead.
const jsContent = `(function() {
  function normalize(s) {
    return (s || "").toLowerCase().replace(/\s+/g, " ").trim();
  }

  // Mobile navigation
  var toggle = document.querySelector(".nav-toggle");
  var navList = document.getElementById("nav-list");
  if (toggle && navList) {
    toggle.addEventListener("click", function() {
      var open = navList.classList.toggle("open");
      toggle.setAttribute("aria-expanded", open ? "true" : "false");
    });
    navList.addEventListener("click", function(e) {
      if (e.target.closest("a")) navList.classList.remove("open");
    });
  }

  // Active section: the last section whose top is at or above scrollY + 120.
  function setActiveNav() {
    var sections = Array.prototype.slice.call(document.querySelectorAll("main section[id]"));
    var links = document.querySelectorAll(".nav-list a");
    var top = window.scrollY + 120;
    var current = sections.length ? sections[0].id : "home";
    sections.forEach(function(s) {
      if (s.offsetTop <= top) current = s.id;
    });
    links.forEach(function(a) {
      a.setAttribute("aria-current", a.getAttribute("href") === "#" + current ? "page" : "false");
    });
  }
  setActiveNav();
  window.addEventListener("scroll", setActiveNav, { passive: true });
  window.setTimeout(setActiveNav, 250);

  // Publications
  var list = document.getElementById("publications-list");
  var filters = document.getElementById("publications-filters");
  var search = document.getElementById("pub-search");
  if (!list) return;

  var state = { tag: "All", q: "" };
  var pressed = filters ? filters.querySelector('[aria-pressed="true"]') : null;
  if (pressed) state.tag = pressed.getAttribute("data-tag");
  if (search) state.q = normalize(search.value);

  function placeholder() {
    var li = document.createElement("li");
    li.className = "pub pub-empty";
    li.innerHTML = '<div class="title">No matches.</div><div class="citation">Try a different search term or filter.</div>';
    return li;
  }

  function filterLocal() {
    var shown = 0;
    list.querySelectorAll("li.pub[data-text]").forEach(function(li) {
      var tags = [];
      try { tags = JSON.parse(li.getAttribute("data-tags") || "[]") || []; } catch (e) {}
      var ok = (state.tag === "All" || tags.indexOf(state.tag) !== -1) &&
        (!state.q || (li.getAttribute("data-text") || "").indexOf(state.q) !== -1);
      li.hidden = !ok;
      if (ok) shown++;
    });
    var empty = list.querySelector("li.pub-empty");
    if (!empty && shown === 0) list.appendChild(empty = placeholder());
    if (empty) empty.hidden = shown !== 0;
  }

  var pending = null;
  function filterRemote(endpoint) {
    var params = new URLSearchParams();
    if (state.tag !== "All") params.set("tag", state.tag);
    if (state.q) params.set("q", state.q);
    if (pending) pending.abort();
    pending = new AbortController();
    fetch(endpoint + "?" + params.toString(), { cache: "no-cache", signal: pending.signal })
      .then(function(res) { return res.ok ? res.text() : Promise.reject(res.status); })
      .then(function(html) {
        list.innerHTML = html;
        var qs = params.toString();
        history.replaceState(null, "", location.pathname + (qs ? "?" + qs : "") + location.hash);
      })
      .catch(function() {});
  }

  function apply() {
    var endpoint = list.getAttribute("data-endpoint");
    if (endpoint) filterRemote(endpoint); else filterLocal();
  }

  if (filters) {
    filters.addEventListener("click", function(e) {
      var btn = e.target.closest("button[data-tag]");
      if (!btn) return;
      state.tag = btn.getAttribute("data-tag");
      filters.querySelectorAll("button[data-tag]").forEach(function(b) {
        b.setAttribute("aria-pressed", b === btn ? "true" : "false");
      });
      apply();
    });
  }
  if (search) {
    search.addEventListener("input", function() {
      state.q = normalize(search.value);
      apply();
    });
  }
})();
`
