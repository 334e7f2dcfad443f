package main

// ── Base layout ───────────────────────────────────────────────────────────────

const tmplBase = `
{{define "base"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>Shadow Viewer</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:system-ui,-apple-system,'Segoe UI',sans-serif;background:#f6f7f9;color:#1f2328;font-size:14px;line-height:1.5}
code{font-family:'JetBrains Mono',monospace;font-size:12px;background:#eaeef2;padding:1px 4px;border-radius:4px}
.container{max-width:1200px;margin:0 auto;padding:20px}
h1{font-size:20px;font-weight:700;margin-bottom:16px}
h2{font-size:13px;font-weight:600;color:#57606a;margin-bottom:8px}
.controls{display:flex;gap:24px;flex-wrap:wrap;align-items:flex-end;background:#fff;border:1px solid #d0d7de;border-radius:8px;padding:12px 16px;margin-bottom:16px}
.control{display:flex;flex-direction:column;gap:4px;min-width:220px}
.control label{font-size:13px;color:#57606a}
.control .value{font-weight:700;color:#1f2328}
.control input[type=range]{width:100%}
button{background:#1f6feb;border:none;color:#fff;padding:6px 14px;border-radius:6px;cursor:pointer;font-size:13px}
button:hover{background:#1a5fd0}
.grid{display:grid;grid-template-columns:repeat(auto-fit,minmax(320px,1fr));gap:16px}
.card{background:#fff;border:1px solid #d0d7de;border-radius:8px;padding:12px}
.card img{display:block;width:100%;height:auto;background:repeating-conic-gradient(#eee 0 25%,#fff 0 50%) 0 0/16px 16px;border-radius:4px}
.note{margin-top:12px;font-size:13px;color:#555}
</style>
</head>
<body>
{{template "content" .}}
</body>
</html>
{{end}}
`

// ── Viewer ────────────────────────────────────────────────────────────────────

const tmplViewer = `
{{define "content"}}
<div id="app">
<div class="container">
  <h1>Realistic Shadow Generator — Output Viewer</h1>

  <div class="controls">
    <div class="control">
      <label>Light Angle (0–360): <span class="value" id="angleValue">{{.Angle}}</span>°</label>
      <input id="angle" type="range" min="0" max="360" value="{{.Angle}}">
    </div>

    <div class="control">
      <label>Elevation (0–90): <span class="value" id="elevValue">{{.Elev}}</span>°</label>
      <input id="elev" type="range" min="0" max="90" value="{{.Elev}}">
    </div>

    <button id="refresh" type="button">Refresh Images</button>
    <noscript><a href="/">Refresh Images</a></noscript>
  </div>

  <div class="grid">
    {{- range .Outputs.Images}}
    <div class="card">
      <h2>{{.Title}}</h2>
      <img id="{{.ID}}" src="{{.URL}}" alt="{{.Alt}}">
    </div>
    {{- end}}
  </div>

  <p class="note">
    Sliders are for viewing/debug only. Generate new images, write them to <code>{{.OutputDir}}</code>, then click “Refresh Images”.
  </p>
</div>
</div>

<script>
(function(){
var PATHS = {{.Paths}};

function buildOutputsUrl(ts){
  var q = '?t=' + ts;
  return {composite: PATHS.composite + q, shadow: PATHS.shadow + q, mask: PATHS.mask + q};
}

function setSrc(img, src){
  if (!img) return;
  img.src = '';
  img.src = src;
}

function onInput(input, label){
  if (!input) return;
  input.addEventListener('input', function(){
    if (label) label.textContent = String(Math.round(Number(input.value)));
  });
}

function init(){
  var app = document.getElementById('app');
  if (!app) return;

  onInput(document.getElementById('angle'), document.getElementById('angleValue'));
  onInput(document.getElementById('elev'), document.getElementById('elevValue'));

  var imgComposite = document.getElementById('imgComposite');
  var imgShadow    = document.getElementById('imgShadow');
  var imgMask      = document.getElementById('imgMask');

  var refresh = document.getElementById('refresh');
  if (!refresh) return;
  refresh.addEventListener('click', function(){
    var urls = buildOutputsUrl(Date.now());
    setSrc(imgComposite, urls.composite);
    setSrc(imgShadow, urls.shadow);
    setSrc(imgMask, urls.mask);
  });
}

init();
})();
</script>
{{end}}
`
