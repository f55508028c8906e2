package ui

import (
	"bytes"
	"html/template"
)

const cardTmpl = `<div class="max-w-sm rounded overflow-hidden shadow-lg bg-white" data-component="card"{{with .ListingID}} data-listing-id="{{.}}"{{end}}>
  <img class="w-full h-48 object-cover" src="{{.Image}}" alt="{{.Title}}" />
  <div class="px-6 py-4">
    <div class="font-bold text-xl mb-2" data-field="title">{{.Title}}</div>
    <p class="text-gray-700 text-base" data-field="description">{{.Description}}</p>
    <div class="mt-4 flex justify-between items-center">
      <span class="font-bold text-lg" data-field="price">{{.Price}}</span>
      <span class="text-gray-600 text-sm" data-field="location">{{.Location}}</span>
    </div>
  </div>
</div>`

const buttonTmpl = `<button type="{{.Type}}" class="{{.Class}}" data-component="button" data-variant="{{.Variant}}"` +
	`{{with .ID}} id="{{.}}" data-action="/actions/{{.}}"{{end}}{{if .Disabled}} disabled{{end}}>{{.Children}}</button>`

const layoutTmpl = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8" />
<meta name="viewport" content="width=device-width, initial-scale=1.0" />
<meta name="generator" content="{{.Generator}}" />
<title>{{.Title}}</title>
{{- with .Stylesheet}}
<link rel="stylesheet" href="{{.}}" />
{{- end}}
</head>
<body>
{{.Body}}
{{- if .Interactive}}
<script>
document.addEventListener("click", function (e) {
  var b = e.target.closest("button[data-action]");
  if (b && !b.disabled) { fetch(b.dataset.action, { method: "POST" }); }
});
</script>
{{- end}}
</body>
</html>
`

const homeTmpl = `<div class="container mx-auto p-4">
  <h1 class="text-3xl font-bold mb-6">{{.Heading}}</h1>
  <div class="grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-6">
    {{range .Cards}}{{.}}
    {{end}}
  </div>
  <div class="mt-6 space-x-4">
    {{range .Buttons}}{{.}}
    {{end}}
  </div>
</div>`

var (
	cardT   = template.Must(template.New("card").Parse(cardTmpl))
	buttonT = template.Must(template.New("button").Parse(buttonTmpl))
	layoutT = template.Must(template.New("layout").Parse(layoutTmpl))
	homeT   = template.Must(template.New("home").Parse(homeTmpl))
)

func execute(t *template.Template, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
