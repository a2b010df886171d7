package controller

import (
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/caarlos0/httperr"
)

// Index renders the landing page with the username form.
func Index(fsys fs.FS, version string) http.Handler {
	indexTemplate, err := template.ParseFS(fsys, base, index)
	if err != nil {
		panic(err)
	}

	return httperr.NewF(func(w http.ResponseWriter, r *http.Request) error {
		return indexTemplate.Execute(w, map[string]string{"Version": version})
	})
}

// HandleForm redirects the submitted username to its graph page.
func HandleForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := strings.TrimPrefix(r.FormValue("username"), "https://github.com/")
		username = strings.Trim(username, "/")
		http.Redirect(w, r, "/graph/"+username, http.StatusSeeOther)
	}
}
