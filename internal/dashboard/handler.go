// Package dashboard sirve la página web del tablero: tabla filtrable,
// pie chart por raza y mapa con la ubicación del animal seleccionado.
// Los estáticos van embebidos en el binario; los datos salen de la API.
package dashboard

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router) {
	statics, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		// embed roto solo puede pasar en build; mejor explotar temprano
		panic(err)
	}

	r.Get("/dashboard", serveIndexHandler())
	r.Handle("/dashboard/assets/*", http.StripPrefix("/dashboard/assets/", http.FileServer(http.FS(statics))))
}

func serveIndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := assetsFS.ReadFile("assets/index.html")
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(b)
	}
}
