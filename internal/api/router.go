package api

import (
	"database/sql"
	"net/http"
)

// NewRouter creates the API router with all endpoints registered. staticDir
// may be empty to skip the static mount.
func NewRouter(db *sql.DB, staticDir string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db}
	itemsHandler := &ItemsHandler{DB: db}
	modelsHandler := &ModelsHandler{}
	filesHandler := &FilesHandler{}

	requireMember := RequireMember(db)

	mux.HandleFunc("GET /{$}", getRoot)

	// Items.
	mux.HandleFunc("GET /items", itemsHandler.List)
	mux.HandleFunc("GET /items/{item_id}", itemsHandler.Get)
	mux.HandleFunc("GET /users/{user_id}/items/{item_id}", itemsHandler.GetForOwner)
	mux.HandleFunc("POST /items", itemsHandler.Create)
	mux.HandleFunc("PUT /items/{item_id}", itemsHandler.Replace)

	// Models and files.
	mux.HandleFunc("GET /models/{model_name}", modelsHandler.Get)
	mux.HandleFunc("GET /files/size", filesHandler.Size)
	mux.HandleFunc("PUT /files/upload", filesHandler.Upload)

	// Auth: token issuance is public, the profile is gated.
	mux.HandleFunc("POST /token", authHandler.IssueToken)
	mux.Handle("GET /users/me", requireMember(http.HandlerFunc(authHandler.Me)))

	if staticDir != "" {
		mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	}

	return mux
}

// getRoot handles GET /.
func getRoot(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{"Hello": "World"})
}
