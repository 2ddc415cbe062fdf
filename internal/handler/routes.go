package handler

import "net/http"

// Routes groups the handlers served under /api
type Routes struct {
	Health    *HealthHandler
	Content   *ContentHandler
	Topics    *TopicHandler
	Featured  *FeaturedHandler
	Curiosity *CuriosityHandler

	// Admin wraps routes that change the carousel or the curiosity texts
	Admin func(http.Handler) http.Handler
}

// Register adds every route to mux (Go 1.22+ enhanced patterns)
func (rt *Routes) Register(mux *http.ServeMux) {
	admin := func(h http.HandlerFunc) http.Handler {
		if rt.Admin == nil {
			return h
		}
		return rt.Admin(h)
	}

	// Health check
	mux.HandleFunc("GET /health", rt.Health.HealthCheck)

	// Content pipelines
	mux.HandleFunc("POST /api/content/prepare", rt.Content.Prepare)
	mux.HandleFunc("POST /api/content/render", rt.Content.Render)

	// Topics and search
	mux.HandleFunc("GET /api/topics", rt.Topics.ListTopics)
	mux.HandleFunc("GET /api/topics/{id}", rt.Topics.GetTopic)
	mux.HandleFunc("GET /api/search", rt.Topics.Search)
	mux.HandleFunc("GET /api/categories", rt.Topics.ListCategories)

	// Featured carousel
	mux.HandleFunc("GET /api/featured-topics", rt.Featured.ListFeatured)
	mux.HandleFunc("GET /api/featured-topics/positions", rt.Featured.GetPositions)
	mux.Handle("POST /api/featured-topics/{topicId}", admin(rt.Featured.AddFeatured))
	mux.Handle("DELETE /api/featured-topics/{topicId}", admin(rt.Featured.RemoveFeatured))

	// Curiosity texts
	mux.HandleFunc("GET /api/curiosities", rt.Curiosity.ListCuriosities)
	mux.HandleFunc("GET /api/curiosities/next", rt.Curiosity.NextCuriosity)
	mux.HandleFunc("GET /api/curiosities/{id}", rt.Curiosity.GetCuriosity)
	mux.Handle("POST /api/curiosities/preview", admin(rt.Curiosity.PreviewCuriosity))
	mux.Handle("POST /api/curiosities", admin(rt.Curiosity.CreateCuriosity))
	mux.Handle("PATCH /api/curiosities/{id}", admin(rt.Curiosity.UpdateCuriosity))
	mux.Handle("DELETE /api/curiosities/{id}", admin(rt.Curiosity.DeleteCuriosity))
}
