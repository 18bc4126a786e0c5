package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/ilkow/promoshot/internal/compose"
	"codeberg.org/ilkow/promoshot/internal/image"
	"codeberg.org/ilkow/promoshot/internal/keyword"
	"codeberg.org/ilkow/promoshot/internal/promo"
)

// Server wires the resolver and compositor into a gin HTTP API.
type Server struct {
	resolver   *image.Resolver
	compositor *compose.Compositor
	engine     *gin.Engine
}

// New creates the HTTP server around an already configured resolver.
func New(resolver *image.Resolver, compositor *compose.Compositor) *Server {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	s := &Server{
		resolver:   resolver,
		compositor: compositor,
		engine:     engine,
	}
	s.registerRoutes()

	return s
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run starts the server on the given address and blocks.
func (s *Server) Run(addr string) error {
	fmt.Printf("Listening on %s\n", addr)
	return s.engine.Run(addr)
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", s.handleHealth)

	api := s.engine.Group("/api")
	api.POST("/promo", s.handleGenerate)
	api.POST("/promo/export", s.handleExport)
}

// promoRequest is the JSON body shared by the generate and export routes.
type promoRequest struct {
	Text        string `json:"text" binding:"required"`
	AspectRatio string `json:"aspect_ratio"`
	ImageURL    string `json:"image_url"`
}

// toRequest validates the body against the supported aspect ratios. An
// omitted ratio defaults to square.
func (r *promoRequest) toRequest() (*promo.Request, error) {
	ratio := r.AspectRatio
	if ratio == "" {
		ratio = string(promo.RatioSquare)
	}
	return promo.NewRequest(r.Text, ratio)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleGenerate resolves a background image for the caption. The
// resolver never fails, so this route only 400s on invalid input.
func (s *Server) handleGenerate(c *gin.Context) {
	var body promoRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	req, err := body.toRequest()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	keywords := keyword.Translate(req.Text)
	result := s.resolver.Resolve(c.Request.Context(), keywords, req.Ratio)

	c.JSON(http.StatusOK, gin.H{
		"url":         result.URL,
		"source":      result.SourceDescription,
		"keywords":    keywords,
		"placeholder": result.Placeholder,
	})
}

// handleExport composites the caption over the background and streams
// the PNG as a download. When the client already resolved an image URL
// it is reused, otherwise resolution runs again server-side.
func (s *Server) handleExport(c *gin.Context) {
	var body promoRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	req, err := body.toRequest()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imageURL := body.ImageURL
	if imageURL == "" {
		keywords := keyword.Translate(req.Text)
		imageURL = s.resolver.Resolve(c.Request.Context(), keywords, req.Ratio).URL
	}

	artifact, err := s.compositor.Export(c.Request.Context(), imageURL, req.Text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not render image"})
		return
	}

	if artifact.Degraded {
		c.Header("X-Promo-Degraded", "text overlay failed, serving background only")
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))

	// Unfetchable background: hand the client the source URL directly
	if artifact.RemoteURL != "" {
		c.Redirect(http.StatusFound, artifact.RemoteURL)
		return
	}

	c.Data(http.StatusOK, "image/png", artifact.Data)
}
