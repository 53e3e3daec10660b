// Package httpapi wires the engine into an HTTP surface: POST /api/optimize,
// POST /api/generate/svg, and GET /api/health, built with gin and
// gin-contrib/cors, logging every request's outcome via the standard
// library log package.
package httpapi

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/panelcut/optimizer/internal/model"
	"github.com/panelcut/optimizer/internal/optimizer"
	"github.com/panelcut/optimizer/internal/svgrender"
)

// NewRouter builds the gin engine with CORS and request logging middleware
// already attached.
func NewRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger())
	router.Use(cors.New(corsConfig()))

	router.GET("/api/health", handleHealth)
	router.POST("/api/optimize", handleOptimize)
	router.POST("/api/generate/svg", handleGenerateSVG)

	return router
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"Content-Type", "Authorization"}
	return cfg
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()
		log.Printf("%s %s %d %s", c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func handleOptimize(c *gin.Context) {
	var req model.OptimizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := optimizer.Optimize(c.Request.Context(), req)
	if err != nil {
		writeEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func handleGenerateSVG(c *gin.Context) {
	var result model.OptimizationResult
	if err := c.ShouldBindJSON(&result); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	docs := svgrender.Render(result, svgrender.Options{})
	c.Data(http.StatusOK, "image/svg+xml", []byte(joinDocs(docs)))
}

// writeEngineError maps a *model.Error to the 4xx/5xx split described in
// the HTTP surface contract: validation and infeasibility are client
// errors, anything else is a server error.
func writeEngineError(c *gin.Context, err error) {
	var engineErr *model.Error
	if errors.As(err, &engineErr) {
		status := http.StatusBadRequest
		if engineErr.Kind == model.CannotFitAll {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": engineErr.Error(), "kind": engineErr.Kind.String()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func joinDocs(docs []string) string {
	var total int
	for _, d := range docs {
		total += len(d)
	}
	out := make([]byte, 0, total)
	for _, d := range docs {
		out = append(out, d...)
	}
	return string(out)
}
