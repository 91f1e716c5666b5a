package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lotcat/internal/catalog"
	"lotcat/internal/storage"
)

func (s *Server) handleRoot(c *gin.Context) {
	c.String(http.StatusOK, "lotcat catalog API is connected and running")
}

func (s *Server) handleListItems(c *gin.Context) {
	items, err := s.db.FindAll()
	if err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) handleSearch(c *gin.Context) {
	results, err := s.db.TextSearch(c.Query("query"))
	if errors.Is(err, catalog.ErrEmptyQuery) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "search query is required"})
		return
	}
	if err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

func (s *Server) handlePriceRange(c *gin.Context) {
	min, err := parseBound(c.Query("min"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "min must be a number"})
		return
	}
	max, err := parseBound(c.Query("max"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "max must be a number"})
		return
	}

	items, err := s.db.PriceRange(min, max)
	if err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) handleSimilar(c *gin.Context) {
	results, err := s.db.SimilarTo(c.Param("id"), storage.SimilarLimit)
	if errors.Is(err, catalog.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "item not found"})
		return
	}
	if err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

func (s *Server) storeError(c *gin.Context, err error) {
	s.log.Error("store error",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
}

// parseBound parses an optional numeric query parameter; empty means unset.
func parseBound(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
