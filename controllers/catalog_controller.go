package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kgnconstruction/kgnbackend/catalog"
)

func GetProjects(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"projects": cat.Projects})
	}
}

func GetProject(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, ok := cat.Project(c.Param("slug"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		c.JSON(http.StatusOK, project)
	}
}

func GetReadyHouses(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"readyHouses": cat.ReadyHouses})
	}
}

func GetReadyHouse(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		house, ok := cat.ReadyHouse(c.Param("slug"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "ready house not found"})
			return
		}
		c.JSON(http.StatusOK, house)
	}
}
