package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/kgnconstruction/kgnbackend/database"
	"github.com/kgnconstruction/kgnbackend/forms"
	"github.com/kgnconstruction/kgnbackend/models"
	"github.com/kgnconstruction/kgnbackend/utils"
)

type LeadLister interface {
	List(ctx context.Context, table string, page database.Page) ([]models.StoredRecord, int64, error)
}

// GET /admin/leads/:table?page=1&limit=20
func GetLeads(store LeadLister) gin.HandlerFunc {
	return func(c *gin.Context) {
		def, ok := forms.ByTable(c.Param("table"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown lead table"})
			return
		}

		pageNum, limit := utils.Pagination(c.Query("page"), c.Query("limit"))
		items, total, err := store.List(c.Request.Context(), def.Table, database.Page{Number: pageNum, Limit: limit})
		if err != nil {
			log.WithError(err).WithField("table", def.Table).Error("Failed to list leads")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch leads"})
			return
		}
		if items == nil {
			items = []models.StoredRecord{}
		}

		c.JSON(http.StatusOK, gin.H{
			"form":  def.Slug,
			"items": items,
			"page":  pageNum,
			"limit": limit,
			"total": total,
		})
	}
}
