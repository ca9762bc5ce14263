package handlers

import (
	"strconv"

	"skizen/services"
	"skizen/utils"

	"github.com/gin-gonic/gin"
)

// ListWorks serves the public gallery feed, newest first. A category query
// parameter filters client-side semantics server-side for convenience;
// "All" or no parameter returns everything.
func ListWorks(c *gin.Context) {
	works := getServices().Gallery.FetchAll(c.Request.Context())
	if category := c.Query("category"); category != "" {
		works = services.FilterByCategory(works, category)
	}
	utils.Success(c, gin.H{"works": works})
}

// FeaturedWorks serves the landing-page highlight subset.
func FeaturedWorks(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	works := getServices().Gallery.FetchFeatured(c.Request.Context(), limit)
	utils.Success(c, gin.H{"works": works})
}

// ListCategories returns the distinct categories present in the feed with
// the "All" pseudo-category prepended.
func ListCategories(c *gin.Context) {
	works := getServices().Gallery.FetchAll(c.Request.Context())
	utils.Success(c, gin.H{"categories": services.Categories(works)})
}
