package handlers

import (
	"net/http"
	"strconv"

	"skizen/services"
	"skizen/utils"

	"github.com/gin-gonic/gin"
)

// ListRecentUploads backs the admin dashboard listing, newest first.
func ListRecentUploads(c *gin.Context) {
	works, err := getServices().Curation.RecentUploads(c.Request.Context())
	if respondServiceError(c, err, "") {
		return
	}
	utils.Success(c, gin.H{"works": works})
}

// UploadWork handles the admin upload form: metadata fields plus the asset
// file as multipart form data.
func UploadWork(c *gin.Context) {
	userID := c.GetUint("user_id")

	in := services.UploadInput{
		Title:    c.PostForm("title"),
		Type:     c.PostForm("type"),
		Category: c.PostForm("category"),
		Height:   c.PostForm("height"),
		Featured: c.PostForm("featured") == "true",
	}

	file, header, err := c.Request.FormFile("file")
	if err == nil {
		defer file.Close()
		in.File = file
		in.FileName = header.Filename
		in.Size = header.Size
		in.ContentType = header.Header.Get("Content-Type")
	}

	work, err := getServices().Curation.Upload(c.Request.Context(), userID, in)
	if respondServiceError(c, err, "Error") {
		return
	}

	utils.SuccessWithMessage(c, "Upload successful!", gin.H{"work": work})
}

// UpdateWork edits metadata and optionally replaces the asset file. Only
// fields present in the form are touched.
func UpdateWork(c *gin.Context) {
	userID := c.GetUint("user_id")
	workID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid work id")
		return
	}

	var in services.EditInput
	if title, ok := c.GetPostForm("title"); ok {
		in.Title = &title
	}
	if category, ok := c.GetPostForm("category"); ok {
		in.Category = &category
	}
	if height, ok := c.GetPostForm("height"); ok {
		in.Height = &height
	}
	if featured, ok := c.GetPostForm("featured"); ok {
		value := featured == "true"
		in.Featured = &value
	}

	file, header, err := c.Request.FormFile("file")
	if err == nil {
		defer file.Close()
		in.File = file
		in.FileName = header.Filename
		in.Size = header.Size
		in.ContentType = header.Header.Get("Content-Type")
	}

	work, err := getServices().Curation.Edit(c.Request.Context(), userID, uint(workID), in)
	if respondServiceError(c, err, "Save failed") {
		return
	}

	utils.SuccessWithMessage(c, "Saved changes", gin.H{"work": work})
}

// DeleteWork removes a record and best-effort its storage objects. The
// confirm flag is a hard precondition: without it nothing is touched.
func DeleteWork(c *gin.Context) {
	userID := c.GetUint("user_id")
	workID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid work id")
		return
	}

	confirmed := c.Query("confirm") == "true"
	if err := getServices().Curation.Delete(c.Request.Context(), userID, uint(workID), confirmed); err != nil {
		respondServiceError(c, err, "Delete failed")
		return
	}

	utils.SuccessWithMessage(c, "Deleted", nil)
}
