package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/ReachoutToAll/initializers"
	"github.com/ReachoutToAll/models"
	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
)

// fetchDocuments returns all documents, most recently created first.
func fetchDocuments() ([]models.Document, error) {
	documents := []models.Document{}
	err := initializers.DB.From("document").
		Order(goqu.C("datetime_create").Desc()).
		ScanStructs(&documents)
	return documents, err
}

// GetDocuments - list all documents (public Resources page and admin dashboard)
func GetDocuments(c *gin.Context) {
	documents, err := fetchDocuments()
	if err != nil {
		log.Println("Error fetching documents:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch documents", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, documents)
}

// CreateDocument - create a new document from the dashboard form
func CreateDocument(c *gin.Context) {
	currentUser := c.MustGet("currentUser").(models.OperatorProfile)

	var body models.DocumentCreate
	if err := c.ShouldBind(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	document := models.Document{
		Title:       body.Title,
		Description: body.Description,
		File_URL:    body.File_URL,
		File_Type:   body.File_Type,
		File_Size:   body.File_Size,
		Image_URL:   body.Image_URL,
		Created_By:  currentUser.Operator_Profile_ID,
		Updated_By:  currentUser.Operator_Profile_ID,
	}

	insert := initializers.DB.Insert("document").Rows(document).Executor()
	if _, err := insert.Exec(); err != nil {
		log.Println("Error creating document:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create document", "details": err.Error()})
		return
	}

	documents, err := fetchDocuments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch documents after create", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Document created successfully.",
		"documents": documents,
	})
}

// UpdateDocument - update an existing document
func UpdateDocument(c *gin.Context) {
	currentUser := c.MustGet("currentUser").(models.OperatorProfile)

	documentID, err := strconv.Atoi(c.Param("document_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document ID"})
		return
	}

	var existing models.Document
	found, err := initializers.DB.From("document").
		Where(goqu.C("document_id").Eq(documentID)).
		ScanStruct(&existing)

	if err != nil || !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	var body models.DocumentCreate
	if err := c.ShouldBind(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := initializers.DB.Update("document").
		Set(goqu.Record{
			"title":       body.Title,
			"description": body.Description,
			"file_url":    body.File_URL,
			"file_type":   body.File_Type,
			"file_size":   body.File_Size,
			"image_url":   body.Image_URL,
			"updated_by":  currentUser.Operator_Profile_ID,
		}).
		Where(goqu.C("document_id").Eq(documentID))

	if _, err := update.Executor().Exec(); err != nil {
		log.Println("Error updating document:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update document", "details": err.Error()})
		return
	}

	documents, err := fetchDocuments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch documents after update", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Document updated successfully.",
		"documents": documents,
	})
}

// DeleteDocument - delete a document; requires explicit ?confirm=true
func DeleteDocument(c *gin.Context) {
	documentID, err := strconv.Atoi(c.Param("document_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document ID"})
		return
	}

	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Delete not confirmed. Pass confirm=true to delete this document."})
		return
	}

	var existing models.Document
	found, err := initializers.DB.From("document").
		Where(goqu.C("document_id").Eq(documentID)).
		ScanStruct(&existing)

	if err != nil || !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	_, err = initializers.DB.Delete("document").
		Where(goqu.C("document_id").Eq(documentID)).
		Executor().
		Exec()

	if err != nil {
		log.Println("Error deleting document:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document", "details": err.Error()})
		return
	}

	respondWithAllLists(c, "Document deleted successfully.")
}
