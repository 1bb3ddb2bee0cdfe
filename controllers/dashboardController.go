package controllers

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

// GetDashboard - load the three admin collections in one request. The
// fetches run concurrently and are joined before responding; a failed
// fetch contributes an error entry without blocking its siblings.
func GetDashboard(c *gin.Context) {
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		response  = gin.H{}
		fetchErrs = gin.H{}
	)

	wg.Add(3)

	go func() {
		defer wg.Done()
		events, err := fetchEvents()
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			log.Println("Error fetching events:", err)
			fetchErrs["events"] = err.Error()
		}
		response["events"] = events
	}()

	go func() {
		defer wg.Done()
		sermons, err := fetchSermons()
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			log.Println("Error fetching sermons:", err)
			fetchErrs["sermons"] = err.Error()
		}
		response["sermons"] = sermons
	}()

	go func() {
		defer wg.Done()
		documents, err := fetchDocuments()
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			log.Println("Error fetching documents:", err)
			fetchErrs["documents"] = err.Error()
		}
		response["documents"] = documents
	}()

	wg.Wait()

	if len(fetchErrs) > 0 {
		response["errors"] = fetchErrs
	}

	c.JSON(http.StatusOK, response)
}

// respondWithAllLists refreshes all three collections from the store after a
// delete. Errors are reported per collection, never as a failure of the whole
// response.
func respondWithAllLists(c *gin.Context, message string) {
	response := gin.H{"message": message}
	fetchErrs := gin.H{}

	events, err := fetchEvents()
	if err != nil {
		fetchErrs["events"] = err.Error()
	}
	response["events"] = events

	sermons, err := fetchSermons()
	if err != nil {
		fetchErrs["sermons"] = err.Error()
	}
	response["sermons"] = sermons

	documents, err := fetchDocuments()
	if err != nil {
		fetchErrs["documents"] = err.Error()
	}
	response["documents"] = documents

	if len(fetchErrs) > 0 {
		response["errors"] = fetchErrs
	}

	c.JSON(http.StatusOK, response)
}
