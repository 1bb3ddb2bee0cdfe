package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/ReachoutToAll/initializers"
	"github.com/ReachoutToAll/models"
	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
)

// GetSoulCount - public Home page counter. Absent record or fetch failure
// both read as zero; the page has no error surface for this number.
func GetSoulCount(c *gin.Context) {
	var soulCount models.SoulCount
	found, err := initializers.DB.From("soul_count").ScanStruct(&soulCount)

	if err != nil {
		log.Println("Error fetching soul count:", err)
	}

	if err != nil || !found {
		c.JSON(http.StatusOK, gin.H{"count": 0})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":       soulCount.Count,
		"lastUpdated": soulCount.Last_Updated,
	})
}

// UpdateSoulCount - set the singleton counter (admin). Inserts the row the
// first time, updates it afterwards.
func UpdateSoulCount(c *gin.Context) {
	var body models.SoulCountUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.SoulCount
	found, err := initializers.DB.From("soul_count").ScanStruct(&existing)
	if err != nil {
		log.Println("Error fetching soul count:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch soul count", "details": err.Error()})
		return
	}

	now := time.Now().UTC()

	if found {
		update := initializers.DB.Update("soul_count").
			Set(goqu.Record{
				"count":        *body.Count,
				"last_updated": now,
			}).
			Where(goqu.C("soul_count_id").Eq(existing.Soul_Count_ID))

		if _, err := update.Executor().Exec(); err != nil {
			log.Println("Error updating soul count:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update soul count", "details": err.Error()})
			return
		}
	} else {
		soulCount := models.SoulCount{
			Count:        *body.Count,
			Last_Updated: now,
		}

		insert := initializers.DB.Insert("soul_count").Rows(soulCount).Executor()
		if _, err := insert.Exec(); err != nil {
			log.Println("Error inserting soul count:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update soul count", "details": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Soul count updated successfully.",
		"count":       *body.Count,
		"lastUpdated": now,
	})
}
