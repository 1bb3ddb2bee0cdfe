package controllers

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"github.com/ReachoutToAll/initializers"
	"github.com/ReachoutToAll/models"
	"github.com/doug-martin/goqu/v9"
	"golang.org/x/crypto/bcrypt"
)

func OperatorSignup(c *gin.Context) {
	currentUser := c.MustGet("currentUser").(models.OperatorProfile)

	var body models.OperatorSignup
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	operatorCount, err := initializers.DB.From("operator_profile").Select("username").Where(goqu.C("username").Eq(body.Username)).Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if operatorCount > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username already exists."})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newOperator := models.OperatorProfile{
		Username:   body.Username,
		Password:   string(passwordHash),
		Email:      body.Email,
		First_Name: body.First_Name,
		Last_Name:  body.Last_Name,
		Admin:      body.Admin,
		Created_By: currentUser.Operator_Profile_ID,
		Updated_By: currentUser.Operator_Profile_ID,
	}

	insert := initializers.DB.Insert("operator_profile").Rows(newOperator).Executor()
	if _, err := insert.Exec(); err != nil {
		log.Println("Error creating operator:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Operator created successfully.",
		"username": body.Username,
	})
}

func OperatorLogin(c *gin.Context) {
	var body models.Login

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var operator models.OperatorProfile
	found, err := initializers.DB.From("operator_profile").Select("*").Where(goqu.C("username").Eq(body.Username)).ScanStruct(&operator)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(operator.Password), []byte(body.Password))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	role := "operator"
	if operator.Admin {
		role = "admin"
	}

	generateToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   operator.Operator_Profile_ID,
		"exp":  time.Now().Add(time.Hour * 24).Unix(),
		"role": role,
	})

	token, err := generateToken.SignedString([]byte(os.Getenv("SECRET")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Logged in successfully.",
		"token":    token,
		"operator": operator,
	})
}

// OperatorLogout acknowledges sign-out. Tokens are stateless; the client
// discards its copy and returns to the login surface.
func OperatorLogout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully."})
}

func GetOperatorProfile(c *gin.Context) {

	operator, _ := c.Get("currentUser")

	c.JSON(http.StatusOK, gin.H{
		"operator": operator,
		"admin":    c.MustGet("admin"),
	})
}

// StorePushToken registers a dashboard device for push notifications.
func StorePushToken(c *gin.Context) {
	currentUser := c.MustGet("currentUser").(models.OperatorProfile)

	var body models.PushTokenRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.PushToken
	found, err := initializers.DB.From("operator_push_tokens").
		Where(goqu.C("push_token").Eq(body.PushToken)).
		ScanStruct(&existing)

	if err != nil {
		log.Println("Error checking push token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store push token", "details": err.Error()})
		return
	}

	if found {
		update := initializers.DB.Update("operator_push_tokens").
			Set(goqu.Record{
				"operator_profile_id": currentUser.Operator_Profile_ID,
				"platform":            body.Platform,
				"updated_at":          time.Now().UTC(),
			}).
			Where(goqu.C("operator_push_tokens_id").Eq(existing.OperatorPushTokenID))

		if _, err := update.Executor().Exec(); err != nil {
			log.Println("Error updating push token:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store push token", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Push token updated."})
		return
	}

	insert := initializers.DB.Insert("operator_push_tokens").
		Rows(goqu.Record{
			"operator_profile_id": currentUser.Operator_Profile_ID,
			"push_token":          body.PushToken,
			"platform":            body.Platform,
		}).
		Executor()

	if _, err := insert.Exec(); err != nil {
		log.Println("Error storing push token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store push token", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Push token stored."})
}
