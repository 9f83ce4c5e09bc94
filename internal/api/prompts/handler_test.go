package prompts_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ArvisPrime/promptgen/internal/api/prompts"
	"github.com/ArvisPrime/promptgen/internal/database"
	"github.com/ArvisPrime/promptgen/internal/models"
	"github.com/ArvisPrime/promptgen/pkg/logger"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestDB() {
	logger.Log = zap.NewNop()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("failed to connect database: %v", err))
	}

	db.Migrator().DropTable(&models.Template{}, &models.GlobalPrompt{})
	err = db.AutoMigrate(&models.Template{}, &models.GlobalPrompt{})
	if err != nil {
		panic("failed to migrate database")
	}

	database.DB = db
}

func setupTestRedis() *miniredis.Miniredis {
	mr, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	database.RedisClient = redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	return mr
}

func TestFeaturedPrompts(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()
	gin.SetMode(gin.TestMode)

	database.DB.Create(&models.GlobalPrompt{Title: "Featured", RawInput: "in", RefinedPrompt: "out", Category: "general", TargetModel: "gpt-4", IsFeatured: true})
	database.DB.Create(&models.GlobalPrompt{Title: "Hidden", RawInput: "in", RefinedPrompt: "out", IsFeatured: false})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/prompts/featured", nil)

	prompts.Featured(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []models.GlobalPrompt
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Len(t, resp, 1)
	assert.Equal(t, "Featured", resp[0].Title)
}
