package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/ArvisPrime/promptgen/internal/database"
	"github.com/ArvisPrime/promptgen/internal/localstore"
	"github.com/ArvisPrime/promptgen/internal/models"
	"github.com/ArvisPrime/promptgen/pkg/logger"
	"github.com/alicebob/miniredis/v2"
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

func setupLocalStores(t *testing.T) {
	t.Helper()
	store, err := localstore.Open(t.TempDir())
	assert.NoError(t, err)

	ledger, err := localstore.NewHistoryLedger(store)
	assert.NoError(t, err)
	History = ledger

	cts, err := localstore.NewCustomTemplateStore(store)
	assert.NoError(t, err)
	CustomTemplates = cts
}

// fakeChatClient records the dispatched request and returns a canned reply.
type fakeChatClient struct {
	reply        string
	err          error
	calls        int
	lastModel    string
	lastMessages []ChatMessage
}

func (f *fakeChatClient) CreateChatCompletion(ctx context.Context, model string, messages []ChatMessage) (string, error) {
	f.calls++
	f.lastModel = model
	f.lastMessages = messages
	return f.reply, f.err
}

func TestGeneratePromptSubstitutesIntoUserMessage(t *testing.T) {
	setupTestDB()
	setupLocalStores(t)

	tpl := models.Template{Name: "About", Structure: "Tell me about [TOPIC].", Category: models.TemplateCategoryGeneral, IsDefault: true}
	database.DB.Create(&tpl)

	fake := &fakeChatClient{reply: "A refined prompt about volcanoes."}
	Chat = fake

	refined, err := GeneratePrompt(context.Background(), tpl.ID, "volcanoes", "")
	assert.NoError(t, err)
	assert.Equal(t, "A refined prompt about volcanoes.", refined)

	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, "gpt-4", fake.lastModel)
	assert.Len(t, fake.lastMessages, 2)
	assert.Equal(t, "system", fake.lastMessages[0].Role)
	assert.Equal(t, "You are a helpful assistant for prompt engineering.", fake.lastMessages[0].Content)
	assert.Equal(t, "user", fake.lastMessages[1].Role)
	assert.Equal(t, "Tell me about volcanoes.", fake.lastMessages[1].Content)
}

func TestGeneratePromptModelOverride(t *testing.T) {
	setupTestDB()
	setupLocalStores(t)

	tpl := models.Template{Name: "About", Structure: "About [TOPIC].", Category: models.TemplateCategoryGeneral}
	database.DB.Create(&tpl)

	fake := &fakeChatClient{reply: "ok"}
	Chat = fake

	_, err := GeneratePrompt(context.Background(), tpl.ID, "tea", "gpt-3.5-turbo")
	assert.NoError(t, err)
	assert.Equal(t, "gpt-3.5-turbo", fake.lastModel)
}

func TestGeneratePromptTemplateNotFound(t *testing.T) {
	setupTestDB()
	setupLocalStores(t)

	fake := &fakeChatClient{reply: "should not be used"}
	Chat = fake

	_, err := GeneratePrompt(context.Background(), "missing-id", "volcanoes", "")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
	// The model backend is never called on lookup failure
	assert.Equal(t, 0, fake.calls)
}

func TestGeneratePromptFindsCustomTemplate(t *testing.T) {
	setupTestDB()
	setupLocalStores(t)

	created, err := CustomTemplates.Add(models.Template{
		Name:      "Mine",
		Structure: "Summarize [SUBJECT].",
		Category:  models.TemplateCategoryGeneral,
	})
	assert.NoError(t, err)

	fake := &fakeChatClient{reply: "summary prompt"}
	Chat = fake

	refined, err := GeneratePrompt(context.Background(), created.ID, "bees", "")
	assert.NoError(t, err)
	assert.Equal(t, "summary prompt", refined)
	assert.Equal(t, "Summarize bees.", fake.lastMessages[1].Content)
}

func TestGeneratePromptNoContent(t *testing.T) {
	setupTestDB()
	setupLocalStores(t)

	tpl := models.Template{Name: "About", Structure: "About [TOPIC].", Category: models.TemplateCategoryGeneral}
	database.DB.Create(&tpl)

	Chat = &fakeChatClient{reply: ""}

	_, err := GeneratePrompt(context.Background(), tpl.ID, "tea", "")
	assert.ErrorIs(t, err, ErrNoContent)
}

func TestTestPrompt(t *testing.T) {
	setupTestDB()
	setupLocalStores(t)

	fake := &fakeChatClient{reply: "model answer"}
	Chat = fake

	completion, err := TestPrompt(context.Background(), "What is Go?", "")
	assert.NoError(t, err)
	assert.Equal(t, "model answer", completion)
	assert.Equal(t, "You are an AI assistant.", fake.lastMessages[0].Content)
	assert.Equal(t, "What is Go?", fake.lastMessages[1].Content)
}

func TestTestPromptNoResponse(t *testing.T) {
	setupTestDB()
	setupLocalStores(t)

	Chat = &fakeChatClient{reply: ""}

	_, err := TestPrompt(context.Background(), "anything", "")
	assert.ErrorIs(t, err, ErrNoResponse)
}
