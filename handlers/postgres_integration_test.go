//go:build integration

package handlers

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/andrewpaige1/flashcardi-api/config"
	"github.com/andrewpaige1/flashcardi-api/models"
)

var postgresDSN string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "flashcardi_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	postgresDSN = fmt.Sprintf("postgres://postgres:password@%s:%s/flashcardi_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func newPostgresHandler(t *testing.T) *DBHandler {
	t.Helper()
	db, err := config.Connect(context.Background(), config.Database{Driver: config.DriverPostgres, URL: postgresDSN})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Exec("TRUNCATE decks, cards").Error
		_ = config.Close(db)
	})

	h := NewDBHandler(db, zap.NewNop(), time.UTC)
	h.Now = func() time.Time { return testNow }
	return h
}

func TestPostgres_SequentialIDs(t *testing.T) {
	h := newPostgresHandler(t)
	router := openRouter(h)

	for _, id := range []string{"2026101998", "2026101999"} {
		require.NoError(t, h.Create(&models.Deck{DeckID: id, Title: "t", Description: "d"}).Error)
	}

	deck := createDeck(t, router, "Spanish", "Vocab")
	assert.Equal(t, "20261019100", deck.DeckID)

	assert.Equal(t, deck.DeckID+"CD01", createCard(t, router, deck.DeckID, "hola", "hello").CardID)
	assert.Equal(t, deck.DeckID+"CD02", createCard(t, router, deck.DeckID, "adios", "bye").CardID)

	rec := doRequest(t, router, http.MethodGet, "/api/deck/"+deck.DeckID+"/card", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeJSON[[]models.Card](t, rec), 2)
}

func TestPostgres_DuplicateKeyIsTranslated(t *testing.T) {
	h := newPostgresHandler(t)

	require.NoError(t, h.Create(&models.Deck{DeckID: "2026101901", Title: "t", Description: "d"}).Error)
	err := h.Create(&models.Deck{DeckID: "2026101901", Title: "t", Description: "d"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
