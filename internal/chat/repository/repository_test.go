package repository

import (
	"context"
	"database/sql"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"parley/internal/chat"
	"parley/internal/chat/model"
	"parley/internal/database"
	"parley/pkg/logger"
)

var testDB *bun.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("parley"),
		postgres.WithUsername("parley"),
		postgres.WithPassword("password"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}

	defer func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable", "application_name=test")
	if err != nil {
		log.Printf("failed to get connections string, %v", err)
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(connStr))
	sqlDB := sql.OpenDB(connector)
	testDB = bun.NewDB(sqlDB, pgdialect.New())

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	// Same bootstrap the server runs against an empty database.
	if err := database.CreateSchema(ctx, testDB); err != nil {
		testDB.Close()
		log.Fatalf("failed to create schema: %v", err)
	}

	code := m.Run()

	testDB.Close()

	os.Exit(code)
}

func truncateAll(t *testing.T) {
	t.Helper()
	for _, table := range []string{"messages", "conversations", "expiry_settings"} {
		_, err := testDB.ExecContext(context.Background(), `TRUNCATE TABLE `+table+` RESTART IDENTITY CASCADE`)
		require.NoError(t, err)
	}
}

func mustKey(t *testing.T, a uuid.UUID, ca chat.Context, b uuid.UUID, cb chat.Context) chat.ConversationKey {
	t.Helper()
	key, err := chat.ResolveKey(a, ca, b, cb)
	require.NoError(t, err)
	return key
}

func Test_GetOrCreateConversation(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })

	repo := NewChatRepository(testDB, logger.Logger{})
	a, b := uuid.New(), uuid.New()
	key := mustKey(t, a, chat.ContextLove, b, chat.ContextBusiness)

	conv, err := repo.GetOrCreateConversation(t.Context(), key)
	require.NoError(t, err)
	require.NotNil(t, conv)
	assert.Equal(t, key.UserLow, conv.UserLow)
	assert.Equal(t, key.UserHigh, conv.UserHigh)
	assert.Equal(t, key.Signature(), conv.Signature)
	assert.Equal(t, string(key.ContextLow), conv.ContextLow)
	assert.Equal(t, string(key.ContextHigh), conv.ContextHigh)
	assert.False(t, conv.CreatedAt.IsZero())

	t.Run("second call returns the same row", func(t *testing.T) {
		again, err := repo.GetOrCreateConversation(t.Context(), key)
		require.NoError(t, err)
		assert.Equal(t, conv.ID, again.ID)

		count, err := testDB.NewSelect().Model((*model.Conversation)(nil)).Count(t.Context())
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("same pair, different contexts is a new row", func(t *testing.T) {
		other := mustKey(t, a, chat.ContextBasic, b, chat.ContextBasic)
		conv2, err := repo.GetOrCreateConversation(t.Context(), other)
		require.NoError(t, err)
		assert.NotEqual(t, conv.ID, conv2.ID)
	})
}

func Test_GetOrCreateConversation_Race(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })

	repo := NewChatRepository(testDB, logger.Logger{})
	key := mustKey(t, uuid.New(), chat.ContextBasic, uuid.New(), chat.ContextBasic)

	const callers = 8
	ids := make([]uuid.UUID, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			conv, err := repo.GetOrCreateConversation(context.Background(), key)
			if err != nil {
				errs[i] = err
				return
			}
			ids[i] = conv.ID
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i], "all racers must land on the same conversation")
	}

	count, err := testDB.NewSelect().Model((*model.Conversation)(nil)).Count(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func Test_GetConversationByKey_Miss(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })

	repo := NewChatRepository(testDB, logger.Logger{})
	key := mustKey(t, uuid.New(), chat.ContextBasic, uuid.New(), chat.ContextBasic)

	conv, err := repo.GetConversationByKey(t.Context(), key)
	require.NoError(t, err)
	assert.Nil(t, conv)
}

func Test_TouchConversation(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })

	repo := NewChatRepository(testDB, logger.Logger{})
	key := mustKey(t, uuid.New(), chat.ContextBasic, uuid.New(), chat.ContextBasic)

	conv, err := repo.GetOrCreateConversation(t.Context(), key)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.TouchConversation(t.Context(), conv.ID))

	touched, err := repo.GetConversation(t.Context(), conv.ID)
	require.NoError(t, err)
	assert.True(t, touched.UpdatedAt.After(conv.UpdatedAt))
}

func Test_ListConversations(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })

	repo := NewChatRepository(testDB, logger.Logger{})
	me := uuid.New()
	friend1, friend2, friend3 := uuid.New(), uuid.New(), uuid.New()

	first, err := repo.GetOrCreateConversation(t.Context(), mustKey(t, me, chat.ContextLove, friend1, chat.ContextLove))
	require.NoError(t, err)
	second, err := repo.GetOrCreateConversation(t.Context(), mustKey(t, me, chat.ContextLove, friend2, chat.ContextBasic))
	require.NoError(t, err)
	// Different context on my side; must not show in the love listing.
	_, err = repo.GetOrCreateConversation(t.Context(), mustKey(t, me, chat.ContextBusiness, friend3, chat.ContextBusiness))
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.TouchConversation(t.Context(), first.ID))

	convs, err := repo.ListConversations(t.Context(), me, chat.ContextLove)
	require.NoError(t, err)
	require.Len(t, convs, 2)
	// Most recently active first.
	assert.Equal(t, first.ID, convs[0].ID)
	assert.Equal(t, second.ID, convs[1].ID)
}

func Test_ListConversationsForPair(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })

	repo := NewChatRepository(testDB, logger.Logger{})
	a, b := uuid.New(), uuid.New()

	_, err := repo.GetOrCreateConversation(t.Context(), mustKey(t, a, chat.ContextBasic, b, chat.ContextBasic))
	require.NoError(t, err)
	_, err = repo.GetOrCreateConversation(t.Context(), mustKey(t, a, chat.ContextLove, b, chat.ContextLove))
	require.NoError(t, err)

	fromA, err := repo.ListConversationsForPair(t.Context(), a, b)
	require.NoError(t, err)
	fromB, err := repo.ListConversationsForPair(t.Context(), b, a)
	require.NoError(t, err)

	assert.Len(t, fromA, 2)
	assert.Equal(t, len(fromA), len(fromB))
}

func seedMessage(t *testing.T, repo *ChatRepository, convID, sender, receiver uuid.UUID, at time.Time) *model.Message {
	t.Helper()
	msg := &model.Message{
		ConversationID: convID,
		SenderID:       sender,
		ReceiverID:     receiver,
		Ciphertext:     []byte("sealed"),
		KeyVersion:     1,
		CreatedAt:      at,
	}
	require.NoError(t, repo.InsertMessage(t.Context(), msg))
	return msg
}

func Test_ListMessages_Ordering(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })

	repo := NewChatRepository(testDB, logger.Logger{})
	a, b := uuid.New(), uuid.New()
	conv, err := repo.GetOrCreateConversation(t.Context(), mustKey(t, a, chat.ContextBasic, b, chat.ContextBasic))
	require.NoError(t, err)

	base := time.Now().UTC().Add(-time.Hour)
	m1 := seedMessage(t, repo, conv.ID, a, b, base)
	m2 := seedMessage(t, repo, conv.ID, b, a, base.Add(time.Minute))
	m3 := seedMessage(t, repo, conv.ID, a, b, base.Add(2*time.Minute))

	t.Run("ascending chat order", func(t *testing.T) {
		msgs, err := repo.ListMessages(t.Context(), chat.MessageWindow{
			ConversationID: conv.ID, ViewerID: a, Limit: 10, Ascending: true,
		})
		require.NoError(t, err)
		require.Len(t, msgs, 3)
		assert.Equal(t, m1.ID, msgs[0].ID)
		assert.Equal(t, m3.ID, msgs[2].ID)
	})

	t.Run("descending most-recent-first", func(t *testing.T) {
		msgs, err := repo.ListMessages(t.Context(), chat.MessageWindow{
			ConversationID: conv.ID, ViewerID: a, Limit: 10,
		})
		require.NoError(t, err)
		require.Len(t, msgs, 3)
		assert.Equal(t, m3.ID, msgs[0].ID)
		assert.Equal(t, m1.ID, msgs[2].ID)
	})

	t.Run("before cursor excludes the newest", func(t *testing.T) {
		msgs, err := repo.ListMessages(t.Context(), chat.MessageWindow{
			ConversationID: conv.ID, ViewerID: a, Limit: 10,
			Before: m3.CreatedAt, Ascending: true,
		})
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, m1.ID, msgs[0].ID)
		assert.Equal(t, m2.ID, msgs[1].ID)
	})

	t.Run("limit clips the cursor page", func(t *testing.T) {
		msgs, err := repo.ListMessages(t.Context(), chat.MessageWindow{
			ConversationID: conv.ID, ViewerID: a, Limit: 1,
			Before: m3.CreatedAt, Ascending: true,
		})
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Equal(t, m1.ID, msgs[0].ID)
	})
}

func Test_MarkMessagesRead_Isolation(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })

	repo := NewChatRepository(testDB, logger.Logger{})
	a, b := uuid.New(), uuid.New()
	conv, err := repo.GetOrCreateConversation(t.Context(), mustKey(t, a, chat.ContextBasic, b, chat.ContextBasic))
	require.NoError(t, err)

	now := time.Now().UTC()
	toA := seedMessage(t, repo, conv.ID, b, a, now)
	toB := seedMessage(t, repo, conv.ID, a, b, now.Add(time.Second))

	changed, err := repo.MarkMessagesRead(t.Context(), conv.ID, a)
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)

	gotA, err := repo.GetMessage(t.Context(), toA.ID)
	require.NoError(t, err)
	assert.True(t, gotA.Read)

	// The message addressed to b stays untouched.
	gotB, err := repo.GetMessage(t.Context(), toB.ID)
	require.NoError(t, err)
	assert.False(t, gotB.Read)

	t.Run("idempotent", func(t *testing.T) {
		changed, err := repo.MarkMessagesRead(t.Context(), conv.ID, a)
		require.NoError(t, err)
		assert.Equal(t, int64(0), changed)
	})
}

func Test_DeleteConversationMessages(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })

	repo := NewChatRepository(testDB, logger.Logger{})
	a, b := uuid.New(), uuid.New()
	conv, err := repo.GetOrCreateConversation(t.Context(), mustKey(t, a, chat.ContextBasic, b, chat.ContextBasic))
	require.NoError(t, err)

	now := time.Now().UTC()
	seedMessage(t, repo, conv.ID, a, b, now)
	seedMessage(t, repo, conv.ID, b, a, now.Add(time.Second))

	deleted, err := repo.DeleteConversationMessages(t.Context(), conv.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	msgs, err := repo.ListMessages(t.Context(), chat.MessageWindow{ConversationID: conv.ID, ViewerID: a, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func Test_ExpirySettings(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })

	repo := NewChatRepository(testDB, logger.Logger{})
	user := uuid.New()

	t.Run("absent setting is nil, not an error", func(t *testing.T) {
		setting, err := repo.GetExpirySetting(t.Context(), user, chat.ContextBasic)
		require.NoError(t, err)
		assert.Nil(t, setting)
	})

	t.Run("upsert then update", func(t *testing.T) {
		require.NoError(t, repo.UpsertExpirySetting(t.Context(), &model.ExpirySetting{
			UserID: user, Context: string(chat.ContextBasic), Enabled: true, Days: 30,
		}))

		setting, err := repo.GetExpirySetting(t.Context(), user, chat.ContextBasic)
		require.NoError(t, err)
		require.NotNil(t, setting)
		assert.True(t, setting.Enabled)
		assert.Equal(t, 30, setting.Days)

		require.NoError(t, repo.UpsertExpirySetting(t.Context(), &model.ExpirySetting{
			UserID: user, Context: string(chat.ContextBasic), Enabled: false, Days: 7,
		}))

		setting, err = repo.GetExpirySetting(t.Context(), user, chat.ContextBasic)
		require.NoError(t, err)
		assert.False(t, setting.Enabled)
		assert.Equal(t, 7, setting.Days)
	})
}

func Test_Retention_Asymmetric(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })

	repo := NewChatRepository(testDB, logger.Logger{})
	a, b := uuid.New(), uuid.New()
	conv, err := repo.GetOrCreateConversation(t.Context(), mustKey(t, a, chat.ContextBasic, b, chat.ContextBasic))
	require.NoError(t, err)

	old := time.Now().UTC().Add(-48 * time.Hour)
	fresh := time.Now().UTC()
	stale := seedMessage(t, repo, conv.ID, a, b, old)
	recent := seedMessage(t, repo, conv.ID, a, b, fresh)

	// A's policy: anything older than a day goes.
	cutoff := time.Now().UTC().Add(-24 * time.Hour)
	hidden, err := repo.HideExpiredMessages(t.Context(), a, chat.ContextBasic, cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(1), hidden)

	t.Run("purged from A's queryable set", func(t *testing.T) {
		msgs, err := repo.ListMessages(t.Context(), chat.MessageWindow{ConversationID: conv.ID, ViewerID: a, Limit: 10, Ascending: true})
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Equal(t, recent.ID, msgs[0].ID)
	})

	t.Run("B still sees the full exchange", func(t *testing.T) {
		msgs, err := repo.ListMessages(t.Context(), chat.MessageWindow{ConversationID: conv.ID, ViewerID: b, Limit: 10, Ascending: true})
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, stale.ID, msgs[0].ID)
	})

	t.Run("rerun is a no-op", func(t *testing.T) {
		hidden, err := repo.HideExpiredMessages(t.Context(), a, chat.ContextBasic, cutoff)
		require.NoError(t, err)
		assert.Equal(t, int64(0), hidden)
	})

	t.Run("purge removes rows hidden on both sides", func(t *testing.T) {
		purged, err := repo.PurgeHiddenMessages(t.Context())
		require.NoError(t, err)
		assert.Equal(t, int64(0), purged, "one-sided hide must not purge")

		_, err = repo.HideExpiredMessages(t.Context(), b, chat.ContextBasic, cutoff)
		require.NoError(t, err)

		purged, err = repo.PurgeHiddenMessages(t.Context())
		require.NoError(t, err)
		assert.Equal(t, int64(1), purged)

		gone, err := repo.GetMessage(t.Context(), stale.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)
	})
}

func Test_LatestMessages_And_CountUnread(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })

	repo := NewChatRepository(testDB, logger.Logger{})
	me := uuid.New()
	friend1, friend2 := uuid.New(), uuid.New()

	conv1, err := repo.GetOrCreateConversation(t.Context(), mustKey(t, me, chat.ContextBasic, friend1, chat.ContextBasic))
	require.NoError(t, err)
	conv2, err := repo.GetOrCreateConversation(t.Context(), mustKey(t, me, chat.ContextBasic, friend2, chat.ContextBasic))
	require.NoError(t, err)

	base := time.Now().UTC().Add(-time.Hour)
	seedMessage(t, repo, conv1.ID, friend1, me, base)
	newest1 := seedMessage(t, repo, conv1.ID, friend1, me, base.Add(time.Minute))
	newest2 := seedMessage(t, repo, conv2.ID, me, friend2, base.Add(2*time.Minute))

	ids := []uuid.UUID{conv1.ID, conv2.ID}

	latest, err := repo.LatestMessages(t.Context(), ids, me)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, newest1.ID, latest[conv1.ID].ID)
	assert.Equal(t, newest2.ID, latest[conv2.ID].ID)

	unread, err := repo.CountUnread(t.Context(), ids, me)
	require.NoError(t, err)
	assert.Equal(t, 2, unread[conv1.ID])
	assert.Equal(t, 0, unread[conv2.ID], "own sends are never unread for the sender")

	t.Run("empty id list short-circuits", func(t *testing.T) {
		latest, err := repo.LatestMessages(t.Context(), nil, me)
		require.NoError(t, err)
		assert.Empty(t, latest)
	})
}
