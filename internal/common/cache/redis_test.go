package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type cachedEntity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func redisCacheTestHelper(t *testing.T) (redismock.ClientMock, Client[cachedEntity]) {
	t.Helper()
	t.Parallel()

	db, mock := redismock.NewClientMock()

	return mock, NewRedisClient[cachedEntity](db)
}

func TestRedisClient_Get(t *testing.T) {
	tests := []struct {
		name    string
		doMock  func(mock redismock.ClientMock)
		want    cachedEntity
		wantErr error
	}{
		{
			name: "test success",
			doMock: func(mock redismock.ClientMock) {
				mock.ExpectGet("UNT-1").SetVal(`{"id":"UNT-1","name":"Bloco A Apto 101"}`)
			},
			want: cachedEntity{ID: "UNT-1", Name: "Bloco A Apto 101"},
		},
		{
			name: "test key not exists",
			doMock: func(mock redismock.ClientMock) {
				mock.ExpectGet("UNT-1").RedisNil()
			},
			wantErr: ErrNotExists,
		},
		{
			name: "test error invalid payload",
			doMock: func(mock redismock.ClientMock) {
				mock.ExpectGet("UNT-1").SetVal("not-a-json")
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, client := redisCacheTestHelper(t)
			tt.doMock(mock)

			got, err := client.Get(context.Background(), "UNT-1")
			if tt.wantErr != nil {
				assert.Error(t, err)
				if tt.wantErr != assert.AnError {
					assert.ErrorIs(t, err, tt.wantErr)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRedisClient_Set(t *testing.T) {
	mock, client := redisCacheTestHelper(t)

	entity := cachedEntity{ID: "UNT-1", Name: "Bloco A Apto 101"}
	mock.ExpectSet("UNT-1", []byte(`{"id":"UNT-1","name":"Bloco A Apto 101"}`), time.Hour).SetVal("OK")

	err := client.Set(context.Background(), "UNT-1", entity, time.Hour)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GetOrSet(t *testing.T) {
	entity := cachedEntity{ID: "UNT-1", Name: "Bloco A Apto 101"}

	t.Run("existing key short-circuits", func(t *testing.T) {
		mock, client := redisCacheTestHelper(t)
		mock.ExpectGet("UNT-1").SetVal(`{"id":"UNT-1","name":"Bloco A Apto 101"}`)

		got, err := client.GetOrSet(context.Background(), GetOrSetOpts[cachedEntity]{
			Key: "UNT-1",
			TTL: time.Hour,
			Callback: func() (cachedEntity, error) {
				t.Fatal("callback must not run on a cache hit")
				return cachedEntity{}, nil
			},
		})
		assert.NoError(t, err)
		assert.Equal(t, entity, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing key runs the callback and stores the value", func(t *testing.T) {
		mock, client := redisCacheTestHelper(t)
		mock.ExpectGet("UNT-1").RedisNil()
		mock.ExpectSet("UNT-1", []byte(`{"id":"UNT-1","name":"Bloco A Apto 101"}`), time.Hour).SetVal("OK")

		got, err := client.GetOrSet(context.Background(), GetOrSetOpts[cachedEntity]{
			Key: "UNT-1",
			TTL: time.Hour,
			Callback: func() (cachedEntity, error) {
				return entity, nil
			},
		})
		assert.NoError(t, err)
		assert.Equal(t, entity, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing callback is rejected", func(t *testing.T) {
		_, client := redisCacheTestHelper(t)

		_, err := client.GetOrSet(context.Background(), GetOrSetOpts[cachedEntity]{Key: "UNT-1"})
		assert.ErrorIs(t, err, ErrCallbackNotProvided)
	})
}
