package services

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeKeyStore mirrors the Redis cache contract in memory: values round
// trip through JSON exactly like CacheService does.
type fakeKeyStore struct {
	data map[string][]byte
}

func newFakeKeyStore() *fakeKeyStore {
	return &fakeKeyStore{data: map[string][]byte{}}
}

func (f *fakeKeyStore) GetKey(key string, src interface{}) error {
	val, ok := f.data[key]
	if !ok {
		return errors.New("key not found")
	}

	return json.Unmarshal(val, src)
}

func (f *fakeKeyStore) SetKey(key string, value interface{}, expiration time.Duration) error {
	val, err := json.Marshal(value)
	if err != nil {
		return err
	}

	f.data[key] = val

	return nil
}

func (f *fakeKeyStore) DeleteKey(key string) error {
	delete(f.data, key)

	return nil
}

func newServiceDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}
