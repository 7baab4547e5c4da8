package store

import (
	"context"
	"net/url"
	"time"
	"unicode/utf8"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// prefixEnd returns the exclusive upper bound of the keys starting with prefix:
// prefix with its last rune incremented. Firestore compares strings in code
// point order. ok is false when every rune is utf8.MaxRune.
func prefixEnd(prefix string) (end string, ok bool) {
	runes := []rune(prefix)
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == utf8.MaxRune {
			continue
		}
		next := runes[i] + 1
		if next >= 0xD800 && next <= 0xDFFF {
			next = 0xE000
		}
		return string(runes[:i]) + string(next), true
	}
	return "", false
}

// FirestoreStore maps every key to one document of a single collection.
// Document fields: "key" (the raw key) and "value" (JSON text).
type FirestoreStore struct {
	FirestoreClient *firestore.Client
	Collection      string
	Timeout         time.Duration
}

type firestoreRecord struct {
	Key   string `firestore:"key"`
	Value string `firestore:"value"`
}

func NewFirestoreStore(client *firestore.Client, collection string, timeout time.Duration) *FirestoreStore {
	return &FirestoreStore{
		FirestoreClient: client,
		Collection:      collection,
		Timeout:         timeout,
	}
}

// Document ids may not contain "/", keys may.
func (s *FirestoreStore) doc(key string) *firestore.DocumentRef {
	return s.FirestoreClient.Collection(s.Collection).Doc(url.PathEscape(key))
}

func (s *FirestoreStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()

	doc, err := s.doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, false, nil
		}
		return nil, false, unavailable("get", key, err)
	}

	var record firestoreRecord
	if err := doc.DataTo(&record); err != nil {
		return nil, false, unavailable("get", key, err)
	}
	return []byte(record.Value), true, nil
}

func (s *FirestoreStore) Set(ctx context.Context, key string, value []byte) error {
	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()

	_, err := s.doc(key).Set(ctx, firestoreRecord{Key: key, Value: string(value)})
	if err != nil {
		return unavailable("set", key, err)
	}
	return nil
}

func (s *FirestoreStore) Delete(ctx context.Context, key string) error {
	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()

	if _, err := s.doc(key).Delete(ctx); err != nil {
		return unavailable("delete", key, err)
	}
	return nil
}

func (s *FirestoreStore) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()

	query := s.FirestoreClient.Collection(s.Collection).Where("key", ">=", prefix)
	if end, ok := prefixEnd(prefix); ok {
		query = query.Where("key", "<", end)
	}
	iter := query.Documents(ctx)
	defer iter.Stop()

	values := make([][]byte, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, unavailable("scan", prefix, err)
		}

		var record firestoreRecord
		if err := doc.DataTo(&record); err != nil {
			return nil, unavailable("scan", prefix, err)
		}
		values = append(values, []byte(record.Value))
	}
	return values, nil
}

// Close is a no-op; the Firestore client belongs to the Firebase app.
func (s *FirestoreStore) Close() error { return nil }

var _ KeyValueStore = (*FirestoreStore)(nil)
