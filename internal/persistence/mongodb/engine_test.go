package mongodb

import (
	"errors"
	"testing"
	"time"

	"github.com/goevery/chat/internal/persistence"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func TestObjectIdFromHex(t *testing.T) {
	id := bson.NewObjectID()

	parsed, err := objectIdFromHex(id.Hex())
	assert.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = objectIdFromHex("not-an-object-id")
	assert.ErrorIs(t, err, persistence.ErrNotFound)
}

func TestNotFoundOr(t *testing.T) {
	assert.ErrorIs(t, notFoundOr(mongo.ErrNoDocuments), persistence.ErrNotFound)

	other := errors.New("connection reset")
	assert.Equal(t, other, notFoundOr(other))
}

func TestFriendship_ToDomain(t *testing.T) {
	now := time.Now()
	document := Friendship{
		Id:          bson.NewObjectID(),
		RequesterId: "alice",
		AddresseeId: "bob",
		Status:      "accepted",
		CreateTime:  now,
		UpdateTime:  now,
	}

	friendship := document.toDomain()

	assert.Equal(t, document.Id.Hex(), friendship.Id)
	assert.Equal(t, persistence.FriendshipStatusAccepted, friendship.Status)
	assert.Equal(t, "bob", friendship.Other("alice"))
}

func TestMessage_ToDomain(t *testing.T) {
	document := Message{
		Id:         bson.NewObjectID(),
		SenderId:   "alice",
		ReceiverId: "bob",
		Text:       "hello",
		CreateTime: time.Now(),
	}

	message := document.toDomain()

	assert.Equal(t, document.Id.Hex(), message.Id)
	assert.Equal(t, "alice", message.SenderId)
	assert.Equal(t, "bob", message.ReceiverId)
	assert.Equal(t, "hello", message.Text)
}

func TestPairKey(t *testing.T) {
	assert.Equal(t, pairKey("alice", "bob"), pairKey("bob", "alice"))
	assert.Equal(t, "alice:bob", pairKey("bob", "alice"))
	assert.NotEqual(t, pairKey("alice", "bob"), pairKey("alice", "carol"))
}

func TestGroup_ToDomain(t *testing.T) {
	document := Group{
		Id:          bson.NewObjectID(),
		Name:        "study",
		Description: "exam prep",
		AdminId:     "alice",
		MemberIds:   []string{"alice", "bob"},
		CreateTime:  time.Now(),
	}

	group := document.toDomain()

	assert.Equal(t, document.Id.Hex(), group.Id)
	assert.Equal(t, "exam prep", group.Description)
	assert.Equal(t, []string{"alice", "bob"}, group.MemberIds)
}
