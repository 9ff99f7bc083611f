package mongodb

import (
	"context"
	"errors"

	"github.com/goevery/chat/internal/persistence"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type PersistenceEngine struct {
	messages      *mongo.Collection
	friendships   *mongo.Collection
	groups        *mongo.Collection
	groupMessages *mongo.Collection
}

func NewPersistenceEngine(client *mongo.Client, databaseName string) *PersistenceEngine {
	database := client.Database(databaseName)

	return &PersistenceEngine{
		messages:      database.Collection("messages"),
		friendships:   database.Collection("friendships"),
		groups:        database.Collection("groups"),
		groupMessages: database.Collection("groupMessages"),
	}
}

func (e *PersistenceEngine) Setup(ctx context.Context) error {
	_, err := e.messages.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "senderId", Value: 1},
				{Key: "receiverId", Value: 1},
				{Key: "_id", Value: 1},
			},
		},
	})
	if err != nil {
		return err
	}

	_, err = e.friendships.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "pairKey", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "addresseeId", Value: 1},
				{Key: "status", Value: 1},
			},
		},
		{
			Keys: bson.D{
				{Key: "requesterId", Value: 1},
				{Key: "status", Value: 1},
			},
		},
	})
	if err != nil {
		return err
	}

	_, err = e.groups.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "memberIds", Value: 1}},
	})
	if err != nil {
		return err
	}

	_, err = e.groupMessages.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "groupId", Value: 1},
				{Key: "_id", Value: 1},
			},
		},
	})

	return err
}

func objectIdFromHex(id string) (bson.ObjectID, error) {
	objectId, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, persistence.ErrNotFound
	}

	return objectId, nil
}

func notFoundOr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return persistence.ErrNotFound
	}

	return err
}
