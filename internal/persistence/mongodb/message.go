package mongodb

import (
	"context"
	"time"

	"github.com/goevery/chat/internal/persistence"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type Message struct {
	Id         bson.ObjectID `bson:"_id"`
	SenderId   string        `bson:"senderId"`
	ReceiverId string        `bson:"receiverId"`
	Text       string        `bson:"text,omitempty"`
	Image      string        `bson:"image,omitempty"`
	CreateTime time.Time     `bson:"createTime"`
}

func (m Message) toDomain() persistence.Message {
	return persistence.Message{
		Id:         m.Id.Hex(),
		SenderId:   m.SenderId,
		ReceiverId: m.ReceiverId,
		Text:       m.Text,
		Image:      m.Image,
		CreateTime: m.CreateTime,
	}
}

func (e *PersistenceEngine) SaveMessage(ctx context.Context, message persistence.Message) (persistence.Message, error) {
	document := Message{
		Id:         bson.NewObjectID(),
		SenderId:   message.SenderId,
		ReceiverId: message.ReceiverId,
		Text:       message.Text,
		Image:      message.Image,
		CreateTime: time.Now(),
	}

	_, err := e.messages.InsertOne(ctx, document)
	if err != nil {
		return persistence.Message{}, err
	}

	return document.toDomain(), nil
}

func (e *PersistenceEngine) ListConversation(ctx context.Context, userId string, otherUserId string) ([]persistence.Message, error) {
	filter := bson.M{
		"$or": bson.A{
			bson.M{"senderId": userId, "receiverId": otherUserId},
			bson.M{"senderId": otherUserId, "receiverId": userId},
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := e.messages.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var documents []Message
	err = cursor.All(ctx, &documents)
	if err != nil {
		return nil, err
	}

	return lo.Map(documents, func(m Message, _ int) persistence.Message {
		return m.toDomain()
	}), nil
}
