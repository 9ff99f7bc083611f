package mongodb

import (
	"context"
	"time"

	"github.com/goevery/chat/internal/persistence"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type Group struct {
	Id          bson.ObjectID `bson:"_id"`
	Name        string        `bson:"name"`
	Description string        `bson:"description,omitempty"`
	AdminId     string        `bson:"adminId"`
	MemberIds   []string      `bson:"memberIds"`
	CreateTime  time.Time     `bson:"createTime"`
}

func (g Group) toDomain() persistence.Group {
	return persistence.Group{
		Id:          g.Id.Hex(),
		Name:        g.Name,
		Description: g.Description,
		AdminId:     g.AdminId,
		MemberIds:   g.MemberIds,
		CreateTime:  g.CreateTime,
	}
}

type GroupMessage struct {
	Id         bson.ObjectID `bson:"_id"`
	GroupId    string        `bson:"groupId"`
	SenderId   string        `bson:"senderId"`
	Text       string        `bson:"text,omitempty"`
	Image      string        `bson:"image,omitempty"`
	CreateTime time.Time     `bson:"createTime"`
}

func (m GroupMessage) toDomain() persistence.GroupMessage {
	return persistence.GroupMessage{
		Id:         m.Id.Hex(),
		GroupId:    m.GroupId,
		SenderId:   m.SenderId,
		Text:       m.Text,
		Image:      m.Image,
		CreateTime: m.CreateTime,
	}
}

func (e *PersistenceEngine) GetGroup(ctx context.Context, id string) (persistence.Group, error) {
	objectId, err := objectIdFromHex(id)
	if err != nil {
		return persistence.Group{}, err
	}

	var document Group
	err = e.groups.FindOne(ctx, bson.M{"_id": objectId}).Decode(&document)
	if err != nil {
		return persistence.Group{}, notFoundOr(err)
	}

	return document.toDomain(), nil
}

func (e *PersistenceEngine) CreateGroup(ctx context.Context, group persistence.Group) (persistence.Group, error) {
	document := Group{
		Id:          bson.NewObjectID(),
		Name:        group.Name,
		Description: group.Description,
		AdminId:     group.AdminId,
		MemberIds:   group.MemberIds,
		CreateTime:  time.Now(),
	}

	_, err := e.groups.InsertOne(ctx, document)
	if err != nil {
		return persistence.Group{}, err
	}

	return document.toDomain(), nil
}

func (e *PersistenceEngine) ListGroupsForUser(ctx context.Context, userId string) ([]persistence.Group, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := e.groups.Find(ctx, bson.M{"memberIds": userId}, opts)
	if err != nil {
		return nil, err
	}

	var documents []Group
	err = cursor.All(ctx, &documents)
	if err != nil {
		return nil, err
	}

	return lo.Map(documents, func(g Group, _ int) persistence.Group {
		return g.toDomain()
	}), nil
}

func (e *PersistenceEngine) SaveGroupMessage(ctx context.Context, message persistence.GroupMessage) (persistence.GroupMessage, error) {
	document := GroupMessage{
		Id:         bson.NewObjectID(),
		GroupId:    message.GroupId,
		SenderId:   message.SenderId,
		Text:       message.Text,
		Image:      message.Image,
		CreateTime: time.Now(),
	}

	_, err := e.groupMessages.InsertOne(ctx, document)
	if err != nil {
		return persistence.GroupMessage{}, err
	}

	return document.toDomain(), nil
}

func (e *PersistenceEngine) ListGroupMessages(ctx context.Context, groupId string) ([]persistence.GroupMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := e.groupMessages.Find(ctx, bson.M{"groupId": groupId}, opts)
	if err != nil {
		return nil, err
	}

	var documents []GroupMessage
	err = cursor.All(ctx, &documents)
	if err != nil {
		return nil, err
	}

	return lo.Map(documents, func(m GroupMessage, _ int) persistence.GroupMessage {
		return m.toDomain()
	}), nil
}
