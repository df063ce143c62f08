package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TaskMessageRepo interface {
	SaveMessage(ctx context.Context, msg *TaskMessage) error
	GetByTask(ctx context.Context, taskID uint64, limit int) ([]*TaskMessage, error)
	DeleteByTask(ctx context.Context, taskID uint64) error
}

type taskMessageRepoImpl struct {
	col *mongo.Collection
}

func NewTaskMessageRepo(db *mongo.Database) TaskMessageRepo {
	return &taskMessageRepoImpl{
		col: db.Collection("task_messages"),
	}
}

// SaveMessage 直接存储
func (s *taskMessageRepoImpl) SaveMessage(ctx context.Context, msg *TaskMessage) error {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	_, err := s.col.InsertOne(ctx, msg)
	return err
}

// GetByTask 按时间线拉取最近的对话记录，返回时从旧到新排列
func (s *taskMessageRepoImpl) GetByTask(ctx context.Context, taskID uint64, limit int) ([]*TaskMessage, error) {
	if limit <= 0 {
		limit = 20
	}

	filter := bson.M{"task_id": taskID}

	findOptions := options.Find().
		SetSort(bson.D{
			{Key: "created_at", Value: -1},
			{Key: "_id", Value: -1},
		}).
		SetLimit(int64(limit))

	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	messages := make([]*TaskMessage, 0)
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

// DeleteByTask 删任务时清掉残留对话
func (s *taskMessageRepoImpl) DeleteByTask(ctx context.Context, taskID uint64) error {
	_, err := s.col.DeleteMany(ctx, bson.M{"task_id": taskID})
	return err
}
