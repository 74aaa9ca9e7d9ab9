package gsync

import (
	"context"
	"time"

	"go-contacthub/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SyncSettingRepository interface {
	GetByWorkspace(ctx context.Context, workspaceID string) (*SyncSetting, error)
	Upsert(ctx context.Context, setting *SyncSetting) error
	ListEnabled(ctx context.Context) ([]SyncSetting, error)
}

type SyncLogRepository interface {
	Create(ctx context.Context, log *SyncLog) error
	Update(ctx context.Context, log *SyncLog) error
	List(ctx context.Context, workspaceID string, limit int64) ([]SyncLog, error)
}

type SyncSettingRepositoryImpl struct {
	collection *mongo.Collection
}

func NewSyncSettingRepository(db *database.MongodbDB) SyncSettingRepository {
	return &SyncSettingRepositoryImpl{
		collection: db.DB.Collection("sync_settings"),
	}
}

func (r *SyncSettingRepositoryImpl) GetByWorkspace(ctx context.Context, workspaceID string) (*SyncSetting, error) {
	var setting SyncSetting
	err := r.collection.FindOne(ctx, bson.M{"workspace_id": workspaceID}).Decode(&setting)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *SyncSettingRepositoryImpl) Upsert(ctx context.Context, setting *SyncSetting) error {
	now := time.Now()
	setting.UpdatedAt = now
	if setting.CreatedAt.IsZero() {
		setting.CreatedAt = now
	}

	update := bson.M{
		"$set": bson.M{
			"enabled":            setting.Enabled,
			"interval_hours":     setting.IntervalHours,
			"auto_label_enabled": setting.AutoLabelEnabled,
			"auto_label_script":  setting.AutoLabelScript,
			"push_filter":        setting.PushFilter,
			"updated_at":         setting.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"workspace_id": setting.WorkspaceID,
			"created_at":   setting.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, bson.M{"workspace_id": setting.WorkspaceID}, update, opts)
	return err
}

func (r *SyncSettingRepositoryImpl) ListEnabled(ctx context.Context) ([]SyncSetting, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"enabled": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var settings []SyncSetting
	if err = cursor.All(ctx, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

type SyncLogRepositoryImpl struct {
	collection *mongo.Collection
}

func NewSyncLogRepository(db *database.MongodbDB) SyncLogRepository {
	return &SyncLogRepositoryImpl{
		collection: db.DB.Collection("sync_logs"),
	}
}

func (r *SyncLogRepositoryImpl) Create(ctx context.Context, log *SyncLog) error {
	if log.ID.IsZero() {
		log.ID = primitive.NewObjectID()
	}
	if log.StartTime.IsZero() {
		log.StartTime = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, log)
	return err
}

func (r *SyncLogRepositoryImpl) Update(ctx context.Context, log *SyncLog) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": log.ID}, log)
	return err
}

func (r *SyncLogRepositoryImpl) List(ctx context.Context, workspaceID string, limit int64) ([]SyncLog, error) {
	if limit <= 0 {
		limit = 20
	}

	filter := bson.M{}
	if workspaceID != "" {
		filter["workspace_id"] = workspaceID
	}

	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: -1}}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []SyncLog
	if err = cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
