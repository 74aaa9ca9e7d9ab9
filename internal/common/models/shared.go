package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Log is the shape persisted by the async DB log writer.
type Log struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AppId        string             `bson:"app_id" json:"app_id"`
	Message      string             `bson:"message" json:"message"`
	Caller       string             `bson:"caller,omitempty" json:"caller,omitempty"`
	IpAddress    string             `bson:"ip_address,omitempty" json:"ip_address,omitempty"`
	WorkspaceID  string             `bson:"workspace_id,omitempty" json:"workspace_id,omitempty"`
	LogLevelId   int                `bson:"log_level_id" json:"log_level_id"`
	CreatedOnUtc time.Time          `bson:"created_on_utc" json:"created_on_utc"`
}
