package database

import (
	"time"
)

type User struct {
	UserID     int64     `gorm:"column:user_id;primaryKey"`
	Banned     bool      `gorm:"default:false;not null"`
	LastActive time.Time `gorm:"default:CURRENT_TIMESTAMP"`
	JoinDate   time.Time `gorm:"default:CURRENT_TIMESTAMP"`
	Language   string    `gorm:"default:'fa';not null"`
}

func (User) TableName() string { return "users" }

type Admin struct {
	UserID  int64     `gorm:"column:user_id;primaryKey"`
	AddedAt time.Time `gorm:"default:CURRENT_TIMESTAMP"`
}

func (Admin) TableName() string { return "bot_admins" }

type Settings struct {
	ChatID                   int64  `gorm:"column:chat_id;primaryKey"`
	ForwardLock              bool   `gorm:"default:true;not null"`
	AutoDeleteTime           int    `gorm:"default:30;not null"`
	AllowUploads             bool   `gorm:"default:false;not null"`
	ForceViewReactionEnabled bool   `gorm:"default:false;not null"`
	ViewReactionLink         string `gorm:"default:''"`
	ViewReactionChannelID    string `gorm:"column:view_reaction_channel_id;default:''"`
	WelcomeMessage           string `gorm:"default:'👋 خوش آمدید، {user}! 😊'"`
	ForceJoinEnabled         bool   `gorm:"default:true;not null"`
	ForceJoinLink            string `gorm:"default:''"`
	ForceJoinChannelID       string `gorm:"column:force_join_channel_id;default:''"`
}

func (Settings) TableName() string { return "settings" }

type File struct {
	FileID           string    `gorm:"column:file_id;primaryKey"`
	UserID           int64     `gorm:"column:user_id"`
	FileType         string    `gorm:"default:''"`
	MessageID        int64     `gorm:"column:message_id"`
	ChatID           int64     `gorm:"column:chat_id"`
	DownloadCount    int       `gorm:"default:0;not null"`
	UploadDate       time.Time `gorm:"default:CURRENT_TIMESTAMP"`
	Caption          *string
	OriginalFilename *string
}

func (File) TableName() string { return "files" }

type Album struct {
	AlbumID string `gorm:"column:album_id;primaryKey"`
	UserID  int64  `gorm:"column:user_id"`
	// MessageIDs holds the ordered message list as comma-joined decimals.
	// Use MessageIDList / SaveAlbumInfo instead of touching it directly.
	MessageIDs    string    `gorm:"column:message_ids"`
	ChatID        int64     `gorm:"column:chat_id"`
	DownloadCount int       `gorm:"default:0;not null"`
	UploadDate    time.Time `gorm:"default:CURRENT_TIMESTAMP"`
}

func (Album) TableName() string { return "albums" }

type CustomText struct {
	Key  string `gorm:"column:key;primaryKey"`
	Text string `gorm:"default:''"`
}

func (CustomText) TableName() string { return "custom_texts" }
