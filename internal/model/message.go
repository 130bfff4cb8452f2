package model

import "time"

type Message struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create" json:"messageid"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	Email       string    `gorm:"column:email;not null" json:"email"`
	Phone       string    `gorm:"column:phone;not null" json:"phone"`
	Subject     string    `gorm:"column:subject;not null" json:"subject"`
	Description string    `gorm:"column:description;type:text;not null" json:"description"`
	Read        bool      `gorm:"column:is_read;default:false;not null" json:"-"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"-"`
}

func (Message) TableName() string {
	return "messages"
}

type MessageSummary struct {
	ID      int64  `gorm:"column:id" json:"id"`
	Name    string `gorm:"column:name" json:"name"`
	Subject string `gorm:"column:subject" json:"subject"`
}

type Messages struct {
	Messages []MessageSummary `json:"messages"`
}

type Count struct {
	Count int `json:"count"`
}
