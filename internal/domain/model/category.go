package model

import (
	"math/rand"
	"strings"
	"time"

	"gorm.io/gorm"
)

// カテゴリは自己参照ツリー（親が無ければトップレベル）
type Category struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(200);not null" json:"name"`
	ParentID  *int64    `gorm:"index;uniqueIndex:idx_categories_slug_parent" json:"parent_id,omitempty"`
	Slug      string    `gorm:"type:varchar(200);not null;uniqueIndex:idx_categories_slug_parent" json:"slug"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

const slugAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func randSlug() string {
	b := make([]byte, 3)
	for i := range b {
		b[i] = slugAlphabet[rand.Intn(len(slugAlphabet))]
	}
	return string(b)
}

// Slugify は名前をURL用スラッグに変換
func Slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}

// slugが空なら名前＋ランダム3文字から生成
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.Slug == "" {
		c.Slug = Slugify(randSlug() + "-" + c.Name)
	}
	return nil
}
