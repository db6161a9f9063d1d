package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"gorm.io/datatypes"
)

// Entity is the column superset shared by every catalog table (the ten
// monument tables, products, fences, accessories, landscape). A given table
// only populates the columns it historically had; the rest stay NULL.
// The table itself is chosen per query through the category registry.
type Entity struct {
	ID        int64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Slug      string   `json:"slug" gorm:"uniqueIndex;not null"`
	Name      string   `json:"name" gorm:"not null"`
	Height    *string  `json:"height,omitempty"`
	Price     *float64 `json:"price" gorm:"type:numeric(10,2)"`
	OldPrice  *float64 `json:"oldPrice,omitempty" gorm:"column:old_price;type:numeric(10,2)"`
	Discount  *float64 `json:"discount,omitempty" gorm:"type:numeric(10,2)"`
	TextPrice *string  `json:"textPrice,omitempty" gorm:"column:text_price"`

	// Category holds the display label (e.g. "Одиночные"), not the routing key.
	Category string `json:"category" gorm:"not null;index"`

	Image          string            `json:"image"`
	Colors         *string           `json:"colors,omitempty"`
	Options        *string           `json:"options,omitempty"`
	Description    *string           `json:"description,omitempty"`
	Specifications datatypes.JSONMap `json:"specifications,omitempty" gorm:"type:jsonb"`
	Availability   *string           `json:"availability,omitempty"`
	Hit            bool              `json:"hit" gorm:"default:false"`
	Popular        bool              `json:"popular" gorm:"default:false"`
	New            bool              `json:"new" gorm:"column:new;default:false"`

	SeoTitle       *string `json:"seoTitle,omitempty" gorm:"column:seo_title"`
	SeoDescription *string `json:"seoDescription,omitempty" gorm:"column:seo_description"`
	SeoKeywords    *string `json:"seoKeywords,omitempty" gorm:"column:seo_keywords"`
	OgImage        *string `json:"ogImage,omitempty" gorm:"column:og_image"`

	CreatedAt time.Time `json:"createdAt" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// Price accepts both JSON numbers and legacy display strings such as
// "12 500 ₽"; non-digits are stripped before parsing.
type Price float64

func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		digits := make([]byte, 0, len(raw))
		for _, r := range raw {
			if r >= '0' && r <= '9' {
				digits = append(digits, byte(r))
			}
		}
		if len(digits) == 0 {
			*p = 0
			return nil
		}
		parsed, err := strconv.ParseFloat(string(digits), 64)
		if err != nil {
			return err
		}
		*p = Price(parsed)
		return nil
	}

	var parsed float64
	if err := json.Unmarshal(data, &parsed); err != nil {
		return err
	}
	*p = Price(parsed)
	return nil
}

func (p *Price) Float() *float64 {
	if p == nil {
		return nil
	}
	v := float64(*p)
	return &v
}
