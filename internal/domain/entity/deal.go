package entity

import (
	"time"

	"re_deals/internal/domain/value"
)

// Deal сохранённая сделка пользователя со снимком показателей первого года.
type Deal struct {
	ID        value.DealID
	OwnerID   string
	Title     string
	Status    value.DealStatus
	Inputs    DealInputs
	Snapshot  ReturnMetrics
	CreatedAt time.Time
	UpdatedAt time.Time
}

// VisibleTo владелец видит всё, остальные только опубликованные.
func (d Deal) VisibleTo(userID string) bool {
	return d.OwnerID == userID || d.Status == value.DealStatusPublished
}
