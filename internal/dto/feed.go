package dto

import "github.com/GlebRadaev/lottoshop/internal/domain"

type RecentPurchaseDTO struct {
	ID         string `json:"id" example:"pur_1"`
	UserName   string `json:"userName" example:"Rahul K."`
	BundleSize int    `json:"bundleSize" example:"5"`
	DrawTime   string `json:"drawTime" example:"8 PM"`
	Timestamp  int64  `json:"timestamp" example:"1722163200000"`
}

func NewRecentPurchases(feed []domain.RecentPurchase) []RecentPurchaseDTO {
	res := make([]RecentPurchaseDTO, len(feed))
	for i, p := range feed {
		res[i] = RecentPurchaseDTO{
			ID:         p.ID,
			UserName:   p.UserName,
			BundleSize: p.BundleSize,
			DrawTime:   p.DrawTime,
			Timestamp:  p.Timestamp.UnixMilli(),
		}
	}
	return res
}
