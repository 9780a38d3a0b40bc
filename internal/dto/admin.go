package dto

import "github.com/shopspring/decimal"

type StatsResponseDTO struct {
	TotalUsers         int             `json:"totalUsers" example:"3"`
	TotalRevenue       decimal.Decimal `json:"totalRevenue" swaggertype:"number" example:"1850"`
	TicketsSold        int             `json:"ticketsSold" example:"2"`
	PendingWithdrawals int             `json:"pendingWithdrawals" example:"2"`
	PendingKyc         int             `json:"pendingKyc" example:"1"`
}

type UserStatusRequestDTO struct {
	Status string `json:"status" example:"blocked"`
}

type EntryViewResponseDTO struct {
	InitialView string `json:"initialView" example:"storefront"`
}
