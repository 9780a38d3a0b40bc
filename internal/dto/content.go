package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/lottoshop/internal/domain"
)

type BannerDTO struct {
	ID       string `json:"id,omitempty" example:"b1"`
	ImageURL string `json:"imageUrl"`
	Title    string `json:"title" example:"Win the Mega Jackpot This Sunday!"`
}

type UpiDTO struct {
	ID    string `json:"id,omitempty" example:"upi_1"`
	Name  string `json:"name" example:"Official UPI"`
	UpiID string `json:"upiId" example:"contact@dearonline.wb"`
}

type QrCodeDTO struct {
	ID       string `json:"id,omitempty" example:"qr_1"`
	Name     string `json:"name" example:"Official QR Code"`
	ImageURL string `json:"imageUrl"`
}

type PaymentChannelsDTO struct {
	Upi     []UpiDTO    `json:"upi"`
	QrCodes []QrCodeDTO `json:"qrCodes"`
}

type AboutUsDTO struct {
	Content string `json:"content"`
}

type WinnerDTO struct {
	ID          string          `json:"id" example:"win1"`
	Name        string          `json:"name" example:"Aarav Sharma"`
	PrizeAmount decimal.Decimal `json:"prizeAmount" swaggertype:"number" example:"50000"`
	DrawTime    string          `json:"drawTime" example:"8 PM"`
	Date        string          `json:"date" example:"2024-07-28"`
	AvatarURL   string          `json:"avatarUrl,omitempty"`
}

type SupportRequestDTO struct {
	Subject string `json:"subject" example:"Deposit not credited"`
	Message string `json:"message"`
}

type SupportTicketDTO struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func NewBanner(b *domain.Banner) BannerDTO {
	return BannerDTO{ID: b.ID, ImageURL: b.ImageURL, Title: b.Title}
}

func NewBannerList(banners []domain.Banner) []BannerDTO {
	res := make([]BannerDTO, len(banners))
	for i := range banners {
		res[i] = NewBanner(&banners[i])
	}
	return res
}

func NewUpi(u *domain.UpiDetail) UpiDTO {
	return UpiDTO{ID: u.ID, Name: u.Name, UpiID: u.UpiID}
}

func NewUpiList(upi []domain.UpiDetail) []UpiDTO {
	res := make([]UpiDTO, len(upi))
	for i := range upi {
		res[i] = NewUpi(&upi[i])
	}
	return res
}

func NewQrCode(q *domain.QrCodeDetail) QrCodeDTO {
	return QrCodeDTO{ID: q.ID, Name: q.Name, ImageURL: q.ImageURL}
}

func NewQrCodeList(qr []domain.QrCodeDetail) []QrCodeDTO {
	res := make([]QrCodeDTO, len(qr))
	for i := range qr {
		res[i] = NewQrCode(&qr[i])
	}
	return res
}

func NewWinnerList(winners []domain.Winner) []WinnerDTO {
	res := make([]WinnerDTO, len(winners))
	for i, w := range winners {
		res[i] = WinnerDTO{
			ID:          w.ID,
			Name:        w.Name,
			PrizeAmount: w.PrizeAmount,
			DrawTime:    w.DrawTime,
			Date:        w.Date,
			AvatarURL:   w.AvatarURL,
		}
	}
	return res
}

func NewSupportTicket(t *domain.SupportTicket) SupportTicketDTO {
	return SupportTicketDTO{
		ID:          t.ID,
		UserID:      t.UserID,
		Subject:     t.Subject,
		Message:     t.Message,
		SubmittedAt: t.SubmittedAt,
	}
}

func NewTicketList(tickets []domain.SupportTicket) []SupportTicketDTO {
	res := make([]SupportTicketDTO, len(tickets))
	for i := range tickets {
		res[i] = NewSupportTicket(&tickets[i])
	}
	return res
}
