package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/lottoshop/internal/domain"
)

type DrawResponseDTO struct {
	ID         string    `json:"id" example:"6 PM"`
	NextDrawAt time.Time `json:"nextDrawAt"`
}

type BundleResponseDTO struct {
	ID          string          `json:"id" example:"bundle_6PM_10_8"`
	DrawTime    string          `json:"drawTime" example:"6 PM"`
	BundleSize  int             `json:"bundleSize" example:"10"`
	TicketValue decimal.Decimal `json:"ticketValue" swaggertype:"number" example:"7"`
	Price       decimal.Decimal `json:"price" swaggertype:"number" example:"70"`
	ImageURL    string          `json:"imageUrl"`
}

type AddBundleRequestDTO struct {
	DrawTime   string `json:"drawTime" example:"8 PM"`
	BundleSize int    `json:"bundleSize" example:"25"`
	ImageURL   string `json:"imageUrl"`
}

type PurchaseRequestDTO struct {
	BundleID      string `json:"bundleId" example:"bundle_6PM_10_8"`
	PaymentMethod string `json:"paymentMethod" example:"wallet"`
	Reference     string `json:"reference,omitempty" example:"UTR123456789"`
}

type PurchaseResponseDTO struct {
	Transaction TransactionResponseDTO `json:"transaction"`
	Balance     decimal.Decimal        `json:"balance" swaggertype:"number" example:"1180.75"`
}

type ResultResponseDTO struct {
	ID             string           `json:"id" example:"res1"`
	DrawTime       string           `json:"drawTime" example:"1 PM"`
	Date           string           `json:"date" example:"2024-07-28"`
	WinningNumbers []string         `json:"winningNumbers"`
	PrizeAmount    *decimal.Decimal `json:"prizeAmount,omitempty" swaggertype:"number" example:"5000000"`
	PdfURL         string           `json:"pdfUrl,omitempty"`
}

type PublishResultRequestDTO struct {
	DrawTime       string           `json:"drawTime" example:"1 PM"`
	Date           string           `json:"date" example:"2024-07-28"`
	WinningNumbers []string         `json:"winningNumbers"`
	PrizeAmount    *decimal.Decimal `json:"prizeAmount,omitempty" swaggertype:"number"`
	PdfURL         string           `json:"pdfUrl,omitempty"`
}

func NewBundleResponse(b *domain.SemBundle, price decimal.Decimal) BundleResponseDTO {
	return BundleResponseDTO{
		ID:          b.ID,
		DrawTime:    b.DrawTime,
		BundleSize:  b.BundleSize,
		TicketValue: b.TicketValue,
		Price:       price,
		ImageURL:    b.ImageURL,
	}
}

func NewResultResponse(r *domain.DrawResult) ResultResponseDTO {
	return ResultResponseDTO{
		ID:             r.ID,
		DrawTime:       r.DrawTime,
		Date:           r.Date,
		WinningNumbers: r.WinningNumbers,
		PrizeAmount:    r.PrizeAmount,
		PdfURL:         r.PdfURL,
	}
}

func NewResultList(results []domain.DrawResult) []ResultResponseDTO {
	res := make([]ResultResponseDTO, len(results))
	for i := range results {
		res[i] = NewResultResponse(&results[i])
	}
	return res
}

func (r PublishResultRequestDTO) ToDomain() domain.DrawResult {
	return domain.DrawResult{
		DrawTime:       r.DrawTime,
		Date:           r.Date,
		WinningNumbers: r.WinningNumbers,
		PrizeAmount:    r.PrizeAmount,
		PdfURL:         r.PdfURL,
	}
}
