package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/lottoshop/internal/domain"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

const dateLayout = time.DateOnly

type LoginRequestDTO struct {
	Email    string `json:"email" example:"john@example.com"`
	Password string `json:"password,omitempty" example:"secret"`
}

type UserResponseDTO struct {
	ID            string          `json:"id" example:"usr_456"`
	Name          string          `json:"name" example:"John Doe"`
	Email         string          `json:"email" example:"john@example.com"`
	Phone         string          `json:"phone" example:"+91 98765 43210"`
	AvatarURL     string          `json:"avatarUrl,omitempty"`
	WalletBalance decimal.Decimal `json:"walletBalance" swaggertype:"number" example:"1250.75"`
	KycStatus     string          `json:"kycStatus" example:"Verified"`
	KycDetails    *KycDetailsDTO  `json:"kycDetails,omitempty"`
	ReferralCode  string          `json:"referralCode" example:"JOHN2024"`
	Status        string          `json:"status" example:"active"`
	Role          string          `json:"role" example:"user"`
}

type UpdateProfileRequestDTO struct {
	Name      *string `json:"name,omitempty" example:"John Doe"`
	Phone     *string `json:"phone,omitempty" example:"+91 98765 43210"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

func NewUserResponse(u *domain.User) UserResponseDTO {
	return UserResponseDTO{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Phone:         u.Phone,
		AvatarURL:     u.AvatarURL,
		WalletBalance: u.WalletBalance,
		KycStatus:     string(u.KycStatus),
		KycDetails:    NewKycDetails(u.KycDetails),
		ReferralCode:  u.ReferralCode,
		Status:        string(u.Status),
		Role:          string(u.Role),
	}
}

func NewUserList(users []domain.User) []UserResponseDTO {
	res := make([]UserResponseDTO, len(users))
	for i := range users {
		res[i] = NewUserResponse(&users[i])
	}
	return res
}
