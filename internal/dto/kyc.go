package dto

import "github.com/GlebRadaev/lottoshop/internal/domain"

type KycDetailsDTO struct {
	DocumentType   string `json:"documentType" example:"Aadhar Card"`
	DocumentNumber string `json:"documentNumber" example:"1234 5678 9012"`
	FrontImageURL  string `json:"frontImageUrl"`
	BackImageURL   string `json:"backImageUrl,omitempty"`
	SubmissionDate string `json:"submissionDate,omitempty" example:"2024-07-30"`
}

type KycResponseDTO struct {
	UserID   string         `json:"userId" example:"usr_789"`
	UserName string         `json:"userName" example:"Jane Smith"`
	Status   string         `json:"kycStatus" example:"Pending"`
	Details  *KycDetailsDTO `json:"kycDetails,omitempty"`
}

type ReviewKycRequestDTO struct {
	Status string `json:"status" example:"Verified"`
}

func NewKycDetails(d *domain.KycDetails) *KycDetailsDTO {
	if d == nil {
		return nil
	}
	res := &KycDetailsDTO{
		DocumentType:   d.DocumentType,
		DocumentNumber: d.DocumentNumber,
		FrontImageURL:  d.FrontImageURL,
		BackImageURL:   d.BackImageURL,
	}
	if !d.SubmissionDate.IsZero() {
		res.SubmissionDate = d.SubmissionDate.Format(dateLayout)
	}
	return res
}

func (d KycDetailsDTO) ToDomain() domain.KycDetails {
	return domain.KycDetails{
		DocumentType:   d.DocumentType,
		DocumentNumber: d.DocumentNumber,
		FrontImageURL:  d.FrontImageURL,
		BackImageURL:   d.BackImageURL,
	}
}

func NewKycResponse(u *domain.User) KycResponseDTO {
	return KycResponseDTO{
		UserID:   u.ID,
		UserName: u.Name,
		Status:   string(u.KycStatus),
		Details:  NewKycDetails(u.KycDetails),
	}
}

func NewKycList(users []domain.User) []KycResponseDTO {
	res := make([]KycResponseDTO, len(users))
	for i := range users {
		res[i] = NewKycResponse(&users[i])
	}
	return res
}
