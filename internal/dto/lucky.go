package dto

type LuckyNumbersRequestDTO struct {
	Prompt string `json:"prompt" example:"numbers for my birthday"`
}

type LuckyNumbersResponseDTO struct {
	Numbers   []string `json:"numbers"`
	Reasoning string   `json:"reasoning"`
}
