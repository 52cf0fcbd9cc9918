package dto

type VerifyRequestDTO struct {
	PublicKey string `json:"public_key" example:"GA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJVSGZ"`
	Signature string `json:"signature" example:"aGVsbG8gd29ybGQ="`
	Message   string `json:"message" example:"stake-house-login:1756598400"`
}

type VerifyResponseDTO struct {
	Token          string `json:"token"`
	StellarAddress string `json:"stellar_address"`
}
