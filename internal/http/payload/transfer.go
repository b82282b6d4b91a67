package payload

import (
	"biowallet/internal/core"
	"regexp"

	"github.com/jellydator/validation"
)

var addressRegex = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

type SendRequest struct {
	FromAddress string              `json:"fromAddress"`
	ToAddress   string              `json:"toAddress"`
	Amount      float64             `json:"amount"`
	Attestation CeremonyAttestation `json:"attestation"`
}

func (s SendRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.FromAddress, validation.Required, validation.Match(addressRegex)),
		validation.Field(&s.ToAddress, validation.Required, validation.Match(addressRegex)),
		validation.Field(&s.Attestation),
	)
}

func (s SendRequest) ToTransferRequest() core.TransferRequest {
	return core.TransferRequest{
		FromAddress: s.FromAddress,
		ToAddress:   s.ToAddress,
		Amount:      s.Amount,
	}
}
