package offer

import (
	"encoding/json"

	"github.com/m04kA/SMC-OfferService/internal/domain"
)

// feeRecord сбор в колонке additional_fees (JSONB)
type feeRecord struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Type   string  `json:"type"`
}

func marshalFees(fees []domain.Fee) ([]byte, error) {
	records := make([]feeRecord, 0, len(fees))
	for _, fee := range fees {
		records = append(records, feeRecord{Name: fee.Name, Amount: fee.Amount, Type: string(fee.Type)})
	}
	return json.Marshal(records)
}

func unmarshalFees(data []byte) ([]domain.Fee, error) {
	if len(data) == 0 {
		return []domain.Fee{}, nil
	}

	var records []feeRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	fees := make([]domain.Fee, 0, len(records))
	for _, r := range records {
		fees = append(fees, domain.Fee{Name: r.Name, Amount: r.Amount, Type: domain.FeeType(r.Type)})
	}
	return fees, nil
}
