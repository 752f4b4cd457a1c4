package dto

import (
	"rentpay/shared/constant"
	"rentpay/shared/model"
	"rentpay/shared/timezone"
)

// Metadata is the audit trail rendered on every resource, in the app time zone.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedBy string `json:"modified_by"`
}

func NewMetadata(m model.Metadata) Metadata {
	return Metadata{
		CreatedAt:  timezone.Format(m.CreatedAt, constant.DateFormat),
		ModifiedAt: timezone.Format(m.ModifiedAt, constant.DateFormat),
		CreatedBy:  m.CreatedBy,
		ModifiedBy: m.ModifiedBy,
	}
}
