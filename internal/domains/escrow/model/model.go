package model

import "time"

const (
	ReleaseTableName  = "escrow_releases"
	ReleaseEntityName = "escrow_release"

	RefundTableName  = "refunds"
	RefundEntityName = "refund"

	FieldID        = "id"
	FieldBookingID = "booking_id"
)

// Release authorizes paying the host out of escrow. One per booking.
type Release struct {
	ID               string    `db:"id"                json:"id"`
	BookingID        string    `db:"booking_id"        json:"booking_id"`
	HostID           string    `db:"host_id"           json:"host_id"`
	HostAddress      string    `db:"host_address"      json:"host_address"`
	Amount           int64     `db:"amount"            json:"amount"`
	ReleaseReference string    `db:"release_reference" json:"release_reference"`
	CreatedAt        time.Time `db:"created_at"        json:"created_at"`
}

type RefundKind string

const (
	RefundKindCancellation RefundKind = "CANCELLATION"
	RefundKindDispute      RefundKind = "DISPUTE"
)

// Refund returns settled funds to the renter. One per booking.
type Refund struct {
	ID                string     `db:"id"                  json:"id"`
	BookingID         string     `db:"booking_id"          json:"booking_id"`
	RenterID          string     `db:"renter_id"           json:"renter_id"`
	Policy            string     `db:"policy"              json:"policy"`
	TierLabel         string     `db:"tier_label"          json:"tier_label"`
	RefundBasisPoints int64      `db:"refund_basis_points" json:"refund_basis_points"`
	SettledAmount     int64      `db:"settled_amount"      json:"settled_amount"`
	Amount            int64      `db:"amount"              json:"amount"`
	Reason            string     `db:"reason"              json:"reason"`
	Kind              RefundKind `db:"kind"                json:"kind"`
	CreatedAt         time.Time  `db:"created_at"          json:"created_at"`
}
