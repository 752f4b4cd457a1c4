package service

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"rentpay/shared/constant"
)

//go:embed refund_policies.json
var defaultPolicies []byte

const (
	fullRefundBasisPoints = constant.BasisPointsDenominator
	labelFullRefund       = "full refund"
	labelLateSettlement   = "settled after cancellation"
)

type Tier struct {
	Label       string `json:"label"`
	MinHours    int64  `json:"min_hours"`
	BasisPoints int64  `json:"basis_points"`
}

// Policies maps a cancellation policy name to its refund tiers, longest notice first.
type Policies map[string][]Tier

// LoadPolicies reads the refund table from path, or the built-in table when path is empty.
func LoadPolicies(path string) (Policies, error) {
	data := defaultPolicies

	if path != constant.Empty {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read refund policy file: %w", err)
		}

		data = raw
	}

	var policies Policies
	if err := json.Unmarshal(data, &policies); err != nil {
		return nil, fmt.Errorf("failed to parse refund policies: %w", err)
	}

	normalized := make(Policies, len(policies))

	for name, tiers := range policies {
		for _, tier := range tiers {
			if tier.BasisPoints < 0 || tier.BasisPoints > fullRefundBasisPoints || tier.MinHours < 0 {
				return nil, fmt.Errorf("invalid refund tier %q in policy %q", tier.Label, name)
			}
		}

		sorted := slices.Clone(tiers)
		slices.SortFunc(sorted, func(a, b Tier) int { return int(b.MinHours - a.MinHours) })

		normalized[strings.ToLower(name)] = sorted
	}

	return normalized, nil
}

// Select returns the tier earned by cancelling notice ahead of check-in.
func (p Policies) Select(policy string, notice time.Duration) (Tier, bool) {
	hours := int64(notice / time.Hour)

	for _, tier := range p[strings.ToLower(policy)] {
		if notice >= 0 && hours >= tier.MinHours {
			return tier, true
		}
	}

	return Tier{}, false
}
