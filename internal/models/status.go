package models

type Membership string

const (
	MembershipBronze Membership = "B"
	MembershipSilver Membership = "S"
	MembershipGold   Membership = "G"
)

func (m Membership) Label() string {
	switch m {
	case MembershipBronze:
		return "Bronze"
	case MembershipSilver:
		return "Silver"
	case MembershipGold:
		return "Gold"
	default:
		return ""
	}
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "P"
	PaymentStatusComplete PaymentStatus = "C"
	PaymentStatusFailed   PaymentStatus = "F"
)

func (s PaymentStatus) Label() string {
	switch s {
	case PaymentStatusPending:
		return "Pending"
	case PaymentStatusComplete:
		return "Complete"
	case PaymentStatusFailed:
		return "Failed"
	default:
		return ""
	}
}
