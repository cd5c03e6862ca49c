package domain

// Gender of a member
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// MembershipStatus is the lifecycle state of a congregant
type MembershipStatus string

const (
	MembershipActive      MembershipStatus = "Active"
	MembershipInactive    MembershipStatus = "Inactive"
	MembershipDeceased    MembershipStatus = "Deceased"
	MembershipTransferred MembershipStatus = "Transferred"
)

// AttendanceStatus for a marked event
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceExcused AttendanceStatus = "Excused"
)

// TransactionType distinguishes income from expense
type TransactionType string

const (
	TransactionIncome  TransactionType = "Income"
	TransactionExpense TransactionType = "Expense"
)

// PaymentMethod for a financial transaction
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "Cash"
	PaymentMobileMoney  PaymentMethod = "Mobile Money"
	PaymentBankTransfer PaymentMethod = "Bank Transfer"
	PaymentOther        PaymentMethod = "Other"
)

// GroupType classifies a group
type GroupType string

const (
	GroupDepartment GroupType = "Department"
	GroupCommittee  GroupType = "Committee"
	GroupGeneral    GroupType = "General Group"
)

// EventStatus tracks an event's lifecycle
type EventStatus string

const (
	EventUpcoming  EventStatus = "Upcoming"
	EventOngoing   EventStatus = "Ongoing"
	EventCompleted EventStatus = "Completed"
	EventCancelled EventStatus = "Cancelled"
)

// AnnouncementStatus is Draft until published
type AnnouncementStatus string

const (
	AnnouncementDraft     AnnouncementStatus = "Draft"
	AnnouncementPublished AnnouncementStatus = "Published"
)

// GovernanceStatus is the state of a leadership term
type GovernanceStatus string

const (
	GovernanceActive   GovernanceStatus = "Active"
	GovernanceRetired  GovernanceStatus = "Retired"
	GovernanceEmeritus GovernanceStatus = "Emeritus"
)

// PledgeStatus tracks a committed future contribution
type PledgeStatus string

const (
	PledgePending   PledgeStatus = "Pending"
	PledgeFulfilled PledgeStatus = "Fulfilled"
	PledgeCancelled PledgeStatus = "Cancelled"
)

// ValidGender reports whether g is in the closed gender set
func ValidGender(g string) bool {
	switch Gender(g) {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// ValidMembershipStatus reports whether s is a known membership status
func ValidMembershipStatus(s string) bool {
	switch MembershipStatus(s) {
	case MembershipActive, MembershipInactive, MembershipDeceased, MembershipTransferred:
		return true
	}
	return false
}

// ValidAttendanceStatus reports whether s is a known attendance status
func ValidAttendanceStatus(s string) bool {
	switch AttendanceStatus(s) {
	case AttendancePresent, AttendanceAbsent, AttendanceExcused:
		return true
	}
	return false
}

// ValidTransactionType reports whether t is Income or Expense
func ValidTransactionType(t string) bool {
	switch TransactionType(t) {
	case TransactionIncome, TransactionExpense:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether m is a known payment method
func ValidPaymentMethod(m string) bool {
	switch PaymentMethod(m) {
	case PaymentCash, PaymentMobileMoney, PaymentBankTransfer, PaymentOther:
		return true
	}
	return false
}

// ValidGroupType reports whether t is a known group type
func ValidGroupType(t string) bool {
	switch GroupType(t) {
	case GroupDepartment, GroupCommittee, GroupGeneral:
		return true
	}
	return false
}

// ValidEventStatus reports whether s is a known event status
func ValidEventStatus(s string) bool {
	switch EventStatus(s) {
	case EventUpcoming, EventOngoing, EventCompleted, EventCancelled:
		return true
	}
	return false
}

// ValidAnnouncementStatus reports whether s is Draft or Published
func ValidAnnouncementStatus(s string) bool {
	switch AnnouncementStatus(s) {
	case AnnouncementDraft, AnnouncementPublished:
		return true
	}
	return false
}

// ValidGovernanceStatus reports whether s is a known governance status
func ValidGovernanceStatus(s string) bool {
	switch GovernanceStatus(s) {
	case GovernanceActive, GovernanceRetired, GovernanceEmeritus:
		return true
	}
	return false
}

// ValidPledgeStatus reports whether s is a known pledge status
func ValidPledgeStatus(s string) bool {
	switch PledgeStatus(s) {
	case PledgePending, PledgeFulfilled, PledgeCancelled:
		return true
	}
	return false
}
