package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ============================================================
// Auth & User Tables
// ============================================================

// User represents users table (staff accounts; may lead groups
// and may be linked from a member record)
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Congregation Tables
// ============================================================

// Member represents members table
type Member struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	FirstName        string     `gorm:"size:100;not null" json:"first_name"`
	MiddleName       string     `gorm:"size:100" json:"middle_name"`
	LastName         string     `gorm:"size:100;not null" json:"last_name"`
	Gender           string     `gorm:"size:10;not null" json:"gender"`
	DOB              *time.Time `gorm:"type:date" json:"dob"`
	Phone            string     `gorm:"size:20" json:"phone"`
	Email            *string    `gorm:"size:100;uniqueIndex" json:"email"`
	Occupation       string     `gorm:"size:100" json:"occupation"`
	Hometown         string     `gorm:"size:100" json:"hometown"`
	MembershipStatus string     `gorm:"size:20;not null;default:'Active';index" json:"membership_status"`
	BaptismDate      *time.Time `gorm:"type:date" json:"baptism_date"`
	ConfirmationDate *time.Time `gorm:"type:date" json:"confirmation_date"`
	PhotoURL         string     `gorm:"size:255" json:"photo_url"`
	UserID           *uint      `json:"user_id"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	User         *User              `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Groups       []GroupMember      `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE" json:"groups,omitempty"`
	Attendance   []Attendance       `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE" json:"attendance,omitempty"`
	Transactions []Transaction      `gorm:"foreignKey:MemberID" json:"transactions,omitempty"`
	Pledges      []Pledge           `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE" json:"pledges,omitempty"`
	Governance   []GovernanceRecord `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE" json:"governance,omitempty"`
}

func (Member) TableName() string {
	return "members"
}

// FullName joins first, middle and last name with single spaces,
// skipping an absent middle name.
func (m *Member) FullName() string {
	parts := []string{m.FirstName}
	if m.MiddleName != "" {
		parts = append(parts, m.MiddleName)
	}
	parts = append(parts, m.LastName)
	return strings.Join(parts, " ")
}

// MemberResponse DTO
type MemberResponse struct {
	ID               uint       `json:"id"`
	FirstName        string     `json:"first_name"`
	MiddleName       string     `json:"middle_name,omitempty"`
	LastName         string     `json:"last_name"`
	FullName         string     `json:"full_name"`
	Gender           string     `json:"gender"`
	DOB              *time.Time `json:"dob"`
	Phone            string     `json:"phone,omitempty"`
	Email            *string    `json:"email"`
	Occupation       string     `json:"occupation,omitempty"`
	Hometown         string     `json:"hometown,omitempty"`
	MembershipStatus string     `json:"membership_status"`
	BaptismDate      *time.Time `json:"baptism_date"`
	ConfirmationDate *time.Time `json:"confirmation_date"`
	PhotoURL         string     `json:"photo_url,omitempty"`
	MemberSince      time.Time  `json:"member_since"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (m *Member) ToResponse() *MemberResponse {
	return &MemberResponse{
		ID:               m.ID,
		FirstName:        m.FirstName,
		MiddleName:       m.MiddleName,
		LastName:         m.LastName,
		FullName:         m.FullName(),
		Gender:           m.Gender,
		DOB:              m.DOB,
		Phone:            m.Phone,
		Email:            m.Email,
		Occupation:       m.Occupation,
		Hometown:         m.Hometown,
		MembershipStatus: m.MembershipStatus,
		BaptismDate:      m.BaptismDate,
		ConfirmationDate: m.ConfirmationDate,
		PhotoURL:         m.PhotoURL,
		MemberSince:      m.CreatedAt,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// Group represents groups table (departments, committees, general groups)
type Group struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Type        string    `gorm:"size:20;not null" json:"type"`
	LeaderID    *uint     `json:"leader_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Leader  *User         `gorm:"foreignKey:LeaderID" json:"leader,omitempty"`
	Members []GroupMember `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"members,omitempty"`
}

func (Group) TableName() string {
	return "groups"
}

// GroupMember is the group<->member join row. One row per pair;
// the role travels on the row.
type GroupMember struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	GroupID     uint      `gorm:"not null;uniqueIndex:idx_group_member" json:"group_id"`
	MemberID    uint      `gorm:"not null;uniqueIndex:idx_group_member" json:"member_id"`
	RoleInGroup string    `gorm:"size:100;not null;default:'Member'" json:"role_in_group"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Group  *Group  `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (GroupMember) TableName() string {
	return "group_member"
}

// GroupResponse DTO
type GroupResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Type        string    `json:"type"`
	LeaderID    *uint     `json:"leader_id"`
	LeaderName  string    `json:"leader_name,omitempty"`
	MemberCount int64     `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
}

func (g *Group) ToResponse() *GroupResponse {
	resp := &GroupResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Type:        g.Type,
		LeaderID:    g.LeaderID,
		CreatedAt:   g.CreatedAt,
	}
	if g.Leader != nil {
		resp.LeaderName = g.Leader.Name
	}
	return resp
}

// RosterEntry is one member of a group with their role
type RosterEntry struct {
	MemberID    uint   `json:"member_id"`
	FullName    string `json:"full_name"`
	RoleInGroup string `json:"role_in_group"`
}

// Attendance represents attendance table. Rows are created in
// batches, one per member per marked event.
type Attendance struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MemberID  uint      `gorm:"not null;index" json:"member_id"`
	EventName string    `gorm:"size:255;not null" json:"event_name"`
	EventDate time.Time `gorm:"type:date;not null;index" json:"event_date"`
	Status    string    `gorm:"size:10;not null" json:"status"`
	Remarks   string    `gorm:"type:text" json:"remarks"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (Attendance) TableName() string {
	return "attendance"
}

// AttendanceResponse DTO
type AttendanceResponse struct {
	ID         uint      `json:"id"`
	MemberID   uint      `json:"member_id"`
	MemberName string    `json:"member_name,omitempty"`
	EventName  string    `json:"event_name"`
	EventDate  time.Time `json:"event_date"`
	Status     string    `json:"status"`
	Remarks    string    `json:"remarks,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (a *Attendance) ToResponse() *AttendanceResponse {
	resp := &AttendanceResponse{
		ID:        a.ID,
		MemberID:  a.MemberID,
		EventName: a.EventName,
		EventDate: a.EventDate,
		Status:    a.Status,
		Remarks:   a.Remarks,
		CreatedAt: a.CreatedAt,
	}
	if a.Member != nil {
		resp.MemberName = a.Member.FullName()
	}
	return resp
}

// Transaction represents transactions table (tithes, offerings, expenses).
// Amounts are decimal end to end; display formatting happens only in DTOs.
type Transaction struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	MemberID        *uint           `gorm:"index" json:"member_id"`
	Amount          decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Type            string          `gorm:"size:10;not null;index" json:"type"`
	Category        string          `gorm:"size:100;not null;index" json:"category"`
	PaymentMethod   string          `gorm:"size:20;not null" json:"payment_method"`
	Description     string          `gorm:"type:text" json:"description"`
	TransactionDate time.Time       `gorm:"not null;index" json:"transaction_date"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// TransactionResponse DTO
type TransactionResponse struct {
	ID              uint      `json:"id"`
	MemberID        *uint     `json:"member_id"`
	MemberName      string    `json:"member_name,omitempty"`
	Amount          string    `json:"amount"`
	Type            string    `json:"type"`
	Category        string    `json:"category"`
	PaymentMethod   string    `json:"payment_method"`
	Description     string    `json:"description,omitempty"`
	TransactionDate time.Time `json:"transaction_date"`
	CreatedAt       time.Time `json:"created_at"`
}

func (t *Transaction) ToResponse() *TransactionResponse {
	resp := &TransactionResponse{
		ID:              t.ID,
		MemberID:        t.MemberID,
		Amount:          t.Amount.StringFixed(2),
		Type:            t.Type,
		Category:        t.Category,
		PaymentMethod:   t.PaymentMethod,
		Description:     t.Description,
		TransactionDate: t.TransactionDate,
		CreatedAt:       t.CreatedAt,
	}
	if t.Member != nil {
		resp.MemberName = t.Member.FullName()
	}
	return resp
}

// Pledge represents pledges table
type Pledge struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	MemberID    uint            `gorm:"not null;index" json:"member_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Description string          `gorm:"type:text" json:"description"`
	DueDate     *time.Time      `gorm:"type:date" json:"due_date"`
	Status      string          `gorm:"size:20;not null;default:'Pending'" json:"status"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (Pledge) TableName() string {
	return "pledges"
}

// PledgeResponse DTO
type PledgeResponse struct {
	ID          uint       `json:"id"`
	MemberID    uint       `json:"member_id"`
	MemberName  string     `json:"member_name,omitempty"`
	Amount      string     `json:"amount"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (p *Pledge) ToResponse() *PledgeResponse {
	resp := &PledgeResponse{
		ID:          p.ID,
		MemberID:    p.MemberID,
		Amount:      p.Amount.StringFixed(2),
		Description: p.Description,
		DueDate:     p.DueDate,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
	}
	if p.Member != nil {
		resp.MemberName = p.Member.FullName()
	}
	return resp
}

// GovernanceRecord represents governance_records table
// (term-bounded leadership role assignments)
type GovernanceRecord struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	MemberID  uint       `gorm:"not null;index" json:"member_id"`
	Role      string     `gorm:"size:100;not null" json:"role"`
	StartTerm time.Time  `gorm:"type:date;not null" json:"start_term"`
	EndTerm   *time.Time `gorm:"type:date" json:"end_term"`
	Status    string     `gorm:"size:20;not null;default:'Active'" json:"status"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (GovernanceRecord) TableName() string {
	return "governance_records"
}

// GovernanceResponse DTO
type GovernanceResponse struct {
	ID         uint       `json:"id"`
	MemberID   uint       `json:"member_id"`
	MemberName string     `json:"member_name,omitempty"`
	Role       string     `json:"role"`
	StartTerm  time.Time  `json:"start_term"`
	EndTerm    *time.Time `json:"end_term"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (g *GovernanceRecord) ToResponse() *GovernanceResponse {
	resp := &GovernanceResponse{
		ID:        g.ID,
		MemberID:  g.MemberID,
		Role:      g.Role,
		StartTerm: g.StartTerm,
		EndTerm:   g.EndTerm,
		Status:    g.Status,
		CreatedAt: g.CreatedAt,
	}
	if g.Member != nil {
		resp.MemberName = g.Member.FullName()
	}
	return resp
}

// Event represents events table
type Event struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Location    string     `gorm:"size:255" json:"location"`
	StartDate   time.Time  `gorm:"not null;index" json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Type        string     `gorm:"size:50" json:"type"`
	Status      string     `gorm:"size:20;not null;default:'Upcoming';index" json:"status"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Event) TableName() string {
	return "events"
}

// Announcement represents announcements table
type Announcement struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Title          string     `gorm:"size:255;not null" json:"title"`
	Content        string     `gorm:"type:text;not null" json:"content"`
	TargetAudience string     `gorm:"size:100" json:"target_audience"`
	Status         string     `gorm:"size:20;not null;default:'Draft';index" json:"status"`
	PublishedAt    *time.Time `gorm:"index" json:"published_at"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Announcement) TableName() string {
	return "announcements"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate creates or updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&Member{},
		&Group{},
		&GroupMember{},
		&Attendance{},
		&Transaction{},
		&Pledge{},
		&GovernanceRecord{},
		&Event{},
		&Announcement{},
	)
}
