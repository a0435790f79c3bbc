package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleClient     Role = "client"
	RoleContractor Role = "contractor"
)

type ContractStatus string

const (
	ContractNew        ContractStatus = "new"
	ContractInProgress ContractStatus = "in_progress"
	ContractTerminated ContractStatus = "terminated"
)

type Profile struct {
	ID         int       `db:"id"`
	FirstName  string    `db:"first_name"`
	LastName   string    `db:"last_name"`
	Profession string    `db:"profession"`
	Balance    float64   `db:"balance"`
	Role       Role      `db:"role"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (p Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}

type Contract struct {
	ID           int            `db:"id"`
	Terms        string         `db:"terms"`
	Status       ContractStatus `db:"status"`
	ClientID     int            `db:"client_id"`
	ContractorID int            `db:"contractor_id"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

// IsParty reports whether the profile is the client or the contractor of the contract.
func (c Contract) IsParty(profileID int) bool {
	return c.ClientID == profileID || c.ContractorID == profileID
}

// Job is paid exactly when PaymentDate is set.
type Job struct {
	ID          int        `db:"id"`
	Description string     `db:"description"`
	Price       float64    `db:"price"`
	Paid        bool       `db:"paid"`
	PaymentDate *time.Time `db:"payment_date"`
	ContractID  int        `db:"contract_id"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

// JobContract is a job joined with the parties of its contract.
type JobContract struct {
	Job            Job
	ClientID       int
	ContractorID   int
	ContractStatus ContractStatus
}

// ContractFilter narrows contract listings. Zero fields are ignored.
type ContractFilter struct {
	PartyID   int
	Status    ContractStatus
	StatusNot ContractStatus
}

type LedgerKind string

const (
	LedgerSettlement LedgerKind = "settlement"
	LedgerDeposit    LedgerKind = "deposit"
)

type LedgerEntry struct {
	ID            uuid.UUID  `db:"id"`
	Kind          LedgerKind `db:"kind"`
	JobID         *int       `db:"job_id"`
	FromProfileID *int       `db:"from_profile_id"`
	ToProfileID   int        `db:"to_profile_id"`
	Amount        float64    `db:"amount"`
	CreatedAt     time.Time  `db:"created_at"`
}

type ProfessionEarning struct {
	Profession  string  `db:"profession"`
	MoneyEarned float64 `db:"earned"`
}

type ClientPayment struct {
	ID       int     `db:"id" json:"id"`
	FullName string  `db:"full_name" json:"fullName"`
	Paid     float64 `db:"paid" json:"paid"`
}
