package core

import (
	"time"
)

// PolicyRecord is the ledger row of a policy stored in a user's pod
// immutable
type PolicyRecord struct {
	ID       string    `json:"id" gorm:"primaryKey;type:char(20)"`
	Owner    string    `json:"owner" gorm:"type:text;index"`
	Location string    `json:"location" gorm:"type:text;uniqueIndex"`
	Target   string    `json:"target" gorm:"type:text"`
	Category string    `json:"category" gorm:"type:text"`
	Purpose  string    `json:"purpose" gorm:"type:text"`
	Document string    `json:"document" gorm:"type:text"`
	CDate    time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

// PublicationRecord is the ledger row of a dataset advertised on a catalog
// immutable
type PublicationRecord struct {
	ID        string    `json:"id" gorm:"primaryKey;type:char(20)"`
	Publisher string    `json:"publisher" gorm:"type:text;index"`
	Catalog   string    `json:"catalog" gorm:"type:text;uniqueIndex:uniq_publication"`
	DatasetID string    `json:"datasetID" gorm:"type:text;uniqueIndex:uniq_publication"`
	Policy    string    `json:"policy" gorm:"type:text"`
	Location  string    `json:"location" gorm:"type:text"`
	Category  string    `json:"category" gorm:"type:text"`
	Purpose   string    `json:"purpose" gorm:"type:text"`
	CDate     time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

// AccessRequestRecord is the ledger row of a notification sent to a publisher's inbox
// immutable
type AccessRequestRecord struct {
	ID           string    `json:"id" gorm:"primaryKey;type:char(20)"`
	Requester    string    `json:"requester" gorm:"type:text;index"`
	Publisher    string    `json:"publisher" gorm:"type:text"`
	Catalog      string    `json:"catalog" gorm:"type:text"`
	DatasetID    string    `json:"datasetID" gorm:"type:text"`
	Inbox        string    `json:"inbox" gorm:"type:text"`
	Notification string    `json:"notification" gorm:"type:text"`
	Purpose      string    `json:"purpose" gorm:"type:text"`
	Location     string    `json:"location" gorm:"type:text"`
	CDate        time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}
