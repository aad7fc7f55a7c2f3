package models

// LookupEntryModel is one localized reference row served through the
// Account/Common endpoint.
type LookupEntryModel struct {
	ID        uint   `gorm:"primaryKey"`
	SPName    string `gorm:"size:100;not null;uniqueIndex:idx_lookup_identity;column:sp_name"`
	Parameter string `gorm:"size:100;uniqueIndex:idx_lookup_identity"`
	Language  string `gorm:"size:2;not null;uniqueIndex:idx_lookup_identity"`
	Label     string `gorm:"size:255;not null;uniqueIndex:idx_lookup_identity"`
	Value     string `gorm:"size:255;not null"`
	SortOrder int    `gorm:"not null;default:0"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (LookupEntryModel) TableName() string {
	return "lookup_entries"
}
