package model

// Favorite is one row of the favorites table. Titles are not unique; the same
// title may be stored more than once.
type Favorite struct {
	ID    uint   `gorm:"primaryKey;autoIncrement"`
	Title string `gorm:"type:text"`
}

// TableName specifies the table name for GORM.
func (Favorite) TableName() string {
	return "favorites"
}
