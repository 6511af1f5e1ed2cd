package model

// User is the row layout of the users table created by --setup-db.
// Nothing reads or writes it yet.
type User struct {
	ID           string `gorm:"primaryKey;type:text"`
	Username     string `gorm:"type:text"`
	CommandCount int    `gorm:"default:0"`
}

func (User) TableName() string {
	return "users"
}
