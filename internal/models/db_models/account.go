package db_models

type Account struct {
	BaseModel
	Name         string `json:"name"`
	Email        string `gorm:"unique;not null" json:"email"`
	PasswordHash string `json:"-"`

	Plans []Plan `gorm:"foreignKey:UserID" json:"-"`
}
