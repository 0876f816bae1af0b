package models

type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"uniqueIndex;not null"     json:"username"`
	// Password holds whatever the configured hasher stored; plaintext under
	// the default "plain" hasher.
	Password string `gorm:"not null"                 json:"-"`

	CartItems []CartItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

type Product struct {
	ID    uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string  `gorm:"index;not null"           json:"name"`
	Price float64 `gorm:"not null"                 json:"price"`
}

// CartItem.ProductID carries no foreign key: deleting a product keeps the
// cart lines that point at it.
type CartItem struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint `gorm:"index;not null"           json:"user_id"`
	ProductID uint `gorm:"index;not null"           json:"product_id"`
	Quantity  int  `gorm:"not null;default:1"       json:"quantity"`
}

type UserPatch struct {
	Username *string
	Password *string
}

type ProductPatch struct {
	Name  *string
	Price *float64
}

func (p ProductPatch) Apply(prod *Product) {
	if p.Name != nil {
		prod.Name = *p.Name
	}
	if p.Price != nil {
		prod.Price = *p.Price
	}
}
